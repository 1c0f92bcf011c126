// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

// Function is one function-like unit recovered from source text.
//
// Records are built once by an extractor and never mutated afterwards;
// every smell check reads the same slice.
type Function struct {
	// Declaration is the matched declaration text up to and including
	// the opening brace.
	Declaration string   `json:"declaration" yaml:"declaration"`
	Name        string   `json:"name" yaml:"name"`
	Parameters  []string `json:"parameters" yaml:"parameters"`
	Body        string   `json:"body" yaml:"body"`
	Offset      int      `json:"offset" yaml:"offset"`
	Line        int      `json:"line" yaml:"line"`
}
