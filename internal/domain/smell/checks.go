// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package smell

import (
	"strings"
	"unicode"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
)

type LongMethodCheck struct {
	maxLines int
}

func NewLongMethodCheck(maxLines int) *LongMethodCheck {
	return &LongMethodCheck{maxLines: maxLines}
}

var _ ports.SmellCheck = (*LongMethodCheck)(nil)

func (c *LongMethodCheck) Kind() model.SmellKind {
	return model.SmellLongMethod
}

func (c *LongMethodCheck) Run(functions []model.Function) []model.Finding {
	var findings []model.Finding
	for _, fn := range functions {
		lines := CountLines(fn.Body)
		if lines > c.maxLines {
			findings = append(findings, model.Finding{
				Kind:      c.Kind(),
				Function:  fn.Name,
				Line:      fn.Line,
				Value:     float64(lines),
				Threshold: float64(c.maxLines),
			})
		}
	}
	return findings
}

// CountLines counts newlines plus one, so an empty body is one line.
func CountLines(body string) int {
	return strings.Count(body, "\n") + 1
}

type LongParameterListCheck struct {
	maxParams int
}

func NewLongParameterListCheck(maxParams int) *LongParameterListCheck {
	return &LongParameterListCheck{maxParams: maxParams}
}

var _ ports.SmellCheck = (*LongParameterListCheck)(nil)

func (c *LongParameterListCheck) Kind() model.SmellKind {
	return model.SmellLongParameterList
}

func (c *LongParameterListCheck) Run(functions []model.Function) []model.Finding {
	var findings []model.Finding
	for _, fn := range functions {
		if n := len(fn.Parameters); n > c.maxParams {
			findings = append(findings, model.Finding{
				Kind:      c.Kind(),
				Function:  fn.Name,
				Line:      fn.Line,
				Value:     float64(n),
				Threshold: float64(c.maxParams),
			})
		}
	}
	return findings
}

// DuplicatedCodeCheck compares every pair of bodies. The scan is
// O(n^2) in the number of functions times the average body length.
type DuplicatedCodeCheck struct {
	threshold float64
}

func NewDuplicatedCodeCheck(threshold float64) *DuplicatedCodeCheck {
	return &DuplicatedCodeCheck{threshold: threshold}
}

var _ ports.SmellCheck = (*DuplicatedCodeCheck)(nil)

func (c *DuplicatedCodeCheck) Kind() model.SmellKind {
	return model.SmellDuplicatedCode
}

func (c *DuplicatedCodeCheck) Run(functions []model.Function) []model.Finding {
	var findings []model.Finding
	for i := 0; i < len(functions); i++ {
		for j := i + 1; j < len(functions); j++ {
			score := Similarity(functions[i].Body, functions[j].Body)
			if score > c.threshold {
				findings = append(findings, model.Finding{
					Kind:      c.Kind(),
					Function:  functions[i].Name,
					Line:      functions[i].Line,
					Other:     functions[j].Name,
					OtherLine: functions[j].Line,
					Value:     score,
					Threshold: c.threshold,
				})
			}
		}
	}
	return findings
}

type NamingConventionCheck struct{}

func NewNamingConventionCheck() *NamingConventionCheck {
	return &NamingConventionCheck{}
}

var _ ports.SmellCheck = (*NamingConventionCheck)(nil)

func (c *NamingConventionCheck) Kind() model.SmellKind {
	return model.SmellNamingConvention
}

func (c *NamingConventionCheck) Run(functions []model.Function) []model.Finding {
	var findings []model.Finding
	for _, fn := range functions {
		if !IsLowerCamelCase(fn.Name) {
			findings = append(findings, model.Finding{
				Kind:     c.Kind(),
				Function: fn.Name,
				Line:     fn.Line,
			})
		}
	}
	return findings
}

// IsLowerCamelCase reports whether name starts with a lowercase letter,
// contains at least one uppercase letter, has no whitespace or
// punctuation and never has two uppercase letters in a row. An
// all-lowercase name such as "run" does not qualify.
func IsLowerCamelCase(name string) bool {
	if name == "" {
		return false
	}

	hasUpper := false
	prevUpper := false
	for i, r := range name {
		if i == 0 && !unicode.IsLower(r) {
			return false
		}
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return false
		}

		upper := unicode.IsUpper(r)
		if upper && prevUpper {
			return false
		}
		if upper {
			hasUpper = true
		}
		prevUpper = upper
	}

	return hasUpper
}

type LongNameCheck struct {
	maxLength int
}

func NewLongNameCheck(maxLength int) *LongNameCheck {
	return &LongNameCheck{maxLength: maxLength}
}

var _ ports.SmellCheck = (*LongNameCheck)(nil)

func (c *LongNameCheck) Kind() model.SmellKind {
	return model.SmellLongName
}

func (c *LongNameCheck) Run(functions []model.Function) []model.Finding {
	var findings []model.Finding
	for _, fn := range functions {
		if n := len(fn.Name); n > c.maxLength {
			findings = append(findings, model.Finding{
				Kind:      c.Kind(),
				Function:  fn.Name,
				Line:      fn.Line,
				Value:     float64(n),
				Threshold: float64(c.maxLength),
			})
		}
	}
	return findings
}
