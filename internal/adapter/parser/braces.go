// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

// MatchBrace returns the index one past the brace that closes the block
// opened at text[open].
//
// Only '{' and '}' are counted: braces inside string literals or comments
// shift the result. When the block never closes the scan stops at
// len(text). If open does not index a '{', open is returned unchanged.
func MatchBrace(text string, open int) int {
	if open < 0 || open >= len(text) || text[open] != '{' {
		return open
	}

	depth := 1
	pos := open + 1
	for depth > 0 && pos < len(text) {
		switch text[pos] {
		case '{':
			depth++
		case '}':
			depth--
		}
		pos++
	}
	return pos
}
