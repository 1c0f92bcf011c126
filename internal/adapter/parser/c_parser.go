// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

import (
	"regexp"
	"strings"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
)

// CLikeExtractor recovers functions from brace-delimited sources with a
// declaration regex and brace matching. It is not a parser: control-flow
// statements shaped like "type name (...) {" are reported as functions,
// and signatures split over several lines before the "(" are missed.
type CLikeExtractor struct {
	funcHeaderRe *regexp.Regexp
	paramRe      *regexp.Regexp
	extensions   []string
}

func NewCLikeExtractor() *CLikeExtractor {
	return &CLikeExtractor{
		funcHeaderRe: regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\s+[a-zA-Z_][a-zA-Z0-9_]*\s*\((.*?)\)\s*\{`),
		paramRe:      regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\s+[a-zA-Z_][a-zA-Z0-9_]*\b`),
		extensions: []string{
			".c", ".h", ".cpp", ".hpp", ".cc", ".hh", ".cxx",
			".java", ".cs", ".js", ".ts",
		},
	}
}

var _ ports.FunctionExtractor = (*CLikeExtractor)(nil)

func (p *CLikeExtractor) Name() string {
	return "c-like"
}

func (p *CLikeExtractor) SupportsFile(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range p.extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Extract returns the functions found in src in scan order.
func (p *CLikeExtractor) Extract(src string) []model.Function {
	matches := p.funcHeaderRe.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return nil
	}

	functions := make([]model.Function, 0, len(matches))
	line, lineAt := 1, 0

	for _, m := range matches {
		start, end := m[0], m[1]
		declaration := src[start:end]

		line += strings.Count(src[lineAt:start], "\n")
		lineAt = start

		// The match ends with the opening brace of this declaration.
		open := end - 1

		functions = append(functions, model.Function{
			Declaration: declaration,
			Name:        functionName(declaration),
			Parameters:  p.parameters(src[m[2]:m[3]]),
			Body:        sliceBody(src, open),
			Offset:      start,
			Line:        line,
		})
	}

	return functions
}

func (p *CLikeExtractor) parameters(args string) []string {
	found := p.paramRe.FindAllString(args, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// functionName returns the identifier right before the first '('.
func functionName(declaration string) string {
	head := declaration
	if idx := strings.IndexByte(head, '('); idx >= 0 {
		head = head[:idx]
	}
	head = strings.TrimRight(head, " \t\r\n\v\f")
	return head[strings.LastIndexAny(head, " \t\r\n\v\f")+1:]
}

// sliceBody returns text[open+1 : end-1] where end is one past the
// matching close brace. For a balanced block that is exactly the text
// between the braces; an unterminated block loses the last byte of the
// file.
func sliceBody(text string, open int) string {
	end := MatchBrace(text, open)
	lo, hi := open+1, end-1
	if hi < lo {
		return ""
	}
	return text[lo:hi]
}
