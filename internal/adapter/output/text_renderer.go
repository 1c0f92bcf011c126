// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
)

var (
	title  = color.New(color.Bold, color.FgYellow).SprintFunc()
	accent = color.New(color.Bold, color.FgHiRed).SprintFunc()
	label  = color.New(color.FgHiBlack).SprintFunc()
	value  = color.New(color.FgWhite).SprintFunc()
	good   = color.New(color.FgGreen).SprintFunc()
	warn   = color.New(color.FgYellow).SprintFunc()
	danger = color.New(color.FgRed).SprintFunc()
	file   = color.New(color.FgBlue, color.Bold).SprintFunc()
	fnName = color.New(color.FgCyan).SprintFunc()
)

// TextRenderer prints findings as sentences, one block per file and
// check. Colors follow color.NoColor.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

var _ ports.OutputRenderer = (*TextRenderer)(nil)

func (r *TextRenderer) Format() string {
	return "text"
}

func (r *TextRenderer) Render(report *model.ProjectReport) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", accent("CodeSmell Report"))
	fmt.Fprintf(&b, "%s %s\n", label("Root:"), value(report.RootPath))
	fmt.Fprintf(&b, "%s %s\n", label("Generated at:"), value(report.GeneratedAt.Format(time.RFC3339)))
	fmt.Fprintf(&b, "%s %s\n", label("Thresholds:"), value(fmt.Sprintf(
		"lines>%d params>%d similarity>%.2f name>%d",
		report.Thresholds.MaxMethodLines,
		report.Thresholds.MaxParameters,
		report.Thresholds.SimilarityThreshold,
		report.Thresholds.MaxNameLength,
	)))

	fmt.Fprintf(&b, "\n%s\n", title("== Summary =="))
	fmt.Fprintf(&b, "%s %s\n", label("Files:"), value(fmt.Sprintf("%d", report.Summary.TotalFiles)))
	fmt.Fprintf(&b, "%s %s\n", label("Functions:"), value(fmt.Sprintf("%d", report.Summary.TotalFunctions)))
	fmt.Fprintf(&b, "%s %s\n", label("Findings:"), colorCount(report.Summary.TotalFindings))
	for _, kind := range report.Checks {
		fmt.Fprintf(&b, "  %s %s\n",
			label(fmt.Sprintf("%-24s", smellName(kind)+":")),
			colorCount(report.Summary.FindingsByKind[kind]),
		)
	}

	for _, f := range report.Files {
		fmt.Fprintf(&b, "\n%s %s\n", title("== ")+file(f.Path)+title(" =="),
			label(fmt.Sprintf("(%d findings)", f.FindingsCount())))

		names := make([]string, 0, len(f.Functions))
		for _, fn := range f.Functions {
			names = append(names, fn.Name)
		}
		if len(names) == 0 {
			fmt.Fprintf(&b, "%s %s\n", label("Functions:"), value("none detected"))
		} else {
			fmt.Fprintf(&b, "%s %s\n", label("Functions:"), fnName(strings.Join(names, " ")))
		}

		for _, res := range f.Results {
			fmt.Fprintf(&b, "%s\n", label("["+smellName(res.Kind)+"]"))
			if res.Clean() {
				fmt.Fprintf(&b, "  %s\n", good(noIssues(res.Kind)))
				continue
			}
			for _, finding := range res.Findings {
				fmt.Fprintf(&b, "  %s %s\n", warn("-"), DescribeFinding(finding))
			}
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(&b, "\n%s\n", title("== Warnings =="))
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "%s %s\n", warn("-"), warn(w))
		}
	}

	return b.String(), nil
}

// DescribeFinding renders a finding as a sentence.
func DescribeFinding(f model.Finding) string {
	var msg string

	switch f.Kind {
	case model.SmellLongMethod:
		msg = fmt.Sprintf("The %s function is a Long Function. It contains %d lines of code.",
			fnName(f.Function), int(f.Value))
	case model.SmellLongParameterList:
		msg = fmt.Sprintf("%s has a Long Parameter List. Its parameter list contains %d parameters.",
			fnName(f.Function), int(f.Value))
	case model.SmellDuplicatedCode:
		msg = fmt.Sprintf("%s and %s are duplicated (similarity %.2f).",
			fnName(f.Function), fnName(f.Other), f.Value)
	case model.SmellNamingConvention:
		msg = fmt.Sprintf("%s is not camelCased.", fnName(f.Function))
	case model.SmellLongName:
		msg = fmt.Sprintf("%s is too long. Its name contains %d characters.",
			fnName(f.Function), int(f.Value))
	default:
		msg = fmt.Sprintf("%s: %s", f.Kind, fnName(f.Function))
	}

	if f.Line > 0 {
		loc := fmt.Sprintf("line %d", f.Line)
		if f.OtherLine > 0 {
			loc = fmt.Sprintf("lines %d and %d", f.Line, f.OtherLine)
		}
		msg += " " + label("("+loc+")")
	}
	return msg
}

func smellName(kind model.SmellKind) string {
	if s, ok := model.LookupSmellSummary(kind); ok {
		return s.Name
	}
	return string(kind)
}

func noIssues(kind model.SmellKind) string {
	if s, ok := model.LookupSmellSummary(kind); ok {
		return s.NoIssues
	}
	return "No issues found."
}

func colorCount(n int) string {
	switch {
	case n == 0:
		return good(fmt.Sprintf("%d", n))
	case n <= 5:
		return warn(fmt.Sprintf("%d", n))
	default:
		return danger(fmt.Sprintf("%d", n))
	}
}
