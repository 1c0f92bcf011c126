// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
)

// JSONRenderer emits the report as indented JSON. Function bodies are
// left out unless IncludeBodies is set.
type JSONRenderer struct {
	IncludeBodies bool
}

func NewJSONRenderer(includeBodies bool) *JSONRenderer {
	return &JSONRenderer{IncludeBodies: includeBodies}
}

var _ ports.OutputRenderer = (*JSONRenderer)(nil)

func (r *JSONRenderer) Format() string {
	return "json"
}

func (r *JSONRenderer) Render(report *model.ProjectReport) (string, error) {
	if !r.IncludeBodies {
		report = withoutBodies(report)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// withoutBodies returns a copy of report whose functions carry no body
// text. The input report is not modified.
func withoutBodies(report *model.ProjectReport) *model.ProjectReport {
	out := *report
	out.Files = make([]model.FileReport, len(report.Files))
	for i, f := range report.Files {
		fns := make([]model.Function, len(f.Functions))
		for j, fn := range f.Functions {
			fn.Body = ""
			fns[j] = fn
		}
		f.Functions = fns
		out.Files[i] = f
	}
	return &out
}
