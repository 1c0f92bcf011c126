// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
)

type GenerateReportRequest struct {
	RootPath string
	Format   string
	// Checks narrows the rendered results; empty keeps every check that
	// was run.
	Checks []model.SmellKind
}

type GenerateReportUseCase struct {
	storage  ports.ReportStorage
	registry ports.RendererRegistry
}

func NewGenerateReportUseCase(storage ports.ReportStorage, registry ports.RendererRegistry) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		storage:  storage,
		registry: registry,
	}
}

func (uc *GenerateReportUseCase) Execute(ctx context.Context, req GenerateReportRequest) (string, error) {
	format := strings.ToLower(req.Format)
	if format == "" {
		format = "text"
	}

	renderer, ok := uc.registry.Get(format)
	if !ok {
		return "", fmt.Errorf("unknown format %q", format)
	}

	report, err := uc.storage.Load(ctx, req.RootPath)
	if err != nil {
		return "", err
	}

	if len(req.Checks) > 0 {
		report = FilterReport(report, req.Checks)
	}

	return renderer.Render(report)
}

// FilterReport returns a copy of report holding only the results of the
// given kinds, with the summary recomputed.
func FilterReport(report *model.ProjectReport, kinds []model.SmellKind) *model.ProjectReport {
	keep := make(map[model.SmellKind]struct{}, len(kinds))
	for _, k := range kinds {
		keep[k] = struct{}{}
	}

	out := *report
	out.Checks = nil
	for _, k := range report.Checks {
		if _, ok := keep[k]; ok {
			out.Checks = append(out.Checks, k)
		}
	}

	out.Files = make([]model.FileReport, 0, len(report.Files))
	out.Summary.TotalFindings = 0
	out.Summary.FindingsByKind = make(map[model.SmellKind]int, len(keep))

	for _, f := range report.Files {
		filtered := f
		filtered.Results = nil
		for _, r := range f.Results {
			if _, ok := keep[r.Kind]; !ok {
				continue
			}
			filtered.Results = append(filtered.Results, r)
			out.Summary.FindingsByKind[r.Kind] += len(r.Findings)
			out.Summary.TotalFindings += len(r.Findings)
		}
		out.Files = append(out.Files, filtered)
	}

	return &out
}
