// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
	"github.com/rafaelvolkmer/codesmell/internal/domain/smell"
)

type AnalyzeProjectRequest struct {
	RootPath string

	// IncludeExt filters the directory walk. A listed extension no
	// extractor claims is analyzed with the first extractor.
	IncludeExt []string

	// Thresholds falls back to model.DefaultThresholds only when every
	// field is zero. A partially set value is used as given.
	Thresholds model.Thresholds

	// Checks selects the smells to run; empty runs all of them.
	Checks []model.SmellKind
}

type AnalyzeProjectUseCase struct {
	scanner    ports.SourceFileScanner
	reader     ports.FileReader
	extractors []ports.FunctionExtractor
	storage    ports.ReportStorage
	progress   ports.ProgressReporter
	workers    int
}

func NewAnalyzeProjectUseCase(
	scanner ports.SourceFileScanner,
	reader ports.FileReader,
	extractors []ports.FunctionExtractor,
	storage ports.ReportStorage,
	progress ports.ProgressReporter,
	workers int,
) *AnalyzeProjectUseCase {
	if progress == nil {
		progress = nopProgress{}
	}
	return &AnalyzeProjectUseCase{
		scanner:    scanner,
		reader:     reader,
		extractors: extractors,
		storage:    storage,
		progress:   progress,
		workers:    workers,
	}
}

type nopProgress struct{}

func (nopProgress) Start(int)      {}
func (nopProgress) Advance(string) {}
func (nopProgress) Finish()        {}

type fileResult struct {
	report *model.FileReport
	path   string
	err    error
}

func (uc *AnalyzeProjectUseCase) Execute(ctx context.Context, req AnalyzeProjectRequest) (*model.ProjectReport, error) {
	if req.RootPath == "" {
		return nil, fmt.Errorf("root path is required")
	}
	if uc.workers <= 0 {
		uc.workers = runtime.NumCPU()
		if uc.workers < 1 {
			uc.workers = 1
		}
	}

	if req.Thresholds == (model.Thresholds{}) {
		req.Thresholds = model.DefaultThresholds()
	}

	checks, err := smell.NewChecks(req.Thresholds, req.Checks)
	if err != nil {
		return nil, err
	}

	filesList, err := uc.scanner.Scan(ctx, req.RootPath, req.IncludeExt)
	if err != nil {
		return nil, fmt.Errorf("scan source files: %w", err)
	}
	if len(filesList) == 0 {
		return nil, fmt.Errorf("no source files found under %s", req.RootPath)
	}

	jobs := make(chan string)
	results := make(chan fileResult)

	var wg sync.WaitGroup
	for i := 0; i < uc.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				fr, err := uc.analyzeFile(path, requested(req, path), checks)
				results <- fileResult{report: fr, path: path, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range filesList {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	uc.progress.Start(len(filesList))

	var files []model.FileReport
	var warnings []string
	for res := range results {
		uc.progress.Advance(res.path)
		if res.err != nil {
			warnings = append(warnings, res.err.Error())
			continue
		}
		if res.report != nil {
			files = append(files, *res.report)
		}
	}

	uc.progress.Finish()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	sort.Strings(warnings)

	report := buildProjectReport(req.RootPath, req.Thresholds, checks, files, warnings)

	if err := uc.storage.Save(ctx, req.RootPath, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	return report, nil
}

func (uc *AnalyzeProjectUseCase) analyzeFile(path string, explicit bool, checks []ports.SmellCheck) (*model.FileReport, error) {
	extractor := selectExtractor(uc.extractors, path, explicit)
	if extractor == nil {
		return nil, fmt.Errorf("skip %s: no extractor supports it", path)
	}

	src, err := uc.reader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	functions := extractor.Extract(string(src))
	if functions == nil {
		functions = []model.Function{}
	}

	return &model.FileReport{
		Path:      path,
		Functions: functions,
		Results:   smell.RunAll(checks, functions),
	}, nil
}

// selectExtractor returns the first extractor claiming path. A file the
// caller asked for explicitly falls back to the first extractor.
func selectExtractor(extractors []ports.FunctionExtractor, path string, explicit bool) ports.FunctionExtractor {
	for _, e := range extractors {
		if e.SupportsFile(path) {
			return e
		}
	}
	if explicit && len(extractors) > 0 {
		return extractors[0]
	}
	return nil
}

// requested reports whether path was named by the request itself, either
// as the root or through an IncludeExt entry.
func requested(req AnalyzeProjectRequest, path string) bool {
	if filepath.Clean(path) == filepath.Clean(req.RootPath) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range req.IncludeExt {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func buildProjectReport(
	root string,
	th model.Thresholds,
	checks []ports.SmellCheck,
	files []model.FileReport,
	warnings []string,
) *model.ProjectReport {
	summary := model.ProjectSummary{
		TotalFiles:     len(files),
		FindingsByKind: make(map[model.SmellKind]int, len(checks)),
	}

	kinds := make([]model.SmellKind, 0, len(checks))
	for _, c := range checks {
		kinds = append(kinds, c.Kind())
		summary.FindingsByKind[c.Kind()] = 0
	}

	for _, f := range files {
		summary.TotalFunctions += len(f.Functions)
		for _, r := range f.Results {
			summary.FindingsByKind[r.Kind] += len(r.Findings)
			summary.TotalFindings += len(r.Findings)
		}
	}

	return &model.ProjectReport{
		RootPath:      root,
		GeneratedAt:   time.Now().UTC(),
		Thresholds:    th,
		Checks:        kinds,
		Files:         files,
		Summary:       summary,
		SmellMetadata: model.AllSmellSummaries(),
		Warnings:      warnings,
	}
}
