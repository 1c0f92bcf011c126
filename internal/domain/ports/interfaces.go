// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package ports

import (
	"context"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
)

type SourceFileScanner interface {
	Scan(ctx context.Context, root string, includeExt []string) ([]string, error)
}

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type FunctionExtractor interface {
	Name() string
	SupportsFile(path string) bool
	Extract(src string) []model.Function
}

type SmellCheck interface {
	Kind() model.SmellKind
	Run(functions []model.Function) []model.Finding
}

type ReportStorage interface {
	Save(ctx context.Context, root string, report *model.ProjectReport) error
	Load(ctx context.Context, root string) (*model.ProjectReport, error)
}

type OutputRenderer interface {
	Format() string
	Render(report *model.ProjectReport) (string, error)
}

type RendererRegistry interface {
	Get(format string) (OutputRenderer, bool)
	List() []OutputRenderer
}

type ProgressReporter interface {
	Start(total int)
	Advance(path string)
	Finish()
}
