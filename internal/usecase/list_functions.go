// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"fmt"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
)

type ListFunctionsRequest struct {
	Path string
}

// ListFunctionsUseCase extracts the functions of a single file without
// running any check.
type ListFunctionsUseCase struct {
	reader     ports.FileReader
	extractors []ports.FunctionExtractor
}

func NewListFunctionsUseCase(reader ports.FileReader, extractors []ports.FunctionExtractor) *ListFunctionsUseCase {
	return &ListFunctionsUseCase{
		reader:     reader,
		extractors: extractors,
	}
}

func (uc *ListFunctionsUseCase) Execute(ctx context.Context, req ListFunctionsRequest) ([]model.Function, error) {
	_ = ctx

	if req.Path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	extractor := selectExtractor(uc.extractors, req.Path, true)
	if extractor == nil {
		return nil, fmt.Errorf("no extractor supports %s", req.Path)
	}

	src, err := uc.reader.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.Path, err)
	}

	return extractor.Extract(string(src)), nil
}
