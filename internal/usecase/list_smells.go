// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
)

type ListSmellsUseCase struct{}

func NewListSmellsUseCase() *ListSmellsUseCase {
	return &ListSmellsUseCase{}
}

func (uc *ListSmellsUseCase) Execute(ctx context.Context) []model.SmellSummary {
	_ = ctx
	return model.AllSmellSummaries()
}
