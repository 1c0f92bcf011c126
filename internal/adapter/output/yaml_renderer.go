// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
)

type YAMLRenderer struct {
	IncludeBodies bool
}

func NewYAMLRenderer(includeBodies bool) *YAMLRenderer {
	return &YAMLRenderer{IncludeBodies: includeBodies}
}

var _ ports.OutputRenderer = (*YAMLRenderer)(nil)

func (r *YAMLRenderer) Format() string {
	return "yaml"
}

func (r *YAMLRenderer) Render(report *model.ProjectReport) (string, error) {
	if !r.IncludeBodies {
		report = withoutBodies(report)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
