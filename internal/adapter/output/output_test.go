// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func sampleReport() *model.ProjectReport {
	return &model.ProjectReport{
		RootPath:    "input.cpp",
		GeneratedAt: time.Date(2025, 3, 13, 10, 0, 0, 0, time.UTC),
		Thresholds:  model.DefaultThresholds(),
		Checks:      model.AllSmellKinds(),
		Files: []model.FileReport{{
			Path: "input.cpp",
			Functions: []model.Function{
				{Name: "fun1", Line: 1, Parameters: []string{"int a", "int b", "int c", "int d"}, Body: "\n  a = a + 1;\n"},
				{Name: "shortFn", Line: 22, Parameters: []string{}, Body: " return; "},
			},
			Results: []model.CheckResult{
				{Kind: model.SmellLongMethod, Findings: []model.Finding{
					{Kind: model.SmellLongMethod, Function: "fun1", Line: 1, Value: 18, Threshold: 15},
				}},
				{Kind: model.SmellLongParameterList, Findings: []model.Finding{
					{Kind: model.SmellLongParameterList, Function: "fun1", Line: 1, Value: 4, Threshold: 3},
				}},
				{Kind: model.SmellDuplicatedCode, Findings: []model.Finding{}},
				{Kind: model.SmellNamingConvention, Findings: []model.Finding{
					{Kind: model.SmellNamingConvention, Function: "fun1", Line: 1},
				}},
				{Kind: model.SmellLongName, Findings: []model.Finding{}},
			},
		}},
		Summary: model.ProjectSummary{
			TotalFiles:     1,
			TotalFunctions: 2,
			TotalFindings:  3,
			FindingsByKind: map[model.SmellKind]int{
				model.SmellLongMethod:        1,
				model.SmellLongParameterList: 1,
				model.SmellDuplicatedCode:    0,
				model.SmellNamingConvention:  1,
				model.SmellLongName:          0,
			},
		},
		SmellMetadata: model.AllSmellSummaries(),
		Warnings:      []string{"read broken.c: permission denied"},
	}
}

func TestTextRenderer(t *testing.T) {
	out, err := NewTextRenderer().Render(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, out, "CodeSmell Report")
	assert.Contains(t, out, "lines>15 params>3 similarity>0.75 name>20")
	assert.Contains(t, out, "Functions: fun1 shortFn")
	assert.Contains(t, out, "The fun1 function is a Long Function. It contains 18 lines of code. (line 1)")
	assert.Contains(t, out, "fun1 has a Long Parameter List. Its parameter list contains 4 parameters.")
	assert.Contains(t, out, "No functions are duplicated.")
	assert.Contains(t, out, "fun1 is not camelCased.")
	assert.Contains(t, out, "No method name is too long.")
	assert.Contains(t, out, "read broken.c: permission denied")
	assert.NotContains(t, out, "\x1b[")
}

func TestDescribeFindingDuplicatePair(t *testing.T) {
	msg := DescribeFinding(model.Finding{
		Kind:      model.SmellDuplicatedCode,
		Function:  "fun2",
		Line:      4,
		Other:     "fun3",
		OtherLine: 9,
		Value:     0.8,
	})
	assert.Equal(t, "fun2 and fun3 are duplicated (similarity 0.80). (lines 4 and 9)", msg)
}

func TestDescribeFindingLongName(t *testing.T) {
	msg := DescribeFinding(model.Finding{Kind: model.SmellLongName, Function: "thisIsAVeryLongFunctionName", Value: 27})
	assert.Equal(t, "thisIsAVeryLongFunctionName is too long. Its name contains 27 characters.", msg)
}

func TestJSONRendererDropsBodiesByDefault(t *testing.T) {
	report := sampleReport()

	out, err := NewJSONRenderer(false).Render(report)
	require.NoError(t, err)

	var decoded model.ProjectReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "", decoded.Files[0].Functions[0].Body)
	assert.Equal(t, report.Files[0].Results, decoded.Files[0].Results)
	assert.Equal(t, "\n  a = a + 1;\n", report.Files[0].Functions[0].Body, "input must not be modified")

	out, err = NewJSONRenderer(true).Render(report)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, " return; ", decoded.Files[0].Functions[1].Body)
}

func TestYAMLRenderer(t *testing.T) {
	report := sampleReport()

	out, err := NewYAMLRenderer(true).Render(report)
	require.NoError(t, err)
	assert.Contains(t, out, "rootPath: input.cpp")

	var decoded model.ProjectReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, report.Summary, decoded.Summary)
	assert.Equal(t, report.Thresholds, decoded.Thresholds)
	assert.Equal(t, report.Files[0].Functions, decoded.Files[0].Functions)
}

func TestRendererRegistry(t *testing.T) {
	reg := NewRendererRegistry(NewTextRenderer(), NewJSONRenderer(false), NewYAMLRenderer(false), nil)

	r, ok := reg.Get(" JSON ")
	require.True(t, ok)
	assert.Equal(t, "json", r.Format())

	_, ok = reg.Get("sarif")
	assert.False(t, ok)

	assert.Equal(t, []string{"json", "text", "yaml"}, reg.Formats())
	require.Len(t, reg.List(), 3)
	assert.Equal(t, "json", reg.List()[0].Format())

	var nilReg *RendererRegistry
	_, ok = nilReg.Get("text")
	assert.False(t, ok)
}
