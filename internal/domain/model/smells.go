// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import "time"

type SmellKind string

const (
	SmellLongMethod        SmellKind = "long_method"
	SmellLongParameterList SmellKind = "long_parameter_list"
	SmellDuplicatedCode    SmellKind = "duplicated_code"
	SmellNamingConvention  SmellKind = "naming_convention"
	SmellLongName          SmellKind = "long_name"
)

// AllSmellKinds returns every kind in menu order.
func AllSmellKinds() []SmellKind {
	return []SmellKind{
		SmellLongMethod,
		SmellLongParameterList,
		SmellDuplicatedCode,
		SmellNamingConvention,
		SmellLongName,
	}
}

// Finding is a single violation reported by a check.
//
// Other and OtherLine are only set for pairwise findings (duplicated code).
type Finding struct {
	Kind      SmellKind `json:"kind" yaml:"kind"`
	Function  string    `json:"function" yaml:"function"`
	Line      int       `json:"line,omitempty" yaml:"line,omitempty"`
	Other     string    `json:"other,omitempty" yaml:"other,omitempty"`
	OtherLine int       `json:"otherLine,omitempty" yaml:"otherLine,omitempty"`
	Value     float64   `json:"value" yaml:"value"`
	Threshold float64   `json:"threshold" yaml:"threshold"`
}

type CheckResult struct {
	Kind     SmellKind `json:"kind" yaml:"kind"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Clean reports whether the check found no issues.
func (r CheckResult) Clean() bool {
	return len(r.Findings) == 0
}

type Thresholds struct {
	MaxMethodLines      int     `json:"maxMethodLines" yaml:"maxMethodLines"`
	MaxParameters       int     `json:"maxParameters" yaml:"maxParameters"`
	SimilarityThreshold float64 `json:"similarityThreshold" yaml:"similarityThreshold"`
	MaxNameLength       int     `json:"maxNameLength" yaml:"maxNameLength"`
}

// DefaultThresholds mirrors the limits of the classic smell detector:
// 16+ lines, 4+ parameters, more than 75% body similarity and names
// longer than 20 characters are smells.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxMethodLines:      15,
		MaxParameters:       3,
		SimilarityThreshold: 0.75,
		MaxNameLength:       20,
	}
}

type FileReport struct {
	Path      string        `json:"path" yaml:"path"`
	Functions []Function    `json:"functions" yaml:"functions"`
	Results   []CheckResult `json:"results" yaml:"results"`
}

// FindingsCount returns the number of findings across all checks.
func (f FileReport) FindingsCount() int {
	n := 0
	for _, r := range f.Results {
		n += len(r.Findings)
	}
	return n
}

type ProjectSummary struct {
	TotalFiles     int               `json:"totalFiles" yaml:"totalFiles"`
	TotalFunctions int               `json:"totalFunctions" yaml:"totalFunctions"`
	TotalFindings  int               `json:"totalFindings" yaml:"totalFindings"`
	FindingsByKind map[SmellKind]int `json:"findingsByKind" yaml:"findingsByKind"`
}

type SmellSummary struct {
	Kind        SmellKind `json:"kind" yaml:"kind"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	NoIssues    string    `json:"noIssues" yaml:"noIssues"`
}

type ProjectReport struct {
	RootPath      string         `json:"rootPath" yaml:"rootPath"`
	GeneratedAt   time.Time      `json:"generatedAt" yaml:"generatedAt"`
	Thresholds    Thresholds     `json:"thresholds" yaml:"thresholds"`
	Checks        []SmellKind    `json:"checks" yaml:"checks"`
	Files         []FileReport   `json:"files" yaml:"files"`
	Summary       ProjectSummary `json:"summary" yaml:"summary"`
	SmellMetadata []SmellSummary `json:"smellMetadata" yaml:"smellMetadata"`
	Warnings      []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// AllSmellSummaries describes every check. NoIssues is the sentence
// printed when a check comes back clean.
func AllSmellSummaries() []SmellSummary {
	return []SmellSummary{
		{
			Kind:        SmellLongMethod,
			Name:        "Long Method/Function",
			Description: "Function body spans more lines than the configured limit.",
			NoIssues:    "No function is a Long Function.",
		},
		{
			Kind:        SmellLongParameterList,
			Name:        "Long Parameter List",
			Description: "Function declares more parameters than the configured limit.",
			NoIssues:    "No function has a long parameter list.",
		},
		{
			Kind:        SmellDuplicatedCode,
			Name:        "Duplicated Code",
			Description: "Pairs of function bodies whose character-set Jaccard similarity exceeds the threshold.",
			NoIssues:    "No functions are duplicated.",
		},
		{
			Kind:        SmellNamingConvention,
			Name:        "Bad Naming (camelCase)",
			Description: "Function name is not strict lower camel case.",
			NoIssues:    "Every function is camelCased.",
		},
		{
			Kind:        SmellLongName,
			Name:        "Long Method Name",
			Description: "Function name is longer than the configured limit.",
			NoIssues:    "No method name is too long.",
		},
	}
}

// LookupSmellSummary returns the metadata entry for kind.
func LookupSmellSummary(kind SmellKind) (SmellSummary, bool) {
	for _, s := range AllSmellSummaries() {
		if s.Kind == kind {
			return s, true
		}
	}
	return SmellSummary{}, false
}
