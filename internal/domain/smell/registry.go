// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package smell

import (
	"fmt"
	"strings"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
)

// NewChecks builds the checks for kinds, in the order given. An empty
// kinds slice enables every check.
func NewChecks(th model.Thresholds, kinds []model.SmellKind) ([]ports.SmellCheck, error) {
	if len(kinds) == 0 {
		kinds = model.AllSmellKinds()
	}

	seen := make(map[model.SmellKind]struct{}, len(kinds))
	checks := make([]ports.SmellCheck, 0, len(kinds))

	for _, kind := range kinds {
		if _, dup := seen[kind]; dup {
			continue
		}
		seen[kind] = struct{}{}

		switch kind {
		case model.SmellLongMethod:
			checks = append(checks, NewLongMethodCheck(th.MaxMethodLines))
		case model.SmellLongParameterList:
			checks = append(checks, NewLongParameterListCheck(th.MaxParameters))
		case model.SmellDuplicatedCode:
			checks = append(checks, NewDuplicatedCodeCheck(th.SimilarityThreshold))
		case model.SmellNamingConvention:
			checks = append(checks, NewNamingConventionCheck())
		case model.SmellLongName:
			checks = append(checks, NewLongNameCheck(th.MaxNameLength))
		default:
			return nil, fmt.Errorf("unknown smell %q", kind)
		}
	}

	return checks, nil
}

// ParseKinds turns a comma-separated list such as "long_method,long-name"
// into smell kinds. Hyphens and underscores are interchangeable and
// "all" or an empty string selects every check.
func ParseKinds(raw string) ([]model.SmellKind, error) {
	var kinds []model.SmellKind

	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		name = strings.ReplaceAll(name, "-", "_")
		if name == "" {
			continue
		}
		if name == "all" {
			return model.AllSmellKinds(), nil
		}

		kind := model.SmellKind(name)
		if _, ok := model.LookupSmellSummary(kind); !ok {
			return nil, fmt.Errorf("unknown smell %q", part)
		}
		kinds = append(kinds, kind)
	}

	if len(kinds) == 0 {
		return model.AllSmellKinds(), nil
	}
	return kinds, nil
}

// RunAll runs every check over the same function slice.
func RunAll(checks []ports.SmellCheck, functions []model.Function) []model.CheckResult {
	results := make([]model.CheckResult, 0, len(checks))
	for _, c := range checks {
		findings := c.Run(functions)
		if findings == nil {
			findings = []model.Finding{}
		}
		results = append(results, model.CheckResult{
			Kind:     c.Kind(),
			Findings: findings,
		})
	}
	return results
}
