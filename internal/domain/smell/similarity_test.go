// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package smell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "return a + b;", b: "return a + b;", want: 1},
		{name: "same character set", a: "abc", b: "cabbac", want: 1},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		{name: "half overlap", a: "ab", b: "bc", want: 1.0 / 3.0},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "one empty", a: "abc", b: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityIsReflexiveAndSymmetric(t *testing.T) {
	bodies := []string{
		"x",
		"\n  return 0;\n",
		"\n  for (int i = 0; i < n; i++) {\n    sum += i;\n  }\n",
		"{}",
	}

	for _, a := range bodies {
		assert.Equal(t, 1.0, Similarity(a, a), a)
		for _, b := range bodies {
			assert.Equal(t, Similarity(a, b), Similarity(b, a))
		}
	}
}

// Unrelated bodies over the same alphabet count as duplicates.
func TestSimilarityIgnoresOrder(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("a = b;", "b = a;"))
}
