// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package smell

// Similarity returns the Jaccard index of the sets of distinct bytes in a
// and b. It is a coarse lexical proxy: two unrelated bodies written with
// the same small alphabet score high.
//
// Two empty strings have an empty union and score 0.
func Similarity(a, b string) float64 {
	var inA, inB [256]bool
	for i := 0; i < len(a); i++ {
		inA[a[i]] = true
	}
	for i := 0; i < len(b); i++ {
		inB[b[i]] = true
	}

	var intersection, union int
	for c := 0; c < 256; c++ {
		if inA[c] || inB[c] {
			union++
			if inA[c] && inB[c] {
				intersection++
			}
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
