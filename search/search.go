// SPDX-License-Identifier: MIT

// Package search implements brute-force substring search.
//
// The matcher tries every start offset i in [0, len(text)-len(pattern)],
// compares pattern elements left to right and abandons the offset at the
// first mismatch. There is no preprocessing and no failure function, so the
// worst case is O(T·P). It is a reference algorithm, not a replacement for
// strings.Index.
//
// Policy:
//   - Not found → NotFound (-1).
//   - Pattern longer than text → NotFound without any comparison.
//   - Empty pattern → 0 (it occurs at the start of every text, even an empty one).
package search

// NotFound is the sentinel returned when the pattern does not occur.
const NotFound = -1

// Index returns the smallest offset at which pattern occurs contiguously in
// text, or NotFound.
func Index[T comparable](text, pattern []T) int {
	return indexFrom(text, pattern, 0)
}

// IndexString is Index over the bytes of text and pattern.
func IndexString(text, pattern string) int {
	return Index([]byte(text), []byte(pattern))
}

// IndexAll returns every offset at which pattern occurs, in ascending order.
// Occurrences may overlap ("aa" occurs at 0, 1 and 2 in "aaaa").
// An empty pattern yields nil.
func IndexAll[T comparable](text, pattern []T) []int {
	if len(pattern) == 0 {
		return nil
	}

	var out []int
	for i := indexFrom(text, pattern, 0); i != NotFound; i = indexFrom(text, pattern, i+1) {
		out = append(out, i)
	}

	return out
}

// Count returns the number of (possibly overlapping) occurrences of pattern.
// An empty pattern counts 0.
func Count[T comparable](text, pattern []T) int {
	return len(IndexAll(text, pattern))
}

// indexFrom runs the brute-force scan starting at offset from.
func indexFrom[T comparable](text, pattern []T, from int) int {
	n, m := len(text), len(pattern)
	for i := from; i <= n-m; i++ {
		j := 0
		for ; j < m; j++ {
			if text[i+j] != pattern[j] {
				break
			}
		}
		if j == m {
			return i
		}
	}

	return NotFound
}
