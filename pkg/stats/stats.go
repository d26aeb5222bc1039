// Package stats provides the median-based normalization used by the
// distortion-style checks.
package stats

import "sort"

// Median returns the median of the given values, or 0 for an empty slice.
// The input is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2.0
	}
	return sorted[mid]
}

// Normalize divides every value by the median of the set, isolating entries
// that deviate from the set's own norm regardless of overall scale.
// Sequences with fewer than two entries are returned unchanged (there is
// nothing to compare against), as are sequences whose median is 0.
func Normalize(values []float64) []float64 {
	if len(values) < 2 {
		return values
	}

	median := Median(values)
	if median == 0 {
		return values
	}

	normalized := make([]float64, len(values))
	for i, v := range values {
		normalized[i] = v / median
	}
	return normalized
}
