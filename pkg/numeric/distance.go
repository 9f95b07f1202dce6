package numeric

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// PairwiseDistances returns the full n x n Euclidean distance matrix
// for rows, symmetric with a zero diagonal. Used by SPEA-II's k-NN density
// (n is small enough in practice - population plus archive - that the direct
// O(n^2) computation below is preferable to introducing a spatial index whose
// exact API this codebase would otherwise need to guess at).
func PairwiseDistances(rows [][]float64) [][]float64 {
	n := len(rows)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := floats.Distance(rows[i], rows[j], 2)
			out[i][j] = d
			out[j][i] = d
		}
	}
	return out
}

// CrossDistances returns the len(a) x len(b) Euclidean distance
// matrix between two disjoint row sets.
func CrossDistances(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(b))
		for j := range b {
			out[i][j] = floats.Distance(a[i], b[j], 2)
		}
	}
	return out
}

// KthNearest returns the distance to the k-th nearest neighbor (1-indexed,
// excluding self) of row i within a pre-computed distance matrix.
func KthNearest(distances [][]float64, i, k int) float64 {
	row := make([]float64, 0, len(distances[i])-1)
	for j, d := range distances[i] {
		if j == i {
			continue
		}
		row = append(row, d)
	}
	if k > len(row) {
		k = len(row)
	}
	if k <= 0 {
		return 0
	}
	sort.Float64s(row)
	return row[k-1]
}
