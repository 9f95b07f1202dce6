// Package numeric holds the numerical primitives (C8) shared by the survival
// operators: crowding distance, pairwise distance matrices, perpendicular
// distance / reference-point association, Das-and-Dennis reference point
// generation, p-norm curvature fitting, hypervolume, and angle-penalized
// distance.
package numeric

import (
	"math"
	"sort"

	"github.com/evolab-go/evolab/pkg/framework"
)

// CrowdingDistance computes NSGA-II's crowding distance for every member of
// front, writing the result in front-local order. Boundary individuals of
// each per-objective sort receive +Inf, per the spec's edge case for fronts
// with <=2 members and boundary points generally.
//
// Grounded on this codebase's own NSGAII.CrowdingDistance: sort by each
// objective in turn, accumulate normalized neighbor gaps, protect against a
// zero objective range.
func CrowdingDistance(front framework.Front) []float64 {
	n := front.Len()
	distance := make([]float64, n)
	if n <= 2 {
		for i := range distance {
			distance[i] = math.Inf(1)
		}
		return distance
	}

	numObj := front.Pop.NumObjectives()
	order := make([]int, n)
	for m := 0; m < numObj; m++ {
		values := front.Objective(m)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

		lo, hi := values[order[0]], values[order[n-1]]
		span := hi - lo
		distance[order[0]] = math.Inf(1)
		distance[order[n-1]] = math.Inf(1)
		if span == 0 {
			continue
		}
		for i := 1; i < n-1; i++ {
			prev := values[order[i-1]]
			next := values[order[i+1]]
			distance[order[i]] += (next - prev) / span
		}
	}
	return distance
}
