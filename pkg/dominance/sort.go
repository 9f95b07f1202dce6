// Package dominance implements the non-dominated sorter (C4): Pareto
// dominance under feasibility rules, and Fast Non-Dominated Sort partitioning
// a population into ranked fronts.
//
// Grounded on this codebase's own framework.NonDominatedSort/Dominates pair
// (dominance-count bookkeeping, front-by-front peeling), generalized with the
// feasibility-dominates-everything rule the distilled spec adds on top of
// plain Pareto dominance.
package dominance

import (
	"sort"

	"github.com/evolab-go/evolab/pkg/framework"
)

// Dominates reports whether individual a dominates b:
//  1. a feasible, b infeasible -> a dominates.
//  2. both infeasible -> smaller total violation dominates; equal violation
//     falls through to the componentwise check.
//  3. both feasible -> pure Pareto: a <= b on every objective, strictly < on
//     at least one.
func Dominates(a, b framework.Individual) bool {
	aFeasible := a.Violation == 0
	bFeasible := b.Violation == 0

	switch {
	case aFeasible && !bFeasible:
		return true
	case !aFeasible && bFeasible:
		return false
	case !aFeasible && !bFeasible:
		if a.Violation < b.Violation {
			return true
		}
		if a.Violation > b.Violation {
			return false
		}
		// equal violation: fall through to componentwise check
	}

	better := false
	for i := range a.Fitness {
		if a.Fitness[i] > b.Fitness[i] {
			return false
		}
		if a.Fitness[i] < b.Fitness[i] {
			better = true
		}
	}
	return better
}

// FastNonDominatedSort partitions pop into fronts by dominance, writing
// pop.Rank as a side effect. Ties in dominance rank are broken deterministically
// by original row index: every front lists its members in ascending index
// order.
func FastNonDominatedSort(pop *framework.Population) []framework.Front {
	n := pop.NumIndividuals()
	pop.Rank = make([]int, n)

	dominated := make([][]int, n)
	domCount := make([]int, n)
	individuals := make([]framework.Individual, n)
	for i := 0; i < n; i++ {
		individuals[i] = pop.Individual(i)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if Dominates(individuals[i], individuals[j]) {
				dominated[i] = append(dominated[i], j)
				domCount[j]++
			} else if Dominates(individuals[j], individuals[i]) {
				dominated[j] = append(dominated[j], i)
				domCount[i]++
			}
		}
	}

	var fronts []framework.Front
	current := make([]int, 0)
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			pop.Rank[i] = 0
			current = append(current, i)
		}
	}

	rank := 0
	for len(current) > 0 {
		fronts = append(fronts, framework.Front{Indices: current, Pop: pop})
		next := make([]int, 0)
		for _, p := range current {
			for _, q := range dominated[p] {
				domCount[q]--
				if domCount[q] == 0 {
					pop.Rank[q] = rank + 1
					next = append(next, q)
				}
			}
		}
		rank++
		sort.Ints(next)
		current = next
	}

	return fronts
}
