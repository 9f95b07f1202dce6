package survival

import (
	"math/rand"
	"sort"

	"github.com/evolab-go/evolab/pkg/errs"
	"github.com/evolab-go/evolab/pkg/framework"
	"github.com/evolab-go/evolab/pkg/numeric"
)

// NSGA2 truncates by crowding distance within the splitting front, per the
// spec's §4.3.1: whole fronts are accepted by rank; the last, partially
// admitted front is filled by descending crowding distance.
//
// Grounded on this codebase's own NSGAII.Run fill loop.
type NSGA2 struct{}

func (NSGA2) Survive(combined *framework.Population, fronts []framework.Front, targetSize int, rng *rand.Rand, emitter errs.Emitter) *framework.Population {
	_, _ = rng, emitter
	n := combined.NumIndividuals()
	combined.SurvivalScore = make([]float64, n)
	for _, f := range fronts {
		d := numeric.CrowdingDistance(f)
		for local, idx := range f.Indices {
			combined.SurvivalScore[idx] = d[local]
		}
	}

	return truncateFronts(combined, fronts, targetSize, func(f framework.Front) []int {
		d := numeric.CrowdingDistance(f)
		order := make([]int, f.Len())
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return d[order[a]] > d[order[b]] })
		return order
	})
}
