// Package survival implements the survival operators (C6): the seven
// truncation strategies that reduce a combined parent+offspring population
// down to the next generation's size, one per supported algorithm.
package survival

import (
	"math/rand"

	"github.com/evolab-go/evolab/pkg/errs"
	"github.com/evolab-go/evolab/pkg/framework"
)

// Operator reduces combined (already non-dominated-sorted, with Rank set) to
// exactly targetSize individuals, writing SurvivalScore as a side effect for
// the selection operators that consume it, and returning the resulting
// Population. rng is the driver's single owned random stream; most operators
// are deterministic given combined/fronts and ignore it, but NSGA-III's
// random pick within an already populated niche and IBEA-HV's
// higher-dimensional hypervolume estimator consume it so a run's entire
// random behavior - sampling, variation, and survival alike - is
// reproducible from one seed. emitter receives NumericWarning for degenerate
// cases an operator detects (a zero ideal-nadir range, every accepted
// individual in a single niche).
type Operator interface {
	Survive(combined *framework.Population, fronts []framework.Front, targetSize int, rng *rand.Rand, emitter errs.Emitter) *framework.Population
}

// truncateFronts is the fill-by-front skeleton shared by every survival
// operator: whole fronts are accepted in rank order until the next front
// would overflow targetSize, at which point rankFront decides which of that
// front's members fill the remaining slots. rankFront must return front-local
// indices ordered best-first.
func truncateFronts(combined *framework.Population, fronts []framework.Front, targetSize int, rankFront func(f framework.Front) []int) *framework.Population {
	selected := make([]int, 0, targetSize)
	for _, f := range fronts {
		if len(selected)+f.Len() <= targetSize {
			selected = append(selected, f.Indices...)
			continue
		}
		remaining := targetSize - len(selected)
		if remaining <= 0 {
			break
		}
		order := rankFront(f)
		for i := 0; i < remaining && i < len(order); i++ {
			selected = append(selected, f.Indices[order[i]])
		}
		break
	}
	return combined.Slice(selected)
}
