package survival

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/evolab-go/evolab/pkg/errs"
	"github.com/evolab-go/evolab/pkg/framework"
	"github.com/evolab-go/evolab/pkg/numeric"
)

// AGEMOEA truncates by geometry-adaptive crowding, per the spec's §4.3.4:
// normalize the splitting front, fit the p-norm that best describes its
// curvature, then score each member by combining its normalized proximity to
// the ideal point with a p-norm-based diversity (crowding) measure - members
// close to the ideal point on a sparsely populated region of the curve
// survive; members far from ideal or crowded against a neighbor do not.
//
// The open question of whether to renormalize per-front or once against the
// whole combined population is resolved here as per-front, matching AGE-MOEA's
// original description of geometry estimated from the current front rather
// than the whole population - see the design notes for why.
type AGEMOEA struct{}

func (AGEMOEA) Survive(combined *framework.Population, fronts []framework.Front, targetSize int, rng *rand.Rand, emitter errs.Emitter) *framework.Population {
	_ = rng
	n := combined.NumIndividuals()
	combined.SurvivalScore = make([]float64, n)

	return truncateFronts(combined, fronts, targetSize, func(f framework.Front) []int {
		points := make([][]float64, f.Len())
		for i := range points {
			points[i] = f.Individual(i).Fitness
		}
		ideal := f.Pop.Ideal(f.Indices)
		nadir := f.Pop.Nadir(f.Indices)
		normalized, degenerate := numeric.Normalize(points, ideal, nadir)
		if len(degenerate) > 0 && emitter != nil {
			emitter.Numeric(&errs.NumericWarning{
				Where:  "agemoea.Normalize",
				Detail: fmt.Sprintf("objectives %v have zero ideal-nadir range", degenerate),
			})
		}

		p := numeric.FitPNorm(normalized)

		// proximity[i] is pt's own p-norm distance from the ideal point;
		// Normalize already translates every point by ideal, so pt itself is
		// the offset from ideal and needs no further subtraction.
		proximity := make([]float64, f.Len())
		for i, pt := range normalized {
			proximity[i] = numeric.PNorm(pt, p)
		}

		diversity := make([]float64, f.Len())
		for i, pt := range normalized {
			// diversity is the minimum p-norm distance to any other member of
			// the front, so isolated points on the curve score highest.
			min := -1.0
			for j, other := range normalized {
				if i == j {
					continue
				}
				diff := make([]float64, len(pt))
				for k := range diff {
					diff[k] = pt[k] - other[k]
					if diff[k] < 0 {
						diff[k] = -diff[k]
					}
				}
				d := numeric.PNorm(diff, p)
				if min < 0 || d < min {
					min = d
				}
			}
			if min < 0 {
				min = 0
			}
			diversity[i] = min
		}

		survival := make([]float64, f.Len())
		for i := range survival {
			// higher diversity (more isolated) and lower proximity (closer to
			// ideal) both raise survival advantage.
			survival[i] = diversity[i] - proximity[i]
			combined.SurvivalScore[f.Indices[i]] = survival[i]
		}

		order := make([]int, f.Len())
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return survival[order[a]] > survival[order[b]] })
		return order
	})
}
