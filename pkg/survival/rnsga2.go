package survival

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/evolab-go/evolab/pkg/errs"
	"github.com/evolab-go/evolab/pkg/framework"
	"github.com/evolab-go/evolab/pkg/numeric"
)

// RNSGA2 truncates by proximity to user-supplied aspiration points, per the
// spec's §4.3.3: within the splitting front, individuals closest to any
// reference point are preferred, with an epsilon-clearing pass that moves
// candidates lying within epsilon of an already picked one to the back of the
// order to preserve some spread. Both the proximity score and the epsilon-clearing radius operate on
// objectives normalized against the combined population's ideal/nadir (the
// same normalization NSGA3 applies), so no single objective's raw scale can
// dominate the comparison.
type RNSGA2 struct {
	ReferencePoints [][]float64 // decision-maker aspiration points, in objective space
	Epsilon         float64     // clearing radius; <=0 disables clearing
}

func (o RNSGA2) Survive(combined *framework.Population, fronts []framework.Front, targetSize int, rng *rand.Rand, emitter errs.Emitter) *framework.Population {
	_ = rng
	n := combined.NumIndividuals()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	ideal := combined.Ideal(all)
	nadir := combined.Nadir(all)
	normalizedRefs, refDegenerate := numeric.Normalize(o.ReferencePoints, ideal, nadir)

	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		points[i] = combined.Individual(i).Fitness
	}
	normalized, degenerate := numeric.Normalize(points, ideal, nadir)
	if emitter != nil {
		if len(refDegenerate) > 0 {
			emitter.Numeric(&errs.NumericWarning{
				Where:  "rnsga2.Normalize.references",
				Detail: fmt.Sprintf("objectives %v have zero ideal-nadir range", refDegenerate),
			})
		}
		if len(degenerate) > 0 {
			emitter.Numeric(&errs.NumericWarning{
				Where:  "rnsga2.Normalize",
				Detail: fmt.Sprintf("objectives %v have zero ideal-nadir range", degenerate),
			})
		}
	}

	combined.SurvivalScore = make([]float64, n)
	for i := 0; i < n; i++ {
		combined.SurvivalScore[i] = -nearestDistance(normalized[i], normalizedRefs)
	}

	return truncateFronts(combined, fronts, targetSize, func(f framework.Front) []int {
		n := f.Len()
		normalizedFront := make([][]float64, n)
		dist := make([]float64, n)
		for local := 0; local < n; local++ {
			normalizedFront[local] = normalized[f.Indices[local]]
			dist[local] = nearestDistance(normalizedFront[local], normalizedRefs)
		}
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return dist[order[a]] < dist[order[b]] })

		if o.Epsilon <= 0 {
			return order
		}
		return clearByEpsilon(order, normalizedFront, o.Epsilon)
	})
}

func nearestDistance(point []float64, refs [][]float64) float64 {
	best := 0.0
	for i, ref := range refs {
		d := floats.Distance(point, ref, 2)
		if i == 0 || d < best {
			best = d
		}
	}
	return best
}

// clearByEpsilon re-orders candidates so that once one is selected, any other
// candidate within epsilon of it in normalized objective space is pushed to
// the back of the order, giving later distinct clusters a chance to be
// represented before a single cluster is over-sampled.
func clearByEpsilon(order []int, normalizedFront [][]float64, epsilon float64) []int {
	remaining := append([]int(nil), order...)
	var cleared []int
	var picked [][]float64
	stall := 0

	for len(remaining) > 0 {
		next := remaining[0]
		remaining = remaining[1:]

		tooClose := false
		point := normalizedFront[next]
		for _, p := range picked {
			if floats.Distance(point, p, 2) < epsilon {
				tooClose = true
				break
			}
		}
		if tooClose && stall < len(remaining)+1 {
			remaining = append(remaining, next)
			stall++
			continue
		}
		stall = 0
		cleared = append(cleared, next)
		picked = append(picked, point)
	}
	return cleared
}
