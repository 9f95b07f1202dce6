package survival

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/evolab-go/evolab/pkg/dominance"
	"github.com/evolab-go/evolab/pkg/errs"
	"github.com/evolab-go/evolab/pkg/framework"
	"github.com/evolab-go/evolab/pkg/numeric"
)

// IBEAHV truncates by IBEA's hypervolume-difference indicator, per the
// spec's §4.3.7: normalize the combined population, compute the pairwise
// indicator I(y,x) (the hypervolume difference IBEA uses to compare y and x
// against a fixed reference point), derive F(x) = Σ_{y≠x} −exp(−I(y,x)/κ),
// then repeatedly remove arg-min F and update every remaining x's fitness by
// F(x) += exp(−I(worst,x)/κ) until targetSize individuals remain. Removal is
// feasibility-first: an alive infeasible individual is always removed before
// any feasible one, ranked among other infeasible individuals by descending
// total constraint violation (worst violation goes first), ties broken by
// IBEA fitness; only once every infeasible individual is gone does removal
// fall back to arg-min F within the feasible subset.
type IBEAHV struct {
	ReferenceOffset float64 // reference-point coordinate on every normalized objective; 0 defaults to 1.1
	Kappa           float64 // IBEA fitness scaling factor; 0 defaults to 0.05
}

func (o IBEAHV) Survive(combined *framework.Population, fronts []framework.Front, targetSize int, rng *rand.Rand, emitter errs.Emitter) *framework.Population {
	_ = fronts // IBEA-HV's environmental selection ignores non-domination rank

	n := combined.NumIndividuals()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	ideal := combined.Ideal(all)
	nadir := combined.Nadir(all)

	offset := o.ReferenceOffset
	if offset <= 0 {
		offset = 1.1
	}
	reference := make([]float64, len(nadir))
	for j := range reference {
		reference[j] = offset
	}

	kappa := o.Kappa
	if kappa <= 0 {
		kappa = 0.05
	}

	individuals := make([]framework.Individual, n)
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		individuals[i] = combined.Individual(i)
		points[i] = individuals[i].Fitness
	}
	normalized, degenerate := numeric.Normalize(points, ideal, nadir)
	if len(degenerate) > 0 && emitter != nil {
		emitter.Numeric(&errs.NumericWarning{
			Where:  "ibeahv.Normalize",
			Detail: fmt.Sprintf("objectives %v have zero ideal-nadir range", degenerate),
		})
	}

	indicator := make([][]float64, n)
	for y := 0; y < n; y++ {
		indicator[y] = make([]float64, n)
		for x := 0; x < n; x++ {
			if x == y {
				continue
			}
			indicator[y][x] = ibeaIndicator(normalized[y], normalized[x], reference, individuals[y], individuals[x], rng)
		}
	}

	fitness := make([]float64, n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if y == x {
				continue
			}
			fitness[x] += -math.Exp(-indicator[y][x] / kappa)
		}
	}

	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	live := n

	combined.SurvivalScore = make([]float64, n)

	for live > targetSize {
		worst := worstAliveByFeasibility(alive, fitness, combined.ViolationTotals)
		combined.SurvivalScore[worst] = fitness[worst]
		alive[worst] = false
		live--
		for x := 0; x < n; x++ {
			if !alive[x] {
				continue
			}
			fitness[x] += math.Exp(-indicator[worst][x] / kappa)
		}
	}

	result := make([]int, 0, targetSize)
	for i := 0; i < n; i++ {
		if alive[i] {
			combined.SurvivalScore[i] = fitness[i]
			result = append(result, i)
		}
	}
	return combined.Slice(result)
}

// worstAliveByFeasibility picks the next individual to remove: any alive
// infeasible individual outranks every alive feasible one, so it is chosen
// first, by descending violation (ties by ascending fitness, i.e. the
// individual IBEA already considers weaker). Once no infeasible individual
// remains, it falls back to arg-min fitness among the feasible survivors.
func worstAliveByFeasibility(alive []bool, fitness, violations []float64) int {
	worst := -1
	for i := range alive {
		if !alive[i] || violations[i] == 0 {
			continue
		}
		if worst == -1 || violations[i] > violations[worst] ||
			(violations[i] == violations[worst] && fitness[i] < fitness[worst]) {
			worst = i
		}
	}
	if worst != -1 {
		return worst
	}
	for i := range alive {
		if !alive[i] {
			continue
		}
		if worst == -1 || fitness[i] < fitness[worst] {
			worst = i
		}
	}
	return worst
}

// ibeaIndicator computes I(y,x) as defined in the spec: if x dominates y, the
// difference is taken between the single-point hypervolumes of y and x;
// otherwise it is taken between the joint {x,y} hypervolume and x's alone.
func ibeaIndicator(y, x, reference []float64, indY, indX framework.Individual, rng *rand.Rand) float64 {
	if dominance.Dominates(indX, indY) {
		return numeric.Hypervolume([][]float64{y}, reference, rng) - numeric.Hypervolume([][]float64{x}, reference, rng)
	}
	return numeric.Hypervolume([][]float64{x, y}, reference, rng) - numeric.Hypervolume([][]float64{x}, reference, rng)
}
