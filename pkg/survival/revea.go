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

// REVEA truncates by angle-penalized distance against a reference vector set
// that is periodically refreshed to track the population's current
// ideal/nadir estimate, per the spec's §4.3.6. CurrentGen/MaxGen and Alpha
// drive the penalty schedule; InitialVectors holds the original
// Das-and-Dennis directions (v_i^0) that every refresh rescales from, while
// ReferenceVectors holds the currently active, rescaled set the association
// step actually uses. DefaultREVEARefresh advances CurrentGen and refreshes
// ReferenceVectors every RefreshEvery generations; driver.Run installs it
// automatically whenever Survival is a REVEA and no RefreshFn was supplied.
type REVEA struct {
	ReferenceVectors [][]float64
	InitialVectors   [][]float64 // v_i^0; if empty, refresh is a no-op
	CurrentGen       int
	MaxGen           int
	Alpha            float64 // penalty growth exponent; 0 defaults to 2
	RefreshEvery     int     // generations between reference-vector refreshes; 0 defaults to 1
}

func (o REVEA) Survive(combined *framework.Population, fronts []framework.Front, targetSize int, rng *rand.Rand, emitter errs.Emitter) *framework.Population {
	_ = rng
	n := combined.NumIndividuals()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	ideal := combined.Ideal(all)
	nadir := combined.Nadir(all)
	gamma := numeric.PerVectorMinAngles(o.ReferenceVectors)
	numObj := combined.NumObjectives()

	alpha := o.Alpha
	if alpha == 0 {
		alpha = 2
	}

	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		points[i] = combined.Individual(i).Fitness
	}
	normalized, degenerate := numeric.Normalize(points, ideal, nadir)
	if len(degenerate) > 0 && emitter != nil {
		emitter.Numeric(&errs.NumericWarning{
			Where:  "revea.Normalize",
			Detail: fmt.Sprintf("objectives %v have zero ideal-nadir range", degenerate),
		})
	}

	assignment := make([]int, n)
	apd := make([]float64, n)
	for i, p := range normalized {
		best, bestAPD := -1, 0.0
		for r, dir := range o.ReferenceVectors {
			a := numeric.AnglePenalizedDistance(p, dir, gamma[r], numObj, o.CurrentGen, o.MaxGen, alpha)
			if best == -1 || a < bestAPD {
				best, bestAPD = r, a
			}
		}
		assignment[i] = best
		apd[i] = bestAPD
	}

	combined.SurvivalScore = make([]float64, n)
	for i := range apd {
		combined.SurvivalScore[i] = -apd[i]
	}

	// REVEA selects by reference vector rather than by front: the full
	// combined population is grouped by associated vector, and selection takes
	// each vector's lowest-APD member, then each vector's second-lowest, and so
	// on round-robin until targetSize individuals are chosen.
	byVector := make(map[int][]int, len(o.ReferenceVectors))
	for i := 0; i < n; i++ {
		byVector[assignment[i]] = append(byVector[assignment[i]], i)
	}
	for v := range byVector {
		sort.Slice(byVector[v], func(a, b int) bool { return apd[byVector[v][a]] < apd[byVector[v][b]] })
	}

	selected := make([]int, 0, targetSize)
	round := 0
	for len(selected) < targetSize {
		progressed := false
		for v := 0; v < len(o.ReferenceVectors) && len(selected) < targetSize; v++ {
			members := byVector[v]
			if round < len(members) {
				selected = append(selected, members[round])
				progressed = true
			}
		}
		if !progressed {
			break
		}
		round++
	}
	_ = fronts // REVEA's selection is vector-driven, not front-driven
	return combined.Slice(selected)
}

// refreshVectors implements the spec's §4.3.6 refresh step:
// v_i^{t+1} = normalize(v_i^0 ⊙ (z_max - z_min)).
func (o REVEA) refreshVectors(zmin, zmax []float64) [][]float64 {
	out := make([][]float64, len(o.InitialVectors))
	for i, v := range o.InitialVectors {
		scaled := make([]float64, len(v))
		for j := range scaled {
			scaled[j] = v[j] * (zmax[j] - zmin[j])
		}
		if norm := floats.Norm(scaled, 2); norm > 0 {
			floats.Scale(1/norm, scaled)
		}
		out[i] = scaled
	}
	return out
}

// DefaultREVEARefresh builds a driver.Config.RefreshFn that advances a
// REVEA's CurrentGen every generation and rescales its ReferenceVectors from
// InitialVectors and the current population's ideal/nadir every refreshEvery
// generations, per the spec's §4.3.6 step 5. Operators other than REVEA pass
// through unchanged.
func DefaultREVEARefresh(refreshEvery int) func(gen int, pop *framework.Population, op Operator) Operator {
	if refreshEvery <= 0 {
		refreshEvery = 1
	}
	return func(gen int, pop *framework.Population, op Operator) Operator {
		r, ok := op.(REVEA)
		if !ok {
			return op
		}
		r.CurrentGen = gen
		if len(r.InitialVectors) > 0 && gen%refreshEvery == 0 {
			all := make([]int, pop.NumIndividuals())
			for i := range all {
				all[i] = i
			}
			zmin := pop.Ideal(all)
			zmax := pop.Nadir(all)
			r.ReferenceVectors = r.refreshVectors(zmin, zmax)
		}
		return r
	}
}
