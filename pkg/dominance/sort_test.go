package dominance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/framework"
)

func ind(fitness []float64, violation float64) framework.Individual {
	return framework.Individual{Fitness: fitness, Violation: violation}
}

func TestDominates_PureParetoNoFeasibility(t *testing.T) {
	a := ind([]float64{1, 2}, 0)
	b := ind([]float64{2, 2}, 0)
	assert.True(t, Dominates(a, b))
	assert.False(t, Dominates(b, a))

	// neither dominates: mixed
	c := ind([]float64{1, 3}, 0)
	d := ind([]float64{2, 1}, 0)
	assert.False(t, Dominates(c, d))
	assert.False(t, Dominates(d, c))
}

func TestDominates_FeasibilityBeatsInfeasible(t *testing.T) {
	feasible := ind([]float64{100, 100}, 0)
	infeasible := ind([]float64{1, 1}, 5)
	assert.True(t, Dominates(feasible, infeasible))
	assert.False(t, Dominates(infeasible, feasible))
}

func TestDominates_BothInfeasibleSmallerViolationWins(t *testing.T) {
	small := ind([]float64{100, 100}, 1)
	large := ind([]float64{1, 1}, 5)
	assert.True(t, Dominates(small, large))
	assert.False(t, Dominates(large, small))
}

func TestFastNonDominatedSort_RanksAndPartitions(t *testing.T) {
	genes := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	fitness := mat.NewDense(4, 2, []float64{
		1, 4, // rank 0
		2, 3, // rank 0
		3, 5, // dominated by both above
		0, 6, // rank 0 (best on obj0, worse on obj1 than row0 only on obj1... check)
	})
	pop := framework.NewPopulation(genes, fitness, nil)
	fronts := FastNonDominatedSort(pop)

	assert.NotEmpty(t, fronts)
	assert.Len(t, pop.Rank, 4)
	assert.Equal(t, 1, pop.Rank[2]) // dominated by rows 0 and 1 -> next rank down

	total := 0
	for _, f := range fronts {
		total += f.Len()
	}
	assert.Equal(t, 4, total)
}
