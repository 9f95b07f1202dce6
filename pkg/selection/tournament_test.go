package selection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/framework"
)

func buildRankedPop() *framework.Population {
	genes := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	fitness := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	pop := framework.NewPopulation(genes, fitness, nil)
	pop.Rank = []int{0, 0, 1, 1}
	pop.SurvivalScore = []float64{5, 10, 1, 2}
	return pop
}

func TestTournament_PrefersLowerRank(t *testing.T) {
	pop := buildRankedPop()
	rng := rand.New(rand.NewSource(1))
	seenRank0 := false
	for i := 0; i < 200; i++ {
		winner := Tournament(pop, 4, HigherIsBetter, rng)
		if pop.Rank[winner] == 0 {
			seenRank0 = true
		}
		assert.True(t, pop.Rank[winner] <= 1)
	}
	assert.True(t, seenRank0)
}

func TestTournament_FeasibilityBeatsRank(t *testing.T) {
	genes := mat.NewDense(2, 1, []float64{0, 1})
	fitness := mat.NewDense(2, 1, []float64{0, 1})
	constraints := mat.NewDense(2, 1, []float64{0, 5})
	pop := framework.NewPopulation(genes, fitness, constraints)
	pop.Rank = []int{5, 0}
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		winner := Tournament(pop, 2, HigherIsBetter, rng)
		assert.Equal(t, 0, winner)
	}
}

func TestRandom_ReturnsValidIndices(t *testing.T) {
	pop := buildRankedPop()
	rng := rand.New(rand.NewSource(3))
	idx := Random(pop, 10, rng)
	assert.Len(t, idx, 10)
	for _, i := range idx {
		assert.True(t, i >= 0 && i < 4)
	}
}
