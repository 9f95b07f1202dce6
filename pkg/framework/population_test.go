package framework

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestNewPopulation_DerivesViolationTotals(t *testing.T) {
	genes := mat.NewDense(2, 1, []float64{0, 1})
	fitness := mat.NewDense(2, 1, []float64{1, 2})
	constraints := mat.NewDense(2, 2, []float64{
		-1, 2, // one violated (2>0), one satisfied
		-1, -1, // both satisfied
	})
	pop := NewPopulation(genes, fitness, constraints)

	assert.Equal(t, 2.0, pop.ViolationTotals[0])
	assert.Equal(t, 0.0, pop.ViolationTotals[1])
	assert.False(t, pop.Feasible(0))
	assert.True(t, pop.Feasible(1))
}

func TestPopulation_SliceAndConcat(t *testing.T) {
	genes := mat.NewDense(3, 1, []float64{0, 1, 2})
	fitness := mat.NewDense(3, 1, []float64{10, 20, 30})
	pop := NewPopulation(genes, fitness, nil)

	sliced := pop.Slice([]int{2, 0})
	assert.Equal(t, 2, sliced.NumIndividuals())
	assert.Equal(t, 30.0, sliced.Fitness.At(0, 0))
	assert.Equal(t, 10.0, sliced.Fitness.At(1, 0))

	combined := Concat(pop, sliced)
	assert.Equal(t, 5, combined.NumIndividuals())
}

func TestPopulation_Best_RequiresRank(t *testing.T) {
	genes := mat.NewDense(3, 1, []float64{0, 1, 2})
	fitness := mat.NewDense(3, 1, []float64{10, 20, 30})
	pop := NewPopulation(genes, fitness, nil)
	pop.Rank = []int{0, 1, 0}

	best := pop.Best()
	assert.Equal(t, 2, best.NumIndividuals())
}

func TestPopulation_IdealNadir(t *testing.T) {
	genes := mat.NewDense(3, 1, []float64{0, 1, 2})
	fitness := mat.NewDense(3, 2, []float64{
		1, 5,
		3, 1,
		2, 4,
	})
	pop := NewPopulation(genes, fitness, nil)

	ideal := pop.Ideal(nil)
	nadir := pop.Nadir(nil)
	if diff := cmp.Diff([]float64{1, 1}, ideal); diff != "" {
		t.Errorf("ideal mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{3, 5}, nadir); diff != "" {
		t.Errorf("nadir mismatch (-want +got):\n%s", diff)
	}
}

func TestFront_ObjectiveAndIndividual(t *testing.T) {
	genes := mat.NewDense(3, 1, []float64{0, 1, 2})
	fitness := mat.NewDense(3, 2, []float64{1, 5, 3, 1, 2, 4})
	pop := NewPopulation(genes, fitness, nil)
	front := Front{Indices: []int{1, 2}, Pop: pop}

	assert.Equal(t, 2, front.Len())
	assert.Equal(t, []float64{3, 2}, front.Objective(0))
	assert.Equal(t, 1, front.Individual(0).Index)
}
