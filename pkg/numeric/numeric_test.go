package numeric

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evolab-go/evolab/pkg/framework"
	"gonum.org/v1/gonum/mat"
)

func TestCrowdingDistance_BoundariesAreInfinite(t *testing.T) {
	genes := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	fitness := mat.NewDense(4, 2, []float64{
		0, 3,
		1, 2,
		2, 1,
		3, 0,
	})
	pop := framework.NewPopulation(genes, fitness, nil)
	front := framework.Front{Indices: []int{0, 1, 2, 3}, Pop: pop}

	d := CrowdingDistance(front)
	assert.True(t, math.IsInf(d[0], 1))
	assert.True(t, math.IsInf(d[3], 1))
	assert.True(t, d[1] < d[0])
}

func TestCrowdingDistance_SmallFrontIsAllInfinite(t *testing.T) {
	genes := mat.NewDense(2, 1, []float64{0, 1})
	fitness := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	pop := framework.NewPopulation(genes, fitness, nil)
	front := framework.Front{Indices: []int{0, 1}, Pop: pop}

	d := CrowdingDistance(front)
	for _, v := range d {
		assert.True(t, math.IsInf(v, 1))
	}
}

func TestPairwiseDistances_SymmetricZeroDiagonal(t *testing.T) {
	rows := [][]float64{{0, 0}, {3, 4}, {0, 4}}
	m := PairwiseDistances(rows)
	assert.Equal(t, 0.0, m[0][0])
	assert.InDelta(t, 5.0, m[0][1], 1e-9)
	assert.Equal(t, m[0][1], m[1][0])
}

func TestKthNearest(t *testing.T) {
	rows := [][]float64{{0, 0}, {1, 0}, {2, 0}, {5, 0}}
	m := PairwiseDistances(rows)
	assert.InDelta(t, 1.0, KthNearest(m, 0, 1), 1e-9)
	assert.InDelta(t, 2.0, KthNearest(m, 0, 2), 1e-9)
}

func TestDasDennisReferencePoints_SumToOne(t *testing.T) {
	points := DasDennisReferencePoints(3, 4)
	assert.NotEmpty(t, points)
	for _, p := range points {
		sum := p[0] + p[1] + p[2]
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestPerpendicularDistance_OnRayIsZero(t *testing.T) {
	d := PerpendicularDistance([]float64{2, 2}, []float64{1, 1})
	assert.InDelta(t, 0.0, d, 1e-9)
}

func TestAssociateToReferencePoints(t *testing.T) {
	refs := [][]float64{{1, 0}, {0, 1}}
	points := [][]float64{{0.9, 0.1}, {0.1, 0.9}}
	assignment, _ := AssociateToReferencePoints(points, refs)
	assert.Equal(t, []int{0, 1}, assignment)
}

func TestHypervolume2D_KnownRectangle(t *testing.T) {
	points := [][]float64{{1, 1}}
	hv := Hypervolume(points, []float64{2, 2}, rand.New(rand.NewSource(1)))
	assert.InDelta(t, 1.0, hv, 1e-9)
}

func TestAngleBetween_Orthogonal(t *testing.T) {
	a := AngleBetween([]float64{1, 0}, []float64{0, 1})
	assert.InDelta(t, math.Pi/2, a, 1e-9)
}

func TestFitPNorm_ReturnsPositive(t *testing.T) {
	points := [][]float64{{0.5, 0.5}, {0.7, 0.3}, {0.3, 0.7}}
	p := FitPNorm(points)
	assert.True(t, p > 0)
}
