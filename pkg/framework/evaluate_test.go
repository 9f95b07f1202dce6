package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/errs"
)

func TestEvaluate_ShapeMismatchSurfacesShapeError(t *testing.T) {
	genes := mat.NewDense(3, 2, nil)
	fitnessFn := func(g *mat.Dense) (*mat.Dense, error) {
		return mat.NewDense(3, 1, nil), nil // declares 2 objectives, returns 1
	}
	_, err := Evaluate(genes, fitnessFn, nil, 2, 0)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrShape))
}

func TestEvaluate_PanicSurfacesEvaluationError(t *testing.T) {
	genes := mat.NewDense(2, 1, nil)
	fitnessFn := func(g *mat.Dense) (*mat.Dense, error) {
		panic("boom")
	}
	_, err := Evaluate(genes, fitnessFn, nil, 1, 0)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrEvaluation))
}

func TestBoundsConstraint_ProducesTwoColumnsPerVariable(t *testing.T) {
	bounds := []Bounds{{L: 0, H: 1}, {L: -1, H: 1}}
	genes := mat.NewDense(1, 2, []float64{0.5, 2})
	fn := BoundsConstraint(bounds)
	out, err := fn(genes)
	assert.NoError(t, err)
	r, c := out.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 4, c)
	assert.True(t, out.At(0, 3) > 0) // 2 - 1 > 0: second var violates upper bound
}

func TestCombineConstraints_ConcatenatesColumns(t *testing.T) {
	a := func(g *mat.Dense) (*mat.Dense, error) { return mat.NewDense(2, 1, []float64{1, 2}), nil }
	b := func(g *mat.Dense) (*mat.Dense, error) { return mat.NewDense(2, 2, []float64{3, 4, 5, 6}), nil }
	fn := CombineConstraints(a, nil, b)
	out, err := fn(mat.NewDense(2, 1, nil))
	assert.NoError(t, err)
	r, c := out.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 1.0, out.At(0, 0))
	assert.Equal(t, 3.0, out.At(0, 1))
	assert.Equal(t, 4.0, out.At(0, 2))
}

func TestCombineConstraints_AllNilReturnsNil(t *testing.T) {
	fn := CombineConstraints(nil, nil)
	assert.Nil(t, fn)
}
