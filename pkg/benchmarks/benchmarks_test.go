package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestZDT1_ShapeAndKnownFront(t *testing.T) {
	genes := mat.NewDense(2, 3, []float64{0, 0, 0, 1, 0, 0})
	out, err := ZDT1(genes)
	assert.NoError(t, err)
	r, c := out.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	// x1=0 gives f1=0, g=1, f2 = 1*(1-sqrt(0))=1
	assert.InDelta(t, 0.0, out.At(0, 0), 1e-9)
	assert.InDelta(t, 1.0, out.At(0, 1), 1e-9)
}

func TestZDT2AndZDT3_ProduceValidShapes(t *testing.T) {
	genes := mat.NewDense(3, 5, nil)
	for _, fn := range []func(*mat.Dense) (*mat.Dense, error){ZDT2, ZDT3} {
		out, err := fn(genes)
		assert.NoError(t, err)
		r, c := out.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 2, c)
	}
}

func TestDTLZ1_ObjectivesSumToHyperplane(t *testing.T) {
	genes := mat.NewDense(1, 7, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5})
	fn := DTLZ1(3)
	out, err := fn(genes)
	assert.NoError(t, err)
	// with all distance vars at 0.5, g=0, so the three objectives sum to 0.5.
	sum := out.At(0, 0) + out.At(0, 1) + out.At(0, 2)
	assert.InDelta(t, 0.5, sum, 1e-6)
}

func TestDTLZ2_LiesOnUnitSphere(t *testing.T) {
	genes := mat.NewDense(1, 12, []float64{0.3, 0.4, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5})
	fn := DTLZ2(3)
	out, err := fn(genes)
	assert.NoError(t, err)
	sumSq := out.At(0, 0)*out.At(0, 0) + out.At(0, 1)*out.At(0, 1) + out.At(0, 2)*out.At(0, 2)
	assert.InDelta(t, 1.0, sumSq, 1e-6)
}
