package benchmarks

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/framework"
)

// EXPO2Bounds is the [0,1]^numVars domain used by S4.
func EXPO2Bounds(numVars int) []framework.Bounds {
	return framework.UniformBounds(numVars, 0, 1)
}

// EXPO2 has an exponentially-decaying Pareto front f2 = exp(-5*f1), used to
// stress-test hypervolume-based survival against a strongly non-linear
// trade-off curve.
func EXPO2(genes *mat.Dense) (*mat.Dense, error) {
	n, _ := genes.Dims()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		row := genes.RawRowView(i)
		f1 := row[0]
		g := zdtG(row)
		f2 := g * math.Exp(-5*f1/g)
		out.Set(i, 0, f1)
		out.Set(i, 1, f2)
	}
	return out, nil
}
