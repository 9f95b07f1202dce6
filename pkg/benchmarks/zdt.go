// Package benchmarks supplies standard multi-objective test problems (ZDT,
// DTLZ) and the end-to-end scenario tests (S1-S6) that exercise the whole
// pipeline: sampling through evaluation through survival.
//
// Grounded on this codebase's own benchmarks/zdt1.go plus the descheduler
// fork's zdt2.go/zdt3.go/dtlz1.go.
package benchmarks

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/framework"
)

// ZDT1Bounds is the standard [0,1]^numVars domain for every ZDT problem.
func ZDT1Bounds(numVars int) []framework.Bounds {
	return framework.UniformBounds(numVars, 0, 1)
}

func zdtG(row []float64) float64 {
	sum := 0.0
	for _, v := range row[1:] {
		sum += v
	}
	return 1 + 9*sum/float64(len(row)-1)
}

// ZDT1 is the convex-front variant: f2 = g*(1 - sqrt(f1/g)).
func ZDT1(genes *mat.Dense) (*mat.Dense, error) {
	n, _ := genes.Dims()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		row := genes.RawRowView(i)
		f1 := row[0]
		g := zdtG(row)
		f2 := g * (1 - math.Sqrt(f1/g))
		out.Set(i, 0, f1)
		out.Set(i, 1, f2)
	}
	return out, nil
}

// ZDT2 is the non-convex-front variant: f2 = g*(1 - (f1/g)^2).
func ZDT2(genes *mat.Dense) (*mat.Dense, error) {
	n, _ := genes.Dims()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		row := genes.RawRowView(i)
		f1 := row[0]
		g := zdtG(row)
		ratio := f1 / g
		f2 := g * (1 - ratio*ratio)
		out.Set(i, 0, f1)
		out.Set(i, 1, f2)
	}
	return out, nil
}

// ZDT3 is the disconnected-front variant, adding a sinusoidal term to ZDT1's
// front so it splits into several disjoint arcs.
func ZDT3(genes *mat.Dense) (*mat.Dense, error) {
	n, _ := genes.Dims()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		row := genes.RawRowView(i)
		f1 := row[0]
		g := zdtG(row)
		ratio := f1 / g
		f2 := g * (1 - math.Sqrt(ratio) - ratio*math.Sin(10*math.Pi*f1))
		out.Set(i, 0, f1)
		out.Set(i, 1, f2)
	}
	return out, nil
}
