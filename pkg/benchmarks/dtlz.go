package benchmarks

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/framework"
)

// DTLZBounds is the standard [0,1]^numVars domain shared by every DTLZ
// problem.
func DTLZBounds(numVars int) []framework.Bounds {
	return framework.UniformBounds(numVars, 0, 1)
}

func dtlz1G(tail []float64) float64 {
	k := len(tail)
	sum := 0.0
	for _, v := range tail {
		sum += (v-0.5)*(v-0.5) - math.Cos(20*math.Pi*(v-0.5))
	}
	return 100 * (float64(k) + sum)
}

// DTLZ1 scales to an arbitrary number of objectives numObj; the last
// numVars-numObj+1 genes form the "distance" variables that collapse the
// front onto a linear hyperplane at g=0.
func DTLZ1(numObj int) func(genes *mat.Dense) (*mat.Dense, error) {
	return func(genes *mat.Dense) (*mat.Dense, error) {
		n, _ := genes.Dims()
		out := mat.NewDense(n, numObj, nil)
		for i := 0; i < n; i++ {
			row := genes.RawRowView(i)
			tail := row[numObj-1:]
			g := dtlz1G(tail)
			for m := 0; m < numObj; m++ {
				f := 0.5 * (1 + g)
				for j := 0; j < numObj-1-m; j++ {
					f *= row[j]
				}
				if m > 0 {
					f *= 1 - row[numObj-1-m]
				}
				out.Set(i, m, f)
			}
		}
		return out, nil
	}
}

func dtlz2G(tail []float64) float64 {
	sum := 0.0
	for _, v := range tail {
		sum += (v - 0.5) * (v - 0.5)
	}
	return sum
}

// DTLZ2 has a spherical Pareto front, useful for testing reference-direction
// association since every point lies at the same distance from the origin.
func DTLZ2(numObj int) func(genes *mat.Dense) (*mat.Dense, error) {
	return func(genes *mat.Dense) (*mat.Dense, error) {
		n, _ := genes.Dims()
		out := mat.NewDense(n, numObj, nil)
		for i := 0; i < n; i++ {
			row := genes.RawRowView(i)
			tail := row[numObj-1:]
			g := dtlz2G(tail)
			for m := 0; m < numObj; m++ {
				f := 1 + g
				for j := 0; j < numObj-1-m; j++ {
					f *= math.Cos(row[j] * math.Pi / 2)
				}
				if m > 0 {
					f *= math.Sin(row[numObj-1-m] * math.Pi / 2)
				}
				out.Set(i, m, f)
			}
		}
		return out, nil
	}
}
