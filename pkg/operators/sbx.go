package operators

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/framework"
)

// SBXCrossover pairs up consecutive rows of genes and recombines them with
// simulated binary crossover, clamping offspring to bounds. Grounded on this
// codebase's own NSGAII.Crossover: eta controls how close offspring stay to
// their parents (higher eta = closer).
func SBXCrossover(bounds []framework.Bounds, eta float64) func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense {
	return func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense {
		n, numVars := genes.Dims()
		out := mat.NewDense(n, numVars, nil)
		out.Copy(genes)

		for i := 0; i+1 < n; i += 2 {
			if rng.Float64() > rate {
				continue
			}
			p1 := out.RawRowView(i)
			p2 := out.RawRowView(i + 1)
			for j := 0; j < numVars; j++ {
				if rng.Float64() > 0.5 {
					continue
				}
				x1, x2 := p1[j], p2[j]
				if math.Abs(x1-x2) < 1e-14 {
					continue
				}
				if x1 > x2 {
					x1, x2 = x2, x1
				}

				u := rng.Float64()
				var beta float64
				if u <= 0.5 {
					beta = math.Pow(2*u, 1/(eta+1))
				} else {
					beta = math.Pow(1/(2*(1-u)), 1/(eta+1))
				}

				c1 := 0.5 * ((x1 + x2) - beta*(x2-x1))
				c2 := 0.5 * ((x1 + x2) + beta*(x2-x1))
				b := bounds[j]
				p1[j] = clamp(c1, b.L, b.H)
				p2[j] = clamp(c2, b.L, b.H)
			}
		}
		return out
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
