package operators

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/framework"
)

// PolynomialMutation perturbs each gene independently with probability rate,
// per this codebase's own NSGAII.Mutation.
func PolynomialMutation(bounds []framework.Bounds, eta float64) func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense {
	return func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense {
		n, numVars := genes.Dims()
		out := mat.NewDense(n, numVars, nil)
		out.Copy(genes)

		for i := 0; i < n; i++ {
			row := out.RawRowView(i)
			for j := 0; j < numVars; j++ {
				if rng.Float64() > rate {
					continue
				}
				b := bounds[j]
				x := row[j]
				delta1 := (x - b.L) / (b.H - b.L)
				delta2 := (b.H - x) / (b.H - b.L)
				u := rng.Float64()
				mutPow := 1 / (eta + 1)

				var deltaQ float64
				if u <= 0.5 {
					xy := 1 - delta1
					val := 2*u + (1-2*u)*math.Pow(xy, eta+1)
					deltaQ = math.Pow(val, mutPow) - 1
				} else {
					xy := 1 - delta2
					val := 2*(1-u) + 2*(u-0.5)*math.Pow(xy, eta+1)
					deltaQ = 1 - math.Pow(val, mutPow)
				}

				row[j] = clamp(x+deltaQ*(b.H-b.L), b.L, b.H)
			}
		}
		return out
	}
}

// BinaryCrossover performs single-point crossover on paired rows treated as
// bit vectors, swapping the genes after the cut point; gene values are copied
// as they are, not rounded. Per this codebase's own BinarySolution.Crossover.
func BinaryCrossover() func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense {
	return func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense {
		n, numVars := genes.Dims()
		out := mat.NewDense(n, numVars, nil)
		out.Copy(genes)

		for i := 0; i+1 < n; i += 2 {
			if rng.Float64() > rate || numVars < 2 {
				continue
			}
			point := 1 + rng.Intn(numVars-1)
			p1 := out.RawRowView(i)
			p2 := out.RawRowView(i + 1)
			for j := point; j < numVars; j++ {
				p1[j], p2[j] = p2[j], p1[j]
			}
		}
		return out
	}
}

// BitFlipMutation flips each bit-valued gene with probability rate.
func BitFlipMutation() func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense {
	return func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense {
		n, numVars := genes.Dims()
		out := mat.NewDense(n, numVars, nil)
		out.Copy(genes)
		for i := 0; i < n; i++ {
			row := out.RawRowView(i)
			for j := 0; j < numVars; j++ {
				if rng.Float64() > rate {
					continue
				}
				if row[j] > 0.5 {
					row[j] = 0
				} else {
					row[j] = 1
				}
			}
		}
		return out
	}
}
