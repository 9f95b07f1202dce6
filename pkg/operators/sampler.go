// Package operators supplies the default reference variation operators used
// to exercise the driver and the end-to-end benchmark scenarios. The
// operator catalogue itself is out of scope for this module - callers are
// free to substitute their own Sampler/CrossoverFunc/MutationFunc - so these
// exist to make the driver runnable, not as the module's primary surface.
//
// Grounded on this codebase's own RealSolution (uniform sampling, SBX
// crossover, polynomial mutation) and BinarySolution (single-point crossover,
// bit-flip mutation).
package operators

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/framework"
)

// UniformSampler draws every gene uniformly from its bound, per bounds. The
// returned function takes the driver's rng at call time rather than
// capturing one, so a single seeded stream can drive an entire run.
func UniformSampler(bounds []framework.Bounds) func(popSize, numVars int, rng *rand.Rand) *mat.Dense {
	return func(popSize, numVars int, rng *rand.Rand) *mat.Dense {
		out := mat.NewDense(popSize, numVars, nil)
		for i := 0; i < popSize; i++ {
			for j := 0; j < numVars; j++ {
				b := bounds[j]
				out.Set(i, j, b.L+rng.Float64()*(b.H-b.L))
			}
		}
		return out
	}
}
