// Package driver implements the evolution driver (C7): the generic
// generational loop shared by every algorithm, parameterized by a
// survival.Operator and a set of variation operators.
package driver

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Sampler produces an initial population's genes, shape (popSize, numVars).
// rng is the driver's single owned stream; implementations must not retain a
// reference to it beyond the call.
type Sampler func(popSize, numVars int, rng *rand.Rand) *mat.Dense

// CrossoverFunc recombines a mating pool's genes into an equal number of
// offspring genes.
type CrossoverFunc func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense

// MutationFunc perturbs offspring genes in place and returns them.
type MutationFunc func(genes *mat.Dense, rate float64, rng *rand.Rand) *mat.Dense
