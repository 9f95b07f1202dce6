package config

import "github.com/evolab-go/evolab/pkg/numeric"

// initialReferenceVectors builds REVEA's starting reference direction set
// from the same Das-and-Dennis construction NSGA-III uses; the driver rescales
// these against the population's ideal/nadir on every refresh cycle.
func initialReferenceVectors(numObjectives, divisions int) [][]float64 {
	return numeric.DasDennisReferencePoints(numObjectives, divisions)
}
