// Package selection implements the selection operators (C5): tournament
// selection between individuals ranked and scored by a survival operator, and
// plain random selection for algorithms that select uniformly (NSGA-III,
// IBEA-HV).
//
// Grounded on this codebase's own NSGAII.TournamentSelect: pick k candidates
// uniformly, prefer lower rank, break ties by the survival score.
package selection

import (
	"math/rand"

	"github.com/evolab-go/evolab/pkg/framework"
)

// ScoreDirection says whether a higher or lower survival score wins a
// tournament tie, since different algorithms attach opposite meanings to
// their score (crowding distance: higher is better; SPEA-II raw fitness:
// lower is better).
type ScoreDirection int

const (
	// HigherIsBetter is used by crowding distance, reference-point proximity
	// framed as "closer is better" when the caller negates it beforehand.
	HigherIsBetter ScoreDirection = iota
	LowerIsBetter
)

// Tournament runs binary (or k-ary) tournament selection over pop, which must
// already carry Rank and SurvivalScore. Returns the winning original index.
// When pop has more than one individual, each challenger is drawn again until
// it differs from the current winner, so a binary tournament always compares
// two distinct individuals.
func Tournament(pop *framework.Population, size int, direction ScoreDirection, rng *rand.Rand) int {
	if size < 1 {
		size = 2
	}
	n := pop.NumIndividuals()
	best := rng.Intn(n)
	for i := 1; i < size; i++ {
		challenger := rng.Intn(n)
		for n > 1 && challenger == best {
			challenger = rng.Intn(n)
		}
		if better(pop, challenger, best, direction) {
			best = challenger
		}
	}
	return best
}

func better(pop *framework.Population, a, b int, direction ScoreDirection) bool {
	ia, ib := pop.Individual(a), pop.Individual(b)

	// feasibility always wins first, independent of rank/score bookkeeping.
	aFeasible := ia.Violation == 0
	bFeasible := ib.Violation == 0
	if aFeasible != bFeasible {
		return aFeasible
	}
	if !aFeasible && ia.Violation != ib.Violation {
		return ia.Violation < ib.Violation
	}

	if ia.HasRank && ib.HasRank && ia.Rank != ib.Rank {
		return ia.Rank < ib.Rank
	}
	if ia.HasScore && ib.HasScore && ia.Score != ib.Score {
		if direction == HigherIsBetter {
			return ia.Score > ib.Score
		}
		return ia.Score < ib.Score
	}
	return false
}

// SelectMatingPool runs poolSize independent tournaments and returns the
// winning indices, suitable for feeding into a crossover/mutation pass.
func SelectMatingPool(pop *framework.Population, poolSize, tournamentSize int, direction ScoreDirection, rng *rand.Rand) []int {
	out := make([]int, poolSize)
	for i := range out {
		out[i] = Tournament(pop, tournamentSize, direction, rng)
	}
	return out
}

// Random picks poolSize indices uniformly at random, with replacement, for
// algorithms whose mating selection is unranked (NSGA-III, IBEA-HV per the
// spec's design notes).
func Random(pop *framework.Population, poolSize int, rng *rand.Rand) []int {
	n := pop.NumIndividuals()
	out := make([]int, poolSize)
	for i := range out {
		out[i] = rng.Intn(n)
	}
	return out
}
