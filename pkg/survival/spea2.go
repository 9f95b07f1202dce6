package survival

import (
	"math"
	"math/rand"
	"sort"

	"github.com/evolab-go/evolab/pkg/dominance"
	"github.com/evolab-go/evolab/pkg/errs"
	"github.com/evolab-go/evolab/pkg/framework"
	"github.com/evolab-go/evolab/pkg/numeric"
)

// SPEA2 truncates by strength/raw-fitness/density, per the spec's §4.3.5:
// strength(i) counts how many individuals i dominates; raw(i) sums the
// strength of every individual that dominates i; density(i) is 1/(sigma_k+2)
// where sigma_k is the distance to the k-th nearest neighbor (k defaults to
// the square root of the combined population size); fitness = raw + density,
// lower is better.
//
// Environmental selection has no front ordering: the raw(i)=0 (nondominated)
// set becomes the archive directly. An oversized archive is truncated by
// repeatedly removing the individual closest to its nearest neighbor
// (recomputed after every removal); an undersized archive is padded from the
// dominated individuals in ascending fitness order, regardless of rank.
// Truncation compares nearest-neighbor distances, then next-nearest, and so
// on; ties that remain in either step are broken by original row index (the
// spec's open question on SPEA-II tie-breaking), which keeps both steps
// deterministic.
type SPEA2 struct {
	K int // neighbor rank for density; 0 selects sqrt(n) automatically
}

func (o SPEA2) Survive(combined *framework.Population, fronts []framework.Front, targetSize int, rng *rand.Rand, emitter errs.Emitter) *framework.Population {
	_ = fronts // SPEA-II's environmental selection ignores front rank entirely
	_, _ = rng, emitter

	n := combined.NumIndividuals()
	individuals := make([]framework.Individual, n)
	for i := range individuals {
		individuals[i] = combined.Individual(i)
	}

	strength := make([]int, n)
	raw := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if dominance.Dominates(individuals[i], individuals[j]) {
				strength[i]++
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if dominance.Dominates(individuals[j], individuals[i]) {
				raw[i] += float64(strength[j])
			}
		}
	}

	k := o.K
	if k <= 0 {
		k = int(math.Sqrt(float64(n)))
		if k < 1 {
			k = 1
		}
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = individuals[i].Fitness
	}
	distances := numeric.PairwiseDistances(rows)

	fitness := make([]float64, n)
	for i := 0; i < n; i++ {
		sigmaK := numeric.KthNearest(distances, i, k)
		fitness[i] = raw[i] + 1/(sigmaK+2)
	}

	combined.SurvivalScore = make([]float64, n)
	for i := range fitness {
		combined.SurvivalScore[i] = -fitness[i] // negate: higher score == lower SPEA-II fitness == better
	}

	var archive []int
	for i := 0; i < n; i++ {
		if raw[i] == 0 {
			archive = append(archive, i)
		}
	}

	switch {
	case len(archive) > targetSize:
		archive = truncateByNearestNeighbor(archive, rows, targetSize)
	case len(archive) < targetSize:
		archive = fillByAscendingFitness(archive, n, fitness, targetSize)
	}

	return combined.Slice(archive)
}

// truncateByNearestNeighbor implements SPEA-II's environmental truncation
// operator: while the archive exceeds target, remove the individual with the
// smallest distance to its nearest neighbor, breaking ties by the distance to
// the next-nearest neighbor and so on, and finally by ascending row index.
func truncateByNearestNeighbor(archive []int, rowsAll [][]float64, target int) []int {
	cur := append([]int(nil), archive...)
	for len(cur) > target {
		rows := make([][]float64, len(cur))
		for i, idx := range cur {
			rows[i] = rowsAll[idx]
		}
		dist := numeric.PairwiseDistances(rows)

		worst := 0
		worstSorted := sortedNeighborDistances(dist, 0)
		for i := 1; i < len(cur); i++ {
			candidate := sortedNeighborDistances(dist, i)
			if lexLess(candidate, worstSorted) {
				worst, worstSorted = i, candidate
			}
		}
		cur = append(cur[:worst], cur[worst+1:]...)
	}
	return cur
}

// sortedNeighborDistances returns row i's distances to every other row,
// ascending, excluding the self-distance.
func sortedNeighborDistances(dist [][]float64, i int) []float64 {
	out := make([]float64, 0, len(dist)-1)
	for j, d := range dist[i] {
		if j == i {
			continue
		}
		out = append(out, d)
	}
	sort.Float64s(out)
	return out
}

// lexLess compares two ascending neighbor-distance lists element-wise; the
// first list is "more crowded" (worse) if it is smaller at the first
// differing position.
func lexLess(a, b []float64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// fillByAscendingFitness pads an undersized archive with the dominated
// individuals in ascending SPEA-II fitness order, regardless of front rank.
func fillByAscendingFitness(archive []int, n int, fitness []float64, target int) []int {
	inArchive := make([]bool, n)
	for _, idx := range archive {
		inArchive[idx] = true
	}
	rest := make([]int, 0, n-len(archive))
	for i := 0; i < n; i++ {
		if !inArchive[i] {
			rest = append(rest, i)
		}
	}
	sort.SliceStable(rest, func(a, b int) bool {
		if fitness[rest[a]] != fitness[rest[b]] {
			return fitness[rest[a]] < fitness[rest[b]]
		}
		return rest[a] < rest[b]
	})
	needed := target - len(archive)
	if needed > len(rest) {
		needed = len(rest)
	}
	return append(archive, rest[:needed]...)
}
