package numeric

import (
	"math/rand"
	"sort"
)

// Hypervolume returns the dominated hypervolume of points (assumed
// minimization, already normalized so smaller is better) with respect to
// reference. For two objectives an exact sort-and-sweep is used; for three or
// more, a Monte Carlo estimator is used since exact computation is
// exponential in the number of objectives and out of scope for this module's
// numerical primitives. rng drives the Monte Carlo sampling and must be the
// same driver-owned stream used for the rest of a run, so identical seeds
// reproduce identical results.
func Hypervolume(points [][]float64, reference []float64, rng *rand.Rand) float64 {
	if len(points) == 0 {
		return 0
	}
	m := len(reference)
	if m == 2 {
		return hypervolume2D(points, reference)
	}
	return hypervolumeMonteCarlo(points, reference, 20000, rng)
}

func hypervolume2D(points [][]float64, reference []float64) float64 {
	filtered := make([][]float64, 0, len(points))
	for _, p := range points {
		if p[0] < reference[0] && p[1] < reference[1] {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return 0
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i][0] < filtered[j][0] })

	area := 0.0
	minY := reference[1]
	// sweep from the smallest x to the largest, tracking the best y seen so
	// far; each point that improves on it adds the strip between its y and
	// that best y, reaching from its x to the reference point.
	for _, p := range filtered {
		if p[1] < minY {
			area += (reference[0] - p[0]) * (minY - p[1])
			minY = p[1]
		}
	}
	return area
}

func hypervolumeMonteCarlo(points [][]float64, reference []float64, samples int, rng *rand.Rand) float64 {
	m := len(reference)
	lo := make([]float64, m)
	copy(lo, reference)
	for _, p := range points {
		for j := 0; j < m; j++ {
			if p[j] < lo[j] {
				lo[j] = p[j]
			}
		}
	}
	boxVolume := 1.0
	for j := 0; j < m; j++ {
		boxVolume *= reference[j] - lo[j]
	}
	if boxVolume <= 0 {
		return 0
	}

	hits := 0
	sample := make([]float64, m)
	for s := 0; s < samples; s++ {
		for j := 0; j < m; j++ {
			sample[j] = lo[j] + rng.Float64()*(reference[j]-lo[j])
		}
		if dominatedByAny(sample, points) {
			hits++
		}
	}
	return boxVolume * float64(hits) / float64(samples)
}

func dominatedByAny(sample []float64, points [][]float64) bool {
	for _, p := range points {
		covers := true
		for j := range sample {
			if p[j] > sample[j] {
				covers = false
				break
			}
		}
		if covers {
			return true
		}
	}
	return false
}
