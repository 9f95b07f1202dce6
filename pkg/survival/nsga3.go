package survival

import (
	"fmt"
	"math/rand"

	"github.com/evolab-go/evolab/pkg/errs"
	"github.com/evolab-go/evolab/pkg/framework"
	"github.com/evolab-go/evolab/pkg/numeric"
)

// NSGA3 truncates by reference-point niching, per the spec's §4.3.2:
// normalize objectives, associate every accepted-front-plus-splitting-front
// member to its nearest Das-and-Dennis reference direction, then fill the
// splitting front by preferring the reference points with the fewest niche
// members so far. Within the chosen niche, the candidate with the smallest
// perpendicular distance is taken if the niche held no accepted member before
// the splitting front, and a random candidate otherwise.
type NSGA3 struct {
	Divisions int // Das-and-Dennis divisions; higher means a denser reference set
}

func (o NSGA3) Survive(combined *framework.Population, fronts []framework.Front, targetSize int, rng *rand.Rand, emitter errs.Emitter) *framework.Population {
	numObj := combined.NumObjectives()
	refDirs := numeric.DasDennisReferencePoints(numObj, o.Divisions)

	// association is computed over every individual in fronts up to and
	// including the splitting front, normalized against that same pool.
	pool := make([]int, 0, targetSize*2)
	splitIdx := len(fronts)
	accepted := 0
	for i, f := range fronts {
		if accepted+f.Len() > targetSize && splitIdx == len(fronts) {
			splitIdx = i
		}
		pool = append(pool, f.Indices...)
		accepted += f.Len()
		if accepted >= targetSize {
			break
		}
	}
	if splitIdx == len(fronts) && len(fronts) > 0 {
		splitIdx = len(fronts) - 1
	}

	points := make([][]float64, len(pool))
	for i, idx := range pool {
		points[i] = combined.Individual(idx).Fitness
	}
	ideal := combined.Ideal(pool)
	nadir := combined.Nadir(pool)
	normalized, degenerate := numeric.Normalize(points, ideal, nadir)
	if len(degenerate) > 0 && emitter != nil {
		emitter.Numeric(&errs.NumericWarning{
			Where:  "nsga3.Normalize",
			Detail: fmt.Sprintf("objectives %v have zero ideal-nadir range", degenerate),
		})
	}
	assignment, distance := numeric.AssociateToReferencePoints(normalized, refDirs)

	combined.SurvivalScore = make([]float64, combined.NumIndividuals())
	for i, idx := range pool {
		combined.SurvivalScore[idx] = -distance[i] // negate: higher score == closer == better
	}

	poolPos := make(map[int]int, len(pool))
	for i, idx := range pool {
		poolPos[idx] = i
	}

	niche := make([]int, len(refDirs))
	for i, f := range fronts {
		if i >= splitIdx {
			break
		}
		for _, idx := range f.Indices {
			niche[assignment[poolPos[idx]]]++
		}
	}

	if len(refDirs) > 1 && emitter != nil {
		occupied := 0
		for _, count := range niche {
			if count > 0 {
				occupied++
			}
		}
		if occupied == 1 {
			emitter.Numeric(&errs.NumericWarning{
				Where:  "nsga3.niching",
				Detail: "every accepted individual associated to a single reference direction",
			})
		}
	}

	// snapshot which niches already held an accepted (lower-front) member
	// before this splitting-front pass began; per Deb & Jain, a niche that
	// starts empty picks its first splitting-front member by smallest
	// perpendicular distance, while a niche that already has an accepted
	// member picks among its splitting-front candidates at random.
	populatedBefore := make([]bool, len(niche))
	for r, count := range niche {
		populatedBefore[r] = count > 0
	}

	return truncateFronts(combined, fronts, targetSize, func(f framework.Front) []int {
		localRef := make([]int, f.Len())
		localDist := make([]float64, f.Len())
		for local, idx := range f.Indices {
			p := poolPos[idx]
			localRef[local] = assignment[p]
			localDist[local] = distance[p]
		}

		remaining := make([]bool, f.Len())
		for local := range remaining {
			remaining[local] = true
		}
		left := f.Len()

		order := make([]int, 0, f.Len())
		for left > 0 {
			// find the reference direction with the fewest niche members that
			// still has an unpicked candidate; ties broken by ascending local
			// row index for a reproducible order under repeated ties.
			bestRef, bestCount := -1, 0
			for local := 0; local < len(remaining); local++ {
				if !remaining[local] {
					continue
				}
				r := localRef[local]
				if bestRef == -1 || niche[r] < bestCount {
					bestRef, bestCount = r, niche[r]
				}
			}

			candidates := make([]int, 0, left)
			for local := 0; local < len(remaining); local++ {
				if remaining[local] && localRef[local] == bestRef {
					candidates = append(candidates, local)
				}
			}

			var bestLocal int
			if populatedBefore[bestRef] {
				// niche already has an accepted member: pick uniformly at
				// random among its splitting-front candidates, drawing from
				// the driver's owned rng so the choice stays reproducible
				// under a fixed seed.
				bestLocal = candidates[rng.Intn(len(candidates))]
			} else {
				bestLocal = candidates[0]
				bestDist := localDist[bestLocal]
				for _, local := range candidates[1:] {
					if localDist[local] < bestDist {
						bestLocal, bestDist = local, localDist[local]
					}
				}
			}

			order = append(order, bestLocal)
			remaining[bestLocal] = false
			left--
			niche[bestRef]++
		}
		return order
	})
}
