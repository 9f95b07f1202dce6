package framework

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cleaner removes duplicates from a population, optionally also removing any
// row that duplicates one in reference. Grounded on the spec's contract:
// remove(pop, reference?) -> pop' with no intra-duplicates and no rows close
// to reference. First occurrence is always preserved.
type Cleaner func(pop, reference *Population) *Population

// ExactCleaner removes rows that are bitwise-identical to an earlier row (or
// to any row of reference), hashing the canonical bit pattern of each
// float64 rather than comparing string forms.
func ExactCleaner() Cleaner {
	return func(pop, reference *Population) *Population {
		seen := make(map[uint64]struct{})
		if reference != nil {
			for i := 0; i < reference.NumIndividuals(); i++ {
				seen[rowHash(reference.Genes.RawRowView(i))] = struct{}{}
			}
		}
		keep := make([]int, 0, pop.NumIndividuals())
		for i := 0; i < pop.NumIndividuals(); i++ {
			h := rowHash(pop.Genes.RawRowView(i))
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			keep = append(keep, i)
		}
		return pop.Slice(keep)
	}
}

func rowHash(row []float64) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, v := range row {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		h.Write(buf)
	}
	return h.Sum64()
}

// CloseCleaner removes rows within epsilon (Euclidean, in gene space) of an
// earlier row or of any row of reference: squared distance <= eps^2.
func CloseCleaner(eps float64) Cleaner {
	eps2 := eps * eps
	return func(pop, reference *Population) *Population {
		var kept [][]float64
		if reference != nil {
			for i := 0; i < reference.NumIndividuals(); i++ {
				kept = append(kept, reference.Genes.RawRowView(i))
			}
		}
		keep := make([]int, 0, pop.NumIndividuals())
		for i := 0; i < pop.NumIndividuals(); i++ {
			row := pop.Genes.RawRowView(i)
			isDup := false
			for _, other := range kept {
				d := floats.Distance(row, other, 2)
				if d*d <= eps2 {
					isDup = true
					break
				}
			}
			if isDup {
				continue
			}
			keep = append(keep, i)
			kept = append(kept, row)
		}
		return pop.Slice(keep)
	}
}
