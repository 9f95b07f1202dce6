package numeric

import (
	"fmt"

	cache "github.com/patrickmn/go-cache"
)

// refCache memoizes Das-and-Dennis reference point sets, which are pure
// functions of (numObjectives, divisions) and can be reused across many
// generations of the same run and across runs with identical algorithm
// configuration.
var refCache = cache.New(cache.NoExpiration, cache.NoExpiration)

// DasDennisReferencePoints generates the structured reference point set used
// by NSGA-III and REVEA: every point on the (numObjectives-1)-simplex whose
// coordinates are multiples of 1/divisions and sum to 1.
func DasDennisReferencePoints(numObjectives, divisions int) [][]float64 {
	key := fmt.Sprintf("%d/%d", numObjectives, divisions)
	if cached, ok := refCache.Get(key); ok {
		return cloneRows(cached.([][]float64))
	}

	var points [][]float64
	point := make([]float64, numObjectives)
	var recurse func(dim, remaining int)
	recurse = func(dim, remaining int) {
		if dim == numObjectives-1 {
			point[dim] = float64(remaining) / float64(divisions)
			row := make([]float64, numObjectives)
			copy(row, point)
			points = append(points, row)
			return
		}
		for i := 0; i <= remaining; i++ {
			point[dim] = float64(i) / float64(divisions)
			recurse(dim+1, remaining-i)
		}
	}
	recurse(0, divisions)

	refCache.Set(key, points, cache.NoExpiration)
	return cloneRows(points)
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}
	return out
}
