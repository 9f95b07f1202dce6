package numeric

import "gonum.org/v1/gonum/floats"

// PerpendicularDistance returns the distance from point to the ray from the
// origin through direction (both in normalized objective space), per
// NSGA-III's reference-point association step: project point onto the ray,
// then measure the residual.
func PerpendicularDistance(point, direction []float64) float64 {
	dirNorm2 := floats.Dot(direction, direction)
	if dirNorm2 == 0 {
		return floats.Norm(point, 2)
	}
	scale := floats.Dot(point, direction) / dirNorm2
	residual := make([]float64, len(point))
	copy(residual, direction)
	floats.Scale(scale, residual)
	floats.Sub(residual, point)
	return floats.Norm(residual, 2)
}

// AssociateToReferencePoints assigns each row of points to the index of its
// nearest reference direction (by perpendicular distance), returning the
// assignment and the associated distance for each row.
func AssociateToReferencePoints(points, refDirs [][]float64) (assignment []int, distance []float64) {
	assignment = make([]int, len(points))
	distance = make([]float64, len(points))
	for i, p := range points {
		best := -1
		bestDist := 0.0
		for r, dir := range refDirs {
			d := PerpendicularDistance(p, dir)
			if best == -1 || d < bestDist {
				best = r
				bestDist = d
			}
		}
		assignment[i] = best
		distance[i] = bestDist
	}
	return assignment, distance
}

// Normalize rescales each column of rows to [0, ideal-subtracted] / (nadir -
// ideal), guarding against a zero span per objective. degenerate lists the
// indices of every objective whose ideal-nadir range was zero (span
// substituted with 1), so callers with access to an errs.Emitter can raise a
// NumericWarning; degenerate is nil when every objective had a real range.
func Normalize(rows [][]float64, ideal, nadir []float64) (out [][]float64, degenerate []int) {
	out = make([][]float64, len(rows))
	m := len(ideal)
	span := make([]float64, m)
	for j := 0; j < m; j++ {
		span[j] = nadir[j] - ideal[j]
		if span[j] == 0 {
			span[j] = 1
			degenerate = append(degenerate, j)
		}
	}
	for i, row := range rows {
		out[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			out[i][j] = (row[j] - ideal[j]) / span[j]
		}
	}
	return out, degenerate
}
