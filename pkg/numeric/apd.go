package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AngleBetween returns the angle in radians between two vectors from the
// origin.
func AngleBetween(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	cos := floats.Dot(a, b) / (na * nb)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// PerVectorMinAngles returns, for every reference direction j, the smallest
// angle between v_j and any other direction in dirs (REVEA's γ_j, per §4.3.6
// step 2), rather than one scalar shared across the whole set.
func PerVectorMinAngles(dirs [][]float64) []float64 {
	gamma := make([]float64, len(dirs))
	for j := range dirs {
		min := math.Inf(1)
		for k := range dirs {
			if k == j {
				continue
			}
			if a := AngleBetween(dirs[j], dirs[k]); a < min {
				min = a
			}
		}
		if math.IsInf(min, 1) {
			min = math.Pi
		}
		gamma[j] = min
	}
	return gamma
}

// AnglePenalizedDistance is REVEA's APD: the Euclidean norm of point (in
// normalized objective space) inflated by a penalty proportional to how far
// point's angle to direction deviates relative to gammaJ (direction's own
// nearest-neighbor angle, §4.3.6 step 2), scaled by progress through the run
// (currentGen/maxGen) raised to alpha, and objective count.
func AnglePenalizedDistance(point, direction []float64, gammaJ float64, numObjectives int, currentGen, maxGen int, alpha float64) float64 {
	norm := floats.Norm(point, 2)
	if norm == 0 {
		return 0
	}
	angle := AngleBetween(point, direction)
	if gammaJ == 0 {
		gammaJ = math.Pi
	}
	progress := float64(currentGen) / float64(maxGen)
	penalty := float64(numObjectives) * math.Pow(progress, alpha) * (angle / gammaJ)
	return norm * (1 + penalty)
}
