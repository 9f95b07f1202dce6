package numeric

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// FitPNorm estimates the exponent p of the Lp-norm curve sum(|x_j|^p) = 1
// that best fits the given normalized, non-dominated points, per AGE-MOEA's
// adaptive geometry estimate, by minimizing the sum over points of
// (sum(x_j^p) - 1)^2. Non-positive coordinates are left out of each point's
// sum.
//
// Grounded on the spec's requirement for a "1-D numerical fit"; gonum/optimize
// supplies the minimizer rather than a hand-rolled line search.
func FitPNorm(points [][]float64) float64 {
	residual := func(x []float64) float64 {
		p := x[0]
		if p <= 1e-6 {
			p = 1e-6
		}
		sum := 0.0
		for _, pt := range points {
			s := 0.0
			for _, v := range pt {
				if v <= 0 {
					continue
				}
				s += math.Pow(v, p)
			}
			d := s - 1
			sum += d * d
		}
		return sum
	}

	problem := optimize.Problem{Func: residual}
	result, err := optimize.Minimize(problem, []float64{2.0}, nil, &optimize.NelderMead{})
	if err != nil || result == nil || len(result.X) == 0 {
		return 2.0 // fall back to the Euclidean norm on numerical failure
	}
	p := result.X[0]
	if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return 2.0
	}
	return p
}

// PNorm computes the Lp-norm of a non-negative vector.
func PNorm(v []float64, p float64) float64 {
	sum := 0.0
	for _, x := range v {
		if x <= 0 {
			continue
		}
		sum += math.Pow(x, p)
	}
	return math.Pow(sum, 1/p)
}
