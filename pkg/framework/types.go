// Package framework holds the population data model (C1), the duplicate
// cleaner (C2), and the fitness/constraint adapter (C3) shared by every
// selection and survival operator in this module.
package framework

// Bounds is the inclusive [L, H] range of one decision variable. The driver
// turns a Bounds slice into an implicit pair of inequality constraints
// (lower-x<=0, x-upper<=0) rather than clamping genes directly — see
// BoundsConstraint.
type Bounds struct {
	L float64
	H float64
}

// UniformBounds returns numVars copies of the same [lo, hi] range.
func UniformBounds(numVars int, lo, hi float64) []Bounds {
	b := make([]Bounds, numVars)
	for i := range b {
		b[i] = Bounds{L: lo, H: hi}
	}
	return b
}
