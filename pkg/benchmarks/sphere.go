package benchmarks

import "gonum.org/v1/gonum/mat"

// Sphere is the trivial single-objective Sigma(x_i^2) problem used by S6,
// represented internally as an (n,1) fitness matrix per the module's
// single-objective convention.
func Sphere(genes *mat.Dense) (*mat.Dense, error) {
	n, numVars := genes.Dims()
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		row := genes.RawRowView(i)
		sum := 0.0
		for j := 0; j < numVars; j++ {
			sum += row[j] * row[j]
		}
		out.Set(i, 0, sum)
	}
	return out, nil
}
