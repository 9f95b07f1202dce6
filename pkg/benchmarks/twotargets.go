package benchmarks

import "gonum.org/v1/gonum/mat"

// TwoTargets minimizes (x1^2+x2^2, (x1-1)^2+x2^2): distance to the origin and
// to (1,0). The Pareto-optimal set lies on the segment x2=0, x1 in [0,1].
func TwoTargets(genes *mat.Dense) (*mat.Dense, error) {
	n, _ := genes.Dims()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		row := genes.RawRowView(i)
		x1, x2 := row[0], row[1]
		out.Set(i, 0, x1*x1+x2*x2)
		out.Set(i, 1, (x1-1)*(x1-1)+x2*x2)
	}
	return out, nil
}
