package benchmarks

import "gonum.org/v1/gonum/mat"

// Knapsack is a binary multi-objective 0/1 knapsack problem: genes are
// treated as bit-valued (>0.5 means "included"), objectives are the negated
// total profit and quality (so minimization maximizes both), and a single
// constraint enforces the weight capacity.
type Knapsack struct {
	Profits  []float64
	Quality  []float64
	Weights  []float64
	Capacity float64
}

// NumItems is the number of decision variables.
func (k Knapsack) NumItems() int { return len(k.Profits) }

// Fitness evaluates (-totalProfit, -totalQuality) per row.
func (k Knapsack) Fitness(genes *mat.Dense) (*mat.Dense, error) {
	n, _ := genes.Dims()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		row := genes.RawRowView(i)
		profit, quality := 0.0, 0.0
		for j, v := range row {
			if v > 0.5 {
				profit += k.Profits[j]
				quality += k.Quality[j]
			}
		}
		out.Set(i, 0, -profit)
		out.Set(i, 1, -quality)
	}
	return out, nil
}

// Constraint returns totalWeight - capacity <= 0.
func (k Knapsack) Constraint(genes *mat.Dense) (*mat.Dense, error) {
	n, _ := genes.Dims()
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		row := genes.RawRowView(i)
		weight := 0.0
		for j, v := range row {
			if v > 0.5 {
				weight += k.Weights[j]
			}
		}
		out.Set(i, 0, weight-k.Capacity)
	}
	return out, nil
}
