package framework

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Population is the shared carrier every component operates on: a genes
// matrix plus the parallel attributes accumulated as a generation is
// evaluated and ranked. All parallel attributes share Population's leading
// dimension (NumIndividuals) once populated.
//
// Genes and Fitness are backed by *mat.Dense so that the frequent
// per-objective column passes in crowding distance, normalization, and
// reference-point association are strided views rather than fresh copies.
type Population struct {
	Genes       *mat.Dense // n x numVars
	Fitness     *mat.Dense // n x m (m=1 for single-objective)
	Constraints *mat.Dense // n x c, nil if the problem is unconstrained

	// ViolationTotals[i] = sum(max(0, Constraints.RawRowView(i))). Zero-valued
	// (not nil) when Constraints is nil, so every individual reads as feasible.
	ViolationTotals []float64

	// Rank[i] is the front index assigned by non-dominated sorting, or nil
	// before sorting has run.
	Rank []int

	// SurvivalScore[i] is the per-algorithm scalar used for intra-front
	// tie-breaking (crowding distance, reference-point proximity, SPEA-II
	// fitness, ...), or nil before a survival operator has run.
	SurvivalScore []float64
}

// NewPopulation builds a Population from genes and evaluated fitness,
// deriving ViolationTotals from constraints (which may be nil).
func NewPopulation(genes, fitness, constraints *mat.Dense) *Population {
	n, _ := genes.Dims()
	p := &Population{
		Genes:       genes,
		Fitness:     fitness,
		Constraints: constraints,
	}
	p.ViolationTotals = make([]float64, n)
	if constraints != nil {
		_, c := constraints.Dims()
		for i := 0; i < n; i++ {
			row := constraints.RawRowView(i)
			total := 0.0
			for j := 0; j < c; j++ {
				if row[j] > 0 {
					total += row[j]
				}
			}
			p.ViolationTotals[i] = total
		}
	}
	return p
}

// NumIndividuals returns n.
func (p *Population) NumIndividuals() int {
	if p == nil || p.Genes == nil {
		return 0
	}
	n, _ := p.Genes.Dims()
	return n
}

// NumVars returns num_vars.
func (p *Population) NumVars() int {
	_, c := p.Genes.Dims()
	return c
}

// NumObjectives returns m.
func (p *Population) NumObjectives() int {
	_, m := p.Fitness.Dims()
	return m
}

// Feasible reports whether individual i has zero total constraint violation.
func (p *Population) Feasible(i int) bool {
	return p.ViolationTotals[i] == 0
}

// HasRank reports whether non-dominated sorting has run.
func (p *Population) HasRank() bool { return p.Rank != nil }

// HasSurvivalScore reports whether a survival operator has scored this population.
func (p *Population) HasSurvivalScore() bool { return p.SurvivalScore != nil }

// Individual is a zero-copy logical row of a Population.
type Individual struct {
	Index       int // original row index into the owning Population
	Genes       []float64
	Fitness     []float64
	Constraints []float64 // nil if the population is unconstrained
	Violation   float64
	Rank        int
	HasRank     bool
	Score       float64
	HasScore    bool
}

// Individual returns a view of row i.
func (p *Population) Individual(i int) Individual {
	ind := Individual{
		Index:     i,
		Genes:     p.Genes.RawRowView(i),
		Fitness:   p.Fitness.RawRowView(i),
		Violation: p.ViolationTotals[i],
	}
	if p.Constraints != nil {
		ind.Constraints = p.Constraints.RawRowView(i)
	}
	if p.Rank != nil {
		ind.Rank = p.Rank[i]
		ind.HasRank = true
	}
	if p.SurvivalScore != nil {
		ind.Score = p.SurvivalScore[i]
		ind.HasScore = true
	}
	return ind
}

// Slice gathers the given rows (by original index) into a fresh Population,
// preserving Rank/SurvivalScore when present. Row order follows indices.
// An empty indices slice yields an empty Population (nil matrices,
// NumIndividuals() == 0).
func (p *Population) Slice(indices []int) *Population {
	n := len(indices)
	if n == 0 {
		return &Population{ViolationTotals: []float64{}}
	}
	numVars := p.NumVars()
	numObj := p.NumObjectives()

	genes := mat.NewDense(n, numVars, nil)
	fitness := mat.NewDense(n, numObj, nil)
	var constraints *mat.Dense
	if p.Constraints != nil {
		_, c := p.Constraints.Dims()
		constraints = mat.NewDense(n, c, nil)
	}

	violations := make([]float64, n)
	var rank []int
	if p.Rank != nil {
		rank = make([]int, n)
	}
	var score []float64
	if p.SurvivalScore != nil {
		score = make([]float64, n)
	}

	for dst, src := range indices {
		genes.SetRow(dst, p.Genes.RawRowView(src))
		fitness.SetRow(dst, p.Fitness.RawRowView(src))
		if constraints != nil {
			constraints.SetRow(dst, p.Constraints.RawRowView(src))
		}
		violations[dst] = p.ViolationTotals[src]
		if rank != nil {
			rank[dst] = p.Rank[src]
		}
		if score != nil {
			score[dst] = p.SurvivalScore[src]
		}
	}

	return &Population{
		Genes:           genes,
		Fitness:         fitness,
		Constraints:     constraints,
		ViolationTotals: violations,
		Rank:            rank,
		SurvivalScore:   score,
	}
}

// Concat appends other after p, returning a fresh Population. Both
// populations must share numVars, numObjectives, and constraint
// dimensionality (or both be unconstrained).
func Concat(populations ...*Population) *Population {
	total := 0
	for _, p := range populations {
		total += p.NumIndividuals()
	}
	indices := make([]int, 0, total)
	// Slice only supports one source population, so build the concatenation
	// by hand instead of delegating to it.
	first := populations[0]
	numVars := first.NumVars()
	numObj := first.NumObjectives()
	hasConstraints := first.Constraints != nil
	numConstraints := 0
	if hasConstraints {
		_, numConstraints = first.Constraints.Dims()
	}

	genes := mat.NewDense(total, numVars, nil)
	fitness := mat.NewDense(total, numObj, nil)
	var constraints *mat.Dense
	if hasConstraints {
		constraints = mat.NewDense(total, numConstraints, nil)
	}
	violations := make([]float64, 0, total)

	row := 0
	for _, p := range populations {
		n := p.NumIndividuals()
		for i := 0; i < n; i++ {
			genes.SetRow(row, p.Genes.RawRowView(i))
			fitness.SetRow(row, p.Fitness.RawRowView(i))
			if constraints != nil && p.Constraints != nil {
				constraints.SetRow(row, p.Constraints.RawRowView(i))
			}
			violations = append(violations, p.ViolationTotals[i])
			indices = append(indices, row)
			row++
		}
	}

	return &Population{
		Genes:           genes,
		Fitness:         fitness,
		Constraints:     constraints,
		ViolationTotals: violations,
	}
}

// Best returns every rank-0 individual, restricted to feasible individuals
// when the population carries constraints. Requires Rank to be populated.
func (p *Population) Best() *Population {
	indices := make([]int, 0)
	for i := 0; i < p.NumIndividuals(); i++ {
		if p.Rank != nil && p.Rank[i] != 0 {
			continue
		}
		if p.Constraints != nil && !p.Feasible(i) {
			continue
		}
		indices = append(indices, i)
	}
	return p.Slice(indices)
}

// Objective returns column m (the m-th objective) across the whole
// population as a fresh slice.
func (p *Population) Objective(m int) []float64 {
	n := p.NumIndividuals()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = p.Fitness.At(i, m)
	}
	return out
}

// Ideal returns the componentwise minimum fitness across indices (the whole
// population if indices is nil).
func (p *Population) Ideal(indices []int) []float64 {
	m := p.NumObjectives()
	ideal := make([]float64, m)
	for j := range ideal {
		ideal[j] = math.Inf(1)
	}
	iter := indices
	if iter == nil {
		iter = allIndices(p.NumIndividuals())
	}
	for _, i := range iter {
		row := p.Fitness.RawRowView(i)
		for j := 0; j < m; j++ {
			if row[j] < ideal[j] {
				ideal[j] = row[j]
			}
		}
	}
	return ideal
}

// Nadir returns the componentwise maximum fitness across indices (the whole
// population if indices is nil). Used as a cheap nadir estimate; NSGA-III's
// hyperplane-intercept estimator is not required by this spec.
func (p *Population) Nadir(indices []int) []float64 {
	m := p.NumObjectives()
	nadir := make([]float64, m)
	for j := range nadir {
		nadir[j] = math.Inf(-1)
	}
	iter := indices
	if iter == nil {
		iter = allIndices(p.NumIndividuals())
	}
	for _, i := range iter {
		row := p.Fitness.RawRowView(i)
		for j := 0; j < m; j++ {
			if row[j] > nadir[j] {
				nadir[j] = row[j]
			}
		}
	}
	return nadir
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Front is a contiguous subset of a Population sharing one rank value. It
// borrows the parent Population rather than copying rows, per the
// front-ownership design note: sorting stays allocation-light, and only the
// final survival step materializes a fresh Population.
type Front struct {
	Indices []int // original indices into Pop
	Pop     *Population
}

// Len is the number of members in the front.
func (f Front) Len() int { return len(f.Indices) }

// Individual returns the local-index-th member's view.
func (f Front) Individual(local int) Individual {
	return f.Pop.Individual(f.Indices[local])
}

// Objective returns objective m across the front, in front order.
func (f Front) Objective(m int) []float64 {
	out := make([]float64, len(f.Indices))
	for i, idx := range f.Indices {
		out[i] = f.Pop.Fitness.At(idx, m)
	}
	return out
}
