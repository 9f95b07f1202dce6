package framework

import (
	"fmt"
	"runtime/debug"

	"gonum.org/v1/gonum/mat"

	"github.com/evolab-go/evolab/pkg/errs"
)

// FitnessFunc evaluates a whole population of genes at once, returning an
// (n, m) matrix. Treated as a black box: the core never introspects it.
type FitnessFunc func(genes *mat.Dense) (*mat.Dense, error)

// ConstraintFunc evaluates a whole population of genes at once, returning an
// (n, c) matrix of violation values (<=0 means satisfied), or nil if the
// problem has no constraints.
type ConstraintFunc func(genes *mat.Dense) (*mat.Dense, error)

// Evaluate invokes fitnessFn (and constraintFn, if non-nil) over genes and
// assembles the resulting Population, validating returned shapes against the
// declared numObjectives/numConstraints. Panics raised inside either
// callable are recovered and surfaced as *errs.EvaluationError.
func Evaluate(genes *mat.Dense, fitnessFn FitnessFunc, constraintFn ConstraintFunc, numObjectives, numConstraints int) (pop *Population, err error) {
	n, _ := genes.Dims()

	fitness, err := callFitness(fitnessFn, genes)
	if err != nil {
		return nil, err
	}
	if fr, fc := fitness.Dims(); fr != n || fc != numObjectives {
		return nil, &errs.ShapeError{Callable: "fitness", Want: [2]int{n, numObjectives}, Got: [2]int{fr, fc}}
	}

	var constraints *mat.Dense
	if constraintFn != nil {
		constraints, err = callConstraints(constraintFn, genes)
		if err != nil {
			return nil, err
		}
		if constraints != nil {
			if cr, cc := constraints.Dims(); cr != n || cc != numConstraints {
				return nil, &errs.ShapeError{Callable: "constraints", Want: [2]int{n, numConstraints}, Got: [2]int{cr, cc}}
			}
		}
	}

	return NewPopulation(genes, fitness, constraints), nil
}

func callFitness(fn FitnessFunc, genes *mat.Dense) (out *mat.Dense, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errs.EvaluationError{Callable: "fitness", Panic: r, Stack: string(debug.Stack())}
		}
	}()
	return fn(genes)
}

func callConstraints(fn ConstraintFunc, genes *mat.Dense) (out *mat.Dense, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errs.EvaluationError{Callable: "constraints", Panic: r, Stack: string(debug.Stack())}
		}
	}()
	return fn(genes)
}

// BoundsConstraint turns per-variable bounds into 2*numVars inequality
// constraints of the form lower-x<=0, x-upper<=0, per the spec's "bounds are
// auxiliary constraints, not clipping" design note.
func BoundsConstraint(bounds []Bounds) ConstraintFunc {
	numVars := len(bounds)
	return func(genes *mat.Dense) (*mat.Dense, error) {
		n, gc := genes.Dims()
		if gc != numVars {
			return nil, fmt.Errorf("bounds constraint: genes have %d vars, bounds declare %d", gc, numVars)
		}
		out := mat.NewDense(n, 2*numVars, nil)
		for i := 0; i < n; i++ {
			row := genes.RawRowView(i)
			for j, b := range bounds {
				out.Set(i, 2*j, b.L-row[j])
				out.Set(i, 2*j+1, row[j]-b.H)
			}
		}
		return out, nil
	}
}

// EqualityConstraint transforms h(x)=0 into |h(x)|-eps<=0, per the spec's
// equality-constraint design note. eps defaults to 1e-6 when <= 0.
func EqualityConstraint(h func(genes *mat.Dense) (*mat.Dense, error), eps float64) ConstraintFunc {
	if eps <= 0 {
		eps = 1e-6
	}
	return func(genes *mat.Dense) (*mat.Dense, error) {
		hv, err := h(genes)
		if err != nil {
			return nil, err
		}
		n, c := hv.Dims()
		out := mat.NewDense(n, c, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < c; j++ {
				v := hv.At(i, j)
				if v < 0 {
					v = -v
				}
				out.Set(i, j, v-eps)
			}
		}
		return out, nil
	}
}

// CombineConstraints concatenates the columns produced by each ConstraintFunc
// (skipping nil results) into a single (n, sum(c_k)) matrix. Returns nil if
// every function returns nil.
func CombineConstraints(fns ...ConstraintFunc) ConstraintFunc {
	live := make([]ConstraintFunc, 0, len(fns))
	for _, f := range fns {
		if f != nil {
			live = append(live, f)
		}
	}
	if len(live) == 0 {
		return nil
	}
	return func(genes *mat.Dense) (*mat.Dense, error) {
		n, _ := genes.Dims()
		parts := make([]*mat.Dense, 0, len(live))
		total := 0
		for _, f := range live {
			m, err := f(genes)
			if err != nil {
				return nil, err
			}
			if m == nil {
				continue
			}
			parts = append(parts, m)
			_, c := m.Dims()
			total += c
		}
		if total == 0 {
			return nil, nil
		}
		out := mat.NewDense(n, total, nil)
		col := 0
		for _, m := range parts {
			_, c := m.Dims()
			out.Slice(0, n, col, col+c).(*mat.Dense).Copy(m)
			col += c
		}
		return out, nil
	}
}
