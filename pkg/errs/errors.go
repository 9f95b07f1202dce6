// Package errs holds the typed error taxonomy shared by the evolutionary
// driver, the configuration builders, and the numerical primitives.
package errs

import (
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// ConfigurationError wraps every validation failure a builder found before
// the run started. Use errors.Is(err, ErrConfiguration) to test for it.
type ConfigurationError struct {
	Agg utilerrors.Aggregate
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Agg.Error())
}

func (e *ConfigurationError) Unwrap() error { return errConfiguration }

func (e *ConfigurationError) Errors() []error { return e.Agg.Errors() }

var errConfiguration = fmt.Errorf("configuration error")

// ErrConfiguration is the sentinel matched by errors.Is on any *ConfigurationError.
var ErrConfiguration = errConfiguration

// NewConfigurationError aggregates one or more validation failures into a
// single ConfigurationError. Returns nil if violations is empty.
func NewConfigurationError(violations ...error) error {
	agg := utilerrors.NewAggregate(violations)
	if agg == nil {
		return nil
	}
	return &ConfigurationError{Agg: agg}
}

// ShapeError reports a user callable returning an array of the wrong shape.
type ShapeError struct {
	Callable string
	Want     [2]int
	Got      [2]int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s returned shape (%d,%d), want (%d,%d)",
		e.Callable, e.Got[0], e.Got[1], e.Want[0], e.Want[1])
}

func (e *ShapeError) Unwrap() error { return errShape }

var errShape = fmt.Errorf("shape error")

// ErrShape is the sentinel matched by errors.Is on any *ShapeError.
var ErrShape = errShape

// EvaluationError wraps a panic recovered at a user-callable boundary.
type EvaluationError struct {
	Callable string
	Panic    any
	Stack    string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("panic evaluating %s: %v", e.Callable, e.Panic)
}

func (e *EvaluationError) Unwrap() error { return errEvaluation }

var errEvaluation = fmt.Errorf("evaluation error")

// ErrEvaluation is the sentinel matched by errors.Is on any *EvaluationError.
var ErrEvaluation = errEvaluation

// EmptyPopulationWarning is emitted (never returned as an error) when
// duplicate cleaning or keep_infeasible=false leaves fewer than mu survivors.
type EmptyPopulationWarning struct {
	Generation int
	Have       int
	Want       int
}

func (w *EmptyPopulationWarning) String() string {
	return fmt.Sprintf("generation %d: population shrank to %d (want %d), padding by cyclic sampling",
		w.Generation, w.Have, w.Want)
}

// NumericWarning is emitted on degenerate numerical cases (zero ideal-nadir
// range, every accepted individual in a single niche, and similar). The affected metric contributes zero
// for the individuals it covers; the run continues.
type NumericWarning struct {
	Where  string
	Detail string
}

func (w *NumericWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Where, w.Detail)
}
