package errs

import "k8s.io/klog/v2"

// Emitter delivers non-fatal warnings raised during a run. driver.Run defaults
// to KlogEmitter; callers may inject their own to route warnings elsewhere
// (a metrics counter, a test assertion channel, and so on).
type Emitter interface {
	EmptyPopulation(w *EmptyPopulationWarning)
	Numeric(w *NumericWarning)
}

// KlogEmitter routes warnings through klog at V(2), matching the
// verbosity-gated logging convention the rest of this codebase's plugins use
// instead of unconditional stdout writes.
type KlogEmitter struct{}

func (KlogEmitter) EmptyPopulation(w *EmptyPopulationWarning) {
	klog.V(2).InfoS("population shrank below target size",
		"generation", w.Generation, "have", w.Have, "want", w.Want)
}

func (KlogEmitter) Numeric(w *NumericWarning) {
	klog.V(2).InfoS("degenerate numeric case", "where", w.Where, "detail", w.Detail)
}

// DefaultEmitter is used by driver.Run when no Emitter is configured.
func DefaultEmitter() Emitter { return KlogEmitter{} }
