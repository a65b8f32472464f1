// Package polytrace defines an injectable, no-op-by-default hook a caller
// can attach to a polyhedron to observe conversion and simplification
// steps without the core depending on any logging library.
package polytrace

// Hook receives a short event tag and a free-form detail string. The
// zero Hook is safe to call: every method is a no-op.
type Hook struct {
	onStep func(event string, detail string)
}

// New returns a Hook that invokes fn for every traced event. A nil fn
// yields a no-op hook identical to the zero value.
func New(fn func(event, detail string)) Hook {
	return Hook{onStep: fn}
}

// Step reports event with a free-form detail string. Safe to call on the
// zero Hook.
func (h Hook) Step(event, detail string) {
	if h.onStep == nil {
		return
	}
	h.onStep(event, detail)
}
