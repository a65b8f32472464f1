package watchdog

import "sync/atomic"

// AbandonToken is a cell whose only meaningful transition is ∅ → set,
// read without locking by the conversion engine and written once by a
// watchdog handler. It replaces polling a raw volatile flag on every
// outer iteration with a single atomic load.
//
// The client, not the engine, is responsible for clearing the token
// before reuse; Poll never clears it.
type AbandonToken struct {
	v atomic.Pointer[error] // points at the stored error once set
}

// Set stores err into the token if it is not already set; subsequent Set
// calls after the first are no-ops, since only the ∅ → set transition is
// meaningful.
func (t *AbandonToken) Set(err error) {
	if err == nil {
		return
	}
	t.v.CompareAndSwap(nil, &err)
}

// Poll returns the stored error, or nil if the token has not been set.
// The conversion engine calls this before each scalar-product
// computation, on each source row, and after each Case B pair-generation
// step.
func (t *AbandonToken) Poll() error {
	p := t.v.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Clear resets the token to its unset state. Callers must do this
// themselves before reusing a token; the engine never clears it.
func (t *AbandonToken) Clear() {
	t.v.Store(nil)
}

// IsSet reports whether the token currently carries an abandon error.
func (t *AbandonToken) IsSet() bool {
	return t.Poll() != nil
}
