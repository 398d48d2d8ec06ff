// Package workflow holds the per-resource-family orchestrators: each one
// wraps the gateway methods for its family, owns the create-vs-update
// decision, and refetches the list after every successful mutation
// instead of trusting local state.
package workflow

import "errors"

var (
	// ErrSubmitInFlight gates the single-in-flight-mutation invariant:
	// a second submit for the same family is rejected until the first
	// one resolves.
	ErrSubmitInFlight = errors.New("a submit is already in flight")
	// ErrNotComposing means submit was invoked with no open form.
	ErrNotComposing = errors.New("nothing is being composed")
)

type phase int

const (
	phaseIdle phase = iota
	phaseComposing
	phaseSubmitting
)

// editor is the editing state for one resource family: at most one
// editing target at a time, never persisted. An empty target means the
// next submit creates; a set target means it updates that record.
//
// gen increments whenever the state is superseded (new compose, cancel,
// finished submit); in-flight results carrying an older gen are
// discarded instead of being applied to state they no longer belong to.
type editor struct {
	phase  phase
	target string
	gen    uint64
}

func (e *editor) startCompose(target string) uint64 {
	e.phase = phaseComposing
	e.target = target
	e.gen++
	return e.gen
}

func (e *editor) cancel() {
	e.phase = phaseIdle
	e.target = ""
	e.gen++
}

func (e *editor) beginSubmit() (uint64, error) {
	switch e.phase {
	case phaseSubmitting:
		return 0, ErrSubmitInFlight
	case phaseComposing:
		e.phase = phaseSubmitting
		return e.gen, nil
	default:
		return 0, ErrNotComposing
	}
}

// failSubmit returns to Composing with the target untouched so the user
// can correct the fields and retry.
func (e *editor) failSubmit() {
	if e.phase == phaseSubmitting {
		e.phase = phaseComposing
	}
}

func (e *editor) finishSubmit() {
	e.phase = phaseIdle
	e.target = ""
	e.gen++
}

func (e *editor) isCurrent(gen uint64) bool {
	return e.gen == gen
}

// editing reports the current target; creating is target == "".
func (e *editor) editing() string {
	return e.target
}
