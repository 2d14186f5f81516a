// Package slot implements the single owner state holder behind every adapter.
package slot

// State is the position of a Slot in its life cycle.
type State uint8

const (
	// Empty slots were never filled or their content was taken.
	Empty State = iota
	// Holding slots own a value that accepts the next legal call.
	Holding
	// Produced slots hold a terminal result.
	Produced
	// Failed slots hold a terminal error.
	Failed
)

func (s State) String() string {
	switch s {
	case Holding:
		return "Holding"
	case Produced:
		return "Produced"
	case Failed:
		return "Failed"
	default:
		return "Empty"
	}
}

// Slot is a sum type over a held value H, a produced result P and an error.
// The zero value is Empty.
type Slot[H, P any] struct {
	state    State
	held     H
	produced P
	err      error
}

// New returns a slot that holds h.
func New[H, P any](h H) Slot[H, P] {
	return Slot[H, P]{state: Holding, held: h}
}

// State returns the current state.
func (s *Slot[H, P]) State() State {
	return s.state
}

// Terminal tells whether the slot is Produced or Failed.
func (s *Slot[H, P]) Terminal() bool {
	return s.state == Produced || s.state == Failed
}

// Take moves the held value out and leaves the slot Empty.
// It reports false and changes nothing if the slot was not Holding.
func (s *Slot[H, P]) Take() (held H, ok bool) {
	if s.state != Holding {
		return held, false
	}

	held = s.held
	s.reset()

	return held, true
}

// Peek returns the held value without changing the state.
func (s *Slot[H, P]) Peek() (held H, ok bool) {
	if s.state != Holding {
		return held, false
	}

	return s.held, true
}

// Hold stores h as the held value.
func (s *Slot[H, P]) Hold(h H) {
	s.reset()
	s.state, s.held = Holding, h
}

// Produce stores p as the terminal result.
func (s *Slot[H, P]) Produce(p P) {
	s.reset()
	s.state, s.produced = Produced, p
}

// Fail stores err as the terminal error.
func (s *Slot[H, P]) Fail(err error) {
	s.reset()
	s.state, s.err = Failed, err
}

// Value returns the produced result.
func (s *Slot[H, P]) Value() (produced P, ok bool) {
	if s.state != Produced {
		return produced, false
	}

	return s.produced, true
}

// TakeValue moves the produced result out and leaves the slot Empty.
func (s *Slot[H, P]) TakeValue() (produced P, ok bool) {
	if produced, ok = s.Value(); ok {
		s.reset()
	}

	return produced, ok
}

// Err returns the terminal error, or nil if the slot did not fail.
func (s *Slot[H, P]) Err() error {
	if s.state != Failed {
		return nil
	}

	return s.err
}

func (s *Slot[H, P]) reset() {
	var (
		held     H
		produced P
	)

	s.state, s.held, s.produced, s.err = Empty, held, produced, nil
}
