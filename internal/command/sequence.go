package command

import "sync/atomic"

// Sequence hands out strictly increasing binding numbers. It is safe for
// concurrent use and never resets.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence creates a sequence whose first value is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next number in the sequence.
func (s *Sequence) Next() uint64 {
	return s.n.Add(1)
}

// Current returns the most recently issued number, or 0 if none was issued.
func (s *Sequence) Current() uint64 {
	return s.n.Load()
}

var shared = NewSequence()

// SharedSequence returns the process-wide sequence used by registries that are
// not given one explicitly.
func SharedSequence() *Sequence {
	return shared
}
