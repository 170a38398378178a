// Package control maps a device control's raw stepped integer range to a
// validated value set and to fractions in [0, 1].
package control

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStep is returned for ranges with a step that isn't positive.
	ErrInvalidStep = errors.New("control range step must be positive")
	// ErrValueOutOfRange is returned when setting a value outside of a
	// control's normalized range.
	ErrValueOutOfRange = errors.New("value out of range")
	// ErrFractionOutOfRange is returned when setting a fraction outside of [0, 1].
	ErrFractionOutOfRange = errors.New("fraction out of range")
	// ErrEmptyRange is returned when a control's normalized range has no values.
	ErrEmptyRange = errors.New("control range is empty")
)

// Range is a control range as reported by a device: start, start+step, ...
// below stop. Devices don't always report a start aligned to step, so
// the usable values are the normalized progression described by First.
type Range struct {
	Start, Stop, Step int
}

// Validate checks that r has a positive step.
func (r Range) Validate() error {
	if r.Step <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStep, r.Step)
	}
	return nil
}

// First returns the first normalized value: Start rounded down to a
// multiple of Step, then advanced by Step until it's above Start. An
// aligned Start is therefore never a value itself.
func (r Range) First() int {
	first := floorDiv(r.Start, r.Step) * r.Step
	for first <= r.Start {
		first += r.Step
	}
	return first
}

// Len returns the number of normalized values, or 0 for an invalid range.
func (r Range) Len() int {
	if r.Validate() != nil {
		return 0
	}
	first := r.First()
	if first >= r.Stop {
		return 0
	}
	return (r.Stop-first-1)/r.Step + 1
}

// At returns the i-th normalized value.
func (r Range) At(i int) (int, error) {
	if i < 0 || i >= r.Len() {
		return 0, fmt.Errorf("%w: index %d of %d", ErrValueOutOfRange, i, r.Len())
	}
	return r.First() + i*r.Step, nil
}

// Contains reports whether v is a normalized value.
func (r Range) Contains(v int) bool {
	if r.Len() == 0 {
		return false
	}
	first := r.First()
	return v >= first && v < r.Stop && (v-first)%r.Step == 0
}

// Values returns all normalized values in ascending order.
func (r Range) Values() []int {
	n := r.Len()
	values := make([]int, n)
	first := r.First()
	for i := range values {
		values[i] = first + i*r.Step
	}
	return values
}

func (r Range) String() string {
	return fmt.Sprintf("range(%d, %d, %d)", r.First(), r.Stop, r.Step)
}

// floorDiv divides rounding towards negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
