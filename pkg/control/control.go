package control

import (
	"fmt"
	"math"

	"github.com/pion/omnicamera/pkg/driver"
)

// Control is a named, adjustable device setting. It holds no state of its
// own: range and value are read from the engine on every call.
type Control struct {
	name   string
	handle driver.ControlHandle
}

// New wraps an engine control handle.
func New(name string, handle driver.ControlHandle) *Control {
	return &Control{name: name, handle: handle}
}

// FromHandles wraps every handle of an engine control set.
func FromHandles(handles map[string]driver.ControlHandle) map[string]*Control {
	controls := make(map[string]*Control, len(handles))
	for name, h := range handles {
		controls[name] = New(name, h)
	}
	return controls
}

func (c *Control) Name() string {
	return c.name
}

// Range returns the range reported by the device.
func (c *Control) Range() (Range, error) {
	start, stop, step, err := c.handle.Range()
	if err != nil {
		return Range{}, fmt.Errorf("%s: %w", c.name, err)
	}
	r := Range{Start: start, Stop: stop, Step: step}
	if err := r.Validate(); err != nil {
		return Range{}, fmt.Errorf("%s: %w", c.name, err)
	}
	return r, nil
}

// Value returns the current raw value.
func (c *Control) Value() (int, error) {
	return c.handle.Value()
}

// SetValue sets v, which must be one of Range().Values().
func (c *Control) SetValue(v int) error {
	r, err := c.Range()
	if err != nil {
		return err
	}
	if !r.Contains(v) {
		return fmt.Errorf("%s: %w: %d not in %s", c.name, ErrValueOutOfRange, v, r)
	}
	return c.handle.SetValue(&v)
}

// Reset returns the control to its automatic or default value.
func (c *Control) Reset() error {
	return c.handle.SetValue(nil)
}

// SetFraction sets the value at index f * (n-1), rounded half to even,
// among the n values of the range. 0 selects the lowest value and 1 the
// highest.
func (c *Control) SetFraction(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return fmt.Errorf("%s: %w: %v", c.name, ErrFractionOutOfRange, f)
	}
	r, err := c.Range()
	if err != nil {
		return err
	}
	n := r.Len()
	if n == 0 {
		return fmt.Errorf("%s: %w", c.name, ErrEmptyRange)
	}
	v, err := r.At(int(math.RoundToEven(f * float64(n-1))))
	if err != nil {
		return err
	}
	return c.SetValue(v)
}

// Fraction reports the current value as a fraction of the range, clamped
// to [0, 1]. A single-valued range reports 0.
func (c *Control) Fraction() (float64, error) {
	r, err := c.Range()
	if err != nil {
		return 0, err
	}
	n := r.Len()
	if n == 0 {
		return 0, fmt.Errorf("%s: %w", c.name, ErrEmptyRange)
	}
	v, err := c.Value()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		return 0, nil
	}
	f := float64(v-r.First()) / float64(r.Step*(n-1))
	return math.Max(0, math.Min(1, f)), nil
}
