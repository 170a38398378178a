package videotest

import (
	"fmt"
	"sync"
)

// Control is a simulated device control. It records every value it is set
// to.
type Control struct {
	Start, Stop, Step int
	Default           int

	mu    sync.Mutex
	value int
	sets  []*int
}

// NewControl creates a control over start, start+step, ... < stop,
// currently set to def.
func NewControl(start, stop, step, def int) *Control {
	return &Control{Start: start, Stop: stop, Step: step, Default: def, value: def}
}

func (c *Control) Range() (int, int, int, error) {
	return c.Start, c.Stop, c.Step, nil
}

func (c *Control) Value() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, nil
}

// SetValue sets v, or Default if v is nil. Like real devices, it only
// rejects values outside of [Start, Stop).
func (c *Control) SetValue(v *int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var recorded *int
	if v != nil {
		if *v < c.Start || *v >= c.Stop {
			return fmt.Errorf("videotest: value %d outside [%d, %d)", *v, c.Start, c.Stop)
		}
		value := *v
		recorded = &value
		c.value = value
	} else {
		c.value = c.Default
	}
	c.sets = append(c.sets, recorded)
	return nil
}

// Sets returns every value passed to SetValue so far, nil for resets.
func (c *Control) Sets() []*int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*int(nil), c.sets...)
}
