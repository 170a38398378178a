package driver

// State represents a device's state
type State string

const (
	// StateClosed means that the device handle has been released.
	StateClosed State = "closed"
	// StateOpened means that the device handle is held and its formats and
	// controls may be queried, but it isn't capturing.
	StateOpened State = "opened"
	// StateRunning means that the device has been opened with a format and
	// is capturing frames.
	StateRunning State = "running"
)

// Update updates current state, s, to next. If f fails to execute,
// s will stay unchanged. Otherwise, s will be updated to next
func (s *State) Update(next State, f func() error) error {
	checks := map[State]func() error{
		StateOpened:  s.toOpened,
		StateClosed:  s.toClosed,
		StateRunning: s.toRunning,
	}

	if err := checks[next](); err != nil {
		return err
	}

	err := f()
	if err == nil {
		*s = next
	}
	return err
}

func (s *State) toOpened() error {
	if *s != StateClosed {
		return ErrAlreadyOpened
	}
	return nil
}

func (s *State) toClosed() error {
	return nil
}

func (s *State) toRunning() error {
	switch *s {
	case StateClosed:
		return ErrClosed
	case StateRunning:
		return ErrAlreadyOpened
	}
	return nil
}
