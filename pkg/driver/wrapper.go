package driver

import (
	"sync"

	"github.com/google/uuid"
)

func wrapEngine(e Engine, info Info) Driver {
	return &engineWrapper{
		Engine: e,
		id:     uuid.NewString(),
		info:   info,
	}
}

type engineWrapper struct {
	Engine
	id   string
	info Info
}

func (w *engineWrapper) ID() string {
	return w.id
}

func (w *engineWrapper) Info() Info {
	return w.info
}

func (w *engineWrapper) Device(index int) (Device, error) {
	a, err := w.Engine.Device(index)
	if err != nil {
		return nil, err
	}
	return &deviceWrapper{Adapter: a, state: StateOpened}, nil
}

type deviceWrapper struct {
	Adapter
	mu    sync.Mutex
	state State
}

func (w *deviceWrapper) Status() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *deviceWrapper) Formats() ([]RawFormat, error) {
	if w.Status() == StateClosed {
		return nil, ErrClosed
	}
	return w.Adapter.Formats()
}

func (w *deviceWrapper) Controls() (map[string]ControlHandle, error) {
	if w.Status() == StateClosed {
		return nil, ErrClosed
	}
	return w.Adapter.Controls()
}

func (w *deviceWrapper) Open(f RawFormat) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Update(StateRunning, func() error {
		return w.Adapter.Open(f)
	})
}

func (w *deviceWrapper) PollFrame() (*RawFrame, error) {
	switch w.Status() {
	case StateClosed:
		return nil, ErrClosed
	case StateOpened:
		return nil, ErrNotOpened
	}
	return w.Adapter.PollFrame()
}

func (w *deviceWrapper) Err() error {
	if w.Status() != StateRunning {
		return nil
	}
	return w.Adapter.Err()
}

func (w *deviceWrapper) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateClosed {
		return nil
	}
	return w.state.Update(StateClosed, w.Adapter.Close)
}
