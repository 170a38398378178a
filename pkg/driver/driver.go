package driver

// DeviceInfo describes a device as reported by a capture engine.
type DeviceInfo struct {
	Index       int
	Name        string
	Description string
	Misc        string
}

// RawFormat is a capture mode as reported by a capture engine. Tag is the
// engine's encoding tag, e.g. "mjpeg".
type RawFormat struct {
	Width     uint
	Height    uint
	FrameRate uint
	Tag       string
}

// RawFrame is a captured frame as packed 8-bit RGB.
type RawFrame struct {
	Width  int
	Height int
	Pix    []byte
}

// ControlHandle is an engine-owned, adjustable device setting.
type ControlHandle interface {
	// Range reports the raw stepped range: start, start+step, ... < stop.
	Range() (start, stop, step int, err error)
	Value() (int, error)
	// SetValue forwards v to the device. A nil v resets the control to
	// its automatic or default value.
	SetValue(v *int) error
}

// Adapter is the per-device part of a capture engine.
type Adapter interface {
	Formats() ([]RawFormat, error)
	Controls() (map[string]ControlHandle, error)
	// Open starts capturing with f.
	Open(f RawFormat) error
	// PollFrame returns the latest frame, or nil if none arrived yet.
	// It never blocks.
	PollFrame() (*RawFrame, error)
	// Err reports a pending asynchronous capture error.
	Err() error
	Close() error
}

// Engine is a capture backend able to enumerate and open devices.
type Engine interface {
	QueryDevices() ([]DeviceInfo, error)
	CheckCanOpen(index int) bool
	Device(index int) (Adapter, error)
}

// Device is an Adapter guarded by a State.
type Device interface {
	Adapter
	Status() State
}

type Info struct {
	Label string
}

// Driver is a registered Engine.
type Driver interface {
	ID() string
	Info() Info
	QueryDevices() ([]DeviceInfo, error)
	CheckCanOpen(index int) bool
	Device(index int) (Device, error)
}
