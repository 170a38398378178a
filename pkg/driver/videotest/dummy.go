// Package videotest provides a deterministic in-memory capture engine for
// testing.
package videotest

import (
	"fmt"
	"sync"

	"github.com/pion/omnicamera/pkg/driver"
	"github.com/pion/omnicamera/pkg/driver/availability"
)

// Label is the driver label used by Register.
const Label = "VideoTest"

// DeviceSpec describes a simulated device.
type DeviceSpec struct {
	Name        string
	Description string
	Misc        string
	Formats     []driver.RawFormat
	Controls    map[string]*Control
	// Unusable makes CheckCanOpen report false.
	Unusable bool
	// FrameDelay is the number of polls returning no frame after opening.
	FrameDelay int
	// Err is reported by Err once the device is opened.
	Err error
}

// DefaultDevice is a typical USB webcam.
func DefaultDevice() DeviceSpec {
	return DeviceSpec{
		Name:        "VideoTest",
		Description: "Simulated webcam",
		Misc:        "videotest:0",
		Formats: []driver.RawFormat{
			{Width: 640, Height: 480, FrameRate: 30, Tag: "yuyv"},
			{Width: 1280, Height: 720, FrameRate: 10, Tag: "yuyv"},
			{Width: 320, Height: 240, FrameRate: 30, Tag: "mjpeg"},
			{Width: 640, Height: 480, FrameRate: 30, Tag: "mjpeg"},
			{Width: 1280, Height: 720, FrameRate: 30, Tag: "mjpeg"},
			{Width: 1920, Height: 1080, FrameRate: 30, Tag: "mjpeg"},
		},
		Controls: map[string]*Control{
			"Brightness":   NewControl(-64, 65, 1, 0),
			"Contrast":     NewControl(0, 101, 1, 32),
			"WhiteBalance": NewControl(2800, 6501, 10, 4600),
		},
	}
}

// Engine is a driver.Engine over simulated devices.
type Engine struct {
	mu      sync.Mutex
	devices []DeviceSpec
	opened  map[int]*device
}

// New creates an engine serving devices, indexed by position.
func New(devices ...DeviceSpec) *Engine {
	return &Engine{
		devices: devices,
		opened:  make(map[int]*device),
	}
}

// Register registers an engine serving devices, or DefaultDevice if none
// is given, to the driver manager.
func Register(devices ...DeviceSpec) (*Engine, driver.Driver) {
	if len(devices) == 0 {
		devices = []DeviceSpec{DefaultDevice()}
	}
	e := New(devices...)
	return e, driver.GetManager().Register(e, driver.Info{Label: Label})
}

func (e *Engine) QueryDevices() ([]driver.DeviceInfo, error) {
	infos := make([]driver.DeviceInfo, len(e.devices))
	for i, d := range e.devices {
		infos[i] = driver.DeviceInfo{
			Index:       i,
			Name:        d.Name,
			Description: d.Description,
			Misc:        d.Misc,
		}
	}
	return infos, nil
}

func (e *Engine) CheckCanOpen(index int) bool {
	if index < 0 || index >= len(e.devices) {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	_, busy := e.opened[index]
	return !busy && !e.devices[index].Unusable
}

func (e *Engine) Device(index int) (driver.Adapter, error) {
	if index < 0 || index >= len(e.devices) {
		return nil, fmt.Errorf("videotest device %d: %w", index, availability.ErrNoDevice)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.opened[index]; busy {
		return nil, fmt.Errorf("videotest device %d: %w", index, availability.ErrBusy)
	}
	d := &device{engine: e, index: index, spec: e.devices[index]}
	e.opened[index] = d
	return d, nil
}

// Control returns the simulated control name of device index.
func (e *Engine) Control(index int, name string) *Control {
	return e.devices[index].Controls[name]
}

func (e *Engine) release(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.opened, index)
}

type device struct {
	engine *Engine
	index  int
	spec   DeviceSpec

	mu      sync.Mutex
	format  *driver.RawFormat
	polls   int
	pattern []byte
}

func (d *device) Formats() ([]driver.RawFormat, error) {
	return append([]driver.RawFormat(nil), d.spec.Formats...), nil
}

func (d *device) Controls() (map[string]driver.ControlHandle, error) {
	handles := make(map[string]driver.ControlHandle, len(d.spec.Controls))
	for name, c := range d.spec.Controls {
		handles[name] = c
	}
	return handles, nil
}

func (d *device) Open(f driver.RawFormat) error {
	supported := false
	for _, sf := range d.spec.Formats {
		if sf == f {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("videotest: unsupported format %+v", f)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.format = &f
	d.pattern = colorBars(int(f.Width), int(f.Height))
	return nil
}

func (d *device) PollFrame() (*driver.RawFrame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.format == nil {
		return nil, nil
	}
	d.polls++
	if d.polls <= d.spec.FrameDelay {
		return nil, nil
	}
	return &driver.RawFrame{
		Width:  int(d.format.Width),
		Height: int(d.format.Height),
		Pix:    append([]byte(nil), d.pattern...),
	}, nil
}

func (d *device) Err() error {
	return d.spec.Err
}

func (d *device) Close() error {
	d.engine.release(d.index)
	return nil
}

// colorBars renders the SMPTE-like bars as packed RGB.
func colorBars(width, height int) []byte {
	colors := [][3]byte{
		{192, 192, 192},
		{192, 192, 0},
		{0, 192, 192},
		{0, 192, 0},
		{192, 0, 192},
		{192, 0, 0},
		{0, 0, 192},
	}

	pix := make([]byte, 3*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := colors[x*len(colors)/width]
			i := 3 * (y*width + x)
			copy(pix[i:i+3], c[:])
		}
	}
	return pix
}
