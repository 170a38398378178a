package omnicamera

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/pion/logging"
	omnilog "github.com/pion/omnicamera/internal/logging"
	"github.com/pion/omnicamera/pkg/control"
	"github.com/pion/omnicamera/pkg/driver"
	"github.com/pion/omnicamera/pkg/frame"
	"github.com/pion/omnicamera/pkg/prop"
)

var errNoDriver = errors.New("camera info doesn't come from Query")

// Camera is a device handle. Formats and controls can be queried right
// away; capture starts with Open, or with the first poll.
type Camera struct {
	info    CameraInfo
	options CameraOptions
	device  driver.Device
	log     logging.LeveledLogger

	mu     sync.Mutex
	format *prop.Format
}

// NewCamera acquires the camera described by info.
func NewCamera(info CameraInfo, opts ...CameraOption) (*Camera, error) {
	if info.driver == nil {
		return nil, errNoDriver
	}

	var o CameraOptions
	for _, opt := range opts {
		opt(&o)
	}

	device, err := info.driver.Device(info.Index)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", info.Name, err)
	}

	return &Camera{
		info:    info,
		options: o,
		device:  device,
		log:     omnilog.NewLogger("omnicamera"),
	}, nil
}

// Info returns the info the camera was created from.
func (c *Camera) Info() CameraInfo {
	return c.info
}

// Formats returns every format the camera supports.
func (c *Camera) Formats() (prop.Formats, error) {
	raws, err := c.device.Formats()
	if err != nil {
		return nil, err
	}
	return prop.NewFormats(raws)
}

// Controls returns the camera's controls by name. Cameras differ in which
// controls they support.
func (c *Camera) Controls() (map[string]*control.Control, error) {
	handles, err := c.device.Controls()
	if err != nil {
		return nil, err
	}
	return control.FromHandles(handles), nil
}

// Resolve returns the format Open(nil) selects.
func (c *Camera) Resolve() (prop.Format, error) {
	fs, err := c.Formats()
	if err != nil {
		return prop.Format{}, err
	}
	return c.options.resolve(fs)
}

// Open starts capturing with f. A nil f selects a format with the camera's
// options, prop.DefaultPreferences unless told otherwise. A camera can
// only be opened once.
func (c *Camera) Open(f *prop.Format) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open(f)
}

func (c *Camera) open(f *prop.Format) error {
	if c.format != nil {
		return driver.ErrAlreadyOpened
	}

	if f == nil {
		resolved, err := c.Resolve()
		if err != nil {
			return err
		}
		f = &resolved
	}

	if err := c.device.Open(f.Raw()); err != nil {
		return err
	}
	c.log.Debugf("%s: opened with %s", c.info.Name, f)

	selected := *f
	c.format = &selected
	return nil
}

// Format returns the format the camera was opened with.
func (c *Camera) Format() (prop.Format, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.format == nil {
		return prop.Format{}, false
	}
	return *c.format, true
}

// Describe returns a human readable summary of the selected format.
func (c *Camera) Describe() string {
	f, ok := c.Format()
	if !ok {
		return "No format selected"
	}
	return fmt.Sprintf("Selected format: %s", f)
}

// PollFrame returns the latest frame as packed RGB, opening the camera
// first if needed. It never blocks and returns nil if no frame was
// received yet.
func (c *Camera) PollFrame() (*driver.RawFrame, error) {
	c.mu.Lock()
	if c.format == nil {
		if err := c.open(nil); err != nil {
			c.mu.Unlock()
			return nil, err
		}
	}
	c.mu.Unlock()

	if err := c.device.Err(); err != nil {
		return nil, err
	}
	return c.device.PollFrame()
}

// PollImage is like PollFrame, returning an image.
func (c *Camera) PollImage() (*image.RGBA, error) {
	fr, err := c.PollFrame()
	if err != nil || fr == nil {
		return nil, err
	}
	return frame.RGBA(fr.Pix, fr.Width, fr.Height)
}

// Close releases the camera.
func (c *Camera) Close() error {
	return c.device.Close()
}
