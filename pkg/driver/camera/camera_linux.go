package camera

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/blackjack/webcam"
	"github.com/pion/logging"
	omnilog "github.com/pion/omnicamera/internal/logging"
	"github.com/pion/omnicamera/pkg/driver"
	"github.com/pion/omnicamera/pkg/driver/availability"
	"github.com/pion/omnicamera/pkg/frame"
)

const (
	// waitTimeout is in seconds and bounds how long Close waits for the
	// capture loop.
	waitTimeout = 1
	bufferCount = 4
	sysfsRoot   = "/sys/class/video4linux"
)

var errEmptyFormats = errors.New("device reports no supported capture format")

func fourcc(s string) webcam.PixelFormat {
	return webcam.PixelFormat(uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24)
}

var (
	formats = map[webcam.PixelFormat]frame.Format{
		fourcc("YUYV"): frame.FormatYUYV,
		fourcc("MJPG"): frame.FormatMJPEG,
		fourcc("JPEG"): frame.FormatMJPEG,
	}
	reversedFormats = map[frame.Format]webcam.PixelFormat{
		frame.FormatYUYV:  fourcc("YUYV"),
		frame.FormatMJPEG: fourcc("MJPG"),
	}
)

func init() {
	e := newEngine("/dev/v4l/by-path/*", "/dev/video*")
	driver.GetManager().Register(e, driver.Info{Label: Label})
}

type devicePath struct {
	path  string
	label string
}

// engine implements driver.Engine using v4l2
// Reference: https://linuxtv.org/downloads/v4l-dvb-apis/uapi/v4l/videodev.html#videodev
type engine struct {
	patterns []string
	sysfs    string
	log      logging.LeveledLogger

	mu      sync.Mutex
	devices []devicePath
}

func newEngine(patterns ...string) *engine {
	return &engine{
		patterns: patterns,
		sysfs:    sysfsRoot,
		log:      omnilog.NewLogger("camera"),
	}
}

// discover globs every pattern in order. A device reached through several
// paths is listed once, labelled with all of its names.
func discover(patterns ...string) []devicePath {
	var devices []devicePath
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, p := range paths {
			real, err := filepath.EvalSymlinks(p)
			if err != nil {
				continue
			}
			if _, ok := seen[real]; ok {
				continue
			}
			seen[real] = struct{}{}

			devices = append(devices, devicePath{
				path:  p,
				label: filepath.Base(p) + LabelSeparator + filepath.Base(real),
			})
		}
	}
	return devices
}

// deviceName reads the driver reported name from sysfs.
func deviceName(sysfs string, d devicePath) string {
	base := d.label[strings.LastIndex(d.label, LabelSeparator)+1:]
	name, err := os.ReadFile(filepath.Join(sysfs, base, "name"))
	if err != nil {
		return base
	}
	return string(bytes.TrimSpace(name))
}

func (e *engine) QueryDevices() ([]driver.DeviceInfo, error) {
	devices := discover(e.patterns...)

	e.mu.Lock()
	e.devices = devices
	e.mu.Unlock()

	infos := make([]driver.DeviceInfo, len(devices))
	for i, d := range devices {
		infos[i] = driver.DeviceInfo{
			Index:       i,
			Name:        deviceName(e.sysfs, d),
			Description: d.label,
			Misc:        d.path,
		}
	}
	e.log.Debugf("found %d v4l2 devices", len(infos))
	return infos, nil
}

func (e *engine) devicePath(index int) (devicePath, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.devices == nil {
		e.devices = discover(e.patterns...)
	}
	if index < 0 || index >= len(e.devices) {
		return devicePath{}, fmt.Errorf("v4l2 device %d: %w", index, availability.ErrNoDevice)
	}
	return e.devices[index], nil
}

func (e *engine) CheckCanOpen(index int) bool {
	a, err := e.Device(index)
	if err != nil {
		e.log.Debugf("v4l2 device %d can't be opened: %v", index, err)
		return false
	}
	defer a.Close()

	fs, err := a.Formats()
	return err == nil && len(fs) > 0
}

func (e *engine) Device(index int) (driver.Adapter, error) {
	d, err := e.devicePath(index)
	if err != nil {
		return nil, err
	}
	cam, err := webcam.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.path, availability.Classify(err))
	}
	return &camera{path: d.path, cam: cam, log: e.log}, nil
}

type camera struct {
	path string
	cam  *webcam.Webcam
	log  logging.LeveledLogger

	defaults map[webcam.ControlID]int32

	cancel func()
	wg     sync.WaitGroup

	mu     sync.Mutex
	latest *driver.RawFrame
	err    error
}

func (c *camera) Formats() ([]driver.RawFormat, error) {
	var raws []driver.RawFormat
	seen := make(map[driver.RawFormat]struct{})
	for pf := range c.cam.GetSupportedFormats() {
		ff, ok := formats[pf]
		if !ok {
			continue
		}
		for _, size := range c.cam.GetSupportedFrameSizes(pf) {
			for _, rate := range c.cam.GetSupportedFramerates(pf, size.MaxWidth, size.MaxHeight) {
				fps := frameRate(rate.MinNumerator, rate.MinDenominator)
				if fps == 0 {
					continue
				}
				raw := driver.RawFormat{
					Width:     uint(size.MaxWidth),
					Height:    uint(size.MaxHeight),
					FrameRate: fps,
					Tag:       ff.Tag(),
				}
				if _, dup := seen[raw]; !dup {
					seen[raw] = struct{}{}
					raws = append(raws, raw)
				}
			}
		}
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("%s: %w", c.path, errEmptyFormats)
	}
	sortFormats(raws)
	return raws, nil
}

// frameRate converts the shortest frame interval, numerator / denominator
// seconds, to whole frames per second.
func frameRate(numerator, denominator uint32) uint {
	if numerator == 0 {
		return 0
	}
	return uint((denominator + numerator/2) / numerator)
}

func sortFormats(raws []driver.RawFormat) {
	sort.SliceStable(raws, func(i, j int) bool {
		a, b := raws[i], raws[j]
		switch {
		case a.Tag != b.Tag:
			return a.Tag < b.Tag
		case a.Width != b.Width:
			return a.Width < b.Width
		case a.Height != b.Height:
			return a.Height < b.Height
		default:
			return a.FrameRate < b.FrameRate
		}
	})
}

func (c *camera) Controls() (map[string]driver.ControlHandle, error) {
	controls := c.cam.GetControls()
	if c.defaults == nil {
		c.defaults = make(map[webcam.ControlID]int32, len(controls))
		for id := range controls {
			if v, err := c.cam.GetControl(id); err == nil {
				c.defaults[id] = v
			}
		}
	}

	handles := make(map[string]driver.ControlHandle, len(controls))
	for id, ctrl := range controls {
		def, ok := c.defaults[id]
		if !ok {
			def = ctrl.Min
		}
		handles[ctrl.Name] = &controlHandle{
			cam:  c.cam,
			id:   id,
			ctrl: ctrl,
			def:  def,
		}
	}
	return handles, nil
}

// controlHandle resets to the value the control had when first listed,
// since that is the device default as far as we can tell.
type controlHandle struct {
	cam  *webcam.Webcam
	id   webcam.ControlID
	ctrl webcam.Control
	def  int32
}

// Range reports the inclusive V4L2 maximum as an exclusive stop. The
// control step isn't exposed by the webcam package, so every integer is
// reported as settable and the driver rounds as it sees fit.
func (h *controlHandle) Range() (int, int, int, error) {
	return int(h.ctrl.Min), int(h.ctrl.Max) + 1, 1, nil
}

func (h *controlHandle) Value() (int, error) {
	v, err := h.cam.GetControl(h.id)
	return int(v), err
}

func (h *controlHandle) SetValue(v *int) error {
	if v == nil {
		return h.cam.SetControl(h.id, h.def)
	}
	return h.cam.SetControl(h.id, int32(*v))
}

func (c *camera) Open(f driver.RawFormat) error {
	ff, err := frame.ParseTag(f.Tag)
	if err != nil {
		return err
	}
	decoder, err := frame.NewDecoder(ff)
	if err != nil {
		return err
	}

	pf := reversedFormats[ff]
	_, w, h, err := c.cam.SetImageFormat(pf, uint32(f.Width), uint32(f.Height))
	if err != nil {
		return fmt.Errorf("%s: set format %dx%d: %w", c.path, f.Width, f.Height, err)
	}
	if uint(w) != f.Width || uint(h) != f.Height {
		return fmt.Errorf("%s: device selected %dx%d instead of %dx%d", c.path, w, h, f.Width, f.Height)
	}
	if err := c.cam.SetFramerate(float32(f.FrameRate)); err != nil {
		c.log.Warnf("%s: failed to set %d fps: %v", c.path, f.FrameRate, err)
	}
	if err := c.cam.SetBufferCount(bufferCount); err != nil {
		c.log.Debugf("%s: failed to set buffer count: %v", c.path, err)
	}
	if err := c.cam.StartStreaming(); err != nil {
		return fmt.Errorf("%s: start streaming: %w", c.path, availability.Classify(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.capture(ctx, decoder, int(w), int(h))
	}()
	return nil
}

// capture keeps the latest decoded frame until ctx is done or the device
// fails.
func (c *camera) capture(ctx context.Context, decoder frame.Decoder, width, height int) {
	var buf []byte
	for ctx.Err() == nil {
		err := c.cam.WaitForFrame(waitTimeout)
		switch err.(type) {
		case nil:
		case *webcam.Timeout:
			continue
		default:
			c.fail(err)
			return
		}

		b, err := c.cam.ReadFrame()
		if err != nil {
			c.fail(err)
			return
		}
		if len(b) == 0 {
			continue
		}

		// move the memory from mmap to Go before the driver reuses the buffer.
		if len(b) > len(buf) {
			buf = make([]byte, len(b))
		}
		n := copy(buf, b)

		img, err := decoder.Decode(buf[:n], width, height)
		if err != nil {
			c.log.Debugf("%s: dropping frame: %v", c.path, err)
			continue
		}

		fr := &driver.RawFrame{Width: width, Height: height, Pix: frame.RGB(img)}
		c.mu.Lock()
		c.latest = fr
		c.mu.Unlock()
	}
}

func (c *camera) fail(err error) {
	c.log.Errorf("%s: capture stopped: %v", c.path, err)
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

func (c *camera) PollFrame() (*driver.RawFrame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest, nil
}

func (c *camera) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *camera) Close() error {
	if c.cancel != nil {
		c.cancel()
		c.wg.Wait()

		// Note: StopStreaming frees frame buffers, so the capture loop must
		// have returned before this point.
		if err := c.cam.StopStreaming(); err != nil {
			c.log.Warnf("%s: stop streaming: %v", c.path, err)
		}
		c.cancel = nil
	}
	return c.cam.Close()
}
