// Package prop describes the capture formats a device supports and narrows
// them down to the one a camera should be opened with.
package prop

import (
	"fmt"

	"github.com/pion/omnicamera/pkg/driver"
	"github.com/pion/omnicamera/pkg/frame"
)

// Format describes one capture mode: resolution, frame rate and encoding.
type Format struct {
	Width, Height uint
	FrameRate     uint
	FrameFormat   frame.Format
}

// NewFormat converts an engine reported format. It fails if the engine's
// encoding tag is unknown.
func NewFormat(raw driver.RawFormat) (Format, error) {
	ff, err := frame.ParseTag(raw.Tag)
	if err != nil {
		return Format{}, err
	}
	return Format{
		Width:       raw.Width,
		Height:      raw.Height,
		FrameRate:   raw.FrameRate,
		FrameFormat: ff,
	}, nil
}

// Raw converts f back to the engine representation.
func (f Format) Raw() driver.RawFormat {
	return driver.RawFormat{
		Width:     f.Width,
		Height:    f.Height,
		FrameRate: f.FrameRate,
		Tag:       f.FrameFormat.Tag(),
	}
}

// AspectRatio returns width / height.
func (f Format) AspectRatio() float64 {
	return float64(f.Width) / float64(f.Height)
}

func (f Format) String() string {
	return fmt.Sprintf("%s %dx%d@%dfps", f.FrameFormat.Tag(), f.Width, f.Height, f.FrameRate)
}
