package prop

import "github.com/pion/omnicamera/pkg/frame"

// Preferences is a declarative chain of soft preferences. Zero fields are
// skipped.
type Preferences struct {
	MinFrameRate uint         `toml:"min_frame_rate"`
	MaxFrameRate uint         `toml:"max_frame_rate"`
	MinWidth     uint         `toml:"min_width"`
	MaxWidth     uint         `toml:"max_width"`
	MinHeight    uint         `toml:"min_height"`
	MaxHeight    uint         `toml:"max_height"`
	AspectRatio  float64      `toml:"aspect_ratio"`
	FrameFormat  frame.Format `toml:"frame_format,omitempty"`
}

// DefaultPreferences is used when a camera is opened without an explicit
// format. It favors common 4:3 webcam modes at smooth frame rates, in
// MJPEG to save bandwidth.
var DefaultPreferences = Preferences{
	MinFrameRate: 25,
	MaxFrameRate: 60,
	AspectRatio:  4.0 / 3.0,
	FrameFormat:  frame.FormatMJPEG,
}

// IsZero reports whether p has no preference set.
func (p Preferences) IsZero() bool {
	return p == Preferences{}
}

// Apply applies p to fs in a fixed order: frame rate, width, height,
// aspect ratio, then frame format.
func (fs Formats) Apply(p Preferences) Formats {
	if p.MinFrameRate != 0 || p.MaxFrameRate != 0 {
		fs = fs.PreferFrameRateRange(p.MinFrameRate, p.MaxFrameRate)
	}
	if p.MinWidth != 0 || p.MaxWidth != 0 {
		fs = fs.PreferWidthRange(p.MinWidth, p.MaxWidth)
	}
	if p.MinHeight != 0 || p.MaxHeight != 0 {
		fs = fs.PreferHeightRange(p.MinHeight, p.MaxHeight)
	}
	if p.AspectRatio != 0 {
		fs = fs.PreferAspectRatio(p.AspectRatio)
	}
	if p.FrameFormat != "" {
		fs = fs.PreferFrameFormat(p.FrameFormat)
	}
	return fs
}
