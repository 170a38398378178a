package frame

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when an engine reports an encoding tag
// that has no Format counterpart.
var ErrUnknownFormat = errors.New("unknown frame format")

// Format is a pixel encoding a capture engine can deliver.
type Format string

const (
	// FormatYUYV https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUYV Format = "YUYV"

	// Compressed Formats

	// FormatMJPEG https://www.fourcc.org/mjpg/
	FormatMJPEG Format = "MJPEG"
)

// Formats lists every known Format.
var Formats = []Format{FormatMJPEG, FormatYUYV}

// ParseTag maps an engine encoding tag, such as "mjpeg", to a Format.
// Matching is case-insensitive; anything else fails with ErrUnknownFormat.
func ParseTag(tag string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(tag, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, tag)
}

// Tag returns the engine tag of f.
func (f Format) Tag() string {
	return strings.ToLower(string(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.Tag()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
