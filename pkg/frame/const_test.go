package frame

import (
	"errors"
	"testing"
)

func TestParseTag(t *testing.T) {
	testCases := map[string]struct {
		tag      string
		expected Format
		err      error
	}{
		"MJPEGLower": {"mjpeg", FormatMJPEG, nil},
		"MJPEGUpper": {"MJPEG", FormatMJPEG, nil},
		"YUYV":       {"yuyv", FormatYUYV, nil},
		"Unknown":    {"nv12", "", ErrUnknownFormat},
		"Empty":      {"", "", ErrUnknownFormat},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			f, err := ParseTag(c.tag)
			if !errors.Is(err, c.err) {
				t.Fatalf("expected error %v, got %v", c.err, err)
			}
			if f != c.expected {
				t.Errorf("expected %q, got %q", c.expected, f)
			}
		})
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("yuyv")); err != nil {
		t.Fatal(err)
	}
	if f != FormatYUYV {
		t.Fatalf("expected %s, got %s", FormatYUYV, f)
	}
	text, _ := FormatMJPEG.MarshalText()
	if string(text) != "mjpeg" {
		t.Errorf("expected mjpeg, got %s", text)
	}
	if err := f.UnmarshalText([]byte("h264")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestNewDecoder(t *testing.T) {
	for _, f := range Formats {
		if _, err := NewDecoder(f); err != nil {
			t.Errorf("%s: %v", f, err)
		}
	}
	if _, err := NewDecoder("I420"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
