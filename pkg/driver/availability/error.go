// Package availability classifies why a capture device can't be used.
package availability

import (
	"errors"
	"os"
	"syscall"
)

var (
	ErrUnimplemented = NewError("not implemented")
	ErrBusy          = NewError("device or resource busy")
	ErrNoDevice      = NewError("no such device")
	ErrPermission    = NewError("permission denied")
)

type errorString struct {
	s string
}

func NewError(text string) error {
	return &errorString{text}
}

// IsError reports whether err is, or wraps, an availability error.
func IsError(err error) bool {
	var target *errorString
	return errors.As(err, &target)
}

func (e *errorString) Error() string {
	return e.s
}

type classified struct {
	kind error
	err  error
}

func (c *classified) Error() string   { return c.kind.Error() + ": " + c.err.Error() }
func (c *classified) Unwrap() []error { return []error{c.kind, c.err} }

// Classify wraps an OS level error from opening a device with the matching
// availability error. Errors it doesn't recognize are returned unchanged.
func Classify(err error) error {
	if err == nil || IsError(err) {
		return err
	}

	var kind error
	switch {
	case errors.Is(err, syscall.EBUSY):
		kind = ErrBusy
	case errors.Is(err, os.ErrNotExist), errors.Is(err, syscall.ENODEV), errors.Is(err, syscall.ENXIO):
		kind = ErrNoDevice
	case errors.Is(err, os.ErrPermission):
		kind = ErrPermission
	default:
		return err
	}
	return &classified{kind: kind, err: err}
}
