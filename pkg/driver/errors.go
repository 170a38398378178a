package driver

import "errors"

var (
	// ErrAlreadyOpened is returned when a device that is already capturing
	// is opened again.
	ErrAlreadyOpened = errors.New("invalid state: device is already opened")
	// ErrClosed is returned when a closed device is used.
	ErrClosed = errors.New("invalid state: device is closed")
	// ErrNotOpened is returned when polling a device that has not been opened.
	ErrNotOpened = errors.New("invalid state: device hasn't been opened")
)
