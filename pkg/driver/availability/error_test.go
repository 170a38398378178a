package availability

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	other := errors.New("other")
	testCases := map[string]struct {
		err      error
		expected error
	}{
		"Busy":       {&os.PathError{Op: "open", Path: "/dev/video0", Err: syscall.EBUSY}, ErrBusy},
		"NotExist":   {fmt.Errorf("open: %w", os.ErrNotExist), ErrNoDevice},
		"NoDevice":   {syscall.ENODEV, ErrNoDevice},
		"Permission": {&os.PathError{Op: "open", Path: "/dev/video0", Err: syscall.EACCES}, ErrPermission},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			err := Classify(c.err)
			if !errors.Is(err, c.expected) {
				t.Errorf("expected %v, got %v", c.expected, err)
			}
			if !errors.Is(err, c.err) {
				t.Errorf("expected the original error to be kept, got %v", err)
			}
			if !IsError(err) {
				t.Error("expected IsError to be true")
			}
		})
	}

	if err := Classify(other); err != other {
		t.Errorf("expected unknown errors to pass through, got %v", err)
	}
	if Classify(nil) != nil {
		t.Error("expected nil")
	}
	if err := Classify(ErrBusy); err != ErrBusy {
		t.Errorf("expected availability errors to pass through, got %v", err)
	}
}
