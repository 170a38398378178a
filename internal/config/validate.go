package config

import (
	"errors"
	"fmt"

	"github.com/pion/logging"
)

var logLevels = map[string]logging.LogLevel{
	"disabled": logging.LogLevelDisabled,
	"error":    logging.LogLevelError,
	"warn":     logging.LogLevelWarn,
	"info":     logging.LogLevelInfo,
	"debug":    logging.LogLevelDebug,
	"trace":    logging.LogLevelTrace,
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCamera(); err != nil {
		return err
	}
	if err := c.validateFormats(); err != nil {
		return err
	}
	if err := c.validateSnapshot(); err != nil {
		return err
	}
	if _, ok := logLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level %q is not one of disabled, error, warn, info, debug or trace", c.Logging.Level)
	}
	return nil
}

// LogLevel returns the configured level of new loggers.
func (c *Config) LogLevel() logging.LogLevel {
	if level, ok := logLevels[c.Logging.Level]; ok {
		return level
	}
	return logging.LogLevelWarn
}

func (c *Config) validateCamera() error {
	if c.Camera.Index < 0 {
		return errors.New("camera.index must not be negative")
	}
	return nil
}

func (c *Config) validateFormats() error {
	f := c.Formats
	if err := validateBounds("formats.min_frame_rate", "formats.max_frame_rate", f.MinFrameRate, f.MaxFrameRate); err != nil {
		return err
	}
	if err := validateBounds("formats.min_width", "formats.max_width", f.MinWidth, f.MaxWidth); err != nil {
		return err
	}
	if err := validateBounds("formats.min_height", "formats.max_height", f.MinHeight, f.MaxHeight); err != nil {
		return err
	}
	if f.AspectRatio < 0 {
		return errors.New("formats.aspect_ratio must not be negative")
	}
	return nil
}

func validateBounds(minKey, maxKey string, lower, upper uint) error {
	if lower != 0 && upper != 0 && lower > upper {
		return fmt.Errorf("%s (%d) exceeds %s (%d)", minKey, lower, maxKey, upper)
	}
	return nil
}

func (c *Config) validateSnapshot() error {
	if c.Snapshot.Width < 0 || c.Snapshot.Height < 0 {
		return errors.New("snapshot.width and snapshot.height must not be negative")
	}
	if c.Snapshot.TimeoutSeconds < 0 {
		return errors.New("snapshot.timeout_seconds must not be negative")
	}
	return nil
}
