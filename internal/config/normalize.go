package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Camera.Name = strings.TrimSpace(c.Camera.Name)

	if strings.TrimSpace(c.Snapshot.Path) == "" {
		c.Snapshot.Path = defaultSnapshotPath
	}
	var err error
	if c.Snapshot.Path, err = expandPath(c.Snapshot.Path); err != nil {
		return fmt.Errorf("snapshot.path: %w", err)
	}
	if c.Snapshot.TimeoutSeconds == 0 {
		c.Snapshot.TimeoutSeconds = defaultSnapshotTimeout
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
