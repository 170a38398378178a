package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pion/omnicamera/pkg/prop"
)

//go:embed sample_config.toml
var sampleConfig string

// Camera selects the device commands act on.
type Camera struct {
	// Index is the position of the camera in the query result.
	Index int `toml:"index"`
	// Name, when set, takes precedence over Index.
	Name string `toml:"name"`
	// SuggestedFrameRate switches automatic format selection to the widest
	// format running at least this fast.
	SuggestedFrameRate uint `toml:"suggested_frame_rate"`
}

// Snapshot contains settings of the snapshot command.
type Snapshot struct {
	Path string `toml:"path"`
	// Width and Height resize the image. A zero side keeps the aspect
	// ratio; both zero keep the captured size.
	Width          int `toml:"width"`
	Height         int `toml:"height"`
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Logging contains settings for log output.
type Logging struct {
	Level string `toml:"level"`
}

// Config encapsulates all configuration values for omnicam.
type Config struct {
	Camera   Camera           `toml:"camera"`
	Formats  prop.Preferences `toml:"formats"`
	Snapshot Snapshot         `toml:"snapshot"`
	Logging  Logging          `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load parses and validates the configuration file at path, or at the
// default location if path is empty. A missing file yields Default. The
// resolved path and whether it exists are returned alongside.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// SnapshotTimeout returns how long the snapshot command waits for a frame.
func (c *Config) SnapshotTimeout() time.Duration {
	return time.Duration(c.Snapshot.TimeoutSeconds) * time.Second
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = defaultConfigPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
