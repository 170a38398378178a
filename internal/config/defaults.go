package config

import "github.com/pion/omnicamera/pkg/prop"

const (
	defaultConfigPath      = "~/.config/omnicam/config.toml"
	defaultSnapshotPath    = "snapshot.png"
	defaultSnapshotTimeout = 5
	defaultLogLevel        = "warn"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Formats: prop.DefaultPreferences,
		Snapshot: Snapshot{
			Path:           defaultSnapshotPath,
			TimeoutSeconds: defaultSnapshotTimeout,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
