// Package config loads, normalizes, and validates omnicam configuration.
//
// Settings come from a TOML file layered over Default. The [formats]
// section is a prop.Preferences chain deciding which format a camera is
// opened with when none is given on the command line.
package config
