// Package omnicamera opens webcams through a pluggable capture engine,
// negotiates their capture format and exposes their controls.
package omnicamera

import (
	"github.com/pion/omnicamera/internal/logging"
	"github.com/pion/omnicamera/pkg/driver"
)

// CameraInfo describes a connected camera.
type CameraInfo struct {
	// DriverID identifies the engine reporting the camera.
	DriverID    string
	Index       int
	Name        string
	Description string
	Misc        string

	driver driver.Driver
}

// CanOpen checks if this camera can be opened.
func (i CameraInfo) CanOpen() bool {
	if i.driver == nil {
		return false
	}
	return i.driver.CheckCanOpen(i.Index)
}

// Query returns one CameraInfo for every camera of every registered
// engine. With onlyUsable, cameras that can't be opened are left out.
// Engines failing to enumerate their devices are skipped.
func Query(onlyUsable bool) []CameraInfo {
	return QueryDrivers(driver.FilterFn(func(driver.Driver) bool { return true }), onlyUsable)
}

// QueryDrivers is like Query, restricted to drivers matching filter.
func QueryDrivers(filter driver.FilterFn, onlyUsable bool) []CameraInfo {
	infos := make([]CameraInfo, 0)
	for _, d := range driver.GetManager().Query(filter) {
		devices, err := d.QueryDevices()
		if err != nil {
			logging.NewLogger("omnicamera").Warnf("%s: failed to query devices: %v", d.Info().Label, err)
			continue
		}
		for _, dev := range devices {
			info := CameraInfo{
				DriverID:    d.ID(),
				Index:       dev.Index,
				Name:        dev.Name,
				Description: dev.Description,
				Misc:        dev.Misc,
				driver:      d,
			}
			if onlyUsable && !info.CanOpen() {
				continue
			}
			infos = append(infos, info)
		}
	}
	return infos
}
