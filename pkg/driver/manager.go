package driver

import "sync"

// FilterFn is being used to decide if a driver should be included in the
// query result.
type FilterFn func(Driver) bool

// FilterLabel returns a filter matching drivers registered with label.
func FilterLabel(label string) FilterFn {
	return func(d Driver) bool {
		return d.Info().Label == label
	}
}

// FilterID returns a filter matching the driver with id.
func FilterID(id string) FilterFn {
	return func(d Driver) bool {
		return d.ID() == id
	}
}

// FilterNot returns a filter function to negate provided filter.
func FilterNot(filter FilterFn) FilterFn {
	return func(d Driver) bool {
		return !filter(d)
	}
}

// FilterAnd returns a filter function to take logical conjunction of given filters.
func FilterAnd(filters ...FilterFn) FilterFn {
	return func(d Driver) bool {
		for _, f := range filters {
			if !f(d) {
				return false
			}
		}
		return true
	}
}

// Manager is a singleton to manage registered capture engines
type Manager struct {
	mu      sync.RWMutex
	drivers []Driver
}

var manager = &Manager{}

// GetManager gets manager singleton instance
func GetManager() *Manager {
	return manager
}

// Register registers an engine to the manager and returns its driver.
func (m *Manager) Register(e Engine, info Info) Driver {
	d := wrapEngine(e, info)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers = append(m.drivers, d)
	return d
}

// Unregister removes the driver with id. It reports whether a driver was removed.
func (m *Manager) Unregister(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.drivers {
		if d.ID() == id {
			m.drivers = append(m.drivers[:i], m.drivers[i+1:]...)
			return true
		}
	}
	return false
}

// Query queries by using f to filter drivers, and simply return the filtered results.
// Drivers are returned in registration order.
func (m *Manager) Query(f FilterFn) []Driver {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]Driver, 0)
	for _, d := range m.drivers {
		if ok := f(d); ok {
			results = append(results, d)
		}
	}
	return results
}
