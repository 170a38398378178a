package prop

import (
	"fmt"
	"sync"

	"github.com/pion/logging"

	omnilog "github.com/pion/omnicamera/internal/logging"
)

// Deprecation is an advisory emitted when a renamed API is called. It never
// affects the result of the call.
type Deprecation struct {
	Name        string
	Replacement string
}

func (d Deprecation) String() string {
	return fmt.Sprintf("%s has been renamed to %s", d.Name, d.Replacement)
}

var (
	deprecationMu      sync.RWMutex
	deprecationHandler = logDeprecation
	deprecationLogOnce sync.Once
	deprecationLog     logging.LeveledLogger
)

func logDeprecation(d Deprecation) {
	deprecationLogOnce.Do(func() {
		deprecationLog = omnilog.NewLogger("prop")
	})
	deprecationLog.Warn(d.String())
}

// SetDeprecationHandler replaces the receiver of Deprecation advisories,
// which logs a warning by default. A nil h discards them. It returns a
// function restoring the previous handler.
func SetDeprecationHandler(h func(Deprecation)) (restore func()) {
	if h == nil {
		h = func(Deprecation) {}
	}

	deprecationMu.Lock()
	prev := deprecationHandler
	deprecationHandler = h
	deprecationMu.Unlock()

	return func() {
		deprecationMu.Lock()
		deprecationHandler = prev
		deprecationMu.Unlock()
	}
}

func deprecated(name, replacement string) {
	deprecationMu.RLock()
	h := deprecationHandler
	deprecationMu.RUnlock()

	h(Deprecation{Name: name, Replacement: replacement})
}
