package logging

import (
	"io"
	"sync"

	"github.com/pion/logging"
)

var (
	mu            sync.Mutex
	loggerFactory = logging.NewDefaultLoggerFactory()
)

// NewLogger creates a leveled logger for scope. Level and output changes
// only apply to loggers created afterwards.
func NewLogger(scope string) logging.LeveledLogger {
	mu.Lock()
	defer mu.Unlock()
	return loggerFactory.NewLogger(scope)
}

// SetLevel sets the default level of new loggers. Per scope levels from
// PION_LOG_* environment variables still take precedence.
func SetLevel(level logging.LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	loggerFactory.DefaultLogLevel = level
}

// SetOutput redirects new loggers to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	loggerFactory.Writer = w
}
