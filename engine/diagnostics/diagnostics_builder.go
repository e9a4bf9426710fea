package diagnostics

import (
	"time"

	"go.uber.org/zap"
)

type ContextBuilderOption func(*contextImpl)

// WithPeriodic registers a named timer that fires every interval of elapsed time.
// A non-positive interval registers a timer that never fires.
//
// Parameters:
//   - name: the timer name passed to Due
//   - interval: time between firings
//
// Returns:
//   - ContextBuilderOption: a function that registers the timer
func WithPeriodic(name string, interval time.Duration) ContextBuilderOption {
	return func(c *contextImpl) {
		c.periodics[name] = &Periodic{Interval: interval}
	}
}

// WithLogger sets the logger diagnostics are written to.
//
// Parameters:
//   - logger: the logger; nil keeps the no-op default
//
// Returns:
//   - ContextBuilderOption: a function that sets the logger
func WithLogger(logger *zap.Logger) ContextBuilderOption {
	return func(c *contextImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
