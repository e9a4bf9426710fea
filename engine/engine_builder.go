package engine

import (
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/profiler"
	"github.com/Carmen-Shannon/oxy-rig/engine/window"
	"go.uber.org/zap"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfiler replaces the default one-second profiler.
//
// Parameters:
//   - p: the profiler ticked after every engine tick while profiling is enabled
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(fps)
	}
}

// WithMaxTicks stops the engine after n ticks. Zero runs until Quit or the window closes.
//
// Parameters:
//   - n: number of ticks to run
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxTicks(n uint64) EngineBuilderOption {
	return func(e *engine) {
		e.maxTicks = n
	}
}

// WithWindow attaches a window whose events feed the engine's input collector.
// Without a window the engine runs headless.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithInput sets the input collector flushed at the start of every tick.
//
// Parameters:
//   - c: the input collector
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInput(c input.Collector) EngineBuilderOption {
	return func(e *engine) {
		e.collector = c
	}
}

// WithLogger sets the engine logger.
//
// Parameters:
//   - logger: the logger; nil keeps the no-op default
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
