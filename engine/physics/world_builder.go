package physics

import "go.uber.org/zap"

// WorldBuilderOption is a functional option for configuring the ECS world.
type WorldBuilderOption func(*ecsWorldImpl)

// WithGravity sets the downward acceleration applied to dynamic bodies.
//
// Parameters:
//   - g: gravity in units per second squared (positive pulls toward -Y)
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithGravity(g float32) WorldBuilderOption {
	return func(w *ecsWorldImpl) {
		w.gravity = g
	}
}

// WithIntegrationWorkers sets the number of pool workers used to integrate large
// numbers of dynamic bodies. Values below 1 are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithIntegrationWorkers(n int) WorldBuilderOption {
	return func(w *ecsWorldImpl) {
		if n > 0 {
			w.workers = n
		}
	}
}

// WithLogger sets the logger used for body lifecycle messages.
//
// Parameters:
//   - logger: the logger; nil keeps the no-op default
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) WorldBuilderOption {
	return func(w *ecsWorldImpl) {
		if logger != nil {
			w.logger = logger
		}
	}
}
