package player

import "go.uber.org/zap"

type ControllerBuilderOption func(*controllerImpl)

// WithSpeed sets the walking speed.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - ControllerBuilderOption: a function that sets the speed
func WithSpeed(speed float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.speed = speed
	}
}

// WithJumpForce sets the vertical velocity applied by a jump.
//
// Parameters:
//   - force: upward velocity in units per second
//
// Returns:
//   - ControllerBuilderOption: a function that sets the jump force
func WithJumpForce(force float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.jumpForce = force
	}
}

// WithTurnRate sets how quickly the body turns toward its movement direction.
//
// Parameters:
//   - rate: radians per second
//
// Returns:
//   - ControllerBuilderOption: a function that sets the turn rate
func WithTurnRate(rate float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.turnRate = rate
	}
}

// WithSprintMultiplier sets the speed scale applied while sprinting.
//
// Parameters:
//   - m: the sprint multiplier
//
// Returns:
//   - ControllerBuilderOption: a function that sets the sprint multiplier
func WithSprintMultiplier(m float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.sprintMultiplier = m
	}
}

// WithIdleDamping sets the horizontal velocity factor applied on ticks without intent.
//
// Parameters:
//   - d: damping factor in [0, 1)
//
// Returns:
//   - ControllerBuilderOption: a function that sets the idle damping
func WithIdleDamping(d float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.idleDamping = d
	}
}

// WithGrounded sets the initial grounded flag.
//
// Parameters:
//   - grounded: the starting grounded state
//
// Returns:
//   - ControllerBuilderOption: a function that sets the grounded flag
func WithGrounded(grounded bool) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.grounded = grounded
	}
}

// WithLogger sets the controller's logger.
//
// Parameters:
//   - logger: the logger; nil keeps the no-op default
//
// Returns:
//   - ControllerBuilderOption: a function that sets the logger
func WithLogger(logger *zap.Logger) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
