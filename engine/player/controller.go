package player

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"go.uber.org/zap"
)

// Default tuning for a freshly built controller.
const (
	DefaultSpeed            float32 = 8.0
	DefaultJumpForce        float32 = 12.0
	DefaultTurnRate         float32 = 10.0
	DefaultSprintMultiplier float32 = 1.5
	DefaultIdleDamping      float32 = 0.9
)

type controllerImpl struct {
	speed            float32
	jumpForce        float32
	turnRate         float32
	sprintMultiplier float32
	idleDamping      float32

	grounded bool

	logger *zap.Logger
}

// Controller turns a tick's input and the camera yaw into velocity and facing commands
// for the player body. It owns the grounded flag but never reads the ground itself;
// a GroundProbe updates it after movement each tick.
//
// A Controller is owned by the tick goroutine and is not safe for concurrent use.
type Controller interface {
	// Move applies one tick of movement to the body.
	// With movement intent the horizontal velocity is set to the camera-relative direction
	// times speed (times the sprint multiplier while sprinting) and the body turns toward it.
	// Without intent the horizontal velocity is damped by the idle factor and facing is kept.
	// A jump press while grounded sets the vertical velocity and clears the grounded flag.
	//
	// Parameters:
	//   - w: the physics world
	//   - body: the player body
	//   - snap: the tick's input
	//   - yaw: the camera yaw for this tick in radians
	//   - dt: tick duration in seconds
	//
	// Returns:
	//   - bool: false if the body could not be resolved; nothing was changed
	Move(w physics.World, body physics.Body, snap input.Snapshot, yaw, dt float32) bool

	// Grounded reports whether the last ground probe found a surface.
	//
	// Returns:
	//   - bool: the grounded flag
	Grounded() bool

	// SetGrounded stores the result of a ground probe.
	//
	// Parameters:
	//   - grounded: the new grounded flag
	SetGrounded(grounded bool)

	// Speed returns the walking speed in units per second.
	Speed() float32

	// JumpForce returns the vertical velocity set by a jump.
	JumpForce() float32

	// TurnRate returns the facing interpolation rate in radians per second.
	TurnRate() float32

	// SprintMultiplier returns the speed scale applied while sprinting.
	SprintMultiplier() float32

	// IdleDamping returns the per-tick horizontal velocity factor applied without intent.
	IdleDamping() float32
}

var _ Controller = &controllerImpl{}

// NewController creates an ungrounded Controller with the default tuning.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		speed:            DefaultSpeed,
		jumpForce:        DefaultJumpForce,
		turnRate:         DefaultTurnRate,
		sprintMultiplier: DefaultSprintMultiplier,
		idleDamping:      DefaultIdleDamping,
		logger:           zap.NewNop(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controllerImpl) Move(w physics.World, body physics.Body, snap input.Snapshot, yaw, dt float32) bool {
	vel, ok := w.Velocity(body)
	if !ok {
		return false
	}
	tr, ok := w.Transform(body)
	if !ok {
		return false
	}

	intent := Intent(snap)
	if intent.Len() > 0 {
		dir := RotateByYaw(intent, yaw)
		speed := c.speed
		if snap.Held(input.ActionSprint) {
			speed *= c.sprintMultiplier
		}
		w.SetHorizontalVelocity(body, dir[0]*speed, dir[1]*speed)

		amount := common.Clamp(c.turnRate*dt, 0, 1)
		w.SetRotation(body, turnToward(tr.Rotation, FacingFor(dir), amount))
	} else {
		// Damped per tick, not per second.
		w.SetHorizontalVelocity(body, vel[0]*c.idleDamping, vel[2]*c.idleDamping)
	}

	if snap.JustPressed(input.ActionJump) && c.grounded {
		w.SetVerticalVelocity(body, c.jumpForce)
		c.grounded = false
		c.logger.Debug("player jumped", zap.Float32("jump_force", c.jumpForce))
	}
	return true
}

func (c *controllerImpl) Grounded() bool {
	return c.grounded
}

func (c *controllerImpl) SetGrounded(grounded bool) {
	c.grounded = grounded
}

func (c *controllerImpl) Speed() float32 {
	return c.speed
}

func (c *controllerImpl) JumpForce() float32 {
	return c.jumpForce
}

func (c *controllerImpl) TurnRate() float32 {
	return c.turnRate
}

func (c *controllerImpl) SprintMultiplier() float32 {
	return c.sprintMultiplier
}

func (c *controllerImpl) IdleDamping() float32 {
	return c.idleDamping
}
