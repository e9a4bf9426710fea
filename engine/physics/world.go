package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
)

// Body is a handle to a body owned by a World. The zero Body refers to nothing.
// Handles are plain values; holding one never keeps the body alive.
type Body struct {
	entity ecs.Entity
}

// IsZero reports whether the handle refers to no body.
func (b Body) IsZero() bool {
	return b.entity.IsZero()
}

func (b Body) String() string {
	if b.IsZero() {
		return "body(none)"
	}
	return fmt.Sprintf("body(%d)", b.entity.ID())
}

// Transform is the authoritative pose of a body.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Hit is the nearest intersection returned by a ray query.
type Hit struct {
	Body     Body
	Distance float32
}

// World is the command and query surface the gameplay controllers use.
// It never integrates anything on its own; see Simulation for stepping.
type World interface {
	// Transform returns the body's position and rotation.
	//
	// Parameters:
	//   - b: the body to read
	//
	// Returns:
	//   - Transform: the body's current pose
	//   - bool: false if the body no longer exists
	Transform(b Body) (Transform, bool)

	// Velocity returns the body's linear velocity.
	//
	// Parameters:
	//   - b: the body to read
	//
	// Returns:
	//   - mgl32.Vec3: linear velocity in units per second
	//   - bool: false if the body no longer exists
	Velocity(b Body) (mgl32.Vec3, bool)

	// SetHorizontalVelocity overrides the X and Z velocity components, leaving Y to the integrator.
	//
	// Parameters:
	//   - b: the body to command
	//   - x, z: new horizontal velocity components
	//
	// Returns:
	//   - bool: false if the body no longer exists
	SetHorizontalVelocity(b Body, x, z float32) bool

	// SetVerticalVelocity overrides the Y velocity component.
	//
	// Parameters:
	//   - b: the body to command
	//   - y: new vertical velocity
	//
	// Returns:
	//   - bool: false if the body no longer exists
	SetVerticalVelocity(b Body, y float32) bool

	// SetRotation replaces the body's orientation.
	//
	// Parameters:
	//   - b: the body to command
	//   - q: the new orientation
	//
	// Returns:
	//   - bool: false if the body no longer exists
	SetRotation(b Body, q mgl32.Quat) bool

	// CastRay returns the nearest body hit within maxDistance along dir.
	// A ray starting inside a collider hits it at distance 0.
	//
	// Parameters:
	//   - origin: ray start in world space
	//   - dir: ray direction (normalized internally)
	//   - maxDistance: the furthest distance considered
	//   - exclude: a body to skip, typically the caster itself; the zero Body excludes nothing
	//
	// Returns:
	//   - Hit: the nearest hit
	//   - bool: false if nothing was hit within range
	CastRay(origin, dir mgl32.Vec3, maxDistance float32, exclude Body) (Hit, bool)
}

// Spawner creates bodies. Both dynamic and static bodies live for as long as
// the world does unless explicitly despawned.
type Spawner interface {
	// SpawnDynamic adds a gravity-affected body.
	//
	// Parameters:
	//   - shape: the collider geometry
	//   - position: the initial world position
	//
	// Returns:
	//   - Body: the new body's handle
	SpawnDynamic(shape Shape, position mgl32.Vec3) Body

	// SpawnStatic adds an immovable body.
	//
	// Parameters:
	//   - shape: the collider geometry
	//   - position: the world position
	//
	// Returns:
	//   - Body: the new body's handle
	SpawnStatic(shape Shape, position mgl32.Vec3) Body
}

// Simulation is a World that also owns body lifetime and integration.
type Simulation interface {
	World
	Spawner

	// Despawn removes a body. Outstanding handles stop resolving.
	//
	// Parameters:
	//   - b: the body to remove
	//
	// Returns:
	//   - bool: false if the body did not exist
	Despawn(b Body) bool

	// Step integrates gravity and velocity for all dynamic bodies and resolves
	// their contacts against static bodies. Blocks until integration finishes.
	//
	// Parameters:
	//   - dt: elapsed time in seconds; non-positive values do nothing
	Step(dt float32)

	// BodyCount returns the number of live bodies.
	//
	// Returns:
	//   - int: live body count
	BodyCount() int

	// Gravity returns the downward acceleration applied to dynamic bodies.
	//
	// Returns:
	//   - float32: gravity in units per second squared
	Gravity() float32
}
