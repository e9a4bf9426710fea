package player

import (
	"math"

	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Intent builds the unit movement direction in camera-local ground axes from the held
// directional actions. X is right, Y is the ground-plane Z axis with forward pointing to -Z.
// Opposing actions cancel. The zero vector means no movement.
//
// Parameters:
//   - snap: the tick's input
//
// Returns:
//   - mgl32.Vec2: a unit vector (x, z), or zero
func Intent(snap input.Snapshot) mgl32.Vec2 {
	var v mgl32.Vec2
	if snap.Held(input.ActionMoveForward) {
		v[1] -= 1
	}
	if snap.Held(input.ActionMoveBack) {
		v[1] += 1
	}
	if snap.Held(input.ActionMoveLeft) {
		v[0] -= 1
	}
	if snap.Held(input.ActionMoveRight) {
		v[0] += 1
	}
	if v[0] == 0 && v[1] == 0 {
		return v
	}
	return v.Normalize()
}

// RotateByYaw rotates a ground-plane vector (x, z) about the vertical axis.
//
// Parameters:
//   - v: the vector in camera-local ground axes
//   - yaw: the camera yaw in radians
//
// Returns:
//   - mgl32.Vec2: the vector in world ground axes
func RotateByYaw(v mgl32.Vec2, yaw float32) mgl32.Vec2 {
	if yaw == 0 {
		return v
	}
	sin, cos := math.Sincos(float64(yaw))
	s, c := float32(sin), float32(cos)
	return mgl32.Vec2{
		v[0]*c - v[1]*s,
		v[0]*s + v[1]*c,
	}
}

// FacingFor returns the yaw-only orientation whose local +Z axis points along dir.
//
// Parameters:
//   - dir: a non-zero world ground-plane direction (x, z)
//
// Returns:
//   - mgl32.Quat: the facing orientation
func FacingFor(dir mgl32.Vec2) mgl32.Quat {
	angle := float32(math.Atan2(float64(dir[0]), float64(dir[1])))
	return mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0})
}

// turnToward rotates from toward to by amount along the shortest arc.
func turnToward(from, to mgl32.Quat, amount float32) mgl32.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	if amount >= 1 {
		return to.Normalize()
	}
	return mgl32.QuatSlerp(from, to, amount).Normalize()
}
