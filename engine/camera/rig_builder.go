package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type RigBuilderOption func(*rigImpl)

// WithDistance sets the starting orbit distance. It is clamped to the bounds once all options are applied.
//
// Parameters:
//   - d: the orbit distance
//
// Returns:
//   - RigBuilderOption: a function that sets the orbit distance
func WithDistance(d float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.distance = d
	}
}

// WithDistanceBounds sets the closest and furthest allowed orbit distances.
//
// Parameters:
//   - lo: minimum distance
//   - hi: maximum distance
//
// Returns:
//   - RigBuilderOption: a function that sets the distance bounds
func WithDistanceBounds(lo, hi float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.minDistance = lo
		r.maxDistance = hi
	}
}

// WithHeight sets the vertical focus offset above the target.
//
// Parameters:
//   - h: height offset
//
// Returns:
//   - RigBuilderOption: a function that sets the height
func WithHeight(h float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.height = h
	}
}

// WithYaw sets the starting orbit angle in radians.
//
// Parameters:
//   - yaw: the orbit angle about world +Y
//
// Returns:
//   - RigBuilderOption: a function that sets the yaw
func WithYaw(yaw float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.yaw = yaw
	}
}

// WithSmoothness sets the follow rate.
//
// Parameters:
//   - s: follow rate per second
//
// Returns:
//   - RigBuilderOption: a function that sets the smoothness
func WithSmoothness(s float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.smoothness = s
	}
}

// WithRotationSpeed sets the pointer-to-yaw scale.
//
// Parameters:
//   - s: rotation speed
//
// Returns:
//   - RigBuilderOption: a function that sets the rotation speed
func WithRotationSpeed(s float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.rotationSpeed = s
	}
}

// WithZoomSpeed sets the scroll-to-distance scale.
//
// Parameters:
//   - s: zoom speed
//
// Returns:
//   - RigBuilderOption: a function that sets the zoom speed
func WithZoomSpeed(s float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.zoomSpeed = s
	}
}

// WithSpawnPose sets the pose the rig holds until it first follows a target.
//
// Parameters:
//   - position: the camera position
//   - lookAt: the point the camera looks at
//
// Returns:
//   - RigBuilderOption: a function that sets the spawn pose
func WithSpawnPose(position, lookAt mgl32.Vec3) RigBuilderOption {
	return func(r *rigImpl) {
		r.pose = Pose{Position: position, LookAt: lookAt}
	}
}

// WithLogger sets the rig's logger.
//
// Parameters:
//   - logger: the logger; nil keeps the no-op default
//
// Returns:
//   - RigBuilderOption: a function that sets the logger
func WithLogger(logger *zap.Logger) RigBuilderOption {
	return func(r *rigImpl) {
		if logger != nil {
			r.logger = logger
		}
	}
}
