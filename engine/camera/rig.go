package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	// RotationSensitivity scales horizontal pointer deltas into yaw radians.
	RotationSensitivity float32 = 0.01

	// ZoomStep scales each scroll delta into orbit distance.
	ZoomStep float32 = 0.1
)

// Default tuning for a freshly built rig.
const (
	DefaultDistance      float32 = 8.0
	DefaultMinDistance   float32 = 3.0
	DefaultMaxDistance   float32 = 15.0
	DefaultHeight        float32 = 3.0
	DefaultSmoothness    float32 = 5.0
	DefaultRotationSpeed float32 = 2.0
	DefaultZoomSpeed     float32 = 1.0
)

// FollowStatus reports what a follow update did.
type FollowStatus uint8

const (
	// FollowUnbound means no target has been bound yet. The pose is unchanged.
	FollowUnbound FollowStatus = iota

	// FollowMissing means the bound target could not be read this tick. The pose is unchanged.
	FollowMissing

	// FollowUpdated means the pose moved toward the target.
	FollowUpdated
)

func (s FollowStatus) String() string {
	switch s {
	case FollowUnbound:
		return "unbound"
	case FollowMissing:
		return "missing"
	case FollowUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// Pose is a camera placement: where it is and which point it looks at.
// The up vector is always world +Y, so there is no roll.
type Pose struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

// PoseSource is anything that can report a camera Pose.
type PoseSource interface {
	Pose() Pose
}

type rigImpl struct {
	mu *sync.Mutex

	// nil until Bind; never cleared.
	target *physics.Body

	distance    float32
	minDistance float32
	maxDistance float32
	height      float32
	yaw         float32

	smoothness    float32
	rotationSpeed float32
	zoomSpeed     float32

	pose Pose

	logger *zap.Logger
}

// Rig is a third-person orbit camera that follows a single physics body.
// The rig orbits at a horizontal distance and height around the target and eases toward
// its goal position every tick. The rig only reads the world; it never moves the target.
type Rig interface {
	PoseSource

	// Bind sets the follow target. Only the first call has any effect.
	//
	// Parameters:
	//   - b: the body to follow
	//
	// Returns:
	//   - bool: true if this call bound the target, false if a target was already bound
	Bind(b physics.Body) bool

	// FollowTarget returns the bound target.
	//
	// Returns:
	//   - physics.Body: the followed body
	//   - bool: false while no target is bound
	FollowTarget() (physics.Body, bool)

	// Rotate orbits the rig around the target from horizontal pointer motion.
	// Nothing happens unless the rotate control is held. Each delta is applied in order.
	//
	// Parameters:
	//   - held: whether the rotate control is held this tick
	//   - deltas: pointer motion deltas in arrival order; only X is used
	//   - dt: tick duration in seconds
	Rotate(held bool, deltas []mgl32.Vec2, dt float32)

	// Zoom moves the rig toward or away from the target. Each scroll delta is applied
	// in order and clamped to the distance bounds before the next one.
	//
	// Parameters:
	//   - scrolls: scroll deltas in arrival order (positive zooms in)
	Zoom(scrolls []float32)

	// Follow eases the rig toward its orbit position around the target's current position.
	// The pose is left untouched if no target is bound or the target cannot be read.
	//
	// Parameters:
	//   - w: the world to read the target transform from
	//   - dt: tick duration in seconds
	//
	// Returns:
	//   - FollowStatus: what the update did
	Follow(w physics.World, dt float32) FollowStatus

	// Distance returns the current orbit distance.
	//
	// Returns:
	//   - float32: distance from the focus point, always within [MinDistance, MaxDistance]
	Distance() float32

	// MinDistance returns the closest allowed orbit distance.
	MinDistance() float32

	// MaxDistance returns the furthest allowed orbit distance.
	MaxDistance() float32

	// Height returns the vertical offset added to the target position to get the focus point.
	Height() float32

	// Yaw returns the orbit angle about world +Y in radians, wrapped into [-π, π].
	Yaw() float32

	// Smoothness returns the follow rate. Higher values converge faster.
	Smoothness() float32

	// RotationSpeed returns the pointer-to-yaw scale.
	RotationSpeed() float32

	// ZoomSpeed returns the scroll-to-distance scale.
	ZoomSpeed() float32
}

var _ Rig = &rigImpl{}

// NewRig creates an unbound Rig with the default tuning, positioned at (0, 5, 10)
// and looking at the origin until a target is bound.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigBuilderOption) Rig {
	r := &rigImpl{
		mu:            &sync.Mutex{},
		distance:      DefaultDistance,
		minDistance:   DefaultMinDistance,
		maxDistance:   DefaultMaxDistance,
		height:        DefaultHeight,
		smoothness:    DefaultSmoothness,
		rotationSpeed: DefaultRotationSpeed,
		zoomSpeed:     DefaultZoomSpeed,
		pose: Pose{
			Position: mgl32.Vec3{0, 5, 10},
			LookAt:   mgl32.Vec3{0, 0, 0},
		},
		logger: zap.NewNop(),
	}

	for _, option := range options {
		option(r)
	}

	// Bounds may have been set after the distance; re-establish the invariant.
	if r.maxDistance < r.minDistance {
		r.maxDistance = r.minDistance
	}
	r.distance = common.Clamp(r.distance, r.minDistance, r.maxDistance)
	r.yaw = wrapAngle(r.yaw)
	return r
}

func (r *rigImpl) Bind(b physics.Body) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.target != nil || b.IsZero() {
		return false
	}
	r.target = &b
	r.logger.Info("camera target bound", zap.Stringer("target", b))
	return true
}

func (r *rigImpl) FollowTarget() (physics.Body, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.target == nil {
		return physics.Body{}, false
	}
	return *r.target, true
}

func (r *rigImpl) Rotate(held bool, deltas []mgl32.Vec2, dt float32) {
	if !held || len(deltas) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range deltas {
		r.yaw -= d.X() * r.rotationSpeed * dt * RotationSensitivity
	}
	r.yaw = wrapAngle(r.yaw)
	r.logger.Debug("camera rotated", zap.Float32("yaw", r.yaw), zap.Int("deltas", len(deltas)))
}

func (r *rigImpl) Zoom(scrolls []float32) {
	if len(scrolls) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, y := range scrolls {
		r.distance = common.Clamp(r.distance-y*r.zoomSpeed*ZoomStep, r.minDistance, r.maxDistance)
	}
	r.logger.Debug("camera zoomed", zap.Float32("distance", r.distance))
}

func (r *rigImpl) Follow(w physics.World, dt float32) FollowStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.target == nil {
		return FollowUnbound
	}
	t, ok := w.Transform(*r.target)
	if !ok {
		return FollowMissing
	}

	focus := t.Position.Add(mgl32.Vec3{0, r.height, 0})
	sin, cos := math.Sincos(float64(r.yaw))
	offset := mgl32.Vec3{float32(sin) * r.distance, 0, float32(cos) * r.distance}
	desired := focus.Add(offset)

	alpha := common.Clamp(r.smoothness*dt, 0, 1)
	r.pose = Pose{
		Position: r.pose.Position.Add(desired.Sub(r.pose.Position).Mul(alpha)),
		LookAt:   focus,
	}
	return FollowUpdated
}

func (r *rigImpl) Pose() Pose {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pose
}

func (r *rigImpl) Distance() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.distance
}

func (r *rigImpl) MinDistance() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.minDistance
}

func (r *rigImpl) MaxDistance() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxDistance
}

func (r *rigImpl) Height() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.height
}

func (r *rigImpl) Yaw() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.yaw
}

func (r *rigImpl) Smoothness() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.smoothness
}

func (r *rigImpl) RotationSpeed() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rotationSpeed
}

func (r *rigImpl) ZoomSpeed() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zoomSpeed
}

// wrapAngle maps any angle into [-π, π].
func wrapAngle(a float32) float32 {
	if a >= -math.Pi && a <= math.Pi {
		return a
	}
	w := math.Remainder(float64(a), 2*math.Pi)
	return float32(w)
}
