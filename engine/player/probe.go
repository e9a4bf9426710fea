package player

import (
	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultProbeDistance reaches 0.1 below the bottom of DefaultShape.
const DefaultProbeDistance float32 = 1.1

var down = mgl32.Vec3{0, -1, 0}

type groundProbeImpl struct {
	maxDistance float32
}

// GroundProbe decides whether the player is standing on something by casting a ray
// straight down from the body's centre. The player's own collider is ignored.
type GroundProbe interface {
	// Probe casts the ray for the given body.
	//
	// Parameters:
	//   - w: the physics world
	//   - body: the player body
	//
	// Returns:
	//   - grounded: true if a surface was hit closer than MaxDistance
	//   - ok: false if the body could not be resolved
	Probe(w physics.World, body physics.Body) (grounded, ok bool)

	// MaxDistance returns the ray length.
	MaxDistance() float32
}

var _ GroundProbe = &groundProbeImpl{}

// NewGroundProbe creates a GroundProbe with the given ray length.
// Non-positive lengths fall back to DefaultProbeDistance.
//
// Parameters:
//   - maxDistance: the ray length
//
// Returns:
//   - GroundProbe: the newly created probe
func NewGroundProbe(maxDistance float32) GroundProbe {
	if maxDistance <= 0 {
		maxDistance = DefaultProbeDistance
	}
	return &groundProbeImpl{maxDistance: maxDistance}
}

func (p *groundProbeImpl) Probe(w physics.World, body physics.Body) (bool, bool) {
	tr, ok := w.Transform(body)
	if !ok {
		return false, false
	}
	hit, found := w.CastRay(tr.Position, down, p.maxDistance, body)
	return found && hit.Distance < p.maxDistance, true
}

func (p *groundProbeImpl) MaxDistance() float32 {
	return p.maxDistance
}
