package scene

import (
	"errors"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ErrAlreadyBuilt is returned when a scene is built into a world a second time.
var ErrAlreadyBuilt = errors.New("scene: already built")

// PropKind classifies a prop for logging and for renderers that style by kind.
type PropKind uint8

const (
	PropGround PropKind = iota
	PropTree
	PropFoliage
	PropRock
	PropPlatform
)

var propKindNames = [...]string{
	PropGround:   "ground",
	PropTree:     "tree",
	PropFoliage:  "foliage",
	PropRock:     "rock",
	PropPlatform: "platform",
}

func (k PropKind) String() string {
	if int(k) >= len(propKindNames) {
		return "unknown"
	}
	return propKindNames[k]
}

// Prop is one static piece of level geometry.
// Props without a collider are decoration only and never reach the physics world.
type Prop struct {
	Kind     PropKind
	Shape    physics.Shape
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Collider bool
}

// Scene is a static level layout. It is built into a physics world once at startup.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Props returns a copy of the scene's props in insertion order.
	//
	// Returns:
	//   - []Prop: the props
	Props() []Prop

	// Count returns the number of props, colliders and decoration alike.
	//
	// Returns:
	//   - int: prop count
	Count() int

	// Add appends props to the layout. Props added after Build are not spawned.
	//
	// Parameters:
	//   - props: the props to append
	Add(props ...Prop)

	// Visible returns the props whose bounds intersect the view frustum, in prop order.
	//
	// Parameters:
	//   - viewProj: the camera view-projection matrix
	//
	// Returns:
	//   - []Prop: the props a renderer needs to draw
	Visible(viewProj mgl32.Mat4) []Prop

	// Build spawns a static body for every prop that has a collider.
	//
	// Parameters:
	//   - sp: the physics world to spawn into
	//
	// Returns:
	//   - []physics.Body: the spawned bodies, in prop order
	//   - error: ErrAlreadyBuilt on a second call
	Build(sp physics.Spawner) ([]physics.Body, error)
}

type scene struct {
	mu     *sync.Mutex
	name   string
	props  []Prop
	built  bool
	logger *zap.Logger
}

var _ Scene = &scene{}

// NewScene creates an empty scene.
//
// Parameters:
//   - name: the scene identifier
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:     &sync.Mutex{},
		name:   name,
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Props() []Prop {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Prop(nil), s.props...)
}

func (s *scene) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.props)
}

func (s *scene) Add(props ...Prop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props = append(s.props, props...)
}

func (s *scene) Visible(viewProj mgl32.Mat4) []Prop {
	f := common.ExtractFrustum(viewProj)

	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Prop
	for _, p := range s.props {
		ext := p.Shape.Extents()
		if f.IntersectsAABB(p.Position.Sub(ext), p.Position.Add(ext)) {
			out = append(out, p)
		}
	}
	return out
}

func (s *scene) Build(sp physics.Spawner) ([]physics.Body, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.built {
		return nil, ErrAlreadyBuilt
	}
	s.built = true

	bodies := make([]physics.Body, 0, len(s.props))
	counts := make(map[string]int)
	for _, p := range s.props {
		if !p.Collider {
			continue
		}
		bodies = append(bodies, sp.SpawnStatic(p.Shape, p.Position))
		counts[p.Kind.String()]++
	}

	s.logger.Info("scene built",
		zap.String("scene", s.name),
		zap.Int("colliders", len(bodies)),
		zap.Int("props", len(s.props)),
		zap.Any("by_kind", counts),
	)
	return bodies, nil
}
