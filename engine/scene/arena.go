package scene

import (
	"math"

	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// Arena layout constants.
const (
	ArenaHalfSize   = 20.0
	TreeCount       = 8
	TreeRingRadius  = 12.0
	RockCount       = 12
	RockRingRadius  = 15.0
	RockRingSpacing = 2.0
)

// platformCenters are the floating platforms around the island.
// Even entries are 6x6, odd entries 10x10.
var platformCenters = []mgl32.Vec3{
	{25, 5, 0},
	{-25, 8, 0},
	{0, 12, 25},
	{0, 6, -25},
	{18, 10, 18},
	{-18, 7, -18},
}

// ArenaProps returns the floating island level: a 40x40 island with its top face at y=0,
// a ring of trees, three staggered rings of rocks and six floating platforms.
//
// Returns:
//   - []Prop: the props in spawn order
func ArenaProps() []Prop {
	props := []Prop{
		{
			Kind:     PropGround,
			Shape:    physics.Box(ArenaHalfSize, 1, ArenaHalfSize),
			Position: mgl32.Vec3{0, -1, 0},
			Color:    mgl32.Vec3{0.3, 0.6, 0.3},
			Collider: true,
		},
		{
			Kind:     PropGround, // grass
			Shape:    physics.Box(19, 0.05, 19),
			Position: mgl32.Vec3{0, 0.1, 0},
			Color:    mgl32.Vec3{0.2, 0.8, 0.2},
		},
	}

	for i := 0; i < TreeCount; i++ {
		x, z := ring(i, TreeCount, TreeRingRadius)
		props = append(props,
			Prop{
				Kind:     PropTree,
				Shape:    physics.Cylinder(2, 0.3),
				Position: mgl32.Vec3{x, 1, z},
				Color:    mgl32.Vec3{0.4, 0.2, 0.1},
				Collider: true,
			},
			Prop{
				Kind:     PropFoliage,
				Shape:    physics.Sphere(2),
				Position: mgl32.Vec3{x, 4, z},
				Color:    mgl32.Vec3{0.1, 0.5, 0.1},
			},
		)
	}

	for i := 0; i < RockCount; i++ {
		x, z := ring(i, RockCount, RockRingRadius+float32(i%3)*RockRingSpacing)
		props = append(props, Prop{
			Kind:     PropRock,
			Shape:    physics.Sphere(0.5),
			Position: mgl32.Vec3{x, 0.5, z},
			Color:    mgl32.Vec3{0.5, 0.5, 0.5},
			Collider: true,
		})
	}

	for i, c := range platformCenters {
		half := float32(3 + (i%2)*2)
		props = append(props, Prop{
			Kind:     PropPlatform,
			Shape:    physics.Box(half, 0.5, half),
			Position: c,
			Color:    mgl32.Vec3{0.6, 0.4, 0.2},
			Collider: true,
		})
	}
	return props
}

// NewArena creates the floating island scene.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the arena scene, not yet built
func NewArena(options ...SceneBuilderOption) Scene {
	return NewScene("arena", append([]SceneBuilderOption{WithProps(ArenaProps()...)}, options...)...)
}

// ring returns the x, z position of slot i of n evenly spaced around a circle.
func ring(i, n int, radius float32) (float32, float32) {
	angle := float64(i) * 2 * math.Pi / float64(n)
	return float32(math.Cos(angle)) * radius, float32(math.Sin(angle)) * radius
}
