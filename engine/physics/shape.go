package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind identifies the collider geometry of a body.
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeCapsule
	ShapeCylinder
)

// Shape describes a collider in the body's local frame. Capsules and cylinders
// are aligned with the Y axis.
type Shape struct {
	Kind ShapeKind

	// HalfExtents is used by boxes.
	HalfExtents mgl32.Vec3

	// Radius is used by spheres, capsules and cylinders.
	Radius float32

	// HalfHeight is the half length of the capsule segment or the cylinder body.
	HalfHeight float32
}

// Box returns an axis-aligned box with the given half extents.
func Box(hx, hy, hz float32) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: mgl32.Vec3{hx, hy, hz}}
}

// Sphere returns a sphere of radius r.
func Sphere(r float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: r}
}

// Capsule returns a Y-aligned capsule. The total height is 2*(halfHeight+radius).
func Capsule(halfHeight, radius float32) Shape {
	return Shape{Kind: ShapeCapsule, HalfHeight: halfHeight, Radius: radius}
}

// Cylinder returns a Y-aligned cylinder. The total height is 2*halfHeight.
func Cylinder(halfHeight, radius float32) Shape {
	return Shape{Kind: ShapeCylinder, HalfHeight: halfHeight, Radius: radius}
}

// Extents returns the half extents of the shape's local axis-aligned bounding box.
//
// Returns:
//   - mgl32.Vec3: half size along X, Y and Z
func (s Shape) Extents() mgl32.Vec3 {
	switch s.Kind {
	case ShapeSphere:
		return mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	case ShapeCapsule:
		return mgl32.Vec3{s.Radius, s.HalfHeight + s.Radius, s.Radius}
	case ShapeCylinder:
		return mgl32.Vec3{s.Radius, s.HalfHeight, s.Radius}
	default:
		return s.HalfExtents
	}
}

// castRay intersects a normalized ray with the shape centred at center.
// A ray starting inside the shape reports a hit at distance 0.
// Only spheres are intersected exactly; every other kind uses its bounding box.
func (s Shape) castRay(center, origin, dir mgl32.Vec3) (float32, bool) {
	if s.Kind == ShapeSphere {
		return raySphere(origin, dir, center, s.Radius)
	}
	ext := s.Extents()
	return rayAABB(origin, dir, center.Sub(ext), center.Add(ext))
}

// raySphere returns the distance along dir to the first intersection with the sphere.
func raySphere(origin, dir, center mgl32.Vec3, radius float32) (float32, bool) {
	oc := origin.Sub(center)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	b := oc.Dot(dir)
	if b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - float32(math.Sqrt(float64(disc)))
	if t < 0 {
		t = 0
	}
	return t, true
}

// rayAABB is the slab test. Returns the entry distance, or 0 when origin is inside.
func rayAABB(origin, dir, lo, hi mgl32.Vec3) (float32, bool) {
	tMin := float32(0)
	tMax := float32(math.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[axis]
		t1 := (lo[axis] - origin[axis]) * inv
		t2 := (hi[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
