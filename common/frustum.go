package common

import "github.com/go-gl/mathgl/mgl32"

// Plane represents a plane in 3D space using the equation: n·p + d = 0.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the distance from p to the plane; positive on the normal side.
func (p Plane) SignedDistance(v mgl32.Vec3) float32 {
	return p.Normal.Dot(v) + p.Distance
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustum extracts frustum planes from a view-projection matrix
// using the Gribb/Hartmann method.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the combined Projection * View matrix
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustum(viewProj mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := viewProj.Row(0), viewProj.Row(1), viewProj.Row(2), viewProj.Row(3)

	var f Frustum
	for i, row := range [6]mgl32.Vec4{
		FrustumLeft:   r3.Add(r0),
		FrustumRight:  r3.Sub(r0),
		FrustumBottom: r3.Add(r1),
		FrustumTop:    r3.Sub(r1),
		FrustumNear:   r3.Add(r2),
		FrustumFar:    r3.Sub(r2),
	} {
		p := Plane{Normal: row.Vec3(), Distance: row[3]}
		if l := p.Normal.Len(); l > 0 {
			p.Normal = p.Normal.Mul(1 / l)
			p.Distance /= l
		}
		f.Planes[i] = p
	}
	return f
}

// IntersectsAABB reports whether an axis-aligned box is at least partly inside the frustum.
// Conservative: boxes near frustum corners may pass.
//
// Parameters:
//   - lo: minimum corner
//   - hi: maximum corner
//
// Returns:
//   - bool: false only if the box is entirely outside one plane
func (f Frustum) IntersectsAABB(lo, hi mgl32.Vec3) bool {
	for _, p := range f.Planes {
		// Corner furthest along the plane normal.
		v := lo
		for axis := 0; axis < 3; axis++ {
			if p.Normal[axis] >= 0 {
				v[axis] = hi[axis]
			}
		}
		if p.SignedDistance(v) < 0 {
			return false
		}
	}
	return true
}
