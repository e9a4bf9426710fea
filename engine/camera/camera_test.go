package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fixedPose Pose

func (p fixedPose) Pose() Pose { return Pose(p) }

func TestCameraWithoutSourceKeepsIdentityView(t *testing.T) {
	c := NewCamera()
	c.Update()
	if c.ViewMatrix() != mgl32.Ident4() {
		t.Fatal("view matrix changed without a source")
	}
}

func TestCameraFollowsSource(t *testing.T) {
	src := fixedPose{Position: mgl32.Vec3{0, 5, 10}, LookAt: mgl32.Vec3{}}
	c := NewCamera(WithSource(src), WithAspect(16.0/9.0))

	want := mgl32.LookAtV(src.Position, src.LookAt, mgl32.Vec3{0, 1, 0})
	if !c.ViewMatrix().ApproxEqual(want) {
		t.Fatalf("view = %v, want %v", c.ViewMatrix(), want)
	}
	if !c.ViewProjectionMatrix().ApproxEqual(c.ProjectionMatrix().Mul4(want)) {
		t.Fatal("view-projection is not projection * view")
	}

	// The look-at point lands on the centre of the screen.
	clip := c.ViewProjectionMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if ndc := clip.Vec3().Mul(1 / clip.W()); !mgl32.FloatEqualThreshold(ndc.X(), 0, 1e-5) || !mgl32.FloatEqualThreshold(ndc.Y(), 0, 1e-5) {
		t.Fatalf("look-at projected to %v, want screen centre", ndc)
	}
}

func TestCameraIgnoresDegeneratePose(t *testing.T) {
	src := &fixedPose{Position: mgl32.Vec3{0, 5, 10}}
	c := NewCamera(WithSource(src))
	before := c.ViewMatrix()

	*src = fixedPose{Position: mgl32.Vec3{1, 1, 1}, LookAt: mgl32.Vec3{1, 1, 1}}
	c.Update()
	if c.ViewMatrix() != before {
		t.Fatal("degenerate pose replaced the view matrix")
	}
}

func TestCameraTracksRig(t *testing.T) {
	r := NewRig()
	c := NewCamera(WithSource(r))
	if c.Pose() != r.Pose() {
		t.Fatalf("camera pose %+v, rig pose %+v", c.Pose(), r.Pose())
	}
	c.SetAspect(0)
	if c.Aspect() != 1 {
		t.Fatalf("non-positive aspect accepted: %v", c.Aspect())
	}
}
