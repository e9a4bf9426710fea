package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func near(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < eps
}

func TestZeroBodyDoesNotResolve(t *testing.T) {
	w := NewWorld()
	var b Body
	if !b.IsZero() {
		t.Fatal("zero Body should report IsZero")
	}
	if _, ok := w.Transform(b); ok {
		t.Fatal("zero Body resolved a transform")
	}
	if w.SetHorizontalVelocity(b, 1, 1) {
		t.Fatal("command on zero Body reported success")
	}
}

func TestDespawnInvalidatesHandle(t *testing.T) {
	w := NewWorld()
	b := w.SpawnDynamic(Sphere(0.5), mgl32.Vec3{0, 5, 0})
	if w.BodyCount() != 1 {
		t.Fatalf("BodyCount = %d, want 1", w.BodyCount())
	}
	if !w.Despawn(b) {
		t.Fatal("Despawn of live body returned false")
	}
	if w.Despawn(b) {
		t.Fatal("second Despawn returned true")
	}
	if _, ok := w.Velocity(b); ok {
		t.Fatal("despawned body still resolves")
	}
	if w.BodyCount() != 0 {
		t.Fatalf("BodyCount = %d, want 0", w.BodyCount())
	}
}

func TestVelocityCommandsAreAxisScoped(t *testing.T) {
	w := NewWorld()
	b := w.SpawnDynamic(Sphere(0.5), mgl32.Vec3{})

	w.SetVerticalVelocity(b, 7)
	w.SetHorizontalVelocity(b, 2, -3)
	v, _ := w.Velocity(b)
	if v != (mgl32.Vec3{2, 7, -3}) {
		t.Fatalf("velocity = %v, want [2 7 -3]", v)
	}

	w.SetHorizontalVelocity(b, 0, 0)
	v, _ = w.Velocity(b)
	if v[1] != 7 {
		t.Fatalf("horizontal command touched vertical velocity: %v", v)
	}
}

func TestStepAppliesGravity(t *testing.T) {
	w := NewWorld(WithGravity(10))
	b := w.SpawnDynamic(Sphere(0.5), mgl32.Vec3{0, 100, 0})

	w.Step(0.1)
	v, _ := w.Velocity(b)
	if !near(v[1], -1) {
		t.Fatalf("vy = %v, want -1", v[1])
	}
	tr, _ := w.Transform(b)
	if !near(tr.Position[1], 99.9) {
		t.Fatalf("y = %v, want 99.9", tr.Position[1])
	}

	w.Step(0)
	w.Step(-1)
	v, _ = w.Velocity(b)
	if !near(v[1], -1) {
		t.Fatalf("non-positive dt changed velocity: %v", v)
	}
}

func TestDynamicBodyLandsOnStatic(t *testing.T) {
	w := NewWorld()
	w.SpawnStatic(Box(20, 1, 20), mgl32.Vec3{0, -1, 0})
	b := w.SpawnDynamic(Capsule(0.5, 0.5), mgl32.Vec3{0, 2, 0})

	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60.0)
	}

	tr, _ := w.Transform(b)
	if tr.Position[1] < 0.99 || tr.Position[1] > 1.05 {
		t.Fatalf("resting height = %v, want ~1.0 (capsule bottom on ground top)", tr.Position[1])
	}
	v, _ := w.Velocity(b)
	if v[1] < -0.5 {
		t.Fatalf("resting body still falling fast: vy = %v", v[1])
	}
}

func TestStepIntegratesLargeScenesOnPool(t *testing.T) {
	w := NewWorld(WithIntegrationWorkers(4), WithGravity(10))
	w.SpawnStatic(Box(100, 1, 100), mgl32.Vec3{0, -1, 0})

	var bodies []Body
	for i := 0; i < 3*minBodiesPerTask; i++ {
		bodies = append(bodies, w.SpawnDynamic(Sphere(0.25), mgl32.Vec3{float32(i % 50), 50, float32(i / 50)}))
	}
	w.Step(0.1)

	for _, b := range bodies {
		v, ok := w.Velocity(b)
		if !ok || !near(v[1], -1) {
			t.Fatalf("%v: vy = %v, want -1", b, v[1])
		}
	}
}

func TestCastRay(t *testing.T) {
	w := NewWorld()
	ground := w.SpawnStatic(Box(20, 1, 20), mgl32.Vec3{0, -1, 0})
	ball := w.SpawnStatic(Sphere(1), mgl32.Vec3{0, 5, 0})
	player := w.SpawnDynamic(Capsule(0.5, 0.5), mgl32.Vec3{10, 1, 10})

	tests := []struct {
		name     string
		origin   mgl32.Vec3
		dir      mgl32.Vec3
		max      float32
		exclude  Body
		wantHit  bool
		wantBody Body
		wantDist float32
	}{
		{name: "down onto box top", origin: mgl32.Vec3{3, 2, 3}, dir: mgl32.Vec3{0, -1, 0}, max: 10, wantHit: true, wantBody: ground, wantDist: 2},
		{name: "box beyond max", origin: mgl32.Vec3{3, 2, 3}, dir: mgl32.Vec3{0, -1, 0}, max: 1.5},
		{name: "sphere is nearer than box", origin: mgl32.Vec3{0, 10, 0}, dir: mgl32.Vec3{0, -2, 0}, max: 20, wantHit: true, wantBody: ball, wantDist: 4},
		{name: "ray pointing away", origin: mgl32.Vec3{0, 10, 0}, dir: mgl32.Vec3{0, 1, 0}, max: 20},
		{name: "origin inside hits at zero", origin: mgl32.Vec3{10, 1, 10}, dir: mgl32.Vec3{0, -1, 0}, max: 1.1, wantHit: true, wantBody: player, wantDist: 0},
		{name: "excluded caster sees ground", origin: mgl32.Vec3{10, 1, 10}, dir: mgl32.Vec3{0, -1, 0}, max: 1.1, exclude: player, wantHit: true, wantBody: ground, wantDist: 1},
		{name: "zero direction", origin: mgl32.Vec3{}, dir: mgl32.Vec3{}, max: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := w.CastRay(tt.origin, tt.dir, tt.max, tt.exclude)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v (%+v)", ok, tt.wantHit, hit)
			}
			if !ok {
				return
			}
			if hit.Body != tt.wantBody {
				t.Errorf("body = %v, want %v", hit.Body, tt.wantBody)
			}
			if !near(hit.Distance, tt.wantDist) {
				t.Errorf("distance = %v, want %v", hit.Distance, tt.wantDist)
			}
		})
	}
}

func TestShapeExtents(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  mgl32.Vec3
	}{
		{"box", Box(1, 2, 3), mgl32.Vec3{1, 2, 3}},
		{"sphere", Sphere(2), mgl32.Vec3{2, 2, 2}},
		{"capsule", Capsule(0.5, 0.5), mgl32.Vec3{0.5, 1, 0.5}},
		{"cylinder", Cylinder(2, 0.3), mgl32.Vec3{0.3, 2, 0.3}},
	}
	for _, tt := range tests {
		if got := tt.shape.Extents(); got != tt.want {
			t.Errorf("%s: Extents() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
