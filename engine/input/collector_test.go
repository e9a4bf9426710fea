package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCollectorHeldPersistsAcrossFlushes(t *testing.T) {
	c := NewCollector()
	c.KeyDown(common.KeyW)

	first := c.Flush()
	if !first.Held(ActionMoveForward) || !first.JustPressed(ActionMoveForward) {
		t.Fatalf("first tick: held=%v pressed=%v, want both true",
			first.Held(ActionMoveForward), first.JustPressed(ActionMoveForward))
	}

	second := c.Flush()
	if !second.Held(ActionMoveForward) {
		t.Fatal("second tick: forward should still be held")
	}
	if second.JustPressed(ActionMoveForward) {
		t.Fatal("second tick: press edge leaked into the next tick")
	}

	c.KeyUp(common.KeyW)
	if c.Flush().Held(ActionMoveForward) {
		t.Fatal("forward still held after release")
	}
}

func TestCollectorKeyRepeatIsNotAnEdge(t *testing.T) {
	c := NewCollector()
	c.KeyDown(common.KeySpace)
	_ = c.Flush()

	c.KeyDown(common.KeySpace) // GLFW repeat
	if c.Flush().JustPressed(ActionJump) {
		t.Fatal("repeat event produced a second jump edge")
	}
}

func TestCollectorTapWithinOneTickKeepsEdge(t *testing.T) {
	c := NewCollector()
	c.KeyDown(common.KeySpace)
	c.KeyUp(common.KeySpace)

	s := c.Flush()
	if !s.JustPressed(ActionJump) {
		t.Fatal("tap inside a tick lost its press edge")
	}
	if s.Held(ActionJump) {
		t.Fatal("released key reported as held")
	}
}

func TestCollectorSharedActionEdge(t *testing.T) {
	c := NewCollector()
	c.KeyDown(common.KeyLeftShift)
	_ = c.Flush()

	c.KeyDown(common.KeyRightShift)
	s := c.Flush()
	if s.JustPressed(ActionSprint) {
		t.Fatal("second key on an already held action produced an edge")
	}
	if !s.Held(ActionSprint) {
		t.Fatal("sprint should be held")
	}
}

func TestCollectorPointerDeltasInOrderWithoutLeak(t *testing.T) {
	c := NewCollector()
	c.MouseButtonDown(common.MouseButtonRight)
	c.MouseMove(100, 100) // first sample only seeds the cursor
	c.MouseMove(110, 100)
	c.MouseMove(105, 102)
	c.Scroll(1)
	c.Scroll(-2)

	s := c.Flush()
	if !s.Held(ActionRotate) {
		t.Fatal("rotate button should be held")
	}
	want := []mgl32.Vec2{{10, 0}, {-5, 2}}
	got := s.PointerDeltas()
	if len(got) != len(want) {
		t.Fatalf("pointer deltas = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pointer delta %d = %v, want %v", i, got[i], want[i])
		}
	}
	if sc := s.ScrollDeltas(); len(sc) != 2 || sc[0] != 1 || sc[1] != -2 {
		t.Fatalf("scroll deltas = %v, want [1 -2]", sc)
	}

	next := c.Flush()
	if len(next.PointerDeltas()) != 0 || len(next.ScrollDeltas()) != 0 {
		t.Fatalf("deltas leaked into next tick: %v %v", next.PointerDeltas(), next.ScrollDeltas())
	}
	c.MouseMove(0, 0)
	if got[0] != want[0] {
		t.Fatal("flushed snapshot was mutated by later events")
	}
}

func TestCollectorUnboundKeysIgnored(t *testing.T) {
	c := NewCollector(WithBindings(Bindings{
		Keys: map[uint32]Action{common.KeyUp: ActionMoveForward},
	}))
	c.KeyDown(common.KeyW)
	c.KeyDown(common.KeyUp)

	s := c.Flush()
	if !s.Held(ActionMoveForward) {
		t.Fatal("custom binding not honoured")
	}
	c.KeyUp(common.KeyUp)
	if c.Flush().Held(ActionMoveForward) {
		t.Fatal("unbound W key should not hold forward")
	}
}

func TestSnapshotOptions(t *testing.T) {
	s := NewSnapshot(
		WithHeld(ActionMoveLeft),
		WithPressed(ActionJump),
		WithScrollDeltas(5, 5),
	)
	if !s.Held(ActionMoveLeft) || s.JustPressed(ActionMoveLeft) {
		t.Fatal("WithHeld should not imply a press")
	}
	if !s.Held(ActionJump) || !s.JustPressed(ActionJump) {
		t.Fatal("WithPressed should imply held")
	}
	if s.Held(Action(200)) || s.JustPressed(Action(200)) {
		t.Fatal("out of range action reported as active")
	}
	if Action(200).String() != "unknown" || ActionJump.String() != "jump" {
		t.Fatal("unexpected action names")
	}
}
