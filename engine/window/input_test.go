package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeWindow stores callbacks so tests can fire events without a display.
type fakeWindow struct {
	engineWindow
}

func (f *fakeWindow) IsRunning() bool { return false }
func (f *fakeWindow) Close() error    { return nil }
func (f *fakeWindow) ProcessMessages() {}

func TestAttachInputRoutesEvents(t *testing.T) {
	w := &fakeWindow{}
	c := input.NewCollector()
	AttachInput(w, c)

	w.onKeyDown(common.KeyW)
	w.onMouseButtonDown(common.MouseButtonRight)
	w.onMouseMove(10, 10)
	w.onMouseMove(14, 10)
	w.onScroll(2)

	s := c.Flush()
	if !s.Held(input.ActionMoveForward) || !s.Held(input.ActionRotate) {
		t.Fatalf("held forward=%v rotate=%v, want both", s.Held(input.ActionMoveForward), s.Held(input.ActionRotate))
	}
	if d := s.PointerDeltas(); len(d) != 1 || d[0] != (mgl32.Vec2{4, 0}) {
		t.Fatalf("pointer deltas = %v, want [(4, 0)]", d)
	}
	if sc := s.ScrollDeltas(); len(sc) != 1 || sc[0] != 2 {
		t.Fatalf("scroll deltas = %v, want [2]", sc)
	}

	w.onKeyUp(common.KeyW)
	w.onMouseButtonUp(common.MouseButtonRight)
	s = c.Flush()
	if s.Held(input.ActionMoveForward) || s.Held(input.ActionRotate) {
		t.Fatal("actions still held after release")
	}
}
