package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"github.com/Carmen-Shannon/oxy-rig/engine/session"
	"github.com/go-gl/mathgl/mgl32"
)

func newHarness(t *testing.T) (session.Session, physics.Simulation) {
	t.Helper()
	w := physics.NewWorld()
	w.SpawnStatic(physics.Box(20, 1, 20), mgl32.Vec3{0, -1, 0})
	s, err := session.New(w)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return s, w
}

func TestNewEngineRejectsMissingParts(t *testing.T) {
	s, w := newHarness(t)
	if _, err := NewEngine(nil, w); !errors.Is(err, ErrNilSession) {
		t.Fatalf("nil session error = %v", err)
	}
	if _, err := NewEngine(s, nil); !errors.Is(err, ErrNilWorld) {
		t.Fatalf("nil world error = %v", err)
	}
}

func TestStepFlushesInputThenStepsWorld(t *testing.T) {
	s, w := newHarness(t)
	body, err := s.SpawnPlayer(mgl32.Vec3{0, 1, 0})
	if err != nil {
		t.Fatalf("SpawnPlayer: %v", err)
	}
	e, err := NewEngine(s, w)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	e.Input().KeyDown(common.KeyW)
	f := e.Step(0.1)
	if f.Tick != 1 {
		t.Fatalf("frame tick = %d, want 1", f.Tick)
	}

	tr, ok := w.Transform(body)
	if !ok {
		t.Fatal("player body missing after step")
	}
	if tr.Position[2] > -0.79 || tr.Position[2] < -0.81 {
		t.Fatalf("z = %v after one step forward, want ~-0.8", tr.Position[2])
	}
}

func TestRunHeadlessStopsAtTickLimit(t *testing.T) {
	s, w := newHarness(t)
	e, err := NewEngine(s, w, WithTickRate(1000), WithMaxTicks(5))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	var ticks []uint64
	e.SetTickCallback(func(_ float32, f session.Frame) {
		ticks = append(ticks, f.Tick)
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		e.Quit()
		t.Fatal("Run did not return after the tick limit")
	}

	if len(ticks) != 5 || ticks[4] != 5 {
		t.Fatalf("ticks = %v, want 1..5", ticks)
	}
	e.Quit() // no-op after stop
}

func TestQuitStopsHeadlessRun(t *testing.T) {
	s, w := newHarness(t)
	e, err := NewEngine(s, w, WithTickRate(500))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	e.Quit()
	e.Quit()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		fps  float64
		want time.Duration
	}{
		{60, time.Second / 60},
		{0, time.Second / 60},
		{-5, time.Second / 60},
		{120, time.Second / 120},
		{30, time.Second / 30},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.fps); got != tt.want {
			t.Errorf("tickInterval(%v) = %v, want %v", tt.fps, got, tt.want)
		}
	}
}
