package diagnostics

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPeriodicDue(t *testing.T) {
	p := &Periodic{Interval: 2 * time.Second}

	steps := []struct {
		now  time.Duration
		want bool
	}{
		{now: 0, want: false},
		{now: 2 * time.Second, want: false},
		{now: 2*time.Second + time.Millisecond, want: true},
		{now: 3 * time.Second, want: false},
		{now: 4 * time.Second, want: false},
		{now: 4*time.Second + 2*time.Millisecond, want: true},
	}
	for _, s := range steps {
		if got := p.Due(s.now); got != s.want {
			t.Fatalf("Due(%v) = %v, want %v", s.now, got, s.want)
		}
	}

	var off Periodic
	if off.Due(time.Hour) {
		t.Fatal("zero-interval timer fired")
	}
}

func TestContextDrivesPeriodicsFromInjectedTime(t *testing.T) {
	c := NewContext(
		WithPeriodic("player", 2*time.Second),
		WithPeriodic("camera", 3*time.Second),
	)

	fired := map[string]int{}
	for i := 0; i < 599; i++ { // just under 10s at 60Hz
		c.Advance(1.0 / 60.0)
		for _, name := range []string{"player", "camera", "unknown"} {
			if c.Due(name) {
				fired[name]++
			}
		}
	}

	if fired["player"] != 4 {
		t.Errorf("player fired %d times, want 4", fired["player"])
	}
	if fired["camera"] != 3 {
		t.Errorf("camera fired %d times, want 3", fired["camera"])
	}
	if fired["unknown"] != 0 {
		t.Errorf("unregistered timer fired %d times", fired["unknown"])
	}
	if got := c.Elapsed().Round(time.Millisecond); got != 9983*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 9.983s", got)
	}
}

func TestAdvanceIgnoresNonPositive(t *testing.T) {
	c := NewContext()
	c.Advance(0)
	c.Advance(-1)
	if c.Elapsed() != 0 {
		t.Fatalf("Elapsed() = %v, want 0", c.Elapsed())
	}
}

func TestMissingLogsOncePerOccurrence(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := NewContext(WithLogger(zap.New(core)))

	if !c.Missing("player_movement") {
		t.Fatal("first Missing did not log")
	}
	for i := 0; i < 10; i++ {
		if c.Missing("player_movement") {
			t.Fatal("repeated Missing logged again")
		}
	}
	if !c.Missing("ground_probe") {
		t.Fatal("a different stage shares the missing state")
	}

	c.Found("player_movement")
	c.Found("player_movement")
	if !c.Missing("player_movement", zap.String("body", "body(1)")) {
		t.Fatal("Missing after Found did not log")
	}

	warns := logs.FilterMessage("entity missing, stage skipped").All()
	if len(warns) != 3 {
		t.Fatalf("got %d missing warnings, want 3", len(warns))
	}
	if got := warns[2].ContextMap()["body"]; got != "body(1)" {
		t.Fatalf("extra field = %v, want body(1)", got)
	}
	if n := logs.FilterMessage("entity resolved again").Len(); n != 1 {
		t.Fatalf("got %d resolved messages, want 1", n)
	}
}
