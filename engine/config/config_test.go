package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oxy.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Player.Speed != 8 || cfg.Player.JumpForce != 12 || cfg.Camera.Distance != 8 || cfg.Player.ProbeDistance != 1.1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
player:
  speed: 10
camera:
  max_distance: 20
diagnostics:
  player_interval: 500ms
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.Speed != 10 {
		t.Errorf("player.speed = %v, want 10", cfg.Player.Speed)
	}
	if cfg.Player.JumpForce != 12 {
		t.Errorf("player.jump_force = %v, want default 12", cfg.Player.JumpForce)
	}
	if cfg.Camera.MaxDistance != 20 || cfg.Camera.MinDistance != 3 {
		t.Errorf("camera bounds = [%v, %v], want [3, 20]", cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
	}
	if cfg.Diagnostics.PlayerInterval != 500*time.Millisecond {
		t.Errorf("diagnostics.player_interval = %v, want 500ms", cfg.Diagnostics.PlayerInterval)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v, want os.ErrNotExist", err)
	}
	if _, err := Load(writeFile(t, "player: [not, a, map]")); err == nil {
		t.Fatal("malformed yaml loaded without error")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("OXY_CAMERA_DISTANCE", "12.5")
	t.Setenv("OXY_PLAYER_JUMP_FORCE", "15")
	t.Setenv("OXY_LOG_LEVEL", "debug")
	t.Setenv("OXY_DIAG_CAMERA_INTERVAL", "1s")

	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Camera.Distance != 12.5 || cfg.Player.JumpForce != 15 {
		t.Fatalf("env not applied: camera.distance=%v player.jump_force=%v", cfg.Camera.Distance, cfg.Player.JumpForce)
	}
	if cfg.Logging.Level != "debug" || cfg.Diagnostics.CameraInterval != time.Second {
		t.Fatalf("env not applied: level=%q camera_interval=%v", cfg.Logging.Level, cfg.Diagnostics.CameraInterval)
	}
	if cfg.Player.Speed != 8 {
		t.Fatalf("unset variable changed player.speed to %v", cfg.Player.Speed)
	}
}

func TestApplyEnvParseError(t *testing.T) {
	t.Setenv("OXY_PHYSICS_WORKERS", "many")
	if err := ApplyEnv(Default()); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("ApplyEnv error = %v, want parse env failure", err)
	}
}

func TestResolveEnvWinsOverFile(t *testing.T) {
	path := writeFile(t, "camera:\n  height: 4\n  smoothness: 2\n")
	t.Setenv("OXY_CAMERA_HEIGHT", "6")

	cfg, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Camera.Height != 6 {
		t.Errorf("camera.height = %v, want env value 6", cfg.Camera.Height)
	}
	if cfg.Camera.Smoothness != 2 {
		t.Errorf("camera.smoothness = %v, want file value 2", cfg.Camera.Smoothness)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{name: "zero speed", mutate: func(c *Config) { c.Player.Speed = 0 }, wantMsg: "player.speed"},
		{name: "damping of one never settles", mutate: func(c *Config) { c.Player.IdleDamping = 1 }, wantMsg: "idle_damping"},
		{name: "inverted bounds", mutate: func(c *Config) { c.Camera.MinDistance, c.Camera.MaxDistance = 10, 5 }, wantMsg: "exceeds max_distance"},
		{name: "distance out of bounds", mutate: func(c *Config) { c.Camera.Distance = 30 }, wantMsg: "camera.distance"},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantMsg: "logging.format"},
		{name: "negative interval", mutate: func(c *Config) { c.Diagnostics.PlayerInterval = -time.Second }, wantMsg: "player_interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("Validate() = %q, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateReportsAllFailures(t *testing.T) {
	cfg := Default()
	cfg.Player.Speed = -1
	cfg.Engine.TickRate = 0
	err := cfg.Validate()
	for _, want := range []string{"player.speed", "engine.tick_rate"} {
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %v, missing %q", err, want)
		}
	}
}
