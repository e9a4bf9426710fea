package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable read by ApplyEnv.
const EnvPrefix = "OXY_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Player      PlayerConfig      `yaml:"player" envPrefix:"PLAYER_"`
	Camera      CameraConfig      `yaml:"camera" envPrefix:"CAMERA_"`
	Physics     PhysicsConfig     `yaml:"physics" envPrefix:"PHYSICS_"`
	Engine      EngineConfig      `yaml:"engine" envPrefix:"ENGINE_"`
	Logging     LoggingConfig     `yaml:"logging" envPrefix:"LOG_"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics" envPrefix:"DIAG_"`
}

type PlayerConfig struct {
	Speed            float32 `yaml:"speed" env:"SPEED"`
	JumpForce        float32 `yaml:"jump_force" env:"JUMP_FORCE"`
	TurnRate         float32 `yaml:"turn_rate" env:"TURN_RATE"`
	SprintMultiplier float32 `yaml:"sprint_multiplier" env:"SPRINT_MULTIPLIER"`
	IdleDamping      float32 `yaml:"idle_damping" env:"IDLE_DAMPING"`
	ProbeDistance    float32 `yaml:"probe_distance" env:"PROBE_DISTANCE"`
}

type CameraConfig struct {
	Distance      float32 `yaml:"distance" env:"DISTANCE"`
	MinDistance   float32 `yaml:"min_distance" env:"MIN_DISTANCE"`
	MaxDistance   float32 `yaml:"max_distance" env:"MAX_DISTANCE"`
	Height        float32 `yaml:"height" env:"HEIGHT"`
	Smoothness    float32 `yaml:"smoothness" env:"SMOOTHNESS"`
	RotationSpeed float32 `yaml:"rotation_speed" env:"ROTATION_SPEED"`
	ZoomSpeed     float32 `yaml:"zoom_speed" env:"ZOOM_SPEED"`
	Fov           float32 `yaml:"fov_degrees" env:"FOV_DEGREES"`
}

type PhysicsConfig struct {
	Gravity float32 `yaml:"gravity" env:"GRAVITY"`
	Workers int     `yaml:"workers" env:"WORKERS"`
}

type EngineConfig struct {
	TickRate float64 `yaml:"tick_rate" env:"TICK_RATE"`
	Title    string  `yaml:"title" env:"TITLE"`
	Width    int     `yaml:"width" env:"WIDTH"`
	Height   int     `yaml:"height" env:"HEIGHT"`
	Profile  bool    `yaml:"profile" env:"PROFILE"`
}

type LoggingConfig struct {
	Level            string `yaml:"level" env:"LEVEL"`
	Format           string `yaml:"format" env:"FORMAT"`
	Development      bool   `yaml:"development" env:"DEVELOPMENT"`
	EnableSampling   bool   `yaml:"enable_sampling" env:"ENABLE_SAMPLING"`
	SampleInitial    int    `yaml:"sample_initial" env:"SAMPLE_INITIAL"`
	SampleThereafter int    `yaml:"sample_thereafter" env:"SAMPLE_THEREAFTER"`
}

type DiagnosticsConfig struct {
	PlayerInterval time.Duration `yaml:"player_interval" env:"PLAYER_INTERVAL"`
	CameraInterval time.Duration `yaml:"camera_interval" env:"CAMERA_INTERVAL"`
}

// Default returns the stock tuning: the values the controllers were balanced around.
//
// Returns:
//   - *Config: a new config holding the defaults
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			Speed:            8.0,
			JumpForce:        12.0,
			TurnRate:         10.0,
			SprintMultiplier: 1.5,
			IdleDamping:      0.9,
			ProbeDistance:    1.1,
		},
		Camera: CameraConfig{
			Distance:      8.0,
			MinDistance:   3.0,
			MaxDistance:   15.0,
			Height:        3.0,
			Smoothness:    5.0,
			RotationSpeed: 2.0,
			ZoomSpeed:     1.0,
			Fov:           45.0,
		},
		Physics: PhysicsConfig{
			Gravity: 9.81,
		},
		Engine: EngineConfig{
			TickRate: 60,
			Title:    "oxy-rig",
			Width:    1280,
			Height:   720,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "console",
			SampleInitial:    100,
			SampleThereafter: 100,
		},
		Diagnostics: DiagnosticsConfig{
			PlayerInterval: 2 * time.Second,
			CameraInterval: 3 * time.Second,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their default values.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - *Config: the loaded config (not yet validated)
//   - error: error if the file cannot be read or parsed
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from OXY_-prefixed environment variables,
// e.g. OXY_CAMERA_DISTANCE or OXY_DIAG_PLAYER_INTERVAL.
//
// Parameters:
//   - cfg: the config to update in place
//
// Returns:
//   - error: error if a variable cannot be parsed into its field
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve builds the effective config: defaults, then the YAML file if path is non-empty,
// then environment overrides, then validation.
//
// Parameters:
//   - path: optional YAML file path
//
// Returns:
//   - *Config: the validated config
//   - error: error from any of the steps
func Resolve(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every tuning value. All failures are reported together, each wrapping ErrInvalid.
//
// Returns:
//   - error: nil if the config is usable
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Player.Speed > 0, "player.speed must be positive, got %v", c.Player.Speed)
	check(c.Player.JumpForce >= 0, "player.jump_force must not be negative, got %v", c.Player.JumpForce)
	check(c.Player.TurnRate > 0, "player.turn_rate must be positive, got %v", c.Player.TurnRate)
	check(c.Player.SprintMultiplier >= 1, "player.sprint_multiplier must be at least 1, got %v", c.Player.SprintMultiplier)
	check(c.Player.IdleDamping >= 0 && c.Player.IdleDamping < 1, "player.idle_damping must be in [0, 1), got %v", c.Player.IdleDamping)
	check(c.Player.ProbeDistance > 0, "player.probe_distance must be positive, got %v", c.Player.ProbeDistance)

	check(c.Camera.MinDistance > 0, "camera.min_distance must be positive, got %v", c.Camera.MinDistance)
	check(c.Camera.MinDistance <= c.Camera.MaxDistance, "camera.min_distance %v exceeds max_distance %v", c.Camera.MinDistance, c.Camera.MaxDistance)
	check(c.Camera.Distance >= c.Camera.MinDistance && c.Camera.Distance <= c.Camera.MaxDistance,
		"camera.distance %v outside [%v, %v]", c.Camera.Distance, c.Camera.MinDistance, c.Camera.MaxDistance)
	check(c.Camera.Smoothness > 0, "camera.smoothness must be positive, got %v", c.Camera.Smoothness)
	check(c.Camera.Fov > 0 && c.Camera.Fov < 180, "camera.fov_degrees must be in (0, 180), got %v", c.Camera.Fov)

	check(c.Physics.Workers >= 0, "physics.workers must not be negative, got %d", c.Physics.Workers)

	check(c.Engine.TickRate > 0, "engine.tick_rate must be positive, got %v", c.Engine.TickRate)
	check(c.Engine.Width > 0 && c.Engine.Height > 0, "engine window size must be positive, got %dx%d", c.Engine.Width, c.Engine.Height)

	check(c.Logging.Format == "console" || c.Logging.Format == "json", "logging.format must be console or json, got %q", c.Logging.Format)

	check(c.Diagnostics.PlayerInterval >= 0, "diagnostics.player_interval must not be negative, got %v", c.Diagnostics.PlayerInterval)
	check(c.Diagnostics.CameraInterval >= 0, "diagnostics.camera_interval must not be negative, got %v", c.Diagnostics.CameraInterval)

	return errors.Join(errs...)
}
