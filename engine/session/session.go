package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/config"
	"github.com/Carmen-Shannon/oxy-rig/engine/diagnostics"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"github.com/Carmen-Shannon/oxy-rig/engine/player"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNilWorld is returned by New when no world is supplied.
var ErrNilWorld = errors.New("session: nil world")

// Pipeline stage names used in diagnostics.
const (
	StageMovement = "player_movement"
	StageProbe    = "ground_probe"
	StageFollow   = "camera_follow"
)

// Periodic diagnostic timer names.
const (
	dumpPlayer = "player"
	dumpCamera = "camera"
)

// World is the part of the physics backend a session talks to: commands and queries
// for the controllers, plus spawning for the player.
type World interface {
	physics.World
	physics.Spawner
}

type sessionImpl struct {
	id  uuid.UUID
	cfg *config.Config

	world      World
	slot       player.Slot
	controller player.Controller
	probe      player.GroundProbe
	rig        camera.Rig
	camera     camera.Camera
	diag       diagnostics.Context
	sink       FrameSink

	tick   uint64
	logger *zap.Logger
}

// Session owns all gameplay state for one play session and runs the per-tick pipeline:
// target binding, camera rotation and zoom, player movement, ground probe, camera follow.
// Each stage sees the results of the stages before it in the same tick.
//
// A Session is driven from a single goroutine; Tick must not be called concurrently.
type Session interface {
	// ID returns the session identifier attached to every log entry.
	//
	// Returns:
	//   - uuid.UUID: the session id
	ID() uuid.UUID

	// SpawnPlayer creates the player body. A session has at most one player.
	//
	// Parameters:
	//   - position: the spawn position
	//
	// Returns:
	//   - physics.Body: the player body
	//   - error: wraps player.ErrAlreadySpawned on a second call
	SpawnPlayer(position mgl32.Vec3) (physics.Body, error)

	// Tick runs one pass of the pipeline and hands the resulting Frame to the sink.
	// Stages whose entity cannot be resolved are skipped for this tick; Tick never fails.
	//
	// Parameters:
	//   - dt: tick duration in seconds
	//   - snap: the input collected since the previous tick
	//
	// Returns:
	//   - Frame: the renderer view of this tick
	Tick(dt float32, snap input.Snapshot) Frame

	// Rig returns the camera rig.
	Rig() camera.Rig

	// Camera returns the renderer-facing camera that tracks the rig.
	Camera() camera.Camera

	// Controller returns the player controller.
	Controller() player.Controller

	// Player returns the player slot.
	Player() player.Slot

	// Diagnostics returns the session's diagnostics context.
	Diagnostics() diagnostics.Context
}

var _ Session = &sessionImpl{}

// New creates a Session bound to the given world. Components not supplied through options
// are built from the session config (config.Default unless WithConfig is used).
//
// Parameters:
//   - world: the physics backend
//   - options: functional options to configure the session
//
// Returns:
//   - Session: the newly created session
//   - error: ErrNilWorld if world is nil, or a config validation error
func New(world World, options ...SessionBuilderOption) (Session, error) {
	if world == nil {
		return nil, ErrNilWorld
	}

	s := &sessionImpl{
		id:     uuid.New(),
		world:  world,
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(s)
	}

	if s.cfg == nil {
		s.cfg = config.Default()
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s.logger = s.logger.With(zap.String("session", s.id.String()))

	if s.slot == nil {
		s.slot = player.NewSlot()
	}
	if s.controller == nil {
		p := s.cfg.Player
		s.controller = player.NewController(
			player.WithSpeed(p.Speed),
			player.WithJumpForce(p.JumpForce),
			player.WithTurnRate(p.TurnRate),
			player.WithSprintMultiplier(p.SprintMultiplier),
			player.WithIdleDamping(p.IdleDamping),
			player.WithLogger(s.logger),
		)
	}
	if s.probe == nil {
		s.probe = player.NewGroundProbe(s.cfg.Player.ProbeDistance)
	}
	if s.rig == nil {
		c := s.cfg.Camera
		s.rig = camera.NewRig(
			camera.WithDistanceBounds(c.MinDistance, c.MaxDistance),
			camera.WithDistance(c.Distance),
			camera.WithHeight(c.Height),
			camera.WithSmoothness(c.Smoothness),
			camera.WithRotationSpeed(c.RotationSpeed),
			camera.WithZoomSpeed(c.ZoomSpeed),
			camera.WithLogger(s.logger),
		)
	}
	if s.camera == nil {
		s.camera = camera.NewCamera(
			camera.WithSource(s.rig),
			camera.WithFov(mgl32.DegToRad(s.cfg.Camera.Fov)),
			camera.WithAspect(float32(s.cfg.Engine.Width)/float32(s.cfg.Engine.Height)),
		)
	}
	if s.diag == nil {
		s.diag = diagnostics.NewContext(
			diagnostics.WithPeriodic(dumpPlayer, s.cfg.Diagnostics.PlayerInterval),
			diagnostics.WithPeriodic(dumpCamera, s.cfg.Diagnostics.CameraInterval),
			diagnostics.WithLogger(s.logger),
		)
	}

	s.logger.Info("session created",
		zap.Float32("camera_distance", s.rig.Distance()),
		zap.Float32("player_speed", s.controller.Speed()),
	)
	return s, nil
}

func (s *sessionImpl) ID() uuid.UUID {
	return s.id
}

func (s *sessionImpl) SpawnPlayer(position mgl32.Vec3) (physics.Body, error) {
	b, err := s.slot.Spawn(s.world, position, player.DefaultShape)
	if err != nil {
		return b, fmt.Errorf("spawn player: %w", err)
	}
	s.logger.Info("player spawned", zap.Stringer("body", b), zap.Float32s("position", position[:]))
	return b, nil
}

func (s *sessionImpl) Tick(dt float32, snap input.Snapshot) Frame {
	s.tick++
	s.diag.Advance(dt)

	BindTarget(s.rig, s.slot)

	s.rig.Rotate(snap.Held(input.ActionRotate), snap.PointerDeltas(), dt)
	s.rig.Zoom(snap.ScrollDeltas())

	// An empty slot is the startup window, not a missing entity.
	body, spawned := s.slot.Body()
	if spawned {
		if s.controller.Move(s.world, body, snap, s.rig.Yaw(), dt) {
			s.diag.Found(StageMovement)
		} else {
			s.diag.Missing(StageMovement, zap.Stringer("body", body))
		}

		if grounded, ok := s.probe.Probe(s.world, body); ok {
			s.controller.SetGrounded(grounded)
			s.diag.Found(StageProbe)
		} else {
			s.diag.Missing(StageProbe, zap.Stringer("body", body))
		}
	}

	switch s.rig.Follow(s.world, dt) {
	case camera.FollowUpdated:
		s.diag.Found(StageFollow)
	case camera.FollowMissing:
		target, _ := s.rig.FollowTarget()
		s.diag.Missing(StageFollow, zap.Stringer("target", target))
	}
	s.camera.Update()

	frame := Frame{
		Tick:           s.tick,
		Elapsed:        s.diag.Elapsed(),
		Camera:         s.rig.Pose(),
		ViewProjection: s.camera.ViewProjectionMatrix(),
		Grounded:       s.controller.Grounded(),
	}
	if spawned {
		frame.Player, frame.PlayerPresent = s.world.Transform(body)
	}

	s.dump(frame, body)

	if s.sink != nil {
		s.sink.Submit(frame)
	}
	return frame
}

// dump writes the periodic player and camera state entries when their timers fire.
func (s *sessionImpl) dump(f Frame, body physics.Body) {
	if s.diag.Due(dumpPlayer) && f.PlayerPresent {
		vel, _ := s.world.Velocity(body)
		s.logger.Info("player state",
			zap.Float32s("position", f.Player.Position[:]),
			zap.Float32s("velocity", vel[:]),
			zap.Bool("grounded", f.Grounded),
			zap.Float32("speed", s.controller.Speed()),
			zap.Float32("jump_force", s.controller.JumpForce()),
		)
	}
	if s.diag.Due(dumpCamera) {
		target, bound := s.rig.FollowTarget()
		s.logger.Info("camera state",
			zap.Stringer("target", target),
			zap.Bool("bound", bound),
			zap.Float32("distance", s.rig.Distance()),
			zap.Float32("height", s.rig.Height()),
			zap.Float64("yaw_degrees", float64(s.rig.Yaw())*180/math.Pi),
			zap.Float32("rotation_speed", s.rig.RotationSpeed()),
		)
	}
}

func (s *sessionImpl) Rig() camera.Rig {
	return s.rig
}

func (s *sessionImpl) Camera() camera.Camera {
	return s.camera
}

func (s *sessionImpl) Controller() player.Controller {
	return s.controller
}

func (s *sessionImpl) Player() player.Slot {
	return s.slot
}

func (s *sessionImpl) Diagnostics() diagnostics.Context {
	return s.diag
}
