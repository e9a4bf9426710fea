package session

import (
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/config"
	"github.com/Carmen-Shannon/oxy-rig/engine/diagnostics"
	"github.com/Carmen-Shannon/oxy-rig/engine/player"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionBuilderOption func(*sessionImpl)

// WithConfig sets the config the default components are built from.
//
// Parameters:
//   - cfg: the session config
//
// Returns:
//   - SessionBuilderOption: a function that sets the config
func WithConfig(cfg *config.Config) SessionBuilderOption {
	return func(s *sessionImpl) {
		s.cfg = cfg
	}
}

// WithID overrides the generated session id.
//
// Parameters:
//   - id: the session id
//
// Returns:
//   - SessionBuilderOption: a function that sets the id
func WithID(id uuid.UUID) SessionBuilderOption {
	return func(s *sessionImpl) {
		s.id = id
	}
}

// WithRig supplies a pre-built camera rig.
//
// Parameters:
//   - rig: the camera rig
//
// Returns:
//   - SessionBuilderOption: a function that sets the rig
func WithRig(rig camera.Rig) SessionBuilderOption {
	return func(s *sessionImpl) {
		s.rig = rig
	}
}

// WithController supplies a pre-built player controller.
//
// Parameters:
//   - c: the player controller
//
// Returns:
//   - SessionBuilderOption: a function that sets the controller
func WithController(c player.Controller) SessionBuilderOption {
	return func(s *sessionImpl) {
		s.controller = c
	}
}

// WithGroundProbe supplies a pre-built ground probe.
//
// Parameters:
//   - p: the ground probe
//
// Returns:
//   - SessionBuilderOption: a function that sets the probe
func WithGroundProbe(p player.GroundProbe) SessionBuilderOption {
	return func(s *sessionImpl) {
		s.probe = p
	}
}

// WithDiagnostics supplies a pre-built diagnostics context.
//
// Parameters:
//   - d: the diagnostics context
//
// Returns:
//   - SessionBuilderOption: a function that sets the context
func WithDiagnostics(d diagnostics.Context) SessionBuilderOption {
	return func(s *sessionImpl) {
		s.diag = d
	}
}

// WithFrameSink sets where each tick's Frame is delivered.
//
// Parameters:
//   - sink: the frame consumer
//
// Returns:
//   - SessionBuilderOption: a function that sets the sink
func WithFrameSink(sink FrameSink) SessionBuilderOption {
	return func(s *sessionImpl) {
		s.sink = sink
	}
}

// WithLogger sets the base logger. The session adds its id to every entry.
//
// Parameters:
//   - logger: the logger; nil keeps the no-op default
//
// Returns:
//   - SessionBuilderOption: a function that sets the logger
func WithLogger(logger *zap.Logger) SessionBuilderOption {
	return func(s *sessionImpl) {
		if logger != nil {
			s.logger = logger
		}
	}
}
