package session

import (
	"time"

	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Frame is everything a renderer needs from one tick. It is a value copy; holding it
// never reaches back into gameplay state.
type Frame struct {
	Tick    uint64
	Elapsed time.Duration

	Camera         camera.Pose
	ViewProjection mgl32.Mat4

	// Player is only meaningful when PlayerPresent is true.
	Player        physics.Transform
	PlayerPresent bool
	Grounded      bool
}

// FrameSink receives the Frame produced at the end of every tick, on the tick goroutine.
type FrameSink interface {
	Submit(f Frame)
}

// FrameSinkFunc adapts a function to a FrameSink.
type FrameSinkFunc func(f Frame)

func (fn FrameSinkFunc) Submit(f Frame) {
	fn(f)
}

// NewLogSink returns a FrameSink that writes every frame to the logger at debug level.
//
// Parameters:
//   - logger: the destination logger
//
// Returns:
//   - FrameSink: the logging sink
func NewLogSink(logger *zap.Logger) FrameSink {
	return FrameSinkFunc(func(f Frame) {
		logger.Debug("frame",
			zap.Uint64("tick", f.Tick),
			zap.Float32s("camera_position", f.Camera.Position[:]),
			zap.Float32s("camera_look_at", f.Camera.LookAt[:]),
			zap.Float32s("player_position", f.Player.Position[:]),
			zap.Bool("grounded", f.Grounded),
		)
	})
}
