package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"github.com/Carmen-Shannon/oxy-rig/engine/profiler"
	"github.com/Carmen-Shannon/oxy-rig/engine/session"
	"github.com/Carmen-Shannon/oxy-rig/engine/window"
	"go.uber.org/zap"
)

// ErrNilSession is returned by NewEngine when no session is supplied.
var ErrNilSession = errors.New("engine: nil session")

// ErrNilWorld is returned by NewEngine when no physics world is supplied.
var ErrNilWorld = errors.New("engine: nil world")

// maxTickDelta caps the dt handed to a tick after a stall (debugger, window drag).
const maxTickDelta = 250 * time.Millisecond

// engine implements the Engine interface.
// Coordinates the tick goroutine and the window thread.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window    window.Window
	collector input.Collector
	session   session.Session
	world     physics.Simulation

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32, frame session.Frame)

	ticks    uint64
	maxTicks uint64 // 0 = run until Quit or window close

	logger *zap.Logger
}

// Engine drives a gameplay session at a fixed tick rate.
// Each tick flushes collected input, runs the session pipeline and then steps the physics world.
// With a window attached, window events feed the input collector; without one the engine runs headless.
type Engine interface {
	// Window returns the attached window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Input returns the collector that accumulates input between ticks.
	//
	// Returns:
	//   - input.Collector: the input collector
	Input() input.Collector

	// Session returns the driven session.
	//
	// Returns:
	//   - session.Session: the session
	Session() session.Session

	// World returns the physics world stepped after each session tick.
	//
	// Returns:
	//   - physics.Simulation: the physics world
	World() physics.Simulation

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called after every tick with the tick's frame.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds and the frame
	SetTickCallback(callback func(deltaTime float32, frame session.Frame))

	// Step runs a single tick synchronously: flush input, session tick, world step.
	// Run calls Step from its tick goroutine; callers driving the engine manually must not call Run.
	//
	// Parameters:
	//   - dt: tick duration in seconds
	//
	// Returns:
	//   - session.Frame: the frame produced by the session
	Step(dt float32) session.Frame

	// Run starts the tick loop and blocks until the window closes, Quit is called,
	// or the configured tick limit is reached.
	Run()

	// Quit signals the tick goroutine to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine driving the given session and world.
//
// Parameters:
//   - s: the session run each tick
//   - world: the physics world stepped after each session tick
//   - options: functional options for engine configuration (window, tick rate, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrNilSession or ErrNilWorld
func NewEngine(s session.Session, world physics.Simulation, options ...EngineBuilderOption) (Engine, error) {
	if s == nil {
		return nil, ErrNilSession
	}
	if world == nil {
		return nil, ErrNilWorld
	}

	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		session:         s,
		world:           world,
		engineTickRate:  time.Second / 60,
		logger:          zap.NewNop(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.collector == nil {
		e.collector = input.NewCollector()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(time.Second, e.logger)
	}

	if e.window != nil {
		window.AttachInput(e.window, e.collector)
		e.window.SetResizeCallback(func(width, height int) {
			if height > 0 {
				e.session.Camera().SetAspect(float32(width) / float32(height))
			}
		})
	}

	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Input() input.Collector {
	return e.collector
}

func (e *engine) Session() session.Session {
	return e.session
}

func (e *engine) World() physics.Simulation {
	return e.world
}

func (e *engine) Step(dt float32) session.Frame {
	frame := e.session.Tick(dt, e.collector.Flush())
	e.world.Step(dt)

	if e.tickCallback != nil {
		e.tickCallback(dt, frame)
	}
	if e.profilingEnabled.Load() {
		e.profiler.Tick()
	}
	return frame
}

func (e *engine) Run() {
	e.running.Store(true)
	e.logger.Info("engine started",
		zap.Duration("tick_rate", e.engineTickRate),
		zap.Bool("headless", e.window == nil),
		zap.String("session", e.session.ID().String()),
	)

	e.wg.Add(1)
	go e.handleEngine()

	if e.window != nil {
		// GLFW must be pumped from the thread that created the window.
		closed := false
		e.window.SetUpdateCallback(func() {
			select {
			case <-e.quitChannel:
				closed = true
				_ = e.window.Close()
			default:
			}
		})
		e.window.ProcessMessages()
		e.signalQuit()
		if !closed {
			_ = e.window.Close()
		}
	}

	<-e.quitChannel
	e.wg.Wait()
	e.running.Store(false)
	e.logger.Info("engine stopped", zap.Uint64("ticks", e.ticks))
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Steps the session and world at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed or the tick limit is reached.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			delta := min(now.Sub(lastTick), maxTickDelta)
			lastTick = now

			e.Step(float32(delta.Seconds()))

			e.ticks++
			if e.maxTicks > 0 && e.ticks >= e.maxTicks {
				e.signalQuit()
				return
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect on the next loop iteration.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if e.running.Load() {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called after each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32, frame session.Frame)) {
	e.tickCallback = callback
}

// tickInterval converts a tick rate to a ticker period, defaulting to 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
