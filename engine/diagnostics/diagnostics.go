package diagnostics

import (
	"time"

	"go.uber.org/zap"
)

// Periodic fires once every Interval of elapsed tick time.
// The first firing happens once more than Interval has elapsed since zero.
type Periodic struct {
	Interval time.Duration
	last     time.Duration
}

// Due reports whether more than Interval has passed since the last firing, and if so
// records now as the new firing time.
//
// Parameters:
//   - now: the elapsed session time
//
// Returns:
//   - bool: true if the periodic action should run now
func (p *Periodic) Due(now time.Duration) bool {
	if p.Interval <= 0 || now-p.last <= p.Interval {
		return false
	}
	p.last = now
	return true
}

type contextImpl struct {
	elapsed   time.Duration
	periodics map[string]*Periodic
	missing   map[string]bool
	logger    *zap.Logger
}

// Context carries per-session diagnostic state through the tick pipeline: the simulated
// elapsed time, named periodic timers and which stages currently report a missing entity.
// It is owned by the tick goroutine and is not safe for concurrent use.
type Context interface {
	// Advance adds one tick's duration to the elapsed time.
	//
	// Parameters:
	//   - dt: tick duration in seconds; negative values are ignored
	Advance(dt float32)

	// Elapsed returns the total simulated time.
	//
	// Returns:
	//   - time.Duration: elapsed session time
	Elapsed() time.Duration

	// Due reports whether the named periodic timer fires at the current elapsed time.
	// Unknown names never fire.
	//
	// Parameters:
	//   - name: the timer name
	//
	// Returns:
	//   - bool: true if the periodic action should run this tick
	Due(name string) bool

	// Missing reports that a stage could not resolve its entity. Only the first report of
	// an occurrence is logged; later reports are silent until Found re-arms the stage.
	//
	// Parameters:
	//   - stage: the pipeline stage that was skipped
	//   - fields: extra context for the log entry
	//
	// Returns:
	//   - bool: true if this call logged
	Missing(stage string, fields ...zap.Field) bool

	// Found reports that a stage resolved its entity, ending any missing occurrence.
	//
	// Parameters:
	//   - stage: the pipeline stage
	Found(stage string)

	// Logger returns the logger diagnostics are written to.
	//
	// Returns:
	//   - *zap.Logger: the logger
	Logger() *zap.Logger
}

var _ Context = &contextImpl{}

// NewContext creates a Context at elapsed time zero.
//
// Parameters:
//   - options: functional options to configure the context
//
// Returns:
//   - Context: the newly created context
func NewContext(options ...ContextBuilderOption) Context {
	c := &contextImpl{
		periodics: make(map[string]*Periodic),
		missing:   make(map[string]bool),
		logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *contextImpl) Advance(dt float32) {
	if dt <= 0 {
		return
	}
	c.elapsed += time.Duration(float64(dt) * float64(time.Second))
}

func (c *contextImpl) Elapsed() time.Duration {
	return c.elapsed
}

func (c *contextImpl) Due(name string) bool {
	p, ok := c.periodics[name]
	if !ok {
		return false
	}
	return p.Due(c.elapsed)
}

func (c *contextImpl) Missing(stage string, fields ...zap.Field) bool {
	if c.missing[stage] {
		return false
	}
	c.missing[stage] = true
	c.logger.Warn("entity missing, stage skipped",
		append([]zap.Field{zap.String("stage", stage), zap.Duration("elapsed", c.elapsed)}, fields...)...,
	)
	return true
}

func (c *contextImpl) Found(stage string) {
	if !c.missing[stage] {
		return
	}
	delete(c.missing, stage)
	c.logger.Info("entity resolved again", zap.String("stage", stage), zap.Duration("elapsed", c.elapsed))
}

func (c *contextImpl) Logger() *zap.Logger {
	return c.logger
}
