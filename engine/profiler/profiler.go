package profiler

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Stats is one profiler report.
type Stats struct {
	TicksPerSecond float64
	WorstTick      time.Duration
	HeapMB         float64
	AllocRateMB    float64
	GCCount        uint32
	MaxGCPause     time.Duration
}

// Profiler tracks tick rate, tick duration and memory statistics.
// Reports are logged at a configurable interval.
type Profiler struct {
	tickCount      int
	lastTime       time.Time
	lastTick       time.Time
	worstTick      time.Duration
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now    func() time.Time
	logger *zap.Logger
}

// NewProfiler creates a new Profiler reporting every interval.
// Non-positive intervals default to 1 second.
//
// Parameters:
//   - interval: time between reports
//   - logger: destination for reports; nil disables logging
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration, logger *zap.Logger) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Profiler{
		updateInterval: interval,
		now:            time.Now,
		logger:         logger,
	}
	p.lastTime = p.now()
	p.lastTick = p.lastTime
	return p
}

// Tick should be called once per engine tick.
// When the update interval has elapsed, statistics are gathered, logged and returned.
//
// Returns:
//   - Stats: the report, valid only when the bool is true
//   - bool: true if a report was produced this tick
func (p *Profiler) Tick() (Stats, bool) {
	p.tickCount++
	current := p.now()
	if d := current.Sub(p.lastTick); d > p.worstTick {
		p.worstTick = d
	}
	p.lastTick = current

	elapsed := current.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return Stats{}, false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		TicksPerSecond: float64(p.tickCount) / elapsed.Seconds(),
		WorstTick:      p.worstTick,
		HeapMB:         float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:    float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:        p.memStats.NumGC,
	}

	// PauseNs is a circular buffer of the last 256 pauses.
	start := p.lastGCCount
	if s.GCCount-start > 256 {
		start = s.GCCount - 256
	}
	for i := start; i < s.GCCount; i++ {
		if pause := time.Duration(p.memStats.PauseNs[i%256]); pause > s.MaxGCPause {
			s.MaxGCPause = pause
		}
	}

	p.logger.Info("profiler",
		zap.Float64("tps", s.TicksPerSecond),
		zap.Duration("worst_tick", s.WorstTick),
		zap.Float64("heap_mb", s.HeapMB),
		zap.Float64("alloc_rate_mb", s.AllocRateMB),
		zap.Uint32("gc", s.GCCount),
		zap.Duration("max_gc_pause", s.MaxGCPause),
	)

	p.tickCount = 0
	p.worstTick = 0
	p.lastTime = current
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return s, true
}
