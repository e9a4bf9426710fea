package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type collectorImpl struct {
	mu *sync.Mutex

	bindings Bindings

	keysDown    map[uint32]bool
	buttonsDown map[uint32]bool
	pressed     [actionCount]bool

	hasCursor bool
	cursor    mgl32.Vec2

	pointer []mgl32.Vec2
	scroll  []float32
}

// Collector accumulates raw window events between ticks and turns them into Snapshots.
// Window callbacks feed the collector from the platform thread while the tick loop
// drains it with Flush, so all methods are safe for concurrent use.
type Collector interface {
	// KeyDown records a key press or repeat for the given GLFW key code.
	//
	// Parameters:
	//   - keyCode: the GLFW key code
	KeyDown(keyCode uint32)

	// KeyUp records a key release for the given GLFW key code.
	//
	// Parameters:
	//   - keyCode: the GLFW key code
	KeyUp(keyCode uint32)

	// MouseButtonDown records a mouse button press.
	//
	// Parameters:
	//   - button: the GLFW mouse button code
	MouseButtonDown(button uint32)

	// MouseButtonUp records a mouse button release.
	//
	// Parameters:
	//   - button: the GLFW mouse button code
	MouseButtonUp(button uint32)

	// MouseMove records an absolute cursor position. The delta from the previous
	// position is appended to the pending pointer deltas.
	//
	// Parameters:
	//   - x, y: cursor position in window coordinates
	MouseMove(x, y float32)

	// Scroll records a vertical scroll offset.
	//
	// Parameters:
	//   - delta: scroll offset (positive = away from the user)
	Scroll(delta float32)

	// Flush returns everything accumulated since the previous Flush as a Snapshot
	// and clears the per-tick buffers. Held state carries over.
	//
	// Returns:
	//   - Snapshot: the input for the tick being processed
	Flush() Snapshot

	// Bindings returns the active key and mouse bindings.
	//
	// Returns:
	//   - Bindings: the bindings in use
	Bindings() Bindings
}

var _ Collector = &collectorImpl{}

// NewCollector creates a Collector using DefaultBindings unless overridden.
//
// Parameters:
//   - options: functional options to configure the collector
//
// Returns:
//   - Collector: the newly created collector
func NewCollector(options ...CollectorBuilderOption) Collector {
	c := &collectorImpl{
		mu:          &sync.Mutex{},
		bindings:    DefaultBindings(),
		keysDown:    make(map[uint32]bool),
		buttonsDown: make(map[uint32]bool),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *collectorImpl) KeyDown(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.press(c.keysDown, c.bindings.Keys, keyCode)
}

func (c *collectorImpl) KeyUp(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.keysDown, keyCode)
}

func (c *collectorImpl) MouseButtonDown(button uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.press(c.buttonsDown, c.bindings.MouseButtons, button)
}

func (c *collectorImpl) MouseButtonUp(button uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.buttonsDown, button)
}

func (c *collectorImpl) MouseMove(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos := mgl32.Vec2{x, y}
	if c.hasCursor {
		c.pointer = append(c.pointer, pos.Sub(c.cursor))
	}
	c.cursor = pos
	c.hasCursor = true
}

func (c *collectorImpl) Scroll(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scroll = append(c.scroll, delta)
}

func (c *collectorImpl) Flush() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		pressed: c.pressed,
		pointer: c.pointer,
		scroll:  c.scroll,
	}
	for code := range c.keysDown {
		if a, ok := c.bindings.Keys[code]; ok && a < actionCount {
			s.held[a] = true
		}
	}
	for code := range c.buttonsDown {
		if a, ok := c.bindings.MouseButtons[code]; ok && a < actionCount {
			s.held[a] = true
		}
	}

	// Fresh slices rather than truncation: the snapshot keeps the old backing arrays.
	c.pointer = nil
	c.scroll = nil
	c.pressed = [actionCount]bool{}
	return s
}

func (c *collectorImpl) Bindings() Bindings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindings
}

// press marks code as down and records an edge for its action when no other
// physical input bound to the same action was already down.
// Caller must hold the mutex.
func (c *collectorImpl) press(down map[uint32]bool, bindings map[uint32]Action, code uint32) {
	if down[code] {
		return // GLFW key repeat
	}
	action, bound := bindings[code]
	if bound && action < actionCount && !c.actionDownLocked(action) {
		c.pressed[action] = true
	}
	down[code] = true
}

// actionDownLocked reports whether any physical input bound to a is down.
// Caller must hold the mutex.
func (c *collectorImpl) actionDownLocked(a Action) bool {
	for code := range c.keysDown {
		if b, ok := c.bindings.Keys[code]; ok && b == a {
			return true
		}
	}
	for code := range c.buttonsDown {
		if b, ok := c.bindings.MouseButtons[code]; ok && b == a {
			return true
		}
	}
	return false
}
