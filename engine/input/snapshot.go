package input

import "github.com/go-gl/mathgl/mgl32"

// Snapshot is the read-only view of input for a single tick.
// Held reflects level state at the end of the tick window, JustPressed reflects
// edges that happened inside it. Pointer and scroll deltas are kept in arrival
// order and are never summed ahead of time.
type Snapshot struct {
	held    [actionCount]bool
	pressed [actionCount]bool
	pointer []mgl32.Vec2
	scroll  []float32
}

// SnapshotOption is a functional option for building a Snapshot directly,
// mostly useful for scripted input and tests.
type SnapshotOption func(*Snapshot)

// NewSnapshot creates a Snapshot from the given options.
//
// Parameters:
//   - options: functional options describing held actions, presses and deltas
//
// Returns:
//   - Snapshot: the assembled snapshot
func NewSnapshot(options ...SnapshotOption) Snapshot {
	var s Snapshot
	for _, opt := range options {
		opt(&s)
	}
	return s
}

// WithHeld marks the given actions as held for the tick.
//
// Parameters:
//   - actions: actions to mark held
//
// Returns:
//   - SnapshotOption: option function to apply
func WithHeld(actions ...Action) SnapshotOption {
	return func(s *Snapshot) {
		for _, a := range actions {
			if a < actionCount {
				s.held[a] = true
			}
		}
	}
}

// WithPressed marks the given actions as newly pressed this tick.
// A press also implies the action is held.
//
// Parameters:
//   - actions: actions to mark pressed
//
// Returns:
//   - SnapshotOption: option function to apply
func WithPressed(actions ...Action) SnapshotOption {
	return func(s *Snapshot) {
		for _, a := range actions {
			if a < actionCount {
				s.pressed[a] = true
				s.held[a] = true
			}
		}
	}
}

// WithPointerDeltas appends pointer motion deltas in arrival order.
//
// Parameters:
//   - deltas: pointer motion deltas in pixels
//
// Returns:
//   - SnapshotOption: option function to apply
func WithPointerDeltas(deltas ...mgl32.Vec2) SnapshotOption {
	return func(s *Snapshot) {
		s.pointer = append(s.pointer, deltas...)
	}
}

// WithScrollDeltas appends vertical scroll deltas in arrival order.
//
// Parameters:
//   - deltas: scroll wheel offsets (positive = away from the user)
//
// Returns:
//   - SnapshotOption: option function to apply
func WithScrollDeltas(deltas ...float32) SnapshotOption {
	return func(s *Snapshot) {
		s.scroll = append(s.scroll, deltas...)
	}
}

// Held reports whether the action is currently held.
func (s Snapshot) Held(a Action) bool {
	if a >= actionCount {
		return false
	}
	return s.held[a]
}

// JustPressed reports whether the action went down during this tick.
func (s Snapshot) JustPressed(a Action) bool {
	if a >= actionCount {
		return false
	}
	return s.pressed[a]
}

// PointerDeltas returns the pointer motion deltas accumulated for this tick.
func (s Snapshot) PointerDeltas() []mgl32.Vec2 {
	return s.pointer
}

// ScrollDeltas returns the scroll deltas accumulated for this tick.
func (s Snapshot) ScrollDeltas() []float32 {
	return s.scroll
}
