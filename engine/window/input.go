package window

import "github.com/Carmen-Shannon/oxy-rig/engine/input"

// AttachInput routes the window's keyboard, mouse and scroll events into an input collector.
// Any callbacks previously registered for those events are replaced.
//
// Parameters:
//   - w: the window producing events
//   - c: the collector accumulating them until the next tick
func AttachInput(w Window, c input.Collector) {
	w.SetKeyDownCallback(c.KeyDown)
	w.SetKeyUpCallback(c.KeyUp)
	w.SetMouseButtonDownCallback(c.MouseButtonDown)
	w.SetMouseButtonUpCallback(c.MouseButtonUp)
	w.SetMouseMoveCallback(c.MouseMove)
	w.SetScrollCallback(c.Scroll)
}
