package session

import (
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/player"
)

// BindTarget points the rig at the player once the player exists. It is safe to call every
// tick: once the rig has a target, or while the slot is empty, it does nothing.
//
// Parameters:
//   - rig: the camera rig
//   - slot: the player slot
//
// Returns:
//   - bool: true only on the call that performed the binding
func BindTarget(rig camera.Rig, slot player.Slot) bool {
	if _, bound := rig.FollowTarget(); bound {
		return false
	}
	body, ok := slot.Body()
	if !ok {
		return false
	}
	return rig.Bind(body)
}
