package input

import "github.com/Carmen-Shannon/oxy-rig/common"

// Action is a logical button the gameplay code reacts to.
// Physical keys and mouse buttons are mapped onto actions through Bindings.
type Action uint8

const (
	ActionMoveForward Action = iota
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionSprint
	ActionJump
	ActionRotate

	actionCount
)

var actionNames = [actionCount]string{
	ActionMoveForward: "move_forward",
	ActionMoveBack:    "move_back",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionSprint:      "sprint",
	ActionJump:        "jump",
	ActionRotate:      "rotate",
}

// String returns the snake_case name of the action, or "unknown".
func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Bindings maps physical key codes and mouse button codes to logical actions.
// Several physical inputs may share one action; the action is held while any of them is held.
type Bindings struct {
	// Keys maps GLFW key codes to actions.
	Keys map[uint32]Action

	// MouseButtons maps GLFW mouse button codes to actions.
	MouseButtons map[uint32]Action
}

// DefaultBindings returns the fixed control scheme: WASD movement, shift to sprint,
// space to jump and the right mouse button to orbit the camera.
//
// Returns:
//   - Bindings: the default key and mouse bindings
func DefaultBindings() Bindings {
	return Bindings{
		Keys: map[uint32]Action{
			common.KeyW:          ActionMoveForward,
			common.KeyS:          ActionMoveBack,
			common.KeyA:          ActionMoveLeft,
			common.KeyD:          ActionMoveRight,
			common.KeyLeftShift:  ActionSprint,
			common.KeyRightShift: ActionSprint,
			common.KeySpace:      ActionJump,
		},
		MouseButtons: map[uint32]Action{
			common.MouseButtonRight: ActionRotate,
		},
	}
}
