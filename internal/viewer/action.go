package viewer

// Action is a user command produced by a window backend's input layer.
type Action int

// Viewer actions.
const (
	ActionNone Action = iota
	ActionQuit
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionRollLeft
	ActionRollRight
	ActionToggleAutoRotate
	ActionReset
	ActionCapture
	ActionToggleWireframe
	ActionToggleCull
)

var actionNames = [...]string{
	ActionNone:             "none",
	ActionQuit:             "quit",
	ActionYawLeft:          "yaw-left",
	ActionYawRight:         "yaw-right",
	ActionPitchUp:          "pitch-up",
	ActionPitchDown:        "pitch-down",
	ActionRollLeft:         "roll-left",
	ActionRollRight:        "roll-right",
	ActionToggleAutoRotate: "toggle-auto-rotate",
	ActionReset:            "reset",
	ActionCapture:          "capture",
	ActionToggleWireframe:  "toggle-wireframe",
	ActionToggleCull:       "toggle-cull",
}

// String returns the action name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Help lists the key bindings shared by all backends.
const Help = `Arrows Left/Right: rotate around Y (yaw)
Arrows Up/Down:    rotate around X (pitch)
Q/E:               rotate around Z (roll)
Space:             toggle auto-rotation
R:                 reset rotation
S:                 save a capture
W:                 toggle wireframe
C:                 toggle back-face culling
Esc:               quit`
