// Package input turns SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/softraster/internal/viewer"
)

// keymap binds scancodes to actions.
var keymap = map[sdl.Scancode]viewer.Action{
	sdl.SCANCODE_ESCAPE: viewer.ActionQuit,
	sdl.SCANCODE_LEFT:   viewer.ActionYawLeft,
	sdl.SCANCODE_RIGHT:  viewer.ActionYawRight,
	sdl.SCANCODE_UP:     viewer.ActionPitchUp,
	sdl.SCANCODE_DOWN:   viewer.ActionPitchDown,
	sdl.SCANCODE_Q:      viewer.ActionRollLeft,
	sdl.SCANCODE_E:      viewer.ActionRollRight,
	sdl.SCANCODE_SPACE:  viewer.ActionToggleAutoRotate,
	sdl.SCANCODE_R:      viewer.ActionReset,
	sdl.SCANCODE_S:      viewer.ActionCapture,
	sdl.SCANCODE_W:      viewer.ActionToggleWireframe,
	sdl.SCANCODE_C:      viewer.ActionToggleCull,
}

// ActionFor returns the action bound to a key press. Held keys repeat only
// the rotation actions.
func ActionFor(scancode sdl.Scancode, repeat bool) viewer.Action {
	a, ok := keymap[scancode]
	if !ok {
		return viewer.ActionNone
	}
	if repeat && !isRotation(a) {
		return viewer.ActionNone
	}
	return a
}

func isRotation(a viewer.Action) bool {
	switch a {
	case viewer.ActionYawLeft, viewer.ActionYawRight,
		viewer.ActionPitchUp, viewer.ActionPitchDown,
		viewer.ActionRollLeft, viewer.ActionRollRight:
		return true
	}
	return false
}

// Input collects the actions of one frame.
type Input struct {
	actions []viewer.Action
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		actions: make([]viewer.Action, 0, 16),
	}
}

// Update drains the SDL event queue. Window close produces ActionQuit.
func (i *Input) Update() {
	i.actions = i.actions[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.actions = append(i.actions, viewer.ActionQuit)

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if a := ActionFor(e.Keysym.Scancode, e.Repeat != 0); a != viewer.ActionNone {
				i.actions = append(i.actions, a)
			}
		}
	}
}

// Actions returns the actions from the last Update, in event order.
func (i *Input) Actions() []viewer.Action {
	return i.actions
}
