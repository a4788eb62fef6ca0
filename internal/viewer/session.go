// Package viewer holds the interactive session state (rotation and style
// toggles) and turns it into rendered frames.
package viewer

import (
	"github.com/Faultbox/softraster/internal/engine/camera"
	"github.com/Faultbox/softraster/internal/engine/renderer"
)

// SessionConfig holds the session's starting state. Angles are in degrees.
type SessionConfig struct {
	Pitch, Yaw, Roll float32
	Step             float32 // per key press
	AutoRotateFactor float32 // fraction of Step added to yaw per Tick while auto-rotating
	Style            renderer.Style
}

// Session is the per-run mutable state owned by the event loop. The render
// core only ever sees copies of its rotation and style.
type Session struct {
	initial camera.Rotation
	rot     camera.Rotation
	step    float32
	auto    float32

	autoRotate bool
	style      renderer.Style

	quit    bool
	capture bool
}

// NewSession creates a session at the configured initial rotation.
func NewSession(cfg SessionConfig) *Session {
	initial := camera.FromDegrees(cfg.Pitch, cfg.Yaw, cfg.Roll)
	return &Session{
		initial: initial,
		rot:     initial,
		step:    camera.FromDegrees(cfg.Step, 0, 0).X,
		auto:    cfg.AutoRotateFactor,
		style:   cfg.Style,
	}
}

// Apply updates the session for one action.
func (s *Session) Apply(a Action) {
	switch a {
	case ActionQuit:
		s.quit = true
	case ActionYawLeft:
		s.rot.Y -= s.step
	case ActionYawRight:
		s.rot.Y += s.step
	case ActionPitchUp:
		s.rot.X -= s.step
	case ActionPitchDown:
		s.rot.X += s.step
	case ActionRollLeft:
		s.rot.Z -= s.step
	case ActionRollRight:
		s.rot.Z += s.step
	case ActionToggleAutoRotate:
		s.autoRotate = !s.autoRotate
	case ActionReset:
		s.rot = s.initial
	case ActionCapture:
		s.capture = true
	case ActionToggleWireframe:
		s.style.Wireframe = !s.style.Wireframe
	case ActionToggleCull:
		s.style.CullBackfaces = !s.style.CullBackfaces
	}
}

// Tick advances auto-rotation by one frame.
func (s *Session) Tick() {
	if s.autoRotate {
		s.rot.Y += s.step * s.auto
	}
}

// Rotation returns the current rotation.
func (s *Session) Rotation() camera.Rotation {
	return s.rot
}

// Style returns the current drawing style.
func (s *Session) Style() renderer.Style {
	return s.style
}

// AutoRotate reports whether auto-rotation is on.
func (s *Session) AutoRotate() bool {
	return s.autoRotate
}

// QuitRequested reports whether a quit action was received.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// TakeCapture reports and clears a pending capture request.
func (s *Session) TakeCapture() bool {
	c := s.capture
	s.capture = false
	return c
}
