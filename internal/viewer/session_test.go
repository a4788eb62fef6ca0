package viewer

import (
	"math"
	"testing"

	"github.com/Faultbox/softraster/internal/engine/renderer"
)

func testSessionConfig() SessionConfig {
	return SessionConfig{
		Pitch:            20,
		Yaw:              30,
		Roll:             0,
		Step:             5,
		AutoRotateFactor: 0.3,
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestSessionInitialRotation(t *testing.T) {
	s := NewSession(testSessionConfig())
	pitch, yaw, roll := s.Rotation().Degrees()
	if !approx(pitch, 20) || !approx(yaw, 30) || !approx(roll, 0) {
		t.Errorf("initial rotation = (%v, %v, %v), want (20, 30, 0)", pitch, yaw, roll)
	}
}

func TestSessionRotationActions(t *testing.T) {
	tests := []struct {
		action                       Action
		wantPitch, wantYaw, wantRoll float32
	}{
		{ActionYawLeft, 20, 25, 0},
		{ActionYawRight, 20, 35, 0},
		{ActionPitchUp, 15, 30, 0},
		{ActionPitchDown, 25, 30, 0},
		{ActionRollLeft, 20, 30, -5},
		{ActionRollRight, 20, 30, 5},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			s := NewSession(testSessionConfig())
			s.Apply(tt.action)
			pitch, yaw, roll := s.Rotation().Degrees()
			if !approx(pitch, tt.wantPitch) || !approx(yaw, tt.wantYaw) || !approx(roll, tt.wantRoll) {
				t.Errorf("rotation = (%v, %v, %v), want (%v, %v, %v)",
					pitch, yaw, roll, tt.wantPitch, tt.wantYaw, tt.wantRoll)
			}
		})
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession(testSessionConfig())
	want := s.Rotation()

	s.Apply(ActionYawRight)
	s.Apply(ActionPitchDown)
	s.Apply(ActionRollLeft)
	if s.Rotation() == want {
		t.Fatal("rotation did not change")
	}

	s.Apply(ActionReset)
	if s.Rotation() != want {
		t.Errorf("after reset rotation = %+v, want %+v", s.Rotation(), want)
	}
}

func TestSessionAutoRotate(t *testing.T) {
	s := NewSession(testSessionConfig())

	s.Tick()
	if _, yaw, _ := s.Rotation().Degrees(); !approx(yaw, 30) {
		t.Errorf("yaw changed without auto-rotation: %v", yaw)
	}

	s.Apply(ActionToggleAutoRotate)
	if !s.AutoRotate() {
		t.Fatal("auto-rotation not enabled")
	}
	for range 10 {
		s.Tick()
	}
	// 10 ticks of 0.3 * 5 degrees.
	if _, yaw, _ := s.Rotation().Degrees(); !approx(yaw, 45) {
		t.Errorf("yaw = %v, want 45", yaw)
	}

	s.Apply(ActionToggleAutoRotate)
	s.Tick()
	if _, yaw, _ := s.Rotation().Degrees(); !approx(yaw, 45) {
		t.Errorf("yaw changed after disabling auto-rotation: %v", yaw)
	}
}

func TestSessionStyleToggles(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Style = renderer.Style{Wireframe: true}
	s := NewSession(cfg)

	s.Apply(ActionToggleWireframe)
	if s.Style().Wireframe {
		t.Error("wireframe still enabled")
	}
	s.Apply(ActionToggleCull)
	if !s.Style().CullBackfaces {
		t.Error("culling not enabled")
	}
}

func TestSessionQuitAndCapture(t *testing.T) {
	s := NewSession(testSessionConfig())
	if s.QuitRequested() {
		t.Error("new session requests quit")
	}
	if s.TakeCapture() {
		t.Error("new session has pending capture")
	}

	s.Apply(ActionCapture)
	if !s.TakeCapture() {
		t.Error("capture not pending")
	}
	if s.TakeCapture() {
		t.Error("capture not cleared after take")
	}

	s.Apply(ActionQuit)
	if !s.QuitRequested() {
		t.Error("quit not requested")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "none"},
		{ActionQuit, "quit"},
		{ActionToggleCull, "toggle-cull"},
		{Action(-1), "unknown"},
		{Action(100), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", int(tt.action), got, tt.want)
		}
	}
}
