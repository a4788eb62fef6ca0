package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/renderer"
	"github.com/Faultbox/softraster/internal/engine/snapshot"
	"github.com/Faultbox/softraster/pkg/formats"
)

// Viewer renders a mesh according to a Session. Window backends feed it
// actions, call Update once per tick and present the buffer from Render.
type Viewer struct {
	mesh     *formats.Mesh
	session  *Session
	renderer *renderer.Renderer
	capture  *snapshot.Capture
	log      *zap.Logger
	frame    *framebuffer.Buffer
}

// New creates a viewer. capture may be nil to disable saving frames.
func New(mesh *formats.Mesh, session *Session, r *renderer.Renderer, capture *snapshot.Capture, log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewer{
		mesh:     mesh,
		session:  session,
		renderer: r,
		capture:  capture,
		log:      log,
	}
}

// Session returns the viewer's session.
func (v *Viewer) Session() *Session {
	return v.session
}

// Handle applies one action.
func (v *Viewer) Handle(a Action) {
	if a == ActionNone {
		return
	}
	v.session.Apply(a)

	switch a {
	case ActionToggleAutoRotate:
		v.log.Info("auto-rotation", zap.Bool("enabled", v.session.AutoRotate()))
	case ActionReset:
		v.log.Info("rotation reset")
	case ActionToggleWireframe:
		v.log.Info("wireframe", zap.Bool("enabled", v.session.Style().Wireframe))
	case ActionToggleCull:
		v.log.Info("back-face culling", zap.Bool("enabled", v.session.Style().CullBackfaces))
	default:
		v.log.Debug("action", zap.Stringer("action", a))
	}
}

// Update advances the session by one tick.
func (v *Viewer) Update() {
	v.session.Tick()
}

// Render draws the current frame and saves it if a capture was requested.
func (v *Viewer) Render() *framebuffer.Buffer {
	v.frame = v.renderer.Render(v.mesh, v.session.Rotation(), v.session.Style())
	if v.session.TakeCapture() {
		v.saveCapture()
	}
	return v.frame
}

// Capture saves the most recent frame, rendering one first if needed.
func (v *Viewer) Capture() (string, error) {
	if v.frame == nil {
		v.frame = v.renderer.Render(v.mesh, v.session.Rotation(), v.session.Style())
	}
	if v.capture == nil {
		return "", nil
	}
	return v.capture.Save(v.frame)
}

// Done reports whether the session asked to quit.
func (v *Viewer) Done() bool {
	return v.session.QuitRequested()
}

func (v *Viewer) saveCapture() {
	if v.capture == nil {
		v.log.Warn("capture requested but capturing is disabled")
		return
	}
	path, err := v.capture.Save(v.frame)
	if err != nil {
		v.log.Error("failed to save capture", zap.Error(err))
		return
	}
	v.log.Info("capture saved", zap.String("path", path))
}
