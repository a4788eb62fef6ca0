// Package renderer composes the transform stage and the rasterizer into a
// per-frame render of a mesh.
package renderer

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/softraster/internal/engine/camera"
	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/raster"
	"github.com/Faultbox/softraster/internal/logger"
	"github.com/Faultbox/softraster/pkg/formats"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// Workers > 1 splits the frame into that many row bands rasterized
	// concurrently. Each band walks every face in mesh order, so the
	// output is identical to the single-threaded path.
	Workers int
}

// Style holds the per-frame drawing options.
type Style struct {
	Background    framebuffer.Color
	Fill          framebuffer.Color
	Edge          framebuffer.Color
	CullBackfaces bool
	Wireframe     bool
}

// Renderer owns the pixel buffer and redraws it from scratch every frame.
// It keeps no state between frames besides the buffer itself.
type Renderer struct {
	config Config
	buf    *framebuffer.Buffer
}

// New creates a renderer with a cleared width×height buffer.
func New(cfg Config) *Renderer {
	cfg.Workers = max(cfg.Workers, 1)
	r := &Renderer{
		config: cfg,
		buf:    framebuffer.New(cfg.Width, cfg.Height),
	}
	logger.Debug("renderer created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("workers", cfg.Workers),
	)
	return r
}

// Buffer returns the render target.
func (r *Renderer) Buffer() *framebuffer.Buffer {
	return r.buf
}

// Render clears the buffer, projects the mesh with rot into the buffer's
// viewport and draws every face. The returned buffer is the renderer's own
// and is overwritten by the next call.
func (r *Renderer) Render(mesh *formats.Mesh, rot camera.Rotation, style Style) *framebuffer.Buffer {
	r.buf.Clear(style.Background)
	r.buf.SetDrawColor(style.Fill)

	points := camera.Project(mesh.Vertices, r.buf.Width(), r.buf.Height(), rot)
	rs := raster.Style{
		Fill:          style.Fill,
		Edge:          style.Edge,
		CullBackfaces: style.CullBackfaces,
		Wireframe:     style.Wireframe,
	}

	if r.config.Workers == 1 {
		raster.RenderFaces(r.buf, points, mesh.Faces, rs)
		return r.buf
	}

	var g errgroup.Group
	for _, band := range raster.SplitRows(r.buf, r.config.Workers) {
		g.Go(func() error {
			raster.RenderFaces(band, points, mesh.Faces, rs)
			return nil
		})
	}
	_ = g.Wait()
	return r.buf
}
