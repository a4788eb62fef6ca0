// Package app wires configuration, the mesh, the renderer and a window
// backend into the interactive viewer.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/config"
	"github.com/Faultbox/softraster/internal/engine/ebitenhost"
	"github.com/Faultbox/softraster/internal/engine/input"
	"github.com/Faultbox/softraster/internal/engine/renderer"
	"github.com/Faultbox/softraster/internal/engine/snapshot"
	"github.com/Faultbox/softraster/internal/engine/window"
	"github.com/Faultbox/softraster/internal/logger"
	"github.com/Faultbox/softraster/internal/viewer"
	"github.com/Faultbox/softraster/pkg/formats"
)

// frameTime paces the SDL loop when vsync is off.
const frameTime = time.Second / 60

// App is the interactive viewer instance.
type App struct {
	config *config.Config
	log    *zap.Logger
	mesh   *formats.Mesh
	viewer *viewer.Viewer
	window *window.Window
}

// New loads the configured mesh and builds the viewer. No window is opened
// until Run.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("loading mesh", zap.String("path", cfg.Viewer.Mesh))

	mesh, err := formats.LoadOBJ(cfg.Viewer.Mesh)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}
	size := mesh.Bounds().Size()
	log.Info("mesh loaded",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", len(mesh.Faces)),
		zap.Float32("size_x", size.X),
		zap.Float32("size_y", size.Y),
		zap.Float32("size_z", size.Z),
	)

	v, err := NewViewer(cfg, mesh)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		log:    log,
		mesh:   mesh,
		viewer: v,
	}, nil
}

// NewViewer builds a viewer for mesh from cfg.
func NewViewer(cfg *config.Config, mesh *formats.Mesh) (*viewer.Viewer, error) {
	background, fill, edge, err := cfg.Render.Colors()
	if err != nil {
		return nil, err
	}

	capture, err := snapshot.New(cfg.Output.Dir, cfg.Output.Prefix, cfg.Output.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to set up capture: %w", err)
	}

	r := renderer.New(renderer.Config{
		Width:   cfg.Render.Width,
		Height:  cfg.Render.Height,
		Workers: cfg.Render.Workers,
	})

	session := viewer.NewSession(viewer.SessionConfig{
		Pitch:            cfg.Viewer.Pitch,
		Yaw:              cfg.Viewer.Yaw,
		Roll:             cfg.Viewer.Roll,
		Step:             cfg.Viewer.Step,
		AutoRotateFactor: cfg.Viewer.AutoRotateFactor,
		Style: renderer.Style{
			Background:    background,
			Fill:          fill,
			Edge:          edge,
			CullBackfaces: cfg.Render.CullBackfaces,
			Wireframe:     cfg.Render.Wireframe,
		},
	})

	return viewer.New(mesh, session, r, capture, logger.Named("viewer")), nil
}

// Viewer returns the app's viewer.
func (a *App) Viewer() *viewer.Viewer {
	return a.viewer
}

// Run saves the first frame if configured, then runs the selected backend
// until the user quits.
func (a *App) Run() error {
	if a.config.Viewer.CaptureOnStart {
		path, err := a.viewer.Capture()
		if err != nil {
			a.log.Warn("failed to save initial capture", zap.Error(err))
		} else {
			a.log.Info("initial capture saved", zap.String("path", path))
		}
	}

	a.log.Info("starting viewer", zap.String("backend", a.config.Viewer.Backend))
	switch a.config.Viewer.Backend {
	case "ebiten":
		return ebitenhost.Run(a.viewer, ebitenhost.Config{
			Title:  a.config.Viewer.Title,
			Width:  a.config.Render.Width,
			Height: a.config.Render.Height,
			Scale:  a.config.Viewer.Scale,
			VSync:  a.config.Viewer.VSync,
		})
	default:
		return a.runSDL()
	}
}

func (a *App) runSDL() error {
	var err error
	a.window, err = window.New(window.Config{
		Title:  a.config.Viewer.Title,
		Width:  a.config.Render.Width,
		Height: a.config.Render.Height,
		Scale:  a.config.Viewer.Scale,
		VSync:  a.config.Viewer.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	in := input.New()

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for !a.viewer.Done() {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Input
		in.Update()
		for _, action := range in.Actions() {
			a.viewer.Handle(action)
		}
		if a.viewer.Done() {
			break
		}

		// 2. Update
		a.viewer.Update()

		// 3. Render and present
		if err := a.window.Present(a.viewer.Render()); err != nil {
			return fmt.Errorf("present error: %w", err)
		}

		if !a.config.Viewer.VSync {
			if elapsed := time.Since(now); elapsed < frameTime {
				time.Sleep(frameTime - elapsed)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("viewer loop ended")
	return nil
}

// Close releases the window, if one was opened.
func (a *App) Close() {
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
