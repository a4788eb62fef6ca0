// Package config handles viewer and renderer configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
)

// Config holds all settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds frame size and drawing style.
type RenderConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Background    string `yaml:"background"` // #rrggbb[aa]
	Fill          string `yaml:"fill"`
	Edge          string `yaml:"edge"`
	CullBackfaces bool   `yaml:"cull_backfaces"`
	Wireframe     bool   `yaml:"wireframe"`
	Workers       int    `yaml:"workers"` // row bands rasterized in parallel; 1 = single-threaded
}

// ViewerConfig holds interactive viewer settings. Angles are in degrees.
type ViewerConfig struct {
	Backend          string  `yaml:"backend"` // "sdl" or "ebiten"
	Title            string  `yaml:"title"`
	Mesh             string  `yaml:"mesh"`
	Pitch            float32 `yaml:"pitch"`
	Yaw              float32 `yaml:"yaw"`
	Roll             float32 `yaml:"roll"`
	Step             float32 `yaml:"step"`
	AutoRotateFactor float32 `yaml:"auto_rotate_factor"` // fraction of Step added to yaw per tick
	VSync            bool    `yaml:"vsync"`
	Scale            int     `yaml:"scale"` // window pixels per buffer pixel
	CaptureOnStart   bool    `yaml:"capture_on_start"`
}

// OutputConfig holds frame capture settings.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // "png" or "bmp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:         800,
			Height:        800,
			Background:    "#0a0a28",
			Fill:          "#ffff00",
			Edge:          "#282828",
			CullBackfaces: false,
			Wireframe:     true,
			Workers:       1,
		},
		Viewer: ViewerConfig{
			Backend:          "sdl",
			Title:            "Software Renderer",
			Mesh:             "assets/spaceship.obj",
			Pitch:            20,
			Yaw:              30,
			Roll:             0,
			Step:             5,
			AutoRotateFactor: 0.3,
			VSync:            true,
			Scale:            1,
			CaptureOnStart:   true,
		},
		Output: OutputConfig{
			Dir:    ".",
			Prefix: "capture",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Colors parses the configured background, fill and edge colors.
func (r RenderConfig) Colors() (background, fill, edge framebuffer.Color, err error) {
	if background, err = framebuffer.ParseHex(r.Background); err != nil {
		return background, fill, edge, fmt.Errorf("render.background: %w", err)
	}
	if fill, err = framebuffer.ParseHex(r.Fill); err != nil {
		return background, fill, edge, fmt.Errorf("render.fill: %w", err)
	}
	if edge, err = framebuffer.ParseHex(r.Edge); err != nil {
		return background, fill, edge, fmt.Errorf("render.edge: %w", err)
	}
	return background, fill, edge, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height))
	}
	if c.Render.Workers < 1 {
		errs = append(errs, fmt.Errorf("render.workers must be at least 1, got %d", c.Render.Workers))
	}
	if _, _, _, err := c.Render.Colors(); err != nil {
		errs = append(errs, err)
	}
	switch c.Viewer.Backend {
	case "sdl", "ebiten":
	default:
		errs = append(errs, fmt.Errorf("viewer.backend must be sdl or ebiten, got %q", c.Viewer.Backend))
	}
	if c.Viewer.Scale < 1 {
		errs = append(errs, fmt.Errorf("viewer.scale must be at least 1, got %d", c.Viewer.Scale))
	}
	switch c.Output.Format {
	case "png", "bmp":
	default:
		errs = append(errs, fmt.Errorf("output.format must be png or bmp, got %q", c.Output.Format))
	}
	return errors.Join(errs...)
}
