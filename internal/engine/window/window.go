// Package window presents CPU framebuffers in an SDL2 window through a
// streaming texture.
package window

import (
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int // framebuffer size
	Height int
	Scale  int // window size multiplier, 1 when unset
	VSync  bool
}

// Window wraps an SDL2 window, its renderer and the ARGB8888 texture the
// framebuffer is uploaded into each frame.
type Window struct {
	config    Config
	log       *zap.Logger
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
	texture   *sdl.Texture
}

// New creates the window, renderer and streaming texture.
func New(cfg Config) (*Window, error) {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	w := &Window{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width*cfg.Scale),
		int32(cfg.Height*cfg.Scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, flags)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}
	if err := w.renderer.SetLogicalSize(int32(cfg.Width), int32(cfg.Height)); err != nil {
		w.log.Warn("failed to set logical size", zap.Error(err))
	}

	w.texture, err = w.renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(cfg.Width),
		int32(cfg.Height),
	)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("scale", cfg.Scale),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Present uploads buf into the texture and shows it. buf must match the
// window's framebuffer size.
func (w *Window) Present(buf *framebuffer.Buffer) error {
	if buf.Width() != w.config.Width || buf.Height() != w.config.Height {
		return fmt.Errorf("buffer is %dx%d, window expects %dx%d",
			buf.Width(), buf.Height(), w.config.Width, w.config.Height)
	}

	bytes, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("SDL_LockTexture failed: %w", err)
	}
	for y := 0; y < buf.Height(); y++ {
		row := bytes[y*pitch:]
		for x, p := range buf.Row(y) {
			binary.NativeEndian.PutUint32(row[x*4:], p)
		}
	}
	w.texture.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("SDL_RenderClear failed: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("SDL_RenderCopy failed: %w", err)
	}
	w.renderer.Present()
	return nil
}

// Close destroys the texture, renderer and window and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
