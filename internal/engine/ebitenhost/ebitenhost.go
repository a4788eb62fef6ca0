// Package ebitenhost runs a viewer in an Ebitengine window. It is the
// alternative to the SDL2 window and input packages.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/viewer"
)

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int
	Height int
	Scale  int
	VSync  bool
}

// Held rotation keys repeat after repeatDelay ticks, then every repeatInterval ticks.
const (
	repeatDelay    = 24
	repeatInterval = 3
)

var keymap = []struct {
	key    ebiten.Key
	action viewer.Action
}{
	{ebiten.KeyEscape, viewer.ActionQuit},
	{ebiten.KeyArrowLeft, viewer.ActionYawLeft},
	{ebiten.KeyArrowRight, viewer.ActionYawRight},
	{ebiten.KeyArrowUp, viewer.ActionPitchUp},
	{ebiten.KeyArrowDown, viewer.ActionPitchDown},
	{ebiten.KeyQ, viewer.ActionRollLeft},
	{ebiten.KeyE, viewer.ActionRollRight},
	{ebiten.KeySpace, viewer.ActionToggleAutoRotate},
	{ebiten.KeyR, viewer.ActionReset},
	{ebiten.KeyS, viewer.ActionCapture},
	{ebiten.KeyW, viewer.ActionToggleWireframe},
	{ebiten.KeyC, viewer.ActionToggleCull},
}

// Run opens the window and drives v until it quits or the window closes.
// It blocks and must be called from the main goroutine.
func Run(v *viewer.Viewer, cfg Config) error {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetTPS(60)

	g := &game{v: v, width: cfg.Width, height: cfg.Height}
	return ebiten.RunGame(g)
}

type game struct {
	v             *viewer.Viewer
	width, height int
	img           *ebiten.Image
	pix           []byte
}

func (g *game) Update() error {
	for _, k := range keymap {
		if fires(inpututil.KeyPressDuration(k.key), k.action) {
			g.v.Handle(k.action)
		}
	}
	if g.v.Done() {
		return ebiten.Termination
	}
	g.v.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	buf := g.v.Render()
	if g.img == nil {
		g.img = ebiten.NewImage(buf.Width(), buf.Height())
		g.pix = make([]byte, buf.Width()*buf.Height()*4)
	}
	present(g.img, g.pix, buf)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func present(img *ebiten.Image, pix []byte, buf *framebuffer.Buffer) {
	buf.CopyRGBA(pix)
	img.WritePixels(pix)
}

// fires reports whether a key held for d ticks triggers action this tick.
func fires(d int, action viewer.Action) bool {
	switch {
	case d == 1:
		return true
	case d < repeatDelay || !repeats(action):
		return false
	default:
		return (d-repeatDelay)%repeatInterval == 0
	}
}

func repeats(a viewer.Action) bool {
	switch a {
	case viewer.ActionYawLeft, viewer.ActionYawRight,
		viewer.ActionPitchUp, viewer.ActionPitchDown,
		viewer.ActionRollLeft, viewer.ActionRollRight:
		return true
	}
	return false
}
