package raster

import (
	"image"
	"testing"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/pkg/math"
)

func TestSplitRowsCoversTarget(t *testing.T) {
	b := framebuffer.New(10, 23)
	bands := SplitRows(b, 4)
	if len(bands) != 4 {
		t.Fatalf("expected 4 bands, got %d", len(bands))
	}

	next := 0
	for i, band := range bands {
		r := band.Bounds()
		if r.Min.Y != next {
			t.Errorf("band %d starts at %d, want %d", i, r.Min.Y, next)
		}
		if r.Min.X != 0 || r.Max.X != 10 {
			t.Errorf("band %d spans x %d..%d", i, r.Min.X, r.Max.X)
		}
		next = r.Max.Y
	}
	if next != 23 {
		t.Errorf("bands end at %d, want 23", next)
	}
}

func TestSplitRowsMoreBandsThanRows(t *testing.T) {
	bands := SplitRows(framebuffer.New(4, 2), 8)
	if len(bands) != 2 {
		t.Errorf("expected 2 bands, got %d", len(bands))
	}
}

func TestBandClipsWrites(t *testing.T) {
	b := framebuffer.New(4, 4)
	band := NewBand(b, 1, 3)
	if band.Bounds() != image.Rect(0, 1, 4, 3) {
		t.Fatalf("Bounds() = %v", band.Bounds())
	}

	DrawLine(band, math.Vec2i{X: 0, Y: 0}, math.Vec2i{X: 0, Y: 3}, red)
	for y := 0; y < 4; y++ {
		inside := y >= 1 && y < 3
		if got := b.Pixel(0, y) == red.Pack(); got != inside {
			t.Errorf("row %d written = %v, want %v", y, got, inside)
		}
	}
}
