package raster

import (
	"image"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
)

// Band restricts writes to a row range of a target. Bands over disjoint
// rows of one buffer can be drawn concurrently.
type Band struct {
	dst  Target
	rect image.Rectangle
}

// NewBand returns a view of dst limited to rows [minY, maxY).
func NewBand(dst Target, minY, maxY int) *Band {
	r := dst.Bounds()
	return &Band{
		dst:  dst,
		rect: image.Rect(r.Min.X, minY, r.Max.X, maxY).Intersect(r),
	}
}

// Bounds implements Target.
func (b *Band) Bounds() image.Rectangle {
	return b.rect
}

// Put implements Target.
func (b *Band) Put(x, y int, c framebuffer.Color) {
	if !(image.Point{X: x, Y: y}).In(b.rect) {
		return
	}
	b.dst.Put(x, y, c)
}

// SplitRows divides dst into n bands of near-equal height, top to bottom.
// Fewer bands are returned when dst has fewer than n rows.
func SplitRows(dst Target, n int) []*Band {
	r := dst.Bounds()
	rows := r.Dy()
	n = max(min(n, rows), 1)

	bands := make([]*Band, 0, n)
	for i := 0; i < n; i++ {
		y0 := r.Min.Y + rows*i/n
		y1 := r.Min.Y + rows*(i+1)/n
		bands = append(bands, NewBand(dst, y0, y1))
	}
	return bands
}
