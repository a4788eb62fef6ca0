// Package raster draws screen-space triangles and lines into a pixel target.
//
// There is no depth test and no blending: every write overwrites, so when
// faces overlap the one drawn last wins.
package raster

import (
	"image"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/pkg/formats"
	"github.com/Faultbox/softraster/pkg/math"
)

// Target is anything the rasterizer can write pixels into.
// Put must silently ignore coordinates outside Bounds.
type Target interface {
	Bounds() image.Rectangle
	Put(x, y int, c framebuffer.Color)
}

// Edge returns the signed edge function of c against the line a→b.
// Its magnitude is twice the area of triangle abc; its sign gives the
// winding (positive is clockwise on a y-down screen).
func Edge(a, b, c math.Vec2i) int {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// FillTriangle fills every pixel center inside triangle abc, edges included.
// Zero-area triangles draw nothing.
func FillTriangle(t Target, a, b, c math.Vec2i, color framebuffer.Color) {
	area := Edge(a, b, c)
	if area == 0 {
		return
	}

	r := t.Bounds()
	minX := max(min(a.X, b.X, c.X), r.Min.X)
	minY := max(min(a.Y, b.Y, c.Y), r.Min.Y)
	maxX := min(max(a.X, b.X, c.X), r.Max.X-1)
	maxY := min(max(a.Y, b.Y, c.Y), r.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math.Vec2i{X: x, Y: y}
			w0 := Edge(b, c, p)
			w1 := Edge(c, a, p)
			w2 := Edge(a, b, p)
			if area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0 ||
				area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0 {
				t.Put(x, y, color)
			}
		}
	}
}

// DrawLine draws the segment p0→p1, both endpoints included, with
// Bresenham's integer algorithm.
func DrawLine(t Target, p0, p1 math.Vec2i, color framebuffer.Color) {
	x0, y0 := p0.X, p0.Y
	dx := abs(p1.X - x0)
	dy := -abs(p1.Y - y0)
	sx, sy := 1, 1
	if x0 > p1.X {
		sx = -1
	}
	if y0 > p1.Y {
		sy = -1
	}
	err := dx + dy

	for {
		t.Put(x0, y0, color)
		if x0 == p1.X && y0 == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawWireframeTriangle outlines triangle abc. Shared corners are drawn
// more than once.
func DrawWireframeTriangle(t Target, a, b, c math.Vec2i, color framebuffer.Color) {
	DrawLine(t, a, b, color)
	DrawLine(t, b, c, color)
	DrawLine(t, c, a, color)
}

// Style selects colors and per-face options for RenderFaces.
type Style struct {
	Fill          framebuffer.Color
	Edge          framebuffer.Color
	CullBackfaces bool // skip faces whose screen-space Edge is <= 0
	Wireframe     bool // outline each drawn face in Edge
}

// RenderFaces draws faces in slice order using the screen points they index.
// No sorting is done, so later faces overwrite earlier ones.
func RenderFaces(t Target, points []math.Vec2i, faces []formats.Triangle, style Style) {
	for _, f := range faces {
		a, b, c := points[f[0]], points[f[1]], points[f[2]]
		if style.CullBackfaces && Edge(a, b, c) <= 0 {
			continue
		}
		FillTriangle(t, a, b, c, style.Fill)
		if style.Wireframe {
			DrawWireframeTriangle(t, a, b, c, style.Edge)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
