package raster

import (
	"testing"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/pkg/formats"
	"github.com/Faultbox/softraster/pkg/math"
)

var (
	red    = framebuffer.RGB(255, 0, 0)
	blue   = framebuffer.RGB(0, 0, 255)
	yellow = framebuffer.RGB(255, 255, 0)
	gray   = framebuffer.RGB(40, 40, 40)
)

// recorder is a Target that remembers every Put, including out-of-bounds ones.
type recorder struct {
	*framebuffer.Buffer
	puts []math.Vec2i
}

func newRecorder(w, h int) *recorder {
	return &recorder{Buffer: framebuffer.New(w, h)}
}

func (r *recorder) Put(x, y int, c framebuffer.Color) {
	r.puts = append(r.puts, math.Vec2i{X: x, Y: y})
	r.Buffer.Put(x, y, c)
}

func countColor(b *framebuffer.Buffer, c framebuffer.Color) int {
	n := 0
	for _, p := range b.Pixels() {
		if p == c.Pack() {
			n++
		}
	}
	return n
}

func TestEdgeAntisymmetry(t *testing.T) {
	a := math.Vec2i{X: 1, Y: 2}
	b := math.Vec2i{X: 7, Y: -3}
	c := math.Vec2i{X: 4, Y: 9}

	e := Edge(a, b, c)
	if e == 0 {
		t.Fatal("test triangle is degenerate")
	}
	swaps := map[string]int{
		"a<->b": Edge(b, a, c),
		"b<->c": Edge(a, c, b),
		"a<->c": Edge(c, b, a),
	}
	for name, got := range swaps {
		if got != -e {
			t.Errorf("swap %s: Edge = %d, want %d", name, got, -e)
		}
	}
}

func TestEdgeIsTwiceArea(t *testing.T) {
	// Right triangle with legs 4 and 3: area 6.
	a := math.Vec2i{X: 0, Y: 0}
	b := math.Vec2i{X: 4, Y: 0}
	c := math.Vec2i{X: 0, Y: 3}
	if got := Edge(a, b, c); got != 12 && got != -12 {
		t.Errorf("|Edge| = %d, want 12", got)
	}
}

func TestFillTriangleColinearDrawsNothing(t *testing.T) {
	r := newRecorder(20, 20)
	FillTriangle(r, math.Vec2i{X: 1, Y: 1}, math.Vec2i{X: 5, Y: 5}, math.Vec2i{X: 10, Y: 10}, red)
	if len(r.puts) != 0 {
		t.Errorf("expected no writes, got %d", len(r.puts))
	}
}

func TestFillTriangleBothWindings(t *testing.T) {
	a := math.Vec2i{X: 2, Y: 2}
	b := math.Vec2i{X: 12, Y: 2}
	c := math.Vec2i{X: 2, Y: 12}

	cw := framebuffer.New(16, 16)
	FillTriangle(cw, a, b, c, red)
	ccw := framebuffer.New(16, 16)
	FillTriangle(ccw, a, c, b, red)

	n := countColor(cw, red)
	// Inclusive right triangle with legs of 10 pixels: 11+10+...+1 pixels.
	if n != 66 {
		t.Errorf("expected 66 filled pixels, got %d", n)
	}
	for i := range cw.Pixels() {
		if cw.Pixels()[i] != ccw.Pixels()[i] {
			t.Fatalf("windings differ at pixel %d", i)
		}
	}
	for _, p := range []math.Vec2i{a, b, c, {X: 7, Y: 7}} {
		if cw.Pixel(p.X, p.Y) != red.Pack() {
			t.Errorf("expected %v to be filled", p)
		}
	}
	if cw.Pixel(8, 8) == red.Pack() {
		t.Error("expected (8, 8) to be outside")
	}
}

func TestFillTriangleClampsToBounds(t *testing.T) {
	r := newRecorder(10, 10)
	FillTriangle(r, math.Vec2i{X: -50, Y: -50}, math.Vec2i{X: 200, Y: -50}, math.Vec2i{X: -50, Y: 200}, red)
	for _, p := range r.puts {
		if p.X < 0 || p.Y < 0 || p.X >= 10 || p.Y >= 10 {
			t.Fatalf("Put called out of bounds at %v", p)
		}
	}
	if got := countColor(r.Buffer, red); got != 100 {
		t.Errorf("expected the whole 10x10 buffer filled, got %d", got)
	}
}

func TestFillTriangleOffscreen(t *testing.T) {
	r := newRecorder(10, 10)
	FillTriangle(r, math.Vec2i{X: 20, Y: 20}, math.Vec2i{X: 30, Y: 20}, math.Vec2i{X: 20, Y: 30}, red)
	if len(r.puts) != 0 {
		t.Errorf("expected no writes, got %d", len(r.puts))
	}
}

func TestDrawLineEndpointsAndConnectivity(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 math.Vec2i
	}{
		{"horizontal", math.Vec2i{X: 1, Y: 5}, math.Vec2i{X: 15, Y: 5}},
		{"vertical", math.Vec2i{X: 3, Y: 0}, math.Vec2i{X: 3, Y: 12}},
		{"shallow", math.Vec2i{X: 0, Y: 0}, math.Vec2i{X: 15, Y: 4}},
		{"steep", math.Vec2i{X: 2, Y: 1}, math.Vec2i{X: 6, Y: 15}},
		{"reverse diagonal", math.Vec2i{X: 15, Y: 15}, math.Vec2i{X: 0, Y: 0}},
		{"single point", math.Vec2i{X: 4, Y: 4}, math.Vec2i{X: 4, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder(16, 16)
			DrawLine(r, tt.p0, tt.p1, red)

			if r.puts[0] != tt.p0 {
				t.Errorf("first pixel %v, want %v", r.puts[0], tt.p0)
			}
			if last := r.puts[len(r.puts)-1]; last != tt.p1 {
				t.Errorf("last pixel %v, want %v", last, tt.p1)
			}

			major := max(abs(tt.p1.X-tt.p0.X), abs(tt.p1.Y-tt.p0.Y))
			if len(r.puts) != major+1 {
				t.Errorf("expected %d pixels, got %d", major+1, len(r.puts))
			}
			for i := 1; i < len(r.puts); i++ {
				d := r.puts[i].Sub(r.puts[i-1])
				if abs(d.X) > 1 || abs(d.Y) > 1 || d == (math.Vec2i{}) {
					t.Fatalf("gap or repeat between %v and %v", r.puts[i-1], r.puts[i])
				}
			}
		})
	}
}

func TestDrawLineOutOfBoundsIsClipped(t *testing.T) {
	b := framebuffer.New(8, 8)
	DrawLine(b, math.Vec2i{X: -10, Y: 4}, math.Vec2i{X: 20, Y: 4}, red)
	if got := countColor(b, red); got != 8 {
		t.Errorf("expected 8 visible pixels, got %d", got)
	}
}

func TestDrawWireframeTriangle(t *testing.T) {
	b := framebuffer.New(16, 16)
	a := math.Vec2i{X: 1, Y: 1}
	c1 := math.Vec2i{X: 10, Y: 1}
	c2 := math.Vec2i{X: 1, Y: 10}
	DrawWireframeTriangle(b, a, c1, c2, gray)

	for _, p := range []math.Vec2i{a, c1, c2, {X: 5, Y: 1}, {X: 1, Y: 5}} {
		if b.Pixel(p.X, p.Y) != gray.Pack() {
			t.Errorf("expected edge pixel at %v", p)
		}
	}
	if b.Pixel(3, 3) == gray.Pack() {
		t.Error("interior pixel (3, 3) should not be drawn")
	}
}

func TestRenderFacesCullingFollowsWinding(t *testing.T) {
	points := []math.Vec2i{{X: 2, Y: 2}, {X: 12, Y: 2}, {X: 2, Y: 12}}
	front := []formats.Triangle{{0, 1, 2}}
	back := []formats.Triangle{{0, 2, 1}}
	style := Style{Fill: red, CullBackfaces: true}

	if Edge(points[0], points[1], points[2]) <= 0 {
		t.Fatal("expected {0,1,2} to have positive area")
	}

	b := framebuffer.New(16, 16)
	RenderFaces(b, points, front, style)
	if countColor(b, red) == 0 {
		t.Error("front-facing triangle was culled")
	}

	b = framebuffer.New(16, 16)
	RenderFaces(b, points, back, style)
	if countColor(b, red) != 0 {
		t.Error("back-facing triangle was drawn")
	}

	style.CullBackfaces = false
	b = framebuffer.New(16, 16)
	RenderFaces(b, points, back, style)
	if countColor(b, red) == 0 {
		t.Error("triangle culled with culling disabled")
	}
}

func TestRenderFacesLastFaceWins(t *testing.T) {
	points := []math.Vec2i{{X: 0, Y: 0}, {X: 15, Y: 0}, {X: 0, Y: 15}}
	faces := []formats.Triangle{{0, 1, 2}}

	b := framebuffer.New(16, 16)
	RenderFaces(b, points, faces, Style{Fill: red})
	RenderFaces(b, points, faces, Style{Fill: blue})
	if countColor(b, red) != 0 {
		t.Error("earlier fill survived an overlapping later face")
	}
	if b.Pixel(3, 3) != blue.Pack() {
		t.Error("expected the later face's color on top")
	}
}

func TestRenderFacesWireframeOverlay(t *testing.T) {
	points := []math.Vec2i{{X: 2, Y: 2}, {X: 12, Y: 2}, {X: 2, Y: 12}}
	faces := []formats.Triangle{{0, 1, 2}}

	b := framebuffer.New(16, 16)
	RenderFaces(b, points, faces, Style{Fill: yellow, Edge: gray, Wireframe: true})
	if b.Pixel(2, 2) != gray.Pack() || b.Pixel(7, 2) != gray.Pack() {
		t.Error("expected wireframe over the fill on edges")
	}
	if b.Pixel(4, 4) != yellow.Pack() {
		t.Error("expected fill color inside the triangle")
	}
}

func TestRenderFacesSkipsDegenerate(t *testing.T) {
	points := []math.Vec2i{{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 9, Y: 9}}
	r := newRecorder(16, 16)
	RenderFaces(r, points, []formats.Triangle{{0, 1, 2}}, Style{Fill: red})
	if len(r.puts) != 0 {
		t.Errorf("expected no writes for a degenerate face, got %d", len(r.puts))
	}
}
