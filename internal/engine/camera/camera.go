// Package camera provides the orthographic model-to-screen transform.
package camera

import (
	gomath "math"

	"github.com/Faultbox/softraster/pkg/math"
)

// Margin is the fraction of the smaller viewport side the model spans.
const Margin = 0.7

// minExtent floors the model extent so flat or single-point meshes still
// produce a finite scale.
const minExtent = 1e-6

// Rotation holds the model orientation in radians.
// Y (yaw) is applied first, then X (pitch), then Z (roll).
type Rotation struct {
	X, Y, Z float32
}

// FromDegrees builds a Rotation from angles in degrees.
func FromDegrees(pitch, yaw, roll float32) Rotation {
	return Rotation{
		X: radians(pitch),
		Y: radians(yaw),
		Z: radians(roll),
	}
}

// Add returns r + other, per axis.
func (r Rotation) Add(other Rotation) Rotation {
	return Rotation{r.X + other.X, r.Y + other.Y, r.Z + other.Z}
}

// Degrees returns pitch, yaw and roll in degrees.
func (r Rotation) Degrees() (pitch, yaw, roll float32) {
	return degrees(r.X), degrees(r.Y), degrees(r.Z)
}

func radians(deg float32) float32 {
	return float32(float64(deg) * gomath.Pi / 180)
}

func degrees(rad float32) float32 {
	return float32(float64(rad) * 180 / gomath.Pi)
}

// Fit describes how a vertex set is centered and scaled into a viewport.
type Fit struct {
	Centroid [3]float64
	Extent   float64 // largest AABB side of the centered vertices, floored at minExtent
	Scale    float64 // pixels per model unit
}

// FitViewport computes the centroid, extent and uniform scale for vertices
// in a width×height viewport.
func FitViewport(vertices []math.Vec3, width, height int) Fit {
	var f Fit
	if len(vertices) == 0 {
		f.Extent = minExtent
		f.Scale = Margin * float64(min(width, height)) / f.Extent
		return f
	}

	var cx, cy, cz float64
	for _, v := range vertices {
		cx += float64(v.X)
		cy += float64(v.Y)
		cz += float64(v.Z)
	}
	n := float64(len(vertices))
	f.Centroid = [3]float64{cx / n, cy / n, cz / n}

	lo := [3]float64{gomath.Inf(1), gomath.Inf(1), gomath.Inf(1)}
	hi := [3]float64{gomath.Inf(-1), gomath.Inf(-1), gomath.Inf(-1)}
	for _, v := range vertices {
		p := [3]float64{
			float64(v.X) - f.Centroid[0],
			float64(v.Y) - f.Centroid[1],
			float64(v.Z) - f.Centroid[2],
		}
		for i := range p {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}

	f.Extent = max(hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2], minExtent)
	f.Scale = Margin * float64(min(width, height)) / f.Extent
	return f
}

// Project maps model-space vertices to integer pixel coordinates.
//
// The mesh is centered on its centroid, scaled uniformly to fit the viewport,
// rotated (Y, then X, then Z), projected orthographically by dropping depth,
// and flipped so model +Y points up the screen. Coordinates are rounded half
// away from zero. The result has one point per vertex and is freshly
// allocated on every call; vertices is not modified.
func Project(vertices []math.Vec3, width, height int, rot Rotation) []math.Vec2i {
	out := make([]math.Vec2i, len(vertices))
	if len(vertices) == 0 {
		return out
	}

	fit := FitViewport(vertices, width, height)

	sinY, cosY := gomath.Sincos(float64(rot.Y))
	sinX, cosX := gomath.Sincos(float64(rot.X))
	sinZ, cosZ := gomath.Sincos(float64(rot.Z))

	ox := float64(width) * 0.5
	oy := float64(height) * 0.5
	h := float64(height)

	for i, v := range vertices {
		x := float64(v.X) - fit.Centroid[0]
		y := float64(v.Y) - fit.Centroid[1]
		z := float64(v.Z) - fit.Centroid[2]

		// yaw
		x1 := x*cosY + z*sinY
		z1 := -x*sinY + z*cosY

		// pitch
		y2 := y*cosX - z1*sinX

		// roll
		x3 := x1*cosZ - y2*sinZ
		y3 := x1*sinZ + y2*cosZ

		out[i] = math.Vec2i{
			X: int(gomath.Round(x3*fit.Scale + ox)),
			Y: int(gomath.Round(h - (y3*fit.Scale + oy))),
		}
	}
	return out
}
