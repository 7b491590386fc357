package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Scale converts render units to clip units. Every polygon handed to the
// boolean engine must be expressed in clip units.
const Scale = 10000

// Point is a fixed-point clip coordinate (render coordinate * Scale).
type Point struct {
	X, Y int64
}

// FromVec2 converts a render coordinate into clip space, rounding to the nearest unit.
func FromVec2(v mgl32.Vec2) Point {
	return Point{
		X: int64(math.Round(float64(v.X()) * Scale)),
		Y: int64(math.Round(float64(v.Y()) * Scale)),
	}
}

// ScaleLength converts a render-space length into clip units.
func ScaleLength(l float32) int64 {
	return int64(math.Round(float64(l) * Scale))
}

// Vec2 converts back to render space.
func (p Point) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{float32(float64(p.X) / Scale), float32(float64(p.Y) / Scale)}
}

// Vec3 converts back to render space with the given depth.
func (p Point) Vec3(z float32) mgl32.Vec3 {
	return p.Vec2().Vec3(z)
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Cross returns the z component of (b-a) x (c-a). Exact for clip-space inputs.
func Cross(a, b, c Point) int64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
