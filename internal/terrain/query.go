package terrain

import (
	"math"

	"dig2d/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// FaceMesh returns the front quad covering the whole surface in the
// grid-local frame. Its uv spans 0..1 so a mask texture maps onto it.
func (g *Grid) FaceMesh() *Mesh {
	size := g.Size()
	return faceQuad(size.X(), size.Y())
}

// Solid reports whether the world point p lies in remaining material.
func (g *Grid) Solid(p mgl32.Vec2) bool {
	s := g.settings
	x := int(math.Floor(float64((p.X() - s.Origin.X()) / s.BlockSize)))
	y := int(math.Floor(float64((p.Y() - s.Origin.Y()) / s.BlockSize)))
	b := g.Block(x, y)
	if b == nil {
		return false
	}
	return b.polygons.Winding(geom.FromVec2(p).Sub(g.origin)) != 0
}

// Area returns the remaining solid area in render units squared.
func (g *Grid) Area() float64 {
	var a float64
	for _, b := range g.blocks {
		a += b.polygons.Area()
	}
	return a
}

// LoopCount returns the number of collider polylines across all blocks.
func (g *Grid) LoopCount() int {
	var n int
	for _, b := range g.blocks {
		n += len(b.loops)
	}
	return n
}
