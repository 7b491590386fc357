// Package simplify reduces a block's ring set to the polylines that external
// edge colliders consume.
//
// Edges lying on the block's allowed rectangle are seams shared with a
// neighbouring block. While the neighbour has material across a seam edge the
// edge carries no collider; once that material is gone the edge is an exposed
// face and stays in its run. Every ring is cut at its seam edges and the
// remaining runs are returned as open polylines. Rings without seams come back
// whole, closed by repeating their first point.
package simplify

import (
	"dig2d/internal/geom"
	"dig2d/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Rect is the allowed rectangle of one block in clip coordinates.
type Rect struct {
	Lower geom.Point
	Upper geom.Point
	// Exposed reports whether the boundary edge a->b faces empty space. Nil
	// treats every boundary edge as covered.
	Exposed func(a, b geom.Point) bool
}

// onBoundary reports whether the edge a->b runs along one of the rect sides.
func (r Rect) onBoundary(a, b geom.Point) bool {
	if a.X == b.X && (a.X == r.Lower.X || a.X == r.Upper.X) {
		return true
	}
	if a.Y == b.Y && (a.Y == r.Lower.Y || a.Y == r.Upper.Y) {
		return true
	}
	return false
}

// seam reports whether a->b lies on the rect with material across it.
func (r Rect) seam(a, b geom.Point) bool {
	if !r.onBoundary(a, b) {
		return false
	}
	return r.Exposed == nil || !r.Exposed(a, b)
}

// Loops converts every ring of ps into collider polylines (render units,
// same frame as ps). The result replaces whatever the block held before.
func Loops(ps geom.Polygons, rect Rect) [][]mgl32.Vec2 {
	defer profiling.Track("simplify.Loops")()
	var loops [][]mgl32.Vec2
	for _, ring := range ps {
		loops = appendRing(loops, Reduce(ring), rect)
	}
	return loops
}

func appendRing(loops [][]mgl32.Vec2, ring geom.Ring, rect Rect) [][]mgl32.Vec2 {
	n := len(ring)
	if n < 3 {
		return loops
	}

	seam := make([]bool, n)
	start := -1
	for i := range ring {
		seam[i] = rect.seam(ring[i], ring[(i+1)%n])
		if seam[i] && start < 0 {
			start = i
		}
	}

	if start < 0 {
		loop := make([]mgl32.Vec2, 0, n+1)
		for _, p := range ring {
			loop = append(loop, p.Vec2())
		}
		return append(loops, append(loop, ring[0].Vec2()))
	}

	// walk from the edge after the first seam so runs never wrap
	var run []mgl32.Vec2
	for k := 1; k <= n; k++ {
		i := (start + k) % n
		if seam[i] {
			if run != nil {
				loops = append(loops, run)
				run = nil
			}
			continue
		}
		if run == nil {
			run = append(run, ring[i].Vec2())
		}
		run = append(run, ring[(i+1)%n].Vec2())
	}
	if run != nil {
		loops = append(loops, run)
	}
	return loops
}

// Reduce removes repeated and exactly collinear points. Exactness holds
// because clip coordinates are integers. Rings that collapse return nil.
func Reduce(r geom.Ring) geom.Ring {
	out := make(geom.Ring, 0, len(r))
	for _, p := range r {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		for len(out) >= 2 && geom.Cross(out[len(out)-2], out[len(out)-1], p) == 0 {
			out = out[:len(out)-1]
		}
		out = append(out, p)
	}
	for len(out) >= 3 {
		n := len(out)
		switch {
		case out[n-1] == out[0]:
			out = out[:n-1]
		case geom.Cross(out[n-2], out[n-1], out[0]) == 0:
			out = out[:n-1]
		case geom.Cross(out[n-1], out[0], out[1]) == 0:
			out = out[1:]
		default:
			return out
		}
	}
	return nil
}
