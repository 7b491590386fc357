// Package triangulate turns render-space outlines into index lists.
package triangulate

import "github.com/go-gl/mathgl/mgl32"

// Polygon triangulates a simple, possibly concave polygon by ear clipping.
// It returns count-2 triangles whose winding matches the input orientation.
// Degenerate input (fewer than 3 points or zero area) yields nil.
func Polygon(points []mgl32.Vec2) []uint32 {
	n := len(points)
	if n < 3 {
		return nil
	}
	area := signedArea(points)
	if area == 0 {
		return nil
	}
	ccw := area > 0

	// remaining vertex indices in source order
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}

	indices := make([]uint32, 0, (n-2)*3)
	guard := 2 * n
	for i := n - 1; len(v) > 2; {
		if guard <= 0 {
			// no ear left: self-intersecting or fully collinear remainder
			break
		}
		guard--

		u := i % len(v)
		i = (u + 1) % len(v)
		w := (i + 1) % len(v)

		if !isEar(points, v, u, i, w, ccw) {
			continue
		}
		indices = append(indices, uint32(v[u]), uint32(v[i]), uint32(v[w]))
		v = append(v[:i], v[i+1:]...)
		guard = 2 * len(v)
	}
	return indices
}

func signedArea(points []mgl32.Vec2) float32 {
	var a float32
	n := len(points)
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += points[p].X()*points[q].Y() - points[q].X()*points[p].Y()
	}
	return a * 0.5
}

func cross(a, b, c mgl32.Vec2) float32 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

// isEar reports whether the corner v[i] between v[u] and v[w] is convex with
// respect to the polygon orientation and contains no other remaining vertex.
func isEar(points []mgl32.Vec2, v []int, u, i, w int, ccw bool) bool {
	a, b, c := points[v[u]], points[v[i]], points[v[w]]
	turn := cross(a, b, c)
	if !ccw {
		turn = -turn
	}
	if turn <= 1e-12 {
		return false
	}
	for k := range v {
		if k == u || k == i || k == w {
			continue
		}
		p := points[v[k]]
		if p == a || p == b || p == c {
			continue
		}
		if insideTriangle(a, b, c, p) {
			return false
		}
	}
	return true
}

func insideTriangle(a, b, c, p mgl32.Vec2) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
