package geom

// Ring is a closed sequence of points; the last point connects back to the first.
// Counter-clockwise rings (y up) add material, clockwise rings cut holes.
type Ring []Point

// Polygons is the ordered ring set owned by one block. Together with the
// non-zero fill rule it describes solid area including holes.
type Polygons []Ring

// Square returns the counter-clockwise axis-aligned ring spanning lower..upper,
// starting at the top-left corner.
func Square(lower, upper Point) Ring {
	return Ring{
		{lower.X, upper.Y},
		{lower.X, lower.Y},
		{upper.X, lower.Y},
		{upper.X, upper.Y},
	}
}

// SignedArea2 returns twice the signed area in clip units squared.
// It is exact as long as coordinates stay well below 2^31.
func (r Ring) SignedArea2() int64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var a int64
	for i := 0; i < n; i++ {
		p, q := r[i], r[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// Area returns the signed area in render units squared.
func (r Ring) Area() float64 {
	return float64(r.SignedArea2()) / 2 / (Scale * Scale)
}

// Orientation reports whether the ring is counter-clockwise (non-negative area).
func (r Ring) Orientation() bool {
	return r.SignedArea2() >= 0
}

// Translate returns a copy of the ring shifted by d.
func (r Ring) Translate(d Point) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = p.Add(d)
	}
	return out
}

// Reverse returns a copy of the ring with opposite winding.
func (r Ring) Reverse() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Area returns the net solid area in render units squared.
func (ps Polygons) Area() float64 {
	var a int64
	for _, r := range ps {
		a += r.SignedArea2()
	}
	return float64(a) / 2 / (Scale * Scale)
}

// PointCount returns the total number of ring vertices.
func (ps Polygons) PointCount() int {
	n := 0
	for _, r := range ps {
		n += len(r)
	}
	return n
}

// Clone deep-copies the ring set.
func (ps Polygons) Clone() Polygons {
	out := make(Polygons, len(ps))
	for i, r := range ps {
		out[i] = append(Ring(nil), r...)
	}
	return out
}

// Winding returns the non-zero winding number of p against all rings.
func (ps Polygons) Winding(p Point) int {
	w := 0
	for _, r := range ps {
		n := len(r)
		for i := 0; i < n; i++ {
			a, b := r[i], r[(i+1)%n]
			if a.Y <= p.Y {
				if b.Y > p.Y && Cross(a, b, p) > 0 {
					w++
				}
			} else if b.Y <= p.Y && Cross(a, b, p) < 0 {
				w--
			}
		}
	}
	return w
}
