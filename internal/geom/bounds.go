package geom

import "github.com/go-gl/mathgl/mgl32"

// Bounds is an axis-aligned render-space box. It only restricts which blocks
// a brush may touch; it never takes part in clipping.
type Bounds struct {
	Lower mgl32.Vec2
	Upper mgl32.Vec2
}

// NewBounds builds a box from two arbitrary corners, ordering each axis.
func NewBounds(a, b mgl32.Vec2) Bounds {
	lo, hi := a, b
	if a.X() > b.X() {
		lo[0], hi[0] = b.X(), a.X()
	}
	if a.Y() > b.Y() {
		lo[1], hi[1] = b.Y(), a.Y()
	}
	return Bounds{Lower: lo, Upper: hi}
}

// Expand grows the box by r on every side.
func (b Bounds) Expand(r float32) Bounds {
	return Bounds{
		Lower: mgl32.Vec2{b.Lower.X() - r, b.Lower.Y() - r},
		Upper: mgl32.Vec2{b.Upper.X() + r, b.Upper.Y() + r},
	}
}

// Union returns the smallest box containing both.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Lower: mgl32.Vec2{min(b.Lower.X(), o.Lower.X()), min(b.Lower.Y(), o.Lower.Y())},
		Upper: mgl32.Vec2{max(b.Upper.X(), o.Upper.X()), max(b.Upper.Y(), o.Upper.Y())},
	}
}

// Contains reports whether p lies inside or on the box.
func (b Bounds) Contains(p mgl32.Vec2) bool {
	return p.X() >= b.Lower.X() && p.X() <= b.Upper.X() &&
		p.Y() >= b.Lower.Y() && p.Y() <= b.Upper.Y()
}
