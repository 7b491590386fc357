package brush

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// touchLine is the normalised line a*x + b*y + c = 0 through the begin and
// end points of a swept gesture.
type touchLine struct {
	a, b, c float32
	// angle of begin->end in degrees
	angle float32
	// divides a block size into a conservative extent along the line normal
	dividend float32
}

func newTouchLine(p1, p2 mgl32.Vec2) touchLine {
	d := p2.Sub(p1)
	m := d.Len()
	if m == 0 {
		return touchLine{dividend: 1}
	}
	l := touchLine{
		a: -d.Y() / m,
		b: d.X() / m,
	}
	l.c = -(l.a*p1.X() + l.b*p1.Y())
	l.angle = mgl32.RadToDeg(float32(math.Atan2(float64(-l.a), float64(l.b))))

	var da float32
	if d.X()/d.Y() < 0 {
		da = 45 + l.angle
	} else {
		da = 45 - l.angle
	}
	l.dividend = float32(math.Abs(1.0 / 1.4 * math.Cos(float64(mgl32.DegToRad(da)))))
	return l
}

// zero reports a line through two equal points.
func (l touchLine) zero() bool { return l.a == 0 && l.b == 0 }

func (l touchLine) distance(p mgl32.Vec2) float32 {
	return float32(math.Abs(float64(l.a*p.X() + l.b*p.Y() + l.c)))
}
