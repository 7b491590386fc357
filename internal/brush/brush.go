// Package brush builds the clip outlines used by dig and fill gestures.
//
// A Shape is transient: build one per growth step, hand it to the grid and
// drop it. Builders keep no state between calls; animating the radius is the
// caller's job.
package brush

import (
	"math"

	"dig2d/internal/geom"
	"dig2d/internal/triangulate"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects the outline kind.
type Mode int

const (
	// Circle is a stationary dig around one point.
	Circle Mode = iota
	// Capsule is a swept dig between two points.
	Capsule
)

func (m Mode) String() string {
	switch m {
	case Circle:
		return "circle"
	case Capsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// Shape is one brush outline at a fixed radius.
type Shape struct {
	mode   Mode
	radius float32
	begin  mgl32.Vec2
	end    mgl32.Vec2
	line   touchLine

	vertices geom.Ring
	points   []mgl32.Vec2
	anchors  []mgl32.Vec2
}

// NewCircle builds an N-gon of the given radius around center. The first
// vertex sits straight below the center and the rest follow clockwise, so
// successive growth steps keep the same vertex layout.
func NewCircle(center mgl32.Vec2, radius float32, segments int) *Shape {
	s := &Shape{mode: Circle, radius: radius, begin: center, end: center}
	if segments < 0 {
		segments = 0
	}
	s.vertices = make(geom.Ring, segments)
	s.points = make([]mgl32.Vec2, segments)
	s.anchors = make([]mgl32.Vec2, segments)
	for i := 0; i < segments; i++ {
		angle := -90 - 360/float32(segments)*float32(i)
		s.set(i, center, angle)
	}
	return s
}

// NewCapsule builds the swept outline of a circle moving from begin to end:
// half an N-gon behind begin, half in front of end, joined by two straight
// edges parallel to the touch line. The result has N+2 vertices. When begin
// equals end nothing is swept and every vertex sits on begin.
func NewCapsule(begin, end mgl32.Vec2, radius float32, segments int) *Shape {
	s := &Shape{mode: Capsule, radius: radius, begin: begin, end: end}
	s.line = newTouchLine(begin, end)
	if segments < 0 {
		segments = 0
	}
	half := segments / 2
	step := 360 / float32(max(segments, 1))

	s.vertices = make(geom.Ring, segments+2)
	s.points = make([]mgl32.Vec2, segments+2)
	s.anchors = make([]mgl32.Vec2, segments+2)
	if s.line.zero() {
		for i := range s.vertices {
			s.points[i], s.anchors[i] = begin, begin
			s.vertices[i] = geom.FromVec2(begin)
		}
		return s
	}
	for i := 0; i <= half; i++ {
		s.set(i, begin, s.line.angle+270-step*float32(i))
	}
	for i := half; i <= segments; i++ {
		s.set(i+1, end, s.line.angle+270-step*float32(i))
	}
	return s
}

func (s *Shape) set(i int, anchor mgl32.Vec2, angleDeg float32) {
	a := float64(mgl32.DegToRad(angleDeg))
	p := mgl32.Vec2{
		anchor.X() + s.radius*float32(math.Cos(a)),
		anchor.Y() + s.radius*float32(math.Sin(a)),
	}
	s.points[i] = p
	s.anchors[i] = anchor
	s.vertices[i] = geom.FromVec2(p)
}

// Mode returns the outline kind.
func (s *Shape) Mode() Mode { return s.mode }

// Radius returns the radius the outline was built with.
func (s *Shape) Radius() float32 { return s.radius }

// Vertices returns the outline in clip coordinates (world frame).
func (s *Shape) Vertices() geom.Ring { return s.vertices }

// Points returns the outline in render coordinates (world frame).
func (s *Shape) Points() []mgl32.Vec2 { return s.points }

// Bounds returns the render-space box the brush can reach.
func (s *Shape) Bounds() geom.Bounds {
	if s.mode == Circle {
		return geom.NewBounds(s.begin, s.begin).Expand(s.radius)
	}
	return geom.NewBounds(s.begin, s.end).Expand(s.radius)
}

// CheckOverlap is a cheap, conservative test of whether the brush can reach
// the axis-aligned square of side size centered at p. False positives are
// fine; the boolean clip still decides.
func (s *Shape) CheckOverlap(p mgl32.Vec2, size float32) bool {
	switch s.mode {
	case Circle:
		dx := float32(math.Abs(float64(s.begin.X()-p.X()))) - s.radius - size/2
		dy := float32(math.Abs(float64(s.begin.Y()-p.Y()))) - s.radius - size/2
		return dx < 0 && dy < 0
	case Capsule:
		if s.line.zero() {
			return false
		}
		return s.line.distance(p)-s.radius-size/s.line.dividend < 0
	default:
		return false
	}
}

// Mesh is the flat cap of a brush outline.
type Mesh struct {
	Vertices  []mgl32.Vec3
	Normals   []mgl32.Vec3
	Triangles []uint32
}

// Mesh triangulates the outline into a cap with radial normals. A collapsed
// outline gives an empty triangle list.
func (s *Shape) Mesh() Mesh {
	m := Mesh{
		Vertices: make([]mgl32.Vec3, len(s.points)),
		Normals:  make([]mgl32.Vec3, len(s.points)),
	}
	for i, p := range s.points {
		m.Vertices[i] = p.Vec3(0)
		if s.radius > 0 {
			m.Normals[i] = p.Sub(s.anchors[i]).Mul(1 / s.radius).Vec3(0)
		}
	}
	m.Triangles = triangulate.Polygon(s.points)
	return m
}
