// Package gesture animates brush growth. A Gesture is an explicit state
// object stepped once per scheduler tick; it re-clips the terrain at the
// current radius until the target radius is reached.
package gesture

import (
	"fmt"

	"dig2d/internal/brush"
	"dig2d/internal/clip"
	"dig2d/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// Clipper is the surface a gesture digs into.
type Clipper interface {
	ApplyClip(b *brush.Shape, op clip.Op) (terrain.Result, error)
}

// Phase is the lifecycle position of a gesture.
type Phase int

const (
	Idle Phase = iota
	Growing
	Done
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Growing:
		return "growing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Status is what a single Tick reports back to the scheduler.
type Status int

const (
	StillGrowing Status = iota
	Finished
)

// Params is the brush configuration a gesture is built with.
type Params struct {
	Op          clip.Op
	Radius      float32
	Segments    int
	MinMove     float32
	StartRadius float32
	GrowthRate  float32
}

// DefaultParams matches the stock brush.
func DefaultParams() Params {
	return Params{
		Op:          clip.Subtract,
		Radius:      1.2,
		Segments:    10,
		MinMove:     0.1,
		StartRadius: 0.6,
		GrowthRate:  5,
	}
}

// Gesture is one dig in progress: a stationary circle or a capsule swept
// from begin to end.
type Gesture struct {
	target  Clipper
	params  Params
	mode    brush.Mode
	begin   mgl32.Vec2
	end     mgl32.Vec2
	phase   Phase
	radius  float32
	clips   int
	skipped int
}

// NewDig starts a stationary gesture at p.
func NewDig(target Clipper, params Params, p mgl32.Vec2) *Gesture {
	return newGesture(target, params, brush.Circle, p, p)
}

// NewMoveDig starts a swept gesture from begin to end.
func NewMoveDig(target Clipper, params Params, begin, end mgl32.Vec2) *Gesture {
	return newGesture(target, params, brush.Capsule, begin, end)
}

func newGesture(target Clipper, params Params, mode brush.Mode, begin, end mgl32.Vec2) *Gesture {
	return &Gesture{
		target: target,
		params: params,
		mode:   mode,
		begin:  begin,
		end:    end,
		radius: min(params.StartRadius, params.Radius),
	}
}

// Phase returns the lifecycle position.
func (g *Gesture) Phase() Phase { return g.phase }

// Radius returns the radius reached so far.
func (g *Gesture) Radius() float32 { return g.radius }

// Clips returns how many ticks applied a clip.
func (g *Gesture) Clips() int { return g.clips }

// Skipped returns how many ticks advanced without clipping.
func (g *Gesture) Skipped() int { return g.skipped }

// Tick advances the radius by GrowthRate*dt, clamped to the target radius,
// and clips at the new radius. Move gestures whose displacement does not
// exceed MinMove skip the clip but still grow. A gesture whose target does
// not exceed StartRadius finishes on its first tick without clipping. A
// failed clip ends the gesture.
func (g *Gesture) Tick(dt float64) (Status, error) {
	if g.phase == Done {
		return Finished, nil
	}
	if g.radius >= g.params.Radius {
		g.phase = Done
		return Finished, nil
	}
	g.phase = Growing
	g.radius = min(g.radius+g.params.GrowthRate*float32(dt), g.params.Radius)

	if s := g.shape(); s != nil {
		if _, err := g.target.ApplyClip(s, g.params.Op); err != nil {
			g.phase = Done
			return Finished, fmt.Errorf("gesture: %s at radius %.3f: %w", g.mode, g.radius, err)
		}
		g.clips++
	} else {
		g.skipped++
	}

	if g.radius >= g.params.Radius {
		g.phase = Done
		return Finished, nil
	}
	return StillGrowing, nil
}

// shape returns the brush for the current radius, or nil when this tick
// must not clip.
func (g *Gesture) shape() *brush.Shape {
	if g.mode == brush.Circle {
		return brush.NewCircle(g.begin, g.radius, g.params.Segments)
	}
	d := g.end.Sub(g.begin)
	if d.Dot(d) <= g.params.MinMove*g.params.MinMove {
		return nil
	}
	return brush.NewCapsule(g.begin, g.end, g.radius, g.params.Segments)
}
