package gesture

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Tracker turns pointer events into gestures. A press digs where it lands;
// a drag digs a capsule from the last dug point each time the pointer has
// travelled further than MinMove.
type Tracker struct {
	target Clipper
	sched  *Scheduler
	params Params
	prev   mgl32.Vec2
	down   bool
}

// NewTracker creates a tracker feeding sched.
func NewTracker(target Clipper, sched *Scheduler, params Params) *Tracker {
	return &Tracker{target: target, sched: sched, params: params}
}

// SetParams changes the brush used by subsequent gestures.
func (t *Tracker) SetParams(p Params) { t.params = p }

// Params returns the brush used by new gestures.
func (t *Tracker) Params() Params { return t.params }

// Began handles a press at p.
func (t *Tracker) Began(p mgl32.Vec2) *Gesture {
	g := NewDig(t.target, t.params, p)
	t.sched.Add(g)
	t.prev = p
	t.down = true
	return g
}

// Moved handles a drag to p. It returns nil when the pointer is up or has
// not moved far enough.
func (t *Tracker) Moved(p mgl32.Vec2) *Gesture {
	if !t.down {
		return nil
	}
	d := p.Sub(t.prev)
	if d.Dot(d) <= t.params.MinMove*t.params.MinMove {
		return nil
	}
	g := NewMoveDig(t.target, t.params, t.prev, p)
	t.sched.Add(g)
	t.prev = p
	return g
}

// Ended handles a release. Running gestures keep growing.
func (t *Tracker) Ended() {
	t.down = false
}
