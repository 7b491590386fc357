package collider

import "github.com/go-gl/mathgl/mgl32"

type arenaSlot struct {
	live   bool
	points []mgl32.Vec2
}

// Arena is an in-memory Host. Handles index its slot array; released slots
// go on a free list and are reused first.
type Arena struct {
	slots []arenaSlot
	free  []Handle
	live  int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Acquire returns a live handle, reusing released slots first.
func (a *Arena) Acquire() Handle {
	a.live++
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = arenaSlot{live: true}
		return h
	}
	a.slots = append(a.slots, arenaSlot{live: true})
	return Handle(len(a.slots) - 1)
}

// Release frees h. Releasing a dead or unknown handle is a no-op.
func (a *Arena) Release(h Handle) {
	if int(h) >= len(a.slots) || !a.slots[h].live {
		return
	}
	a.slots[h] = arenaSlot{}
	a.free = append(a.free, h)
	a.live--
}

// SetPoints stores a copy of points for h.
func (a *Arena) SetPoints(h Handle, points []mgl32.Vec2) {
	if int(h) >= len(a.slots) || !a.slots[h].live {
		return
	}
	a.slots[h].points = append(a.slots[h].points[:0], points...)
}

// Points returns the polyline stored for h, or nil for dead handles.
func (a *Arena) Points(h Handle) []mgl32.Vec2 {
	if int(h) >= len(a.slots) || !a.slots[h].live {
		return nil
	}
	return a.slots[h].points
}

// Live returns the number of live handles.
func (a *Arena) Live() int { return a.live }
