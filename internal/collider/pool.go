// Package collider keeps a host's edge-collider objects in step with the
// polylines a block produces.
//
// The host owns the real objects; this package only sees opaque handles and
// tracks them per slot index.
package collider

import "github.com/go-gl/mathgl/mgl32"

// Handle identifies one host collider.
type Handle uint32

// Host creates, destroys and updates the live collider objects.
type Host interface {
	Acquire() Handle
	Release(h Handle)
	SetPoints(h Handle, points []mgl32.Vec2)
}

// Pool holds the handles owned by one block, one per polyline slot.
type Pool struct {
	host  Host
	slots []Handle
}

// NewPool creates an empty pool backed by host.
func NewPool(host Host) *Pool {
	return &Pool{host: host}
}

// Reconcile grows or shrinks the pool to len(loops) and then writes each
// polyline into the handle of the same index. Afterwards Len() == len(loops).
func (p *Pool) Reconcile(loops [][]mgl32.Vec2) {
	for len(p.slots) < len(loops) {
		p.slots = append(p.slots, p.host.Acquire())
	}
	for i := len(p.slots) - 1; i >= len(loops); i-- {
		p.host.Release(p.slots[i])
		p.slots = p.slots[:i]
	}
	for i, h := range p.slots {
		p.host.SetPoints(h, loops[i])
	}
}

// Clear releases every handle.
func (p *Pool) Clear() {
	p.Reconcile(nil)
}

// Len returns the number of active handles.
func (p *Pool) Len() int { return len(p.slots) }

// Handles returns the active handles in slot order.
func (p *Pool) Handles() []Handle {
	out := make([]Handle, len(p.slots))
	copy(out, p.slots)
	return out
}
