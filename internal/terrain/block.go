package terrain

import (
	"dig2d/internal/collider"
	"dig2d/internal/geom"
	"dig2d/internal/simplify"

	"github.com/go-gl/mathgl/mgl32"
)

// Coord addresses one block by its column and row.
type Coord struct {
	X, Y int
}

// Block is one grid cell: its ring set plus everything derived from it.
type Block struct {
	coord     Coord
	polygons  geom.Polygons
	mesh      *Mesh
	loops     [][]mgl32.Vec2
	colliders *collider.Pool
}

func newBlock(c Coord, host collider.Host) *Block {
	return &Block{
		coord:     c,
		mesh:      &Mesh{},
		colliders: collider.NewPool(host),
	}
}

// Coord returns the block's grid position.
func (b *Block) Coord() Coord { return b.coord }

// Polygons returns the block's ring set in the grid-local clip frame.
func (b *Block) Polygons() geom.Polygons { return b.polygons }

// Mesh returns the block's extruded edge mesh.
func (b *Block) Mesh() *Mesh { return b.mesh }

// Loops returns the collider polylines of the last update.
func (b *Block) Loops() [][]mgl32.Vec2 { return b.loops }

// Colliders returns the handle pool mirroring Loops.
func (b *Block) Colliders() *collider.Pool { return b.colliders }

// setPolygons stores ps and re-extrudes the edge mesh from it.
func (b *Block) setPolygons(ps geom.Polygons, depth float32) {
	b.polygons = ps
	b.mesh = extrude(ps, depth)
}

// updateLoops regenerates the collider polylines against rect and brings the
// handle pool to the new count.
func (b *Block) updateLoops(rect simplify.Rect) {
	b.loops = simplify.Loops(b.polygons, rect)
	b.colliders.Reconcile(b.loops)
}
