// Package terrain owns the block grid of one destructible surface and routes
// brush clips to the blocks a brush can reach.
package terrain

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"dig2d/internal/brush"
	"dig2d/internal/clip"
	"dig2d/internal/collider"
	"dig2d/internal/geom"
	"dig2d/internal/profiling"
	"dig2d/internal/simplify"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrSettings reports grid settings that cannot describe a surface.
var ErrSettings = errors.New("terrain: invalid settings")

// applyOp runs one block clip. Tests swap it to inject failures.
var applyOp = clip.Apply

// slowClip is the duration above which ApplyClip logs its hot spots.
const slowClip = 8 * time.Millisecond

// Settings describes the grid layout. Origin is the world position of the
// lower-left corner.
type Settings struct {
	Origin      mgl32.Vec2
	BlockSize   float32
	Depth       float32
	ResolutionX int
	ResolutionY int
}

// Option customises a Grid at construction.
type Option func(*Grid)

// WithColliderHost routes block colliders to host instead of a private Arena.
func WithColliderHost(host collider.Host) Option {
	return func(g *Grid) {
		g.host = host
	}
}

// Result lists the blocks a clip rewrote, in processing order.
type Result struct {
	Blocks []Coord
}

// Grid is a ResolutionX x ResolutionY array of blocks. All ring data is kept
// relative to Origin.
type Grid struct {
	settings Settings
	scaled   int64
	origin   geom.Point
	host     collider.Host
	blocks   []*Block
	mesh     *Mesh
}

// New builds a grid of solid blocks. Each block starts as its full cell and is
// simplified and meshed right away.
func New(s Settings, opts ...Option) (*Grid, error) {
	if s.BlockSize <= 0 || math.IsNaN(float64(s.BlockSize)) {
		return nil, fmt.Errorf("%w: block size %v", ErrSettings, s.BlockSize)
	}
	if s.ResolutionX < 1 || s.ResolutionY < 1 {
		return nil, fmt.Errorf("%w: resolution %dx%d", ErrSettings, s.ResolutionX, s.ResolutionY)
	}
	if s.Depth < 0 {
		return nil, fmt.Errorf("%w: depth %v", ErrSettings, s.Depth)
	}

	g := &Grid{
		settings: s,
		scaled:   geom.ScaleLength(s.BlockSize),
		origin:   geom.FromVec2(s.Origin),
		mesh:     &Mesh{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.host == nil {
		g.host = collider.NewArena()
	}

	g.blocks = make([]*Block, s.ResolutionX*s.ResolutionY)
	for y := 0; y < s.ResolutionY; y++ {
		for x := 0; x < s.ResolutionX; x++ {
			g.blocks[g.index(x, y)] = newBlock(Coord{x, y}, g.host)
		}
	}
	g.Reset()
	return g, nil
}

// Settings returns the layout the grid was built with.
func (g *Grid) Settings() Settings { return g.settings }

// Resolution returns the block count per axis.
func (g *Grid) Resolution() (int, int) { return g.settings.ResolutionX, g.settings.ResolutionY }

// Size returns the surface extent in render units.
func (g *Grid) Size() mgl32.Vec2 {
	return mgl32.Vec2{
		g.settings.BlockSize * float32(g.settings.ResolutionX),
		g.settings.BlockSize * float32(g.settings.ResolutionY),
	}
}

// Block returns the block at x, y or nil when out of range.
func (g *Grid) Block(x, y int) *Block {
	if x < 0 || y < 0 || x >= g.settings.ResolutionX || y >= g.settings.ResolutionY {
		return nil
	}
	return g.blocks[g.index(x, y)]
}

// Blocks returns every block in storage order (row by row).
func (g *Grid) Blocks() []*Block { return g.blocks }

// Mesh returns the combined edge mesh of all blocks.
func (g *Grid) Mesh() *Mesh { return g.mesh }

// Reset restores every block to its full cell.
func (g *Grid) Reset() {
	defer profiling.Track("terrain.Reset")()
	for _, b := range g.blocks {
		b.setPolygons(geom.Polygons{g.cell(b.coord.X, b.coord.Y)}, g.settings.Depth)
	}
	for _, b := range g.blocks {
		b.updateLoops(g.rect(b.coord.X, b.coord.Y))
	}
	g.assemble()
}

// ApplyClip applies the brush to every block it can reach. Blocks are
// processed column by column; an invariant violation stops the call and
// leaves the remaining blocks untouched. Colliders are refreshed for the
// rewritten blocks and their neighbours, and the combined mesh is rebuilt
// once whenever the brush bounds cover at least one block.
func (g *Grid) ApplyClip(b *brush.Shape, op clip.Op) (Result, error) {
	defer profiling.Track("terrain.ApplyClip")()
	start := time.Now()

	x1, y1, x2, y2, ok := g.indexRange(b.Bounds())
	if !ok {
		return Result{}, nil
	}

	size := g.settings.BlockSize
	origin := g.settings.Origin
	vertices := b.Vertices().Translate(geom.Point{X: -g.origin.X, Y: -g.origin.Y})

	var res Result
	var err error
blocks:
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			center := mgl32.Vec2{
				(float32(x)+0.5)*size + origin.X(),
				(float32(y)+0.5)*size + origin.Y(),
			}
			if !b.CheckOverlap(center, size) {
				continue
			}
			blk := g.blocks[g.index(x, y)]
			out, cerr := applyOp(op, blk.polygons, vertices, g.cell(x, y))
			if cerr != nil {
				log.Printf("terrain: %s clip on block %d,%d rejected: %v", op, x, y, cerr)
				err = fmt.Errorf("terrain: block %d,%d: %w", x, y, cerr)
				break blocks
			}
			blk.setPolygons(out, g.settings.Depth)
			res.Blocks = append(res.Blocks, Coord{x, y})
		}
	}
	g.refreshLoops(res.Blocks)
	g.assemble()

	if d := time.Since(start); d > slowClip {
		log.Printf("terrain: slow clip %v (%d blocks). Top tasks: %s", d, len(res.Blocks), profiling.TopN(5))
	}
	return res, err
}

// indexRange maps render-space bounds to the inclusive block range they
// cover. ok is false when the bounds miss the grid entirely.
func (g *Grid) indexRange(bounds geom.Bounds) (x1, y1, x2, y2 int, ok bool) {
	s := g.settings
	cell := func(v, o float32) int {
		return int(math.Floor(float64((v - o) / s.BlockSize)))
	}
	x1 = cell(bounds.Lower.X(), s.Origin.X())
	y1 = cell(bounds.Lower.Y(), s.Origin.Y())
	x2 = cell(bounds.Upper.X(), s.Origin.X())
	y2 = cell(bounds.Upper.Y(), s.Origin.Y())
	if x1 > s.ResolutionX-1 || y1 > s.ResolutionY-1 || x2 < 0 || y2 < 0 {
		return 0, 0, 0, 0, false
	}
	return max(x1, 0), max(y1, 0), min(x2, s.ResolutionX-1), min(y2, s.ResolutionY-1), true
}

func (g *Grid) index(x, y int) int {
	return x + g.settings.ResolutionX*y
}

// cell returns the block's own square in the grid-local clip frame.
func (g *Grid) cell(x, y int) geom.Ring {
	return geom.Square(
		geom.Point{X: int64(x) * g.scaled, Y: int64(y) * g.scaled},
		geom.Point{X: int64(x+1) * g.scaled, Y: int64(y+1) * g.scaled},
	)
}

// refreshLoops re-simplifies the given blocks and their four neighbours. A
// seam's exposure depends on the block across it, so a neighbour's loops go
// stale whenever its side of the seam changes.
func (g *Grid) refreshLoops(coords []Coord) {
	if len(coords) == 0 {
		return
	}
	seen := make(map[Coord]bool, len(coords)*2)
	for _, c := range coords {
		for _, n := range [...]Coord{c, {c.X - 1, c.Y}, {c.X + 1, c.Y}, {c.X, c.Y - 1}, {c.X, c.Y + 1}} {
			b := g.Block(n.X, n.Y)
			if b == nil || seen[n] {
				continue
			}
			seen[n] = true
			b.updateLoops(g.rect(n.X, n.Y))
		}
	}
}

// rect returns the allowed rectangle used by the simplifier. Sides shared
// with a neighbour sit on the cell edge; sides on the grid border are pushed
// out by one block so the surface outline keeps its colliders. A shared-side
// edge keeps its collider when the neighbour is empty across it.
func (g *Grid) rect(x, y int) simplify.Rect {
	lx, ly, ux, uy := x, y, x+1, y+1
	if lx == 0 {
		lx = -1
	}
	if ly == 0 {
		ly = -1
	}
	if ux == g.settings.ResolutionX {
		ux = g.settings.ResolutionX + 1
	}
	if uy == g.settings.ResolutionY {
		uy = g.settings.ResolutionY + 1
	}
	return simplify.Rect{
		Lower:   geom.Point{X: int64(lx) * g.scaled, Y: int64(ly) * g.scaled},
		Upper:   geom.Point{X: int64(ux) * g.scaled, Y: int64(uy) * g.scaled},
		Exposed: func(a, b geom.Point) bool {
			return g.exposed(x, y, a, b)
		},
	}
}

// exposed reports whether the block across the shared side holding a->b has
// no material just past the edge midpoint.
func (g *Grid) exposed(x, y int, a, b geom.Point) bool {
	mid := geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	nx, ny := x, y
	switch {
	case a.X == b.X && a.X == int64(x)*g.scaled:
		nx, mid.X = x-1, mid.X-1
	case a.X == b.X && a.X == int64(x+1)*g.scaled:
		nx, mid.X = x+1, mid.X+1
	case a.Y == b.Y && a.Y == int64(y)*g.scaled:
		ny, mid.Y = y-1, mid.Y-1
	case a.Y == b.Y && a.Y == int64(y+1)*g.scaled:
		ny, mid.Y = y+1, mid.Y+1
	default:
		return true
	}
	n := g.Block(nx, ny)
	return n == nil || n.polygons.Winding(mid) == 0
}

// assemble concatenates every block mesh into the combined mesh.
func (g *Grid) assemble() {
	defer profiling.Track("terrain.assemble")()
	var verts, idx int
	for _, b := range g.blocks {
		verts += len(b.mesh.Vertices)
		idx += len(b.mesh.Triangles)
	}
	m := &Mesh{
		Vertices:  make([]mgl32.Vec3, 0, verts),
		Normals:   make([]mgl32.Vec3, 0, verts),
		TexCoords: make([]mgl32.Vec2, 0, verts),
		Triangles: make([]uint32, 0, idx),
	}
	for _, b := range g.blocks {
		m.Append(b.mesh)
	}
	g.mesh = m
}
