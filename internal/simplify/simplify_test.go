package simplify

import (
	"testing"

	"dig2d/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const s = geom.Scale

func pt(x, y float32) geom.Point { return geom.FromVec2(mgl32.Vec2{x, y}) }

func TestInteriorSolidBlockHasNoLoops(t *testing.T) {
	cell := geom.Square(pt(1, 1), pt(2, 2))
	loops := Loops(geom.Polygons{cell}, Rect{Lower: pt(1, 1), Upper: pt(2, 2)})
	assert.Empty(t, loops)
}

func TestCornerBlockKeepsOuterEdges(t *testing.T) {
	cell := geom.Square(pt(0, 0), pt(1, 1))
	loops := Loops(geom.Polygons{cell}, Rect{Lower: pt(-1, -1), Upper: pt(1, 1)})
	require.Len(t, loops, 1)
	assert.Equal(t, []mgl32.Vec2{{0, 1}, {0, 0}, {1, 0}}, loops[0])
}

func TestExposedSeamKeepsCollider(t *testing.T) {
	// left block of a 2x1 grid; the right neighbour has been emptied
	cell := geom.Square(pt(0, 0), pt(1, 1))
	rect := Rect{
		Lower:   pt(-1, -1),
		Upper:   pt(1, 2),
		Exposed: func(a, b geom.Point) bool { return a.X == pt(1, 0).X },
	}
	loops := Loops(geom.Polygons{cell}, rect)
	require.Len(t, loops, 1)
	assert.Equal(t, []mgl32.Vec2{{0, 1}, {0, 0}, {1, 0}, {1, 1}, {0, 1}}, loops[0])
}

func TestExposedSeamJoinsRun(t *testing.T) {
	// a bite out of the x=1 side; below the bite the neighbour is empty
	ring := geom.Ring{pt(0, 1), pt(0, 0), pt(1, 0), pt(1, 0.5), pt(0.5, 0.75), pt(1, 1)}
	rect := Rect{
		Lower:   pt(0, 0),
		Upper:   pt(1, 1),
		Exposed: func(a, b geom.Point) bool { return a.X == pt(1, 0).X && b.X == a.X },
	}
	loops := Loops(geom.Polygons{ring}, rect)
	require.Len(t, loops, 1)
	assert.Equal(t, []mgl32.Vec2{{1, 0}, {1, 0.5}, {0.5, 0.75}, {1, 1}}, loops[0])
}

func TestCoveredSeamMatchesNilExposed(t *testing.T) {
	cell := geom.Square(pt(0, 0), pt(1, 1))
	covered := Rect{Lower: pt(-1, -1), Upper: pt(1, 1), Exposed: func(a, b geom.Point) bool { return false }}
	plain := Rect{Lower: pt(-1, -1), Upper: pt(1, 1)}
	assert.Equal(t, Loops(geom.Polygons{cell}, plain), Loops(geom.Polygons{cell}, covered))
}

func TestIsolatedRingIsClosed(t *testing.T) {
	// hole well inside the cell
	hole := geom.Square(pt(0.25, 0.25), pt(0.75, 0.75)).Reverse()
	loops := Loops(geom.Polygons{hole}, Rect{Lower: pt(0, 0), Upper: pt(1, 1)})
	require.Len(t, loops, 1)
	require.Len(t, loops[0], 5)
	assert.Equal(t, loops[0][0], loops[0][4])
}

func TestRingSplitIntoRuns(t *testing.T) {
	// a cell with a notch cut into its bottom edge; rect equals the cell so
	// only the notch walls remain as a collider run
	ring := geom.Ring{
		pt(0, 1), pt(0, 0), pt(0.25, 0), pt(0.25, 0.5), pt(0.75, 0.5), pt(0.75, 0), pt(1, 0), pt(1, 1),
	}
	loops := Loops(geom.Polygons{ring}, Rect{Lower: pt(0, 0), Upper: pt(1, 1)})
	require.Len(t, loops, 1)
	assert.Equal(t, []mgl32.Vec2{{0.25, 0}, {0.25, 0.5}, {0.75, 0.5}, {0.75, 0}}, loops[0])
}

func TestTwoRunsOnOneRing(t *testing.T) {
	// notches on the bottom and the top edge
	ring := geom.Ring{
		pt(0, 1), pt(0, 0),
		pt(0.25, 0), pt(0.5, 0.25), pt(0.75, 0),
		pt(1, 0), pt(1, 1),
		pt(0.75, 1), pt(0.5, 0.75), pt(0.25, 1),
	}
	loops := Loops(geom.Polygons{ring}, Rect{Lower: pt(0, 0), Upper: pt(1, 1)})
	require.Len(t, loops, 2)
	for _, l := range loops {
		assert.Len(t, l, 3)
	}
}

func TestReduce(t *testing.T) {
	ring := geom.Ring{
		{X: 0, Y: 0}, {X: 0, Y: 0}, {X: s, Y: 0}, {X: 2 * s, Y: 0}, {X: 2 * s, Y: s}, {X: 2 * s, Y: 2 * s}, {X: 0, Y: 2 * s}, {X: 0, Y: s}, {X: 0, Y: 0},
	}
	got := Reduce(ring)
	require.Len(t, got, 4)
	assert.InDelta(t, 4.0, got.Area(), 1e-9)

	assert.Nil(t, Reduce(geom.Ring{{X: 0, Y: 0}, {X: s, Y: s}, {X: 2 * s, Y: 2 * s}}))
	assert.Nil(t, Reduce(geom.Ring{{X: 0, Y: 0}, {X: 0, Y: 0}}))
}
