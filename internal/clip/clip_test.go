package clip

import (
	"math"
	"testing"

	"dig2d/internal/brush"
	"dig2d/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCell() geom.Ring {
	return geom.Square(geom.Point{}, geom.Point{X: geom.Scale, Y: geom.Scale})
}

func squareRing(lo, hi mgl32.Vec2) geom.Ring {
	return geom.Square(geom.FromVec2(lo), geom.FromVec2(hi))
}

func polygonArea(n int, r float64) float64 {
	return float64(n) / 2 * r * r * math.Sin(2*math.Pi/float64(n))
}

func TestDigHoleInCenter(t *testing.T) {
	subject := geom.Polygons{unitCell()}
	b := brush.NewCircle(mgl32.Vec2{0.5, 0.5}, 0.25, 32)

	out, err := Dig(subject, b.Vertices())
	require.NoError(t, err)
	require.Len(t, out, 2)

	var outer, hole int
	for _, r := range out {
		if r.Orientation() {
			outer++
		} else {
			hole++
		}
	}
	assert.Equal(t, 1, outer)
	assert.Equal(t, 1, hole)
	assert.InDelta(t, 1-polygonArea(32, 0.25), out.Area(), 1e-3)

	// input untouched
	assert.InDelta(t, 1.0, subject.Area(), 1e-9)
}

func TestDigZeroAreaBrushIsIdentity(t *testing.T) {
	subject := geom.Polygons{unitCell()}
	b := brush.NewCircle(mgl32.Vec2{0.5, 0.5}, 0, 16)

	out, err := Dig(subject, b.Vertices())
	require.NoError(t, err)
	assert.Equal(t, subject, out)
}

func TestDigEverything(t *testing.T) {
	subject := geom.Polygons{unitCell()}
	b := brush.NewCircle(mgl32.Vec2{0.5, 0.5}, 2, 16)

	out, err := Dig(subject, b.Vertices())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDigDisjointKeepsArea(t *testing.T) {
	subject := geom.Polygons{unitCell()}
	b := brush.NewCircle(mgl32.Vec2{5, 5}, 0.5, 16)

	out, err := Dig(subject, b.Vertices())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out.Area(), 1e-9)
}

func TestFillIsClampedToCell(t *testing.T) {
	b := squareRing(mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{1.5, 1.5})

	out, err := Fill(nil, b, unitCell())
	require.NoError(t, err)
	assert.InDelta(t, 0.25, out.Area(), 1e-9)
	for _, r := range out {
		for _, p := range r {
			assert.GreaterOrEqual(t, p.X, int64(0))
			assert.LessOrEqual(t, p.X, int64(geom.Scale))
			assert.GreaterOrEqual(t, p.Y, int64(0))
			assert.LessOrEqual(t, p.Y, int64(geom.Scale))
		}
	}
}

func TestFillRestoresDugMaterial(t *testing.T) {
	subject := geom.Polygons{unitCell()}
	dig := brush.NewCircle(mgl32.Vec2{0.5, 0.5}, 0.3, 24)
	dug, err := Dig(subject, dig.Vertices())
	require.NoError(t, err)
	require.Less(t, dug.Area(), 1.0)

	fill := brush.NewCircle(mgl32.Vec2{0.5, 0.5}, 0.4, 24)
	out, err := Apply(Add, dug, fill.Vertices(), unitCell())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out.Area(), 1e-6)
}

func TestApplyUnknownOp(t *testing.T) {
	_, err := Apply(Op(7), nil, unitCell(), unitCell())
	assert.Error(t, err)
}

func TestValidateRejectsInvertedRings(t *testing.T) {
	_, err := validate(geom.Polygons{unitCell().Reverse()})
	assert.ErrorIs(t, err, ErrInvariant)

	out, err := validate(geom.Polygons{unitCell(), {{0, 0}, {1, 1}, {2, 2}}})
	require.NoError(t, err)
	assert.Len(t, out, 1, "collapsed rings are dropped")
}

func TestParseOp(t *testing.T) {
	for in, want := range map[string]Op{"sub": Subtract, "Subtract": Subtract, " add ": Add, "fill": Add} {
		got, err := ParseOp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseOp("xor")
	assert.Error(t, err)
	assert.Equal(t, "add", Add.String())
}
