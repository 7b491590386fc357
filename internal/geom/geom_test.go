package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromVec2Rounds(t *testing.T) {
	p := FromVec2(mgl32.Vec2{1.25, -0.5})
	assert.Equal(t, Point{12500, -5000}, p)
	assert.InDelta(t, 1.25, p.Vec2().X(), 1e-6)
	assert.InDelta(t, -0.5, p.Vec2().Y(), 1e-6)
	assert.Equal(t, float32(3), p.Vec3(3).Z())
}

func TestSquareIsCounterClockwise(t *testing.T) {
	sq := Square(Point{0, 0}, Point{Scale, Scale})
	require.Len(t, sq, 4)
	assert.True(t, sq.Orientation())
	assert.InDelta(t, 1.0, sq.Area(), 1e-9)
	assert.InDelta(t, -1.0, sq.Reverse().Area(), 1e-9)
}

func TestPolygonsAreaWithHole(t *testing.T) {
	outer := Square(Point{0, 0}, Point{4 * Scale, 4 * Scale})
	hole := Square(Point{Scale, Scale}, Point{2 * Scale, 2 * Scale}).Reverse()
	ps := Polygons{outer, hole}

	assert.InDelta(t, 15.0, ps.Area(), 1e-9)
	assert.Equal(t, 8, ps.PointCount())

	assert.Equal(t, 1, ps.Winding(FromVec2(mgl32.Vec2{3, 3})))
	assert.Equal(t, 0, ps.Winding(FromVec2(mgl32.Vec2{1.5, 1.5})))
	assert.Equal(t, 0, ps.Winding(FromVec2(mgl32.Vec2{5, 1})))
}

func TestCloneIsDeep(t *testing.T) {
	ps := Polygons{Square(Point{0, 0}, Point{1, 1})}
	c := ps.Clone()
	c[0][0].X = 99
	assert.NotEqual(t, ps[0][0], c[0][0])
}

func TestTranslate(t *testing.T) {
	r := Ring{{1, 2}, {3, 4}}
	got := r.Translate(Point{-1, -2})
	assert.Equal(t, Ring{{0, 0}, {2, 2}}, got)
	assert.Equal(t, Ring{{1, 2}, {3, 4}}, r)
}

func TestBounds(t *testing.T) {
	b := NewBounds(mgl32.Vec2{2, -1}, mgl32.Vec2{-3, 4})
	assert.Equal(t, mgl32.Vec2{-3, -1}, b.Lower)
	assert.Equal(t, mgl32.Vec2{2, 4}, b.Upper)

	e := b.Expand(1)
	assert.Equal(t, mgl32.Vec2{-4, -2}, e.Lower)
	assert.Equal(t, mgl32.Vec2{3, 5}, e.Upper)

	u := Bounds{Lower: mgl32.Vec2{0, 0}, Upper: mgl32.Vec2{1, 1}}.Union(Bounds{Lower: mgl32.Vec2{5, -2}, Upper: mgl32.Vec2{6, 0}})
	assert.Equal(t, mgl32.Vec2{0, -2}, u.Lower)
	assert.Equal(t, mgl32.Vec2{6, 1}, u.Upper)
	assert.True(t, u.Contains(mgl32.Vec2{3, 0}))
	assert.False(t, u.Contains(mgl32.Vec2{7, 0}))
}
