package script

import (
	"testing"

	"dig2d/internal/gesture"
	"dig2d/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
strokes:
  - points: [[2, 2]]
  - op: sub
    radius: 0.8
    steps: 2
    points: [[0.5, 3.5], [1.5, 3.5], [1.55, 3.5], [3.5, 3.5]]
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, s.Strokes, 2)
	assert.Equal(t, float32(0.8), s.Strokes[1].Radius)
	assert.Equal(t, [2]float32{3.5, 3.5}, s.Strokes[1].Points[3])
}

func TestParseRejects(t *testing.T) {
	_, err := Parse([]byte("strokes:\n  - points: []\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("strokes:\n  - op: explode\n    points: [[0, 0]]\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("strokes: {"))
	assert.Error(t, err)
}

func TestRunDigsGrid(t *testing.T) {
	grid, err := terrain.New(terrain.Settings{BlockSize: 1, Depth: 1, ResolutionX: 4, ResolutionY: 4})
	require.NoError(t, err)
	sched := gesture.NewScheduler()
	tr := gesture.NewTracker(grid, sched, gesture.DefaultParams())

	s, err := Parse([]byte(sample))
	require.NoError(t, err)
	stats, err := s.Run(tr, sched, 1.0/30)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Strokes)
	// press + press + two drags past the threshold
	assert.Equal(t, 4, stats.Gestures)
	assert.Equal(t, 0, sched.Len())
	assert.Equal(t, gesture.DefaultParams(), tr.Params(), "stroke overrides are restored")

	assert.False(t, grid.Solid(mgl32.Vec2{2, 2}))
	assert.False(t, grid.Solid(mgl32.Vec2{2.5, 3.5}))
	assert.True(t, grid.Solid(mgl32.Vec2{0.2, 0.2}))
	assert.Less(t, grid.Area(), 16.0-4)
}
