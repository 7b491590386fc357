package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenCenterHitsSurfaceCenter(t *testing.T) {
	c := NewCamera(800, 600, mgl32.Vec2{4, 2}, mgl32.Vec2{-1, 1})
	p, err := c.ScreenToWorld(400, 300)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.X(), 1e-3)
	assert.InDelta(t, 2.0, p.Y(), 1e-3)
}

func TestScreenAxes(t *testing.T) {
	c := NewCamera(800, 600, mgl32.Vec2{4, 4}, mgl32.Vec2{})
	right, err := c.ScreenToWorld(700, 300)
	require.NoError(t, err)
	top, err := c.ScreenToWorld(400, 50)
	require.NoError(t, err)
	assert.Greater(t, right.X(), c.Center.X(), "screen right is world +x")
	assert.Greater(t, top.Y(), c.Center.Y(), "screen up is world +y")
}

func TestFrameFitsSurface(t *testing.T) {
	c := NewCamera(800, 600, mgl32.Vec2{10, 5}, mgl32.Vec2{})
	corner, err := c.ScreenToWorld(0, 0)
	require.NoError(t, err)
	assert.Less(t, corner.X(), float32(0))
	assert.Greater(t, corner.Y(), float32(5))
}

func TestZoomClamps(t *testing.T) {
	c := NewCamera(100, 100, mgl32.Vec2{1, 1}, mgl32.Vec2{})
	c.Zoom(0)
	assert.Equal(t, c.NearPlane*2, c.Distance)
	c.Zoom(1e9)
	assert.Equal(t, c.FarPlane/2, c.Distance)
}
