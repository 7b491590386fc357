// Package view maps between window pixels and the terrain plane.
package view

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera looks straight down -z at the z=0 plane from Distance above Center.
type Camera struct {
	Center    mgl32.Vec2
	Distance  float32
	FOV       float32
	NearPlane float32
	FarPlane  float32
	Width     int
	Height    int
}

// NewCamera frames a surface of the given size in a width x height window.
func NewCamera(width, height int, surface mgl32.Vec2, origin mgl32.Vec2) *Camera {
	c := &Camera{
		FOV:       45.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
	}
	c.Resize(width, height)
	c.Frame(origin, surface)
	return c
}

// Resize updates the viewport size.
func (c *Camera) Resize(width, height int) {
	c.Width, c.Height = max(width, 1), max(height, 1)
}

// Frame centres the camera on the rectangle origin..origin+size and backs
// off until it fits with a small margin.
func (c *Camera) Frame(origin, size mgl32.Vec2) {
	c.Center = origin.Add(size.Mul(0.5))
	half := mgl32.DegToRad(c.FOV) / 2
	fitY := size.Y() / 2 / tan(half)
	fitX := size.X() / 2 / tan(half) / c.AspectRatio()
	c.Distance = max(fitX, fitY) * 1.1
}

// AspectRatio returns width over height.
func (c *Camera) AspectRatio() float32 {
	return float32(c.Width) / float32(c.Height)
}

// Projection returns the perspective matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio(), c.NearPlane, c.FarPlane)
}

// View returns the look-at matrix.
func (c *Camera) View() mgl32.Mat4 {
	eye := mgl32.Vec3{c.Center.X(), c.Center.Y(), c.Distance}
	target := mgl32.Vec3{c.Center.X(), c.Center.Y(), 0}
	return mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})
}

var errParallel = errors.New("view: ray parallel to terrain plane")

// ScreenToWorld casts the window pixel (x, y), y down, onto the z=0 plane.
func (c *Camera) ScreenToWorld(x, y float64) (mgl32.Vec2, error) {
	win := func(z float32) mgl32.Vec3 {
		return mgl32.Vec3{float32(x), float32(c.Height) - float32(y), z}
	}
	view, proj := c.View(), c.Projection()
	near, err := mgl32.UnProject(win(0), view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return mgl32.Vec2{}, err
	}
	far, err := mgl32.UnProject(win(1), view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return mgl32.Vec2{}, err
	}
	dir := far.Sub(near)
	if mgl32.Abs(dir.Z()) < 1e-9 {
		return mgl32.Vec2{}, errParallel
	}
	t := -near.Z() / dir.Z()
	hit := near.Add(dir.Mul(t))
	return mgl32.Vec2{hit.X(), hit.Y()}, nil
}

// Zoom scales the camera distance, keeping it inside the clip planes.
func (c *Camera) Zoom(factor float32) {
	c.Distance = mgl32.Clamp(c.Distance*factor, c.NearPlane*2, c.FarPlane/2)
}

func tan(a float32) float32 {
	return float32(math.Tan(float64(a)))
}
