// Package raster renders the remaining material of a grid into an alpha
// mask, the texture a face renderer samples to cut holes into the surface.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"dig2d/internal/profiling"
	"dig2d/internal/terrain"

	"golang.org/x/image/vector"
)

// Mask rasterises every block ring of g at pixelsPerUnit. Row 0 is the top
// edge of the surface. Holes cancel against their outer rings, so coverage
// follows the non-zero rule for well-formed ring sets.
func Mask(g *terrain.Grid, pixelsPerUnit float32) *image.Alpha {
	defer profiling.Track("raster.Mask")()
	size := g.Size()
	w := int(math.Ceil(float64(size.X() * pixelsPerUnit)))
	h := int(math.Ceil(float64(size.Y() * pixelsPerUnit)))
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	for _, b := range g.Blocks() {
		for _, ring := range b.Polygons() {
			for i, p := range ring {
				v := p.Vec2()
				x, y := v.X()*pixelsPerUnit, (size.Y()-v.Y())*pixelsPerUnit
				if i == 0 {
					z.MoveTo(x, y)
				} else {
					z.LineTo(x, y)
				}
			}
			z.ClosePath()
		}
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Coverage returns the mean alpha of img in 0..1.
func Coverage(img *image.Alpha) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}
	var sum uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for _, a := range row {
			sum += uint64(a)
		}
	}
	return float64(sum) / float64(255*b.Dx()*b.Dy())
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}
	return nil
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
