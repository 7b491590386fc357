package triangulate

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regularPolygon(n int, r float32, clockwise bool) []mgl32.Vec2 {
	pts := make([]mgl32.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		if clockwise {
			a = -a
		}
		pts[i] = mgl32.Vec2{r * float32(math.Cos(a)), r * float32(math.Sin(a))}
	}
	return pts
}

func triangleAreaSum(pts []mgl32.Vec2, idx []uint32) (sum float64, signs []bool) {
	for t := 0; t+2 < len(idx); t += 3 {
		a, b, c := pts[idx[t]], pts[idx[t+1]], pts[idx[t+2]]
		cr := float64(cross(a, b, c)) / 2
		sum += math.Abs(cr)
		signs = append(signs, cr > 0)
	}
	return sum, signs
}

func TestConvexPolygonTriangleCount(t *testing.T) {
	for _, n := range []int{3, 4, 5, 10, 32, 64} {
		for _, cw := range []bool{false, true} {
			pts := regularPolygon(n, 2, cw)
			idx := Polygon(pts)
			require.Len(t, idx, (n-2)*3, "n=%d cw=%v", n, cw)

			sum, signs := triangleAreaSum(pts, idx)
			assert.InDelta(t, math.Abs(float64(signedArea(pts))), sum, 1e-4, "n=%d", n)
			for _, s := range signs {
				assert.Equal(t, !cw, s, "triangle winding must follow polygon winding")
			}
		}
	}
}

func TestConcavePolygon(t *testing.T) {
	// L shape, counter-clockwise
	pts := []mgl32.Vec2{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	idx := Polygon(pts)
	require.Len(t, idx, 4*3)

	sum, signs := triangleAreaSum(pts, idx)
	assert.InDelta(t, 3.0, sum, 1e-6)
	for _, s := range signs {
		assert.True(t, s)
	}
}

func TestDegenerateInput(t *testing.T) {
	assert.Empty(t, Polygon(nil))
	assert.Empty(t, Polygon([]mgl32.Vec2{{0, 0}, {1, 1}}))
	assert.Empty(t, Polygon([]mgl32.Vec2{{0, 0}, {1, 1}, {2, 2}}))
	assert.Empty(t, Polygon([]mgl32.Vec2{{1, 1}, {1, 1}, {1, 1}, {1, 1}}))
}

func TestStrip(t *testing.T) {
	idx := Strip(3, 10)
	require.Len(t, idx, 18)
	assert.Equal(t, []uint32{10, 12, 11, 12, 13, 11}, idx[:6])
	assert.Equal(t, []uint32{14, 10, 15, 10, 11, 15}, idx[12:])
	for _, i := range idx {
		assert.GreaterOrEqual(t, i, uint32(10))
		assert.Less(t, i, uint32(16))
	}
	assert.Empty(t, Strip(1, 0))
}

func BenchmarkPolygon64(b *testing.B) {
	pts := regularPolygon(64, 1, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Polygon(pts)
	}
}
