package terrain

import (
	"dig2d/internal/geom"
	"dig2d/internal/triangulate"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list ready for upload.
type Mesh struct {
	Vertices  []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Triangles []uint32
}

var (
	up       = mgl32.Vec3{0, 1, 0}
	nearUV   = mgl32.Vec2{0, 0}
	farUV    = mgl32.Vec2{0, 0.1}
	faceNorm = mgl32.Vec3{0, 0, -1}
)

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles (indices / 3).
func (m *Mesh) TriangleCount() int { return len(m.Triangles) / 3 }

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool { return len(m.Triangles) == 0 }

// Append copies o into m, offsetting its indices past m's existing vertices.
func (m *Mesh) Append(o *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, o.Vertices...)
	m.Normals = append(m.Normals, o.Normals...)
	m.TexCoords = append(m.TexCoords, o.TexCoords...)
	for _, idx := range o.Triangles {
		m.Triangles = append(m.Triangles, idx+base)
	}
}

// extrude builds the side walls of every ring: each point becomes a near
// vertex at z=0 and a far vertex at z=depth, stitched by triangulate.Strip.
func extrude(ps geom.Polygons, depth float32) *Mesh {
	n := ps.PointCount()
	m := &Mesh{
		Vertices:  make([]mgl32.Vec3, 0, n*2),
		Normals:   make([]mgl32.Vec3, 0, n*2),
		TexCoords: make([]mgl32.Vec2, 0, n*2),
		Triangles: make([]uint32, 0, n*6),
	}
	for _, ring := range ps {
		base := uint32(len(m.Vertices))
		for _, p := range ring {
			m.Vertices = append(m.Vertices, p.Vec3(0), p.Vec3(depth))
			m.Normals = append(m.Normals, up, up)
			m.TexCoords = append(m.TexCoords, nearUV, farUV)
		}
		m.Triangles = append(m.Triangles, triangulate.Strip(len(ring), base)...)
	}
	return m
}

// faceQuad covers width x height starting at the grid origin (local frame).
func faceQuad(width, height float32) *Mesh {
	return &Mesh{
		Vertices: []mgl32.Vec3{
			{0, 0, 0}, {0, height, 0}, {width, height, 0}, {width, 0, 0},
		},
		Normals:   []mgl32.Vec3{faceNorm, faceNorm, faceNorm, faceNorm},
		TexCoords: []mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
		Triangles: []uint32{0, 1, 3, 3, 1, 2},
	}
}
