package graphics

import (
	"dig2d/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// floats per vertex: position(3) normal(3) uv(2)
const vertexFloats = 8

// MeshBuffer holds one terrain mesh on the GPU.
type MeshBuffer struct {
	vao, vbo, ebo uint32
	count         int32
	scratch       []float32
}

// NewMeshBuffer allocates the vertex array and its buffers.
func NewMeshBuffer() *MeshBuffer {
	b := &MeshBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	stride := int32(vertexFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.BindVertexArray(0)
	return b
}

// Upload replaces the buffer contents with m.
func (b *MeshBuffer) Upload(m *terrain.Mesh) {
	b.scratch = b.scratch[:0]
	for i, v := range m.Vertices {
		n, uv := m.Normals[i], m.TexCoords[i]
		b.scratch = append(b.scratch, v.X(), v.Y(), v.Z(), n.X(), n.Y(), n.Z(), uv.X(), uv.Y())
	}
	b.count = int32(len(m.Triangles))

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(b.scratch) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(b.scratch)*4, gl.Ptr(b.scratch), gl.DYNAMIC_DRAW)
	}
	if b.count > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Triangles)*4, gl.Ptr(m.Triangles), gl.DYNAMIC_DRAW)
	}
	gl.BindVertexArray(0)
}

// Draw issues the indexed draw call.
func (b *MeshBuffer) Draw() {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete frees the GPU objects.
func (b *MeshBuffer) Delete() {
	gl.DeleteBuffers(1, &b.ebo)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}
