// Package graphics draws a terrain grid with OpenGL 4.1: the extruded edge
// walls plus a front face cut by the material mask.
package graphics

import (
	"fmt"

	"dig2d/internal/profiling"
	"dig2d/internal/raster"
	"dig2d/internal/terrain"
	"dig2d/internal/view"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	edgeColor = mgl32.Vec3{0.55, 0.38, 0.22}
	faceColor = mgl32.Vec3{0.42, 0.30, 0.18}
)

// Renderer owns the GPU resources for one grid.
type Renderer struct {
	edgeShader *Shader
	faceShader *Shader
	edges      *MeshBuffer
	face       *MeshBuffer
	mask       *MaskTexture
	ppu        float32
	model      mgl32.Mat4
}

// NewRenderer compiles the shaders and uploads the static face quad.
// pixelsPerUnit sets the mask resolution.
func NewRenderer(grid *terrain.Grid, pixelsPerUnit float32) (*Renderer, error) {
	edgeShader, err := NewShader(edgeVertexSrc, edgeFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("edge shader: %w", err)
	}
	faceShader, err := NewShader(faceVertexSrc, faceFragmentSrc)
	if err != nil {
		edgeShader.Delete()
		return nil, fmt.Errorf("face shader: %w", err)
	}

	origin := grid.Settings().Origin
	r := &Renderer{
		edgeShader: edgeShader,
		faceShader: faceShader,
		edges:      NewMeshBuffer(),
		face:       NewMeshBuffer(),
		mask:       NewMaskTexture(),
		ppu:        pixelsPerUnit,
		// meshes are grid-local; walls extrude away from the viewer
		model: mgl32.Translate3D(origin.X(), origin.Y(), 0).Mul4(mgl32.Scale3D(1, 1, -1)),
	}
	r.face.Upload(grid.FaceMesh())
	r.Sync(grid)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.12, 0.14, 0.18, 1.0)
	return r, nil
}

// Sync re-uploads the edge mesh and the mask after the grid changed.
func (r *Renderer) Sync(grid *terrain.Grid) {
	defer profiling.Track("graphics.Sync")()
	r.edges.Upload(grid.Mesh())
	r.mask.Upload(raster.Mask(grid, r.ppu))
}

// Render draws one frame.
func (r *Renderer) Render(cam *view.Camera) {
	defer profiling.Track("graphics.Render")()
	gl.Viewport(0, 0, int32(cam.Width), int32(cam.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj, v := cam.Projection(), cam.View()

	r.edgeShader.Use()
	r.edgeShader.SetMatrix4("uProj", proj)
	r.edgeShader.SetMatrix4("uView", v)
	r.edgeShader.SetMatrix4("uModel", r.model)
	r.edgeShader.SetVector3("uColor", edgeColor)
	r.edges.Draw()

	r.faceShader.Use()
	r.faceShader.SetMatrix4("uProj", proj)
	r.faceShader.SetMatrix4("uView", v)
	r.faceShader.SetMatrix4("uModel", r.model)
	r.faceShader.SetVector3("uColor", faceColor)
	r.faceShader.SetInt("uMask", 0)
	r.mask.Bind(0)
	r.face.Draw()
}

// Delete frees every GPU resource.
func (r *Renderer) Delete() {
	r.edges.Delete()
	r.face.Delete()
	r.mask.Delete()
	r.edgeShader.Delete()
	r.faceShader.Delete()
}
