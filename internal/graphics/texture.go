package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaskTexture is a single-channel texture fed from an alpha mask.
type MaskTexture struct {
	ID uint32
}

// NewMaskTexture creates an empty texture object.
func NewMaskTexture() *MaskTexture {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &MaskTexture{ID: texture}
}

// Upload replaces the texels. The mask's row 0 is its top edge, so rows are
// flipped into GL's bottom-up order.
func (t *MaskTexture) Upload(img *image.Alpha) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		src := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):][:w]
		copy(pix[(h-1-y)*w:], src)
	}

	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Bind attaches the texture to the given unit.
func (t *MaskTexture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete frees the texture.
func (t *MaskTexture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
