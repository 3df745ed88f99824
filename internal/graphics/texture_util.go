package graphics

import (
	"fmt"

	"desk-scene/internal/imageio"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLTextures uploads bitmaps as mipmapped 2D textures and binds them to texture units.
type GLTextures struct{}

// MaxTextureSize reports the driver's largest supported texture dimension.
func MaxTextureSize() int {
	var size int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &size)
	return int(size)
}

// Upload creates a texture object from bmp. Only 3 and 4 channel bitmaps are accepted.
func (GLTextures) Upload(bmp imageio.Bitmap) (uint32, error) {
	var internalFormat int32
	var format uint32
	switch bmp.Channels {
	case 3:
		internalFormat, format = gl.RGB8, gl.RGB
	case 4:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("cannot upload image with %d channels", bmp.Channels)
	}
	if len(bmp.Pix) < bmp.Width*bmp.Height*bmp.Channels {
		return 0, fmt.Errorf("bitmap holds %d bytes, want %d", len(bmp.Pix), bmp.Width*bmp.Height*bmp.Channels)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned in general
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(bmp.Width),
		int32(bmp.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(bmp.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, nil
}

// Bind attaches texture id to texture unit slot.
func (GLTextures) Bind(slot int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// Delete frees texture id.
func (GLTextures) Delete(id uint32) {
	gl.DeleteTextures(1, &id)
}
