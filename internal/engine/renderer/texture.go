package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shadergrid/internal/engine/texture"
)

// textureCache uploads textures on first use.
type textureCache struct {
	uploaded map[*texture.Texture]uint32
}

func newTextureCache() *textureCache {
	return &textureCache{uploaded: make(map[*texture.Texture]uint32)}
}

// get returns the GL name for tex, uploading it if needed. Unpopulated
// textures bind as 0.
func (c *textureCache) get(tex *texture.Texture) uint32 {
	if !tex.Loaded() {
		return 0
	}
	if id, ok := c.uploaded[tex]; ok {
		return id
	}

	w, h := tex.Size()
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tex.Image.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	tex.ID = id
	c.uploaded[tex] = id
	return id
}

func (c *textureCache) deleteAll() {
	for tex, id := range c.uploaded {
		gl.DeleteTextures(1, &id)
		tex.ID = 0
	}
	c.uploaded = make(map[*texture.Texture]uint32)
}
