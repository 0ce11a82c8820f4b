package spriteanim

import "image"

type drawTextureOperation struct {
	texture Texture
	src     image.Rectangle
	dst     image.Rectangle
}

func (o *drawTextureOperation) Draw(paintEngine PaintEngine) error {
	return paintEngine.DrawTexture(o.texture, o.src, o.dst)
}

// NewDrawTextureOperation creates an operation to copy the src region of
// texture into the dst region of the surface.
func NewDrawTextureOperation(texture Texture, src image.Rectangle, dst image.Rectangle) DrawOperation {
	return &drawTextureOperation{
		texture: texture,
		src:     src,
		dst:     dst,
	}
}
