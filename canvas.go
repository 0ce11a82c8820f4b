package spriteanim

import (
	"image"
	"image/color"
)

// Canvas is a software rasterizer drawing into a Pixmap.
type Canvas struct {
	target *Pixmap
	pixel  []byte
}

// NewCanvas creates a Canvas drawing into target.
func NewCanvas(target *Pixmap) *Canvas {
	return &Canvas{
		target: target,
		pixel:  make([]byte, GetPixelSize(target.PixFormat)),
	}
}

// Target returns the pixmap the canvas draws into.
func (c *Canvas) Target() *Pixmap {
	return c.target
}

// Fill paints rect with col, clipped to the target.
func (c *Canvas) Fill(rect image.Rectangle, col color.Color) {
	r := rect.Intersect(c.target.Bounds())
	if r.Empty() {
		return
	}

	EncodePixel(c.pixel, col, c.target.PixFormat)
	pixSize := len(c.pixel)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.target.Row(y, r.Min.X, r.Max.X)
		for i := 0; i < len(row); i += pixSize {
			copy(row[i:i+pixSize], c.pixel)
		}
	}
}

// Blit copies the src rectangle of pixmap so that its top-left corner
// lands on dst. The copy is clipped to both pixmaps. Pixel formats must
// match; rows are copied verbatim.
func (c *Canvas) Blit(pixmap *Pixmap, src image.Rectangle, dst image.Point) error {
	if pixmap.PixFormat != c.target.PixFormat {
		return errPixelFormatMismatch
	}

	clippedSrc := src.Intersect(pixmap.Bounds())
	if clippedSrc.Empty() {
		return nil
	}
	dst = dst.Add(clippedSrc.Min.Sub(src.Min))
	src = clippedSrc

	dstRect := image.Rectangle{Min: dst, Max: dst.Add(src.Size())}
	clipped := dstRect.Intersect(c.target.Bounds())
	if clipped.Empty() {
		return nil
	}

	srcMin := src.Min.Add(clipped.Min.Sub(dst))
	for i := 0; i < clipped.Dy(); i++ {
		srcRow := pixmap.Row(srcMin.Y+i, srcMin.X, srcMin.X+clipped.Dx())
		dstRow := c.target.Row(clipped.Min.Y+i, clipped.Min.X, clipped.Max.X)
		copy(dstRow, srcRow)
	}
	return nil
}
