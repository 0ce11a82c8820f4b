package spriteanim

import (
	"errors"
	"image"
)

// Pixmap contains a collection of pixels
type Pixmap struct {
	Data        []byte
	Width       int
	Height      int
	BytePerLine int
	PixFormat   PixelFormat
}

// NewPixmap allocates a zeroed Pixmap with tightly packed rows.
func NewPixmap(width int, height int, pixFormat PixelFormat) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, errors.New("Invalid pixmap size")
	}

	bytePerLine := width * GetPixelSize(pixFormat)
	return &Pixmap{
		Data:        make([]byte, bytePerLine*height),
		Width:       width,
		Height:      height,
		BytePerLine: bytePerLine,
		PixFormat:   pixFormat,
	}, nil
}

// Bounds returns the pixmap rectangle anchored at the origin.
func (pixmap *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, pixmap.Width, pixmap.Height)
}

// Row returns the bytes of the pixels [x0, x1) of row y.
func (pixmap *Pixmap) Row(y int, x0 int, x1 int) []byte {
	pixSize := GetPixelSize(pixmap.PixFormat)
	offset := y * pixmap.BytePerLine
	return pixmap.Data[offset+x0*pixSize : offset+x1*pixSize]
}

// SubPixmap returns a view of the rect region of pixmap. The view shares
// pixel memory with pixmap.
func (pixmap *Pixmap) SubPixmap(rect image.Rectangle) *Pixmap {
	r := rect.Intersect(pixmap.Bounds())
	if r.Empty() {
		return &Pixmap{BytePerLine: pixmap.BytePerLine, PixFormat: pixmap.PixFormat}
	}

	offset := r.Min.Y*pixmap.BytePerLine + r.Min.X*GetPixelSize(pixmap.PixFormat)
	return &Pixmap{
		Data:        pixmap.Data[offset:],
		Width:       r.Dx(),
		Height:      r.Dy(),
		BytePerLine: pixmap.BytePerLine,
		PixFormat:   pixmap.PixFormat,
	}
}

// Clone returns a deep copy of pixmap with tightly packed rows.
func (pixmap *Pixmap) Clone() *Pixmap {
	clone, _ := NewPixmap(pixmap.Width, pixmap.Height, pixmap.PixFormat)
	for y := 0; y < pixmap.Height; y++ {
		copy(clone.Row(y, 0, clone.Width), pixmap.Row(y, 0, pixmap.Width))
	}
	return clone
}

// Release drops the pixel memory.
func (pixmap *Pixmap) Release() {
	pixmap.Data = nil
	pixmap.Width = 0
	pixmap.Height = 0
	pixmap.BytePerLine = 0
}
