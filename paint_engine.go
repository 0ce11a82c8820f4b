package spriteanim

import (
	"image"
	"image/color"
)

// PaintEngine is the interface definition for drawing onto a display
// surface: a window with its renderer, or a framebuffer.
type PaintEngine interface {
	// PixelFormat is the format textures are created from.
	PixelFormat() PixelFormat
	// PollQuit drains pending events and reports whether any of them
	// asked the application to quit.
	PollQuit() bool
	CreateTexture(pixmap *Pixmap) (Texture, error)
	Clear(col color.Color) error
	DrawTexture(texture Texture, src image.Rectangle, dst image.Rectangle) error
	// End presents the back buffer.
	End() error
	// Destroy releases the renderer, then the window.
	Destroy() error
}

// Texture is a drawable copy of a pixmap owned by a PaintEngine.
type Texture interface {
	Size() image.Point
	Destroy() error
}

// Platform is the windowing subsystem a PaintEngine is created from.
type Platform interface {
	Init() error
	NewPaintEngine(title string, size image.Point) (PaintEngine, error)
	// NewFrameClock returns the clock the loop waits on after each
	// presented frame.
	NewFrameClock() FrameClock
	Quit()
}

// ImageDecoder loads image files into pixel memory.
type ImageDecoder interface {
	Init() error
	Decode(fileName string, pixFormat PixelFormat) (*Pixmap, error)
	Quit()
}
