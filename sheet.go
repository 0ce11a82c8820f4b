package spriteanim

import (
	"errors"
	"image"
)

// Sheet describes a sprite sheet: equally sized frames laid out left to
// right on the first row, and where the current frame is drawn.
type Sheet struct {
	FrameWidth  int
	FrameHeight int
	// FrameCount is the number of frames in the animation cycle.
	FrameCount int
	// Speed is the number of ticks each frame is held for.
	Speed int
	// Position is the top-left screen corner the frame is drawn at.
	Position image.Point
}

// DefaultSheet returns the layout of the bundled run animation.
func DefaultSheet() Sheet {
	return Sheet{
		FrameWidth:  50,
		FrameHeight: 37,
		FrameCount:  6,
		Speed:       6,
		Position:    image.Point{10, 10},
	}
}

// Validate checks that every dimension and count is positive.
func (s Sheet) Validate() error {
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		return errors.New("Sprite frame size must be positive")
	}
	if s.FrameCount <= 0 {
		return errors.New("Sprite frame count must be positive")
	}
	if s.Speed <= 0 {
		return errors.New("Animation speed must be positive")
	}
	return nil
}

// SourceRect returns the region of the sheet holding animation frame
// animFrame.
func (s Sheet) SourceRect(animFrame int) image.Rectangle {
	x := animFrame * s.FrameWidth
	return image.Rect(x, 0, x+s.FrameWidth, s.FrameHeight)
}

// DestRect returns the screen region frames are drawn into.
func (s Sheet) DestRect() image.Rectangle {
	return image.Rectangle{
		Min: s.Position,
		Max: s.Position.Add(image.Point{s.FrameWidth, s.FrameHeight}),
	}
}

// Covers reports whether a texture of the given size holds every frame.
func (s Sheet) Covers(size image.Point) bool {
	return size.X >= s.FrameCount*s.FrameWidth && size.Y >= s.FrameHeight
}
