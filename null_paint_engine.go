package spriteanim

import (
	"image"
	"image/color"

	"github.com/sirupsen/logrus"
)

type nullPaintEngine struct {
}

// NullPaintEngine returns null paint engine
func NullPaintEngine() PaintEngine {
	return nullPaintEngine{}
}

func (nullPaintEngine) PixelFormat() PixelFormat {
	return RGB32
}

func (nullPaintEngine) PollQuit() bool {
	return false
}

func (nullPaintEngine) CreateTexture(pixmap *Pixmap) (Texture, error) {
	return nullTexture{image.Point{pixmap.Width, pixmap.Height}}, nil
}

func (nullPaintEngine) Clear(col color.Color) error {
	return nil
}

func (nullPaintEngine) DrawTexture(texture Texture, src image.Rectangle, dst image.Rectangle) error {
	return nil
}

func (nullPaintEngine) End() error {
	return nil
}

func (nullPaintEngine) Destroy() error {
	return nil
}

type nullTexture struct {
	size image.Point
}

func (t nullTexture) Size() image.Point {
	return t.size
}

func (nullTexture) Destroy() error {
	return nil
}

type nullPlatform struct {
	frameRate int
	log       logrus.FieldLogger
}

// NullPlatform returns a platform whose paint engines draw nothing. Frames
// are paced by a TickerClock at frameRate.
func NullPlatform(frameRate int, log logrus.FieldLogger) Platform {
	return &nullPlatform{frameRate: frameRate, log: log}
}

func (p *nullPlatform) Init() error {
	return nil
}

func (p *nullPlatform) NewPaintEngine(title string, size image.Point) (PaintEngine, error) {
	return NullPaintEngine(), nil
}

func (p *nullPlatform) NewFrameClock() FrameClock {
	return NewTickerClock(p.frameRate, p.log)
}

func (p *nullPlatform) Quit() {}
