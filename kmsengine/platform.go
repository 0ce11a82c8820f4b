//go:build linux
// +build linux

package kmsengine

import (
	"image"

	"github.com/rmcsoft/spriteanim"
	"github.com/sirupsen/logrus"
)

// Platform creates KMS/DRM paint engines on one DRM card. Frames are paced
// by a TickerClock since dumb-buffer mode setting does not wait for vsync.
type Platform struct {
	CardNum   int
	PixFormat spriteanim.PixelFormat
	FrameRate int
	Log       logrus.FieldLogger
}

// Init does nothing; the card is opened by NewPaintEngine.
func (p *Platform) Init() error {
	return nil
}

// NewPaintEngine ignores title; size bounds the drawing viewport.
func (p *Platform) NewPaintEngine(title string, size image.Point) (spriteanim.PaintEngine, error) {
	p.Log.WithFields(logrus.Fields{
		"card":   p.CardNum,
		"format": p.PixFormat,
	}).Debug("Opening DRM card")
	return NewPaintEngine(p.CardNum, p.PixFormat, size)
}

func (p *Platform) NewFrameClock() spriteanim.FrameClock {
	return spriteanim.NewTickerClock(p.FrameRate, p.Log)
}

func (p *Platform) Quit() {}
