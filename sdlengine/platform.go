package sdlengine

import (
	"image"

	"github.com/rmcsoft/spriteanim"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform is the SDL video subsystem.
type Platform struct{}

// NewPlatform creates a Platform.
func NewPlatform() *Platform {
	return &Platform{}
}

// Init initializes the SDL video subsystem.
func (p *Platform) Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

// NewPaintEngine opens a window at an undefined position and binds an
// accelerated vsync renderer to it.
func (p *Platform) NewPaintEngine(title string, size image.Point) (spriteanim.PaintEngine, error) {
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(size.X), int32(size.Y), 0)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	return &paintEngine{window, renderer}, nil
}

// NewFrameClock returns a clock that leaves pacing to the vsync present.
func (p *Platform) NewFrameClock() spriteanim.FrameClock {
	return spriteanim.PresentClock()
}

// Quit shuts SDL down.
func (p *Platform) Quit() {
	sdl.Quit()
}
