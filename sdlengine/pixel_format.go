// Package sdlengine draws sprite sheets into an SDL window through an
// accelerated, vsync-paced renderer and decodes images with SDL_image.
package sdlengine

import (
	"errors"

	"github.com/rmcsoft/spriteanim"
	"github.com/veandco/go-sdl2/sdl"
)

func pixelFormatToSDL(pixelFormat spriteanim.PixelFormat) (uint32, error) {
	switch pixelFormat {
	case spriteanim.RGB16:
		return sdl.PIXELFORMAT_RGB565, nil
	case spriteanim.RGB32:
		return sdl.PIXELFORMAT_ARGB8888, nil
	default:
		return 0, errors.New("Unsupported pixel format")
	}
}
