package sdlengine

import (
	"github.com/rmcsoft/spriteanim"
	"github.com/veandco/go-sdl2/img"
)

// ImageDecoder decodes PNG files with SDL_image.
type ImageDecoder struct{}

// NewImageDecoder creates an ImageDecoder.
func NewImageDecoder() *ImageDecoder {
	return &ImageDecoder{}
}

// Init initializes SDL_image with PNG support.
func (d *ImageDecoder) Init() error {
	return img.Init(img.INIT_PNG)
}

// Decode loads fileName and converts it to pixFormat. The SDL surfaces
// are freed before returning; the pixels live on in the Pixmap.
func (d *ImageDecoder) Decode(fileName string, pixFormat spriteanim.PixelFormat) (*spriteanim.Pixmap, error) {
	image, err := img.Load(fileName)
	if err != nil {
		return nil, err
	}
	defer image.Free()

	sdlPixFormat, err := pixelFormatToSDL(pixFormat)
	if err != nil {
		return nil, err
	}

	convertedImage, err := image.ConvertFormat(sdlPixFormat, 0)
	if err != nil {
		return nil, err
	}
	defer convertedImage.Free()

	pixmap := spriteanim.Pixmap{
		Data:        make([]byte, len(convertedImage.Pixels())),
		Width:       int(convertedImage.W),
		Height:      int(convertedImage.H),
		BytePerLine: int(convertedImage.Pitch),
		PixFormat:   pixFormat,
	}
	copy(pixmap.Data, convertedImage.Pixels())
	return &pixmap, nil
}

// Quit shuts SDL_image down.
func (d *ImageDecoder) Quit() {
	img.Quit()
}
