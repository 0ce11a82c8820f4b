package sdlengine

import (
	"errors"
	"image"
	"image/color"

	"github.com/rmcsoft/spriteanim"
	"github.com/veandco/go-sdl2/sdl"
)

type paintEngine struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

type texture struct {
	texture *sdl.Texture
	size    image.Point
}

func (t *texture) Size() image.Point {
	return t.size
}

func (t *texture) Destroy() error {
	return t.texture.Destroy()
}

func toSDLRect(rect image.Rectangle) sdl.Rect {
	return sdl.Rect{
		X: int32(rect.Min.X),
		Y: int32(rect.Min.Y),
		W: int32(rect.Dx()),
		H: int32(rect.Dy()),
	}
}

func (p *paintEngine) PixelFormat() spriteanim.PixelFormat {
	return spriteanim.RGB32
}

func (p *paintEngine) PollQuit() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			quit = true
		}
	}
	return quit
}

func (p *paintEngine) CreateTexture(pixmap *spriteanim.Pixmap) (spriteanim.Texture, error) {
	sdlPixFormat, err := pixelFormatToSDL(pixmap.PixFormat)
	if err != nil {
		return nil, err
	}

	sdlTexture, err := p.renderer.CreateTexture(sdlPixFormat, sdl.TEXTUREACCESS_STREAMING,
		int32(pixmap.Width), int32(pixmap.Height))
	if err != nil {
		return nil, err
	}

	texturePixels, textureBytePerLine, err := sdlTexture.Lock(nil)
	if err != nil {
		sdlTexture.Destroy()
		return nil, err
	}

	rowSize := pixmap.Width * spriteanim.GetPixelSize(pixmap.PixFormat)
	for rowNum := 0; rowNum < pixmap.Height; rowNum++ {
		pixmapOffset := rowNum * pixmap.BytePerLine
		pixmapRow := pixmap.Data[pixmapOffset : pixmapOffset+rowSize]
		textureOffset := rowNum * textureBytePerLine
		textureRow := texturePixels[textureOffset : textureOffset+rowSize]
		copy(textureRow, pixmapRow)
	}
	sdlTexture.Unlock()

	if err := sdlTexture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		sdlTexture.Destroy()
		return nil, err
	}

	return &texture{
		texture: sdlTexture,
		size:    image.Point{pixmap.Width, pixmap.Height},
	}, nil
}

func (p *paintEngine) Clear(col color.Color) error {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	if err := p.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return p.renderer.Clear()
}

func (p *paintEngine) DrawTexture(tex spriteanim.Texture, src image.Rectangle, dst image.Rectangle) error {
	t, ok := tex.(*texture)
	if !ok {
		return errors.New("Texture was not created by the SDL paint engine")
	}

	srcRect := toSDLRect(src)
	dstRect := toSDLRect(dst)
	return p.renderer.Copy(t.texture, &srcRect, &dstRect)
}

func (p *paintEngine) End() error {
	p.renderer.Present()
	return nil
}

func (p *paintEngine) Destroy() error {
	rendererErr := p.renderer.Destroy()
	windowErr := p.window.Destroy()
	if rendererErr != nil {
		return rendererErr
	}
	return windowErr
}
