//go:build linux
// +build linux

// Package kmsengine draws sprite sheets straight into DRM dumb
// framebuffers, for boards that run without a window system.
package kmsengine

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"syscall"

	drm "github.com/rmcsoft/godrm"
	"github.com/rmcsoft/godrm/mode"
	"github.com/rmcsoft/spriteanim"
)

const framebufferCount = 2

type framebuffer struct {
	handle uint32
	id     uint32
	buf    []byte
	pixmap *spriteanim.Pixmap
}

type paintEngine struct {
	card    *os.File
	modeset mode.Modeset

	pixFormat spriteanim.PixelFormat
	viewport  image.Rectangle

	framebuffers       []*framebuffer
	backFrameBufferNum int
	canvas             *spriteanim.Canvas
}

type texture struct {
	pixmap *spriteanim.Pixmap
}

func (t *texture) Size() image.Point {
	return image.Point{t.pixmap.Width, t.pixmap.Height}
}

func (t *texture) Destroy() error {
	t.pixmap.Release()
	return nil
}

// NewPaintEngine opens DRM card cardNum and creates double-buffered dumb
// framebuffers for its first mode. Drawing is confined to a viewport of
// the given size at the top-left corner of the display.
func NewPaintEngine(cardNum int, pixFormat spriteanim.PixelFormat, size image.Point) (spriteanim.PaintEngine, error) {
	card, err := drm.OpenCard(cardNum)
	if err != nil {
		return nil, err
	}

	if !drm.HasDumbBuffer(card) {
		card.Close()
		return nil, fmt.Errorf("drm device %v does not support dumb buffers", cardNum)
	}

	p := &paintEngine{
		card:      card,
		pixFormat: pixFormat,
	}

	simpleMSet, err := mode.NewSimpleModeset(card)
	if err != nil {
		p.Destroy()
		return nil, err
	}
	if len(simpleMSet.Modesets) == 0 {
		p.Destroy()
		return nil, errors.New("Modesets is empty")
	}
	p.modeset = simpleMSet.Modesets[0]

	display := image.Rect(0, 0, int(p.modeset.Width), int(p.modeset.Height))
	p.viewport = image.Rectangle{Max: size}.Intersect(display)

	for i := 0; i < framebufferCount; i++ {
		fb, err := p.createFramebuffer()
		if err != nil {
			p.Destroy()
			return nil, err
		}
		p.framebuffers = append(p.framebuffers, fb)
	}
	p.selectBackFramebuffer(0)

	return p, nil
}

func (p *paintEngine) PixelFormat() spriteanim.PixelFormat {
	return p.pixFormat
}

// PollQuit always reports false: there is no window to close.
func (p *paintEngine) PollQuit() bool {
	return false
}

func (p *paintEngine) CreateTexture(pixmap *spriteanim.Pixmap) (spriteanim.Texture, error) {
	if pixmap.PixFormat != p.pixFormat {
		return nil, errors.New("Pixmap has invalid pixel format")
	}
	return &texture{pixmap.Clone()}, nil
}

func (p *paintEngine) Clear(col color.Color) error {
	p.canvas.Fill(p.canvas.Target().Bounds(), col)
	return nil
}

// DrawTexture copies src to dst without scaling; the copied region is the
// smaller of the two sizes.
func (p *paintEngine) DrawTexture(tex spriteanim.Texture, src image.Rectangle, dst image.Rectangle) error {
	t, ok := tex.(*texture)
	if !ok {
		return errors.New("Texture was not created by the KMSDRM paint engine")
	}

	size := src.Size()
	if dst.Dx() < size.X {
		size.X = dst.Dx()
	}
	if dst.Dy() < size.Y {
		size.Y = dst.Dy()
	}
	return p.canvas.Blit(t.pixmap, image.Rectangle{Min: src.Min, Max: src.Min.Add(size)}, dst.Min)
}

func (p *paintEngine) End() error {
	backFrameBuffer := p.framebuffers[p.backFrameBufferNum]
	err := mode.SetCrtc(p.card, p.modeset.Crtc, backFrameBuffer.id,
		0, 0, &p.modeset.Conn, 1, &p.modeset.Mode)
	p.selectBackFramebuffer((p.backFrameBufferNum + 1) % len(p.framebuffers))
	return err
}

func (p *paintEngine) Destroy() error {
	for _, fb := range p.framebuffers {
		p.destroyFramebuffer(fb)
	}
	p.framebuffers = nil
	p.canvas = nil

	if p.card == nil {
		return nil
	}
	err := p.card.Close()
	p.card = nil
	return err
}

func (p *paintEngine) selectBackFramebuffer(num int) {
	p.backFrameBufferNum = num
	p.canvas = spriteanim.NewCanvas(p.framebuffers[num].pixmap.SubPixmap(p.viewport))
}

func (p *paintEngine) createFramebuffer() (*framebuffer, error) {
	fb := &framebuffer{}
	var err error
	defer func() {
		if err != nil {
			p.destroyFramebuffer(fb)
		}
	}()

	width := p.modeset.Width
	height := p.modeset.Height
	bpp := spriteanim.GetPixelSize(p.pixFormat) * 8
	depth := spriteanim.GetPixelDepth(p.pixFormat)

	fbInfo, err := mode.CreateFB(p.card, uint16(width), uint16(height), uint32(bpp))
	if err != nil {
		return nil, err
	}
	fb.handle = fbInfo.Handle

	fb.id, err = mode.AddFB(p.card, uint16(width), uint16(height),
		uint8(depth), uint8(bpp), fbInfo.Pitch, fb.handle)
	if err != nil {
		return nil, err
	}

	offset, err := mode.MapDumb(p.card, fb.handle)
	if err != nil {
		return nil, err
	}

	fb.buf, err = syscall.Mmap(int(p.card.Fd()), int64(offset), int(fbInfo.Size),
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		return nil, err
	}

	fb.pixmap = &spriteanim.Pixmap{
		Data:        fb.buf,
		Width:       int(width),
		Height:      int(height),
		BytePerLine: int(fbInfo.Pitch),
		PixFormat:   p.pixFormat,
	}
	return fb, nil
}

func (p *paintEngine) destroyFramebuffer(fb *framebuffer) {
	if fb != nil && p.card != nil {
		if fb.buf != nil {
			syscall.Munmap(fb.buf)
			fb.buf = nil
			fb.pixmap = nil
		}
		if fb.id != 0 {
			mode.RmFB(p.card, fb.id)
			fb.id = 0
		}
		if fb.handle != 0 {
			mode.DestroyDumb(p.card, fb.handle)
			fb.handle = 0
		}
	}
}
