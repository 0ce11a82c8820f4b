package spriteanim

import (
	"errors"
	"image"
	"image/color"
)

type drawCall struct {
	src image.Rectangle
	dst image.Rectangle
}

// recordingPaintEngine records what would have been drawn.
type recordingPaintEngine struct {
	// quitOnPoll makes the n-th PollQuit (1-based) report a quit.
	quitOnPoll int
	drawErr    error
	destroyErr error
	journal    *journal

	polls    int
	clears   []color.Color
	draws    []drawCall
	presents int
}

func (p *recordingPaintEngine) PixelFormat() PixelFormat {
	return RGB32
}

func (p *recordingPaintEngine) PollQuit() bool {
	p.polls++
	return p.quitOnPoll > 0 && p.polls >= p.quitOnPoll
}

func (p *recordingPaintEngine) CreateTexture(pixmap *Pixmap) (Texture, error) {
	p.journal.add("texture.create")
	return &recordingTexture{
		size:    image.Point{pixmap.Width, pixmap.Height},
		journal: p.journal,
	}, nil
}

func (p *recordingPaintEngine) Clear(col color.Color) error {
	p.clears = append(p.clears, col)
	return nil
}

func (p *recordingPaintEngine) DrawTexture(texture Texture, src image.Rectangle, dst image.Rectangle) error {
	if p.drawErr != nil {
		return p.drawErr
	}
	p.draws = append(p.draws, drawCall{src, dst})
	return nil
}

func (p *recordingPaintEngine) End() error {
	p.presents++
	return nil
}

func (p *recordingPaintEngine) Destroy() error {
	p.journal.add("engine.destroy")
	return p.destroyErr
}

type recordingTexture struct {
	size       image.Point
	journal    *journal
	destroyErr error
}

func (t *recordingTexture) Size() image.Point {
	return t.size
}

func (t *recordingTexture) Destroy() error {
	t.journal.add("texture.destroy")
	return t.destroyErr
}

// journal records acquire and release calls in order. A nil journal
// records nothing.
type journal struct {
	entries []string
}

func (j *journal) add(entry string) {
	if j != nil {
		j.entries = append(j.entries, entry)
	}
}

type countingClock struct {
	waits int
}

func (c *countingClock) Wait() {
	c.waits++
}

type fakePlatform struct {
	journal   *journal
	engine    *recordingPaintEngine
	initErr   error
	engineErr error
	clock     *countingClock
}

func (p *fakePlatform) Init() error {
	p.journal.add("platform.init")
	return p.initErr
}

func (p *fakePlatform) NewPaintEngine(title string, size image.Point) (PaintEngine, error) {
	if p.engineErr != nil {
		return nil, p.engineErr
	}
	p.journal.add("engine.create")
	p.engine.journal = p.journal
	return p.engine, nil
}

func (p *fakePlatform) NewFrameClock() FrameClock {
	return p.clock
}

func (p *fakePlatform) Quit() {
	p.journal.add("platform.quit")
}

type fakeDecoder struct {
	journal   *journal
	initErr   error
	decodeErr error
	decoded   *Pixmap
	fileName  string
}

func (d *fakeDecoder) Init() error {
	d.journal.add("decoder.init")
	return d.initErr
}

func (d *fakeDecoder) Decode(fileName string, pixFormat PixelFormat) (*Pixmap, error) {
	d.fileName = fileName
	if d.decodeErr != nil {
		return nil, d.decodeErr
	}
	d.journal.add("decode")
	pixmap, err := NewPixmap(300, 37, pixFormat)
	if err != nil {
		return nil, err
	}
	d.decoded = pixmap
	return pixmap, nil
}

func (d *fakeDecoder) Quit() {
	d.journal.add("decoder.quit")
}

var errBroken = errors.New("broken")
