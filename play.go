package spriteanim

import (
	"context"
	"image"
	"image/color"
	"io"

	"github.com/sirupsen/logrus"
)

// Config describes the window and the sprite sheet Play shows.
type Config struct {
	Title      string
	Size       image.Point
	ImageFile  string
	Sheet      Sheet
	Background color.Color
	// MaxTicks stops playback after that many iterations; zero means
	// play until quit.
	MaxTicks int
}

// DefaultConfig returns the run-animation demo configuration.
func DefaultConfig() Config {
	return Config{
		Title:      "Spritesheets Example",
		Size:       image.Point{640, 480},
		ImageFile:  "assets/run.png",
		Sheet:      DefaultSheet(),
		Background: color.White,
	}
}

// Play acquires the windowing subsystem, the image decoder, a paint engine
// and the sprite-sheet texture, plays the animation until quit, then
// releases everything in reverse order. Frame index lines go to out.
// Every acquisition failure matches ErrResourceUnavailable.
func Play(ctx context.Context, cfg Config, platform Platform, decoder ImageDecoder, out io.Writer, log logrus.FieldLogger) error {
	if err := cfg.Sheet.Validate(); err != nil {
		return err
	}

	if err := platform.Init(); err != nil {
		return unavailable("windowing subsystem", err)
	}
	defer platform.Quit()

	if err := decoder.Init(); err != nil {
		return unavailable("image decoder", err)
	}
	defer decoder.Quit()

	paintEngine, err := platform.NewPaintEngine(cfg.Title, cfg.Size)
	if err != nil {
		return unavailable("window", err)
	}
	defer release(log, "window", paintEngine.Destroy)
	log.WithFields(logrus.Fields{
		"title":  cfg.Title,
		"width":  cfg.Size.X,
		"height": cfg.Size.Y,
	}).Info("Window created")

	texture, err := loadTexture(paintEngine, decoder, cfg.ImageFile)
	if err != nil {
		return err
	}
	defer release(log, "texture", texture.Destroy)

	size := texture.Size()
	log.WithFields(logrus.Fields{
		"image":  cfg.ImageFile,
		"width":  size.X,
		"height": size.Y,
	}).Info("Sprite sheet loaded")
	if !cfg.Sheet.Covers(size) {
		log.WithField("frames", cfg.Sheet.FrameCount).Warn("Sprite sheet is smaller than the animation")
	}

	background := cfg.Background
	if background == nil {
		background = color.White
	}
	player, err := NewPlayer(paintEngine, texture, cfg.Sheet, platform.NewFrameClock(),
		WithOutput(out),
		WithLogger(log),
		WithBackground(background),
		WithMaxTicks(cfg.MaxTicks),
	)
	if err != nil {
		return err
	}

	return player.Run(ctx)
}

// loadTexture decodes fileName and uploads it; the decoded pixels are
// released as soon as the texture exists.
func loadTexture(paintEngine PaintEngine, decoder ImageDecoder, fileName string) (Texture, error) {
	pixmap, err := decoder.Decode(fileName, paintEngine.PixelFormat())
	if err != nil {
		return nil, unavailable("image "+fileName, err)
	}
	defer pixmap.Release()

	texture, err := paintEngine.CreateTexture(pixmap)
	if err != nil {
		return nil, unavailable("texture", err)
	}
	return texture, nil
}

func release(log logrus.FieldLogger, resource string, destroy func() error) {
	if err := destroy(); err != nil {
		log.WithError(err).WithField("resource", resource).Warn("Release failed")
	}
}
