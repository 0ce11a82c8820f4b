package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/rmcsoft/spriteanim"
	"github.com/rmcsoft/spriteanim/sdlengine"
	"github.com/sirupsen/logrus"
)

type options struct {
	Image       string `short:"i" long:"image"        default:"assets/run.png"       description:"The sprite sheet image"`
	Title       string `short:"t" long:"title"        default:"Spritesheets Example" description:"The window title"`
	Width       int    `long:"width"                  default:"640"                  description:"The window width"`
	Height      int    `long:"height"                 default:"480"                  description:"The window height"`
	FrameWidth  int    `long:"frame-width"            default:"50"                   description:"The width of one sprite frame"`
	FrameHeight int    `long:"frame-height"           default:"37"                   description:"The height of one sprite frame"`
	Frames      int    `long:"frames"                 default:"6"                    description:"The number of animation frames"`
	Speed       int    `long:"speed"                  default:"6"                    description:"The number of ticks each frame is shown for"`
	Backend     string `short:"b" long:"backend"      default:"sdl"                  description:"The display backend" choice:"sdl" choice:"kmsdrm" choice:"null"`
	Card        int    `long:"card"                   default:"0"                    description:"The DRM card number (kmsdrm)"`
	PixelFormat string `long:"pixel-format"           default:"rgb32"                description:"The framebuffer pixel format (kmsdrm)" choice:"rgb32" choice:"rgb16"`
	FPS         int    `long:"fps"                    default:"60"                   description:"The frame rate when presenting does not wait for vsync (kmsdrm, null)"`
	MaxTicks    int    `long:"max-ticks"              default:"0"                    description:"Stop after this many frames, 0 plays until quit"`
	Verbose     bool   `short:"v" long:"verbose"                                     description:"Enable debug logging"`
}

func parseOptions(args []string) (options, error) {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.ParseArgs(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func parseCmd() options {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	return opts
}

func (opts options) config() spriteanim.Config {
	cfg := spriteanim.DefaultConfig()
	cfg.Title = opts.Title
	cfg.Size = image.Point{opts.Width, opts.Height}
	cfg.ImageFile = opts.Image
	cfg.Sheet.FrameWidth = opts.FrameWidth
	cfg.Sheet.FrameHeight = opts.FrameHeight
	cfg.Sheet.FrameCount = opts.Frames
	cfg.Sheet.Speed = opts.Speed
	cfg.MaxTicks = opts.MaxTicks
	return cfg
}

func (opts options) platform(log logrus.FieldLogger) (spriteanim.Platform, error) {
	switch opts.Backend {
	case "sdl":
		return sdlengine.NewPlatform(), nil
	case "kmsdrm":
		pixFormat, err := spriteanim.ParsePixelFormat(opts.PixelFormat)
		if err != nil {
			return nil, err
		}
		return newKMSDRMPlatform(opts.Card, pixFormat, opts.FPS, log)
	case "null":
		return spriteanim.NullPlatform(opts.FPS, log), nil
	default:
		return nil, fmt.Errorf("Unknown backend '%s'", opts.Backend)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	log.Level = logrus.InfoLevel
	if verbose {
		log.Level = logrus.DebugLevel
	}
	return log
}

func init() {
	// SDL wants every video call on the main thread.
	runtime.LockOSThread()
}

func main() {
	opts := parseCmd()
	log := newLogger(opts.Verbose)

	platform, err := opts.platform(log)
	if err != nil {
		log.WithError(err).Fatal("Could not select backend")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = spriteanim.Play(ctx, opts.config(), platform, sdlengine.NewImageDecoder(), os.Stdout, log)
	stop()
	if err != nil {
		log.WithError(err).Error("Playback failed")
		os.Exit(1)
	}
}
