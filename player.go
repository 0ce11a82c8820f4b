package spriteanim

import (
	"context"
	"fmt"
	"image/color"
	"io"

	"github.com/sirupsen/logrus"
)

// Player plays a looping sprite-sheet animation on a PaintEngine.
type Player struct {
	paintEngine PaintEngine
	texture     Texture
	sheet       Sheet
	clock       FrameClock
	animation   *Animation

	background color.Color
	out        io.Writer
	log        logrus.FieldLogger
	maxTicks   int

	ticks int
}

// PlayerOption configures a Player.
type PlayerOption func(player *Player)

// WithOutput sets where the per-frame "Animation Frame" lines are written.
func WithOutput(out io.Writer) PlayerOption {
	return func(player *Player) {
		player.out = out
	}
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) PlayerOption {
	return func(player *Player) {
		player.log = log
	}
}

// WithBackground sets the colour the surface is cleared to each frame.
func WithBackground(col color.Color) PlayerOption {
	return func(player *Player) {
		player.background = col
	}
}

// WithMaxTicks stops the player after n iterations. Zero means no limit.
func WithMaxTicks(n int) PlayerOption {
	return func(player *Player) {
		player.maxTicks = n
	}
}

// NewPlayer creates a Player drawing frames of sheet from texture.
func NewPlayer(paintEngine PaintEngine, texture Texture, sheet Sheet, clock FrameClock, options ...PlayerOption) (*Player, error) {
	animation, err := NewAnimation(sheet)
	if err != nil {
		return nil, err
	}

	player := &Player{
		paintEngine: paintEngine,
		texture:     texture,
		sheet:       sheet,
		clock:       clock,
		animation:   animation,
		background:  color.White,
		out:         io.Discard,
		log:         logrus.StandardLogger(),
	}
	for _, option := range options {
		option(player)
	}
	return player, nil
}

// Animation returns the animation state driven by the player.
func (player *Player) Animation() *Animation {
	return player.animation
}

// Ticks returns the number of completed iterations.
func (player *Player) Ticks() int {
	return player.ticks
}

// Step runs one iteration: drain events, draw and present the current
// frame, advance the animation. It reports whether a quit was requested;
// the frame is still drawn in that case.
func (player *Player) Step() (bool, error) {
	quit := player.paintEngine.PollQuit()

	animFrame := player.animation.Frame()
	fmt.Fprintf(player.out, "Animation Frame: %d\n", animFrame)

	frame := NewSheetFrame(player.sheet, player.texture, animFrame, player.background)
	if err := frame.Draw(player.paintEngine); err != nil {
		return true, err
	}
	if err := player.paintEngine.End(); err != nil {
		return true, err
	}

	player.animation.Advance()
	player.ticks++
	return quit, nil
}

// Run steps until a quit is requested, ctx is cancelled or the tick limit
// is reached. Cancelling ctx has the same effect as a quit event.
func (player *Player) Run(ctx context.Context) error {
	for {
		quit, err := player.Step()
		if err != nil {
			return err
		}

		if quit {
			player.log.WithField("ticks", player.ticks).Info("Quit requested")
			return nil
		}
		if ctx.Err() != nil {
			player.log.WithField("ticks", player.ticks).Info("Playback cancelled")
			return nil
		}
		if player.maxTicks > 0 && player.ticks >= player.maxTicks {
			player.log.WithField("ticks", player.ticks).Debug("Tick limit reached")
			return nil
		}

		player.clock.Wait()
	}
}
