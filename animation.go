package spriteanim

// Animation is the tick counter of a looping sprite animation. Each frame
// is held for speed ticks; the counter wraps once it passes the last frame.
type Animation struct {
	frameCount int
	speed      int
	tick       int
}

// NewAnimation creates an Animation over the frames of sheet.
func NewAnimation(sheet Sheet) (*Animation, error) {
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return &Animation{
		frameCount: sheet.FrameCount,
		speed:      sheet.Speed,
	}, nil
}

// Tick returns the current tick counter.
func (a *Animation) Tick() int {
	return a.tick
}

// Frame returns the animation frame index for the current tick.
func (a *Animation) Frame() int {
	return a.tick / a.speed
}

// Advance moves to the next tick, wrapping to zero after the last frame.
func (a *Animation) Advance() {
	a.tick++
	if a.tick/a.speed >= a.frameCount {
		a.tick = 0
	}
}

// FrameAt returns the frame index shown at an unwrapped tick value.
func FrameAt(tick int, frameCount int, speed int) int {
	return (tick / speed) % frameCount
}
