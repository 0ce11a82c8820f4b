package spriteanim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// FrameClock paces the loop; Wait is called once per presented frame.
type FrameClock interface {
	Wait()
}

type presentClock struct{}

// PresentClock returns a clock that never waits. It is used when
// presenting a frame already blocks until the next vertical sync.
func PresentClock() FrameClock {
	return presentClock{}
}

func (presentClock) Wait() {}

const droppedFrameReportInterval = 100

// TickerClock paces frames at a fixed rate. A frame that is already late
// when Wait is called is counted as dropped and the schedule restarts from
// the current time.
type TickerClock struct {
	frameDuration time.Duration
	next          time.Time
	dropped       int
	log           logrus.FieldLogger

	now   func() time.Time
	sleep func(time.Duration)
}

// NewTickerClock creates a TickerClock running at frameRate frames per
// second. Non-positive rates fall back to 25 fps.
func NewTickerClock(frameRate int, log logrus.FieldLogger) *TickerClock {
	if frameRate <= 0 {
		frameRate = defaultFrameRate
	}
	return &TickerClock{
		frameDuration: time.Second / time.Duration(frameRate),
		log:           log,
		now:           time.Now,
		sleep:         time.Sleep,
	}
}

const defaultFrameRate = 25

// Wait blocks until the next frame is due.
func (c *TickerClock) Wait() {
	now := c.now()
	if c.next.IsZero() {
		c.next = now
	}

	c.next = c.next.Add(c.frameDuration)
	wait := c.next.Sub(now)
	if wait <= 0 {
		c.dropped++
		if c.dropped%droppedFrameReportInterval == 0 {
			c.log.WithField("dropped", c.dropped).Warn("Frame clock: the number of dropped frames")
		}
		c.next = now
		return
	}
	c.sleep(wait)
}

// Dropped returns the number of frames that were late.
func (c *TickerClock) Dropped() int {
	return c.dropped
}
