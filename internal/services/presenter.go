package services

import (
	"fmt"
	"time"

	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// Presenter turns the countdown into something to look at: an mm:ss label
// and a ring-fill animation that pauses and resumes with the clock.
type Presenter struct {
	clock ports.Clock
	anim  domain.Animation
}

// NewPresenter creates a presenter reading time from clock.
func NewPresenter(clock ports.Clock) *Presenter {
	if clock == nil {
		clock = ports.SystemClock
	}
	return &Presenter{clock: clock}
}

// StartOrResume begins a 0->1 fill lasting remainingSeconds, or resumes a
// paused one. It is a no-op while an animation is already running.
func (p *Presenter) StartOrResume(remainingSeconds int) bool {
	now := p.clock.Now()
	switch p.anim.State {
	case domain.AnimationNone:
		return p.anim.Begin(now, time.Duration(remainingSeconds)*time.Second)
	case domain.AnimationPaused:
		return p.anim.Resume(now)
	default:
		return false
	}
}

// Pause freezes the fill at its current fraction.
func (p *Presenter) Pause() bool {
	return p.anim.Pause(p.clock.Now())
}

// Reset removes the animation and empties the ring.
func (p *Presenter) Reset() {
	p.anim.Reset()
}

// Fraction returns the current fill fraction.
func (p *Presenter) Fraction() float64 {
	return p.anim.Fraction(p.clock.Now())
}

// Done reports whether the running animation has filled the ring.
func (p *Presenter) Done() bool {
	return p.anim.Done(p.clock.Now())
}

// FormatClock formats whole seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
