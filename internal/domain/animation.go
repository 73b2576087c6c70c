package domain

import "time"

// AnimationState represents where the ring animation is in its lifecycle.
type AnimationState int

const (
	AnimationNone AnimationState = iota
	AnimationRunning
	AnimationPaused
)

// Animation fills a ring from 0 to 1 over a fixed duration. Pausing
// freezes the fill; resuming shifts the start time by the time spent paused,
// so the total running time always equals the duration.
type Animation struct {
	State    AnimationState
	Duration time.Duration
	BeganAt  time.Time
	PausedAt *time.Time
}

// Begin starts a fresh animation at now. It reports false if an animation is
// already active.
func (a *Animation) Begin(now time.Time, duration time.Duration) bool {
	if a.State != AnimationNone {
		return false
	}
	a.State = AnimationRunning
	a.Duration = duration
	a.BeganAt = now
	a.PausedAt = nil
	return true
}

// Pause freezes the animation at its current fraction.
func (a *Animation) Pause(now time.Time) bool {
	if a.State != AnimationRunning {
		return false
	}
	a.PausedAt = &now
	a.State = AnimationPaused
	return true
}

// Resume continues a paused animation.
func (a *Animation) Resume(now time.Time) bool {
	if a.State != AnimationPaused || a.PausedAt == nil {
		return false
	}

	pausedFor := now.Sub(*a.PausedAt)
	a.BeganAt = a.BeganAt.Add(pausedFor)
	a.PausedAt = nil
	a.State = AnimationRunning
	return true
}

// Reset discards the animation.
func (a *Animation) Reset() {
	*a = Animation{}
}

// Elapsed returns how much running time the animation has accumulated.
func (a *Animation) Elapsed(now time.Time) time.Duration {
	switch a.State {
	case AnimationRunning:
		return now.Sub(a.BeganAt)
	case AnimationPaused:
		return a.PausedAt.Sub(a.BeganAt)
	default:
		return 0
	}
}

// Fraction returns the fill fraction in [0, 1].
func (a *Animation) Fraction(now time.Time) float64 {
	if a.State == AnimationNone || a.Duration <= 0 {
		return 0
	}

	f := float64(a.Elapsed(now)) / float64(a.Duration)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Done reports whether a running animation has reached the full ring.
func (a *Animation) Done(now time.Time) bool {
	return a.State == AnimationRunning && a.Elapsed(now) >= a.Duration
}
