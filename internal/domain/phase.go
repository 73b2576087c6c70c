// Package domain contains the core entities of pomo: the phase clock that
// counts down work and rest intervals, and the animation that mirrors it.
// Nothing here depends on a terminal, a database or wall-clock time.
package domain

import "errors"

// Common domain errors.
var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrRecordNotFound = errors.New("record not found")
)

// Phase is the current countdown mode.
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == PhaseWork {
		return PhaseRest
	}
	return PhaseWork
}

// Label returns a human-readable label.
func (p Phase) Label() string {
	switch p {
	case PhaseWork:
		return "Work"
	case PhaseRest:
		return "Rest"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	return string(p)
}

// Status is the run state of the clock. A single tag keeps "ticking" and
// "animating" from ever disagreeing.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
)

// Label returns a human-readable label.
func (s Status) Label() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// ButtonLabel is the text of the toggle control for this status.
func (s Status) ButtonLabel() string {
	if s == StatusRunning {
		return "Pause"
	}
	return "Start"
}
