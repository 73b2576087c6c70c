package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhaseRecord is a completed phase, kept for history and stats. It is
// never used to restore a clock.
type PhaseRecord struct {
	ID          string
	Phase       Phase
	Seconds     int
	StartedAt   time.Time
	CompletedAt time.Time
	GitBranch   string
}

// NewPhaseRecord creates a record for a phase that ran from startedAt to
// completedAt.
func NewPhaseRecord(phase Phase, seconds int, startedAt, completedAt time.Time) *PhaseRecord {
	return &PhaseRecord{
		ID:          uuid.New().String(),
		Phase:       phase,
		Seconds:     seconds,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}
}

// Duration returns the configured length of the recorded phase.
func (r *PhaseRecord) Duration() time.Duration {
	return time.Duration(r.Seconds) * time.Second
}

// DailyStats aggregates completed phases for a day.
type DailyStats struct {
	Date          time.Time
	WorkPhases    int
	RestPhases    int
	TotalWorkTime time.Duration
}
