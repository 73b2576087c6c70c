package domain

import (
	"testing"
	"time"
)

func TestNewPhaseRecord(t *testing.T) {
	start := time.Now().Add(-25 * time.Minute)
	end := time.Now()

	r := NewPhaseRecord(PhaseWork, 1500, start, end)

	if r.ID == "" {
		t.Error("NewPhaseRecord() ID is empty")
	}
	if r.Phase != PhaseWork {
		t.Errorf("Phase = %v, want %v", r.Phase, PhaseWork)
	}
	if r.Duration() != 25*time.Minute {
		t.Errorf("Duration() = %v, want %v", r.Duration(), 25*time.Minute)
	}

	other := NewPhaseRecord(PhaseWork, 1500, start, end)
	if other.ID == r.ID {
		t.Error("NewPhaseRecord() should generate unique IDs")
	}
}
