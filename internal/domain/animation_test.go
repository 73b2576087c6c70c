package domain

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func at(seconds float64) time.Time {
	return epoch.Add(time.Duration(seconds * float64(time.Second)))
}

func TestAnimation_Begin(t *testing.T) {
	var a Animation

	if !a.Begin(at(0), 5*time.Second) {
		t.Fatal("Begin() on fresh animation should succeed")
	}
	if a.Begin(at(1), 10*time.Second) {
		t.Error("Begin() on active animation should be a no-op")
	}
	if a.Duration != 5*time.Second {
		t.Errorf("Duration = %v, want 5s", a.Duration)
	}
}

func TestAnimation_Fraction(t *testing.T) {
	var a Animation
	if got := a.Fraction(at(3)); got != 0 {
		t.Errorf("Fraction() without animation = %v, want 0", got)
	}

	a.Begin(at(0), 4*time.Second)

	tests := []struct {
		at   float64
		want float64
	}{
		{0, 0},
		{1, 0.25},
		{2, 0.5},
		{4, 1},
		{9, 1},
	}
	for _, tt := range tests {
		if got := a.Fraction(at(tt.at)); got != tt.want {
			t.Errorf("Fraction(t=%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestAnimation_PauseResumeRoundTrip(t *testing.T) {
	var a Animation
	a.Begin(at(0), 5*time.Second)

	a.Pause(at(2))
	frozen := a.Fraction(at(2))
	if frozen != 0.4 {
		t.Fatalf("Fraction at pause = %v, want 0.4", frozen)
	}
	if got := a.Fraction(at(60)); got != frozen {
		t.Errorf("Fraction while paused = %v, want %v", got, frozen)
	}

	a.Resume(at(60))
	if got := a.Fraction(at(60)); got != frozen {
		t.Errorf("Fraction at resume = %v, want %v", got, frozen)
	}
}

func TestAnimation_TotalRunningTimeIgnoresPauses(t *testing.T) {
	var a Animation
	a.Begin(at(0), 5*time.Second)

	a.Pause(at(1))
	a.Resume(at(11))
	a.Pause(at(12))
	a.Resume(at(30))

	// 2s ran before the second pause, so 3s remain after t=30.
	if a.Done(at(32.9)) {
		t.Error("Done() too early")
	}
	if !a.Done(at(33)) {
		t.Errorf("Done() at t=33 should be true, fraction = %v", a.Fraction(at(33)))
	}
}

func TestAnimation_NoOps(t *testing.T) {
	var a Animation

	if a.Pause(at(0)) {
		t.Error("Pause() without animation should be a no-op")
	}
	if a.Resume(at(0)) {
		t.Error("Resume() without animation should be a no-op")
	}

	a.Begin(at(0), time.Second)
	if a.Resume(at(0.5)) {
		t.Error("Resume() while running should be a no-op")
	}
	if !a.Pause(at(0.5)) {
		t.Error("Pause() while running should succeed")
	}
	if a.Pause(at(0.7)) {
		t.Error("second Pause() should be a no-op")
	}
}

func TestAnimation_Reset(t *testing.T) {
	var a Animation
	a.Begin(at(0), 5*time.Second)
	a.Pause(at(2))

	a.Reset()

	if a.State != AnimationNone {
		t.Errorf("State = %v, want AnimationNone", a.State)
	}
	if got := a.Fraction(at(3)); got != 0 {
		t.Errorf("Fraction after Reset() = %v, want 0", got)
	}
}
