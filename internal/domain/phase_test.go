package domain

import (
	"errors"
	"testing"
)

func TestPhase_Next(t *testing.T) {
	tests := []struct {
		phase Phase
		want  Phase
	}{
		{PhaseWork, PhaseRest},
		{PhaseRest, PhaseWork},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			if got := tt.phase.Next(); got != tt.want {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhase_Label(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseWork, "Work"},
		{PhaseRest, "Rest"},
		{Phase("nap"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			if got := tt.phase.Label(); got != tt.want {
				t.Errorf("Label() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus_ButtonLabel(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "Start"},
		{StatusRunning, "Pause"},
		{StatusPaused, "Start"},
	}

	for _, tt := range tests {
		t.Run(tt.status.Label(), func(t *testing.T) {
			if got := tt.status.ButtonLabel(); got != tt.want {
				t.Errorf("ButtonLabel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		input   string
		want    Profile
		wantErr bool
	}{
		{"standard", ProfileStandard, false},
		{"demo", ProfileDemo, false},
		{"turbo", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateProfile(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfile(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("ValidateProfile(%q) error = %v, want ErrInvalidProfile", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateProfile(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestProfile_Durations(t *testing.T) {
	if d := ProfileStandard.Durations(); d.Work != 1500 || d.Rest != 300 {
		t.Errorf("standard Durations() = %+v, want {1500 300}", d)
	}
	if d := ProfileDemo.Durations(); d.Work != 5 || d.Rest != 5 {
		t.Errorf("demo Durations() = %+v, want {5 5}", d)
	}
	if d := Profile("bogus").Durations(); d != ProfileStandard.Durations() {
		t.Errorf("unknown profile Durations() = %+v, want standard", d)
	}
}
