package domain

import "fmt"

// Profile selects one of the built-in duration pairs.
type Profile string

const (
	ProfileStandard Profile = "standard"
	ProfileDemo     Profile = "demo"
)

// Built-in interval lengths, in seconds.
const (
	StandardWorkSeconds = 1500
	StandardRestSeconds = 300
	DemoWorkSeconds     = 5
	DemoRestSeconds     = 5
)

// ValidProfiles lists all supported profile values.
var ValidProfiles = []Profile{ProfileStandard, ProfileDemo}

// Durations holds the length of each phase in whole seconds.
type Durations struct {
	Work int
	Rest int
}

// For returns the configured length of phase p.
func (d Durations) For(p Phase) int {
	if p == PhaseRest {
		return d.Rest
	}
	return d.Work
}

// ValidateProfile checks if a string names a known profile.
func ValidateProfile(s string) (Profile, error) {
	p := Profile(s)
	for _, valid := range ValidProfiles {
		if p == valid {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of standard, demo", ErrInvalidProfile, s)
}

// Durations returns the fixed interval lengths of the profile.
// Unknown profiles fall back to standard.
func (p Profile) Durations() Durations {
	if p == ProfileDemo {
		return Durations{Work: DemoWorkSeconds, Rest: DemoRestSeconds}
	}
	return Durations{Work: StandardWorkSeconds, Rest: StandardRestSeconds}
}
