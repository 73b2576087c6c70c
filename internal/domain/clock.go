package domain

// ClockState is a point-in-time view of the phase clock.
type ClockState struct {
	Phase     Phase
	Remaining int
	Status    Status
}

// IsRunning reports whether a tick source should currently be armed.
func (s ClockState) IsRunning() bool {
	return s.Status == StatusRunning
}

// TickEvent describes what a single tick did.
type TickEvent struct {
	// Applied is false when the tick arrived while the clock was not running.
	Applied    bool
	Remaining  int
	RolledOver bool
	From       Phase
	To         Phase
}

// PhaseClock counts down the current phase one second at a time and flips
// between work and rest when the count reaches zero.
//
// PhaseClock is not safe for concurrent use. Its owner must confine every
// call to a single goroutine.
type PhaseClock struct {
	durations Durations
	state     ClockState
}

// NewPhaseClock creates an idle clock at the start of a work phase.
func NewPhaseClock(d Durations) *PhaseClock {
	return &PhaseClock{
		durations: d,
		state: ClockState{
			Phase:     PhaseWork,
			Remaining: d.Work,
			Status:    StatusIdle,
		},
	}
}

// State returns a copy of the current clock state.
func (c *PhaseClock) State() ClockState {
	return c.state
}

// Durations returns the configured phase lengths.
func (c *PhaseClock) Durations() Durations {
	return c.durations
}

// Start arms the clock. It reports false if the clock was already running.
func (c *PhaseClock) Start() bool {
	if c.state.Status == StatusRunning {
		return false
	}
	c.state.Status = StatusRunning
	return true
}

// Pause halts the clock without touching the remaining time. It reports
// false if the clock was not running.
func (c *PhaseClock) Pause() bool {
	if c.state.Status != StatusRunning {
		return false
	}
	c.state.Status = StatusPaused
	return true
}

// Tick advances the countdown by one second.
func (c *PhaseClock) Tick() TickEvent {
	if c.state.Status != StatusRunning {
		return TickEvent{Remaining: c.state.Remaining, From: c.state.Phase, To: c.state.Phase}
	}

	c.state.Remaining--
	if c.state.Remaining <= 0 {
		ev := c.rolloverPhase()
		ev.Applied = true
		return ev
	}

	return TickEvent{
		Applied:   true,
		Remaining: c.state.Remaining,
		From:      c.state.Phase,
		To:        c.state.Phase,
	}
}

// Skip forces a rollover regardless of the remaining time.
func (c *PhaseClock) Skip() TickEvent {
	return c.rolloverPhase()
}

// rolloverPhase stops the clock, flips the phase and reloads the full
// duration of the entering phase.
func (c *PhaseClock) rolloverPhase() TickEvent {
	from := c.state.Phase
	to := from.Next()

	c.state = ClockState{
		Phase:     to,
		Remaining: c.durations.For(to),
		Status:    StatusIdle,
	}

	return TickEvent{
		Remaining:  c.state.Remaining,
		RolledOver: true,
		From:       from,
		To:         to,
	}
}
