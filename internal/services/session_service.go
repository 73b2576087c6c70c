package services

import (
	"log/slog"
	"time"

	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// Snapshot is everything the screen needs to draw one frame.
type Snapshot struct {
	Phase     domain.Phase
	Remaining int
	Status    domain.Status
	Fraction  float64
	TimeText  string
	Button    string
	Durations domain.Durations

	// RingFull is set once the running animation has reached the full ring.
	RingFull bool
}

// TickResult is the outcome of forwarding one tick to the session.
type TickResult struct {
	Event domain.TickEvent

	// Completed is set when the tick finished a phase naturally.
	Completed *domain.PhaseRecord
}

// SessionService owns the phase clock and the presenter and keeps them in
// lockstep. It is the single owner of timer state: every method must be
// called from the same goroutine (the TUI update loop).
type SessionService struct {
	clock     *domain.PhaseClock
	presenter *Presenter
	now       ports.Clock
	logger    *slog.Logger

	phaseStartedAt time.Time
}

// NewSessionService creates an idle session at the start of a work phase.
func NewSessionService(d domain.Durations, now ports.Clock, logger *slog.Logger) *SessionService {
	if now == nil {
		now = ports.SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		clock:     domain.NewPhaseClock(d),
		presenter: NewPresenter(now),
		now:       now,
		logger:    logger,
	}
}

// Toggle starts the session if it is idle or paused, and pauses it if it is
// running. It returns the resulting status.
func (s *SessionService) Toggle() domain.Status {
	if s.clock.State().IsRunning() {
		s.pause()
	} else {
		s.start()
	}
	return s.clock.State().Status
}

func (s *SessionService) start() {
	state := s.clock.State()
	if state.Status == domain.StatusIdle {
		s.phaseStartedAt = s.now.Now()
	}

	s.clock.Start()
	s.presenter.StartOrResume(state.Remaining)

	s.logger.Debug("timer started",
		"phase", state.Phase,
		"remaining", state.Remaining,
		"resumed", state.Status == domain.StatusPaused)
}

func (s *SessionService) pause() {
	s.clock.Pause()
	s.presenter.Pause()

	state := s.clock.State()
	s.logger.Debug("timer paused", "phase", state.Phase, "remaining", state.Remaining)
}

// Tick advances the clock by one second. Ticks that arrive while the session
// is not running are ignored.
func (s *SessionService) Tick() TickResult {
	ev := s.clock.Tick()
	if !ev.RolledOver {
		return TickResult{Event: ev}
	}

	s.presenter.Reset()

	completed := domain.NewPhaseRecord(ev.From, s.clock.Durations().For(ev.From), s.phaseStartedAt, s.now.Now())
	s.logger.Info("phase completed", "from", ev.From, "to", ev.To, "seconds", completed.Seconds)

	return TickResult{Event: ev, Completed: completed}
}

// Skip abandons the current phase and moves to the next one. Skipped phases
// are not recorded.
func (s *SessionService) Skip() domain.TickEvent {
	ev := s.clock.Skip()
	s.presenter.Reset()
	s.logger.Info("phase skipped", "from", ev.From, "to", ev.To)
	return ev
}

// Running reports whether the tick source should be armed.
func (s *SessionService) Running() bool {
	return s.clock.State().IsRunning()
}

// Snapshot returns the current display state.
func (s *SessionService) Snapshot() Snapshot {
	state := s.clock.State()
	return Snapshot{
		Phase:     state.Phase,
		Remaining: state.Remaining,
		Status:    state.Status,
		Fraction:  s.presenter.Fraction(),
		TimeText:  FormatClock(state.Remaining),
		Button:    state.Status.ButtonLabel(),
		Durations: s.clock.Durations(),
		RingFull:  s.presenter.Done(),
	}
}
