package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/pomo/internal/domain"
)

var demo = domain.Durations{Work: 5, Rest: 5}

func TestSessionService_InitialSnapshot(t *testing.T) {
	s := NewSessionService(demo, newFakeClock(), quietLogger)
	snap := s.Snapshot()

	assert.Equal(t, domain.PhaseWork, snap.Phase)
	assert.Equal(t, 5, snap.Remaining)
	assert.Equal(t, domain.StatusIdle, snap.Status)
	assert.Equal(t, "00:05", snap.TimeText)
	assert.Equal(t, "Start", snap.Button)
	assert.Equal(t, 0.0, snap.Fraction)
	assert.False(t, s.Running())
}

func TestSessionService_Toggle(t *testing.T) {
	s := NewSessionService(demo, newFakeClock(), quietLogger)

	assert.Equal(t, domain.StatusRunning, s.Toggle())
	assert.Equal(t, "Pause", s.Snapshot().Button)
	assert.True(t, s.Running())

	assert.Equal(t, domain.StatusPaused, s.Toggle())
	assert.Equal(t, "Start", s.Snapshot().Button)
	assert.False(t, s.Running())
}

func TestSessionService_TickWhileIdleIsIgnored(t *testing.T) {
	s := NewSessionService(demo, newFakeClock(), quietLogger)

	res := s.Tick()

	assert.False(t, res.Event.Applied)
	assert.Nil(t, res.Completed)
	assert.Equal(t, 5, s.Snapshot().Remaining)
}

func TestSessionService_PauseResumeWithoutTick(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionService(demo, clock, quietLogger)
	s.Toggle()
	clock.Advance(time.Second)
	s.Tick()
	clock.Advance(500 * time.Millisecond)

	s.Toggle()
	before := s.Snapshot()
	clock.Advance(7 * time.Second)
	s.Toggle()
	after := s.Snapshot()

	assert.Equal(t, before.Remaining, after.Remaining)
	assert.Equal(t, before.Fraction, after.Fraction)
}

func TestSessionService_RolloverAfterWorkDuration(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionService(demo, clock, quietLogger)
	start := clock.Now()
	s.Toggle()

	var res TickResult
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		res = s.Tick()
	}

	require.True(t, res.Event.RolledOver)
	snap := s.Snapshot()
	assert.Equal(t, domain.PhaseRest, snap.Phase)
	assert.Equal(t, 5, snap.Remaining)
	assert.Equal(t, domain.StatusIdle, snap.Status)
	assert.Equal(t, 0.0, snap.Fraction, "presenter is reset on rollover")

	require.NotNil(t, res.Completed)
	assert.Equal(t, domain.PhaseWork, res.Completed.Phase)
	assert.Equal(t, 5, res.Completed.Seconds)
	assert.True(t, res.Completed.StartedAt.Equal(start))
	assert.True(t, res.Completed.CompletedAt.Equal(start.Add(5*time.Second)))
}

func TestSessionService_AnimationIgnoresPauseTime(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionService(demo, clock, quietLogger)

	s.Toggle()
	clock.Advance(time.Second)
	s.Tick() // 5 -> 4
	clock.Advance(time.Second)
	s.Tick() // 4 -> 3
	assert.Equal(t, 3, s.Snapshot().Remaining)

	s.Toggle()
	assert.InDelta(t, 0.4, s.Snapshot().Fraction, 1e-9)

	clock.Advance(42 * time.Second)
	s.Toggle()
	assert.InDelta(t, 0.4, s.Snapshot().Fraction, 1e-9)

	clock.Advance(time.Second)
	s.Tick()
	clock.Advance(time.Second)
	s.Tick()
	clock.Advance(999 * time.Millisecond)
	assert.False(t, s.presenter.Done(), "not done before 5s of running time")

	clock.Advance(time.Millisecond)
	assert.True(t, s.presenter.Done(), "done after exactly 5s of running time")
	assert.Equal(t, 1.0, s.Snapshot().Fraction)

	res := s.Tick()
	assert.True(t, res.Event.RolledOver)
}

func TestSessionService_PhasesAlternate(t *testing.T) {
	s := NewSessionService(domain.Durations{Work: 2, Rest: 1}, newFakeClock(), quietLogger)

	want := []domain.Phase{domain.PhaseRest, domain.PhaseWork, domain.PhaseRest, domain.PhaseWork}
	for i, phase := range want {
		s.Toggle()
		var res TickResult
		for !res.Event.RolledOver {
			res = s.Tick()
		}
		assert.Equal(t, phase, s.Snapshot().Phase, "rollover %d", i)
		assert.Equal(t, phase.Next(), res.Completed.Phase)
	}
}

func TestSessionService_Skip(t *testing.T) {
	s := NewSessionService(demo, newFakeClock(), quietLogger)
	s.Toggle()
	s.Tick()

	ev := s.Skip()

	assert.True(t, ev.RolledOver)
	snap := s.Snapshot()
	assert.Equal(t, domain.PhaseRest, snap.Phase)
	assert.Equal(t, 5, snap.Remaining)
	assert.False(t, s.Running())
	assert.Equal(t, 0.0, snap.Fraction)
}

func TestSessionService_RingFullBeforeLastTick(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionService(demo, clock, quietLogger)
	s.Toggle()

	clock.Advance(4 * time.Second)
	assert.False(t, s.Snapshot().RingFull)

	clock.Advance(time.Second)
	assert.True(t, s.Snapshot().RingFull)

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	assert.False(t, s.Snapshot().RingFull, "rollover empties the ring")
}
