package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/pomo/internal/domain"
)

func TestHistoryService_Record(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("tags git branch", func(t *testing.T) {
		svc := NewHistoryService(store, &fakeGitDetector{branch: "feature/ring"}, ".", quietLogger)
		now := time.Now()
		rec := domain.NewPhaseRecord(domain.PhaseWork, 1500, now.Add(-25*time.Minute), now)

		require.NoError(t, svc.Record(ctx, rec))

		found, err := store.History().FindByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "feature/ring", found.GitBranch)
	})

	t.Run("git failure still records", func(t *testing.T) {
		svc := NewHistoryService(store, &fakeGitDetector{err: errNoRepo}, ".", quietLogger)
		now := time.Now()
		rec := domain.NewPhaseRecord(domain.PhaseRest, 300, now.Add(-5*time.Minute), now)

		require.NoError(t, svc.Record(ctx, rec))

		found, err := store.History().FindByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Empty(t, found.GitBranch)
	})

	t.Run("without detector", func(t *testing.T) {
		svc := NewHistoryService(store, nil, "", quietLogger)
		now := time.Now()
		require.NoError(t, svc.Record(ctx, domain.NewPhaseRecord(domain.PhaseWork, 5, now, now)))
	})
}

func TestHistoryService_Disabled(t *testing.T) {
	svc := NewHistoryService(nil, nil, "", quietLogger)
	ctx := context.Background()
	now := time.Now()

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.Record(ctx, domain.NewPhaseRecord(domain.PhaseWork, 5, now, now)))

	recent, err := svc.Recent(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, recent)

	days, err := svc.Daily(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, days)
}

func TestHistoryService_RecentAndDaily(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewHistoryService(store, nil, "", quietLogger)

	now := time.Now()
	for i := 0; i < 3; i++ {
		end := now.Add(-time.Duration(3-i) * time.Second)
		require.NoError(t, svc.Record(ctx, domain.NewPhaseRecord(domain.PhaseWork, 60, end.Add(-time.Second), end)))
	}

	recent, err := svc.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	days, err := svc.Daily(ctx, 7)
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, 3, days[6].WorkPhases)
	assert.Equal(t, 3*time.Minute, days[6].TotalWorkTime)
}
