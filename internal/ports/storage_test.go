package ports

import (
	"context"
	"testing"
	"time"

	"github.com/xvierd/pomo/internal/domain"
)

// Mock implementations for testing interfaces.

type mockHistoryRepository struct {
	records []*domain.PhaseRecord
}

func (m *mockHistoryRepository) Save(ctx context.Context, record *domain.PhaseRecord) error {
	m.records = append(m.records, record)
	return nil
}

func (m *mockHistoryRepository) FindByID(ctx context.Context, id string) (*domain.PhaseRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (m *mockHistoryRepository) FindRecent(ctx context.Context, limit int) ([]*domain.PhaseRecord, error) {
	var result []*domain.PhaseRecord
	for i := len(m.records) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.records[i])
	}
	return result, nil
}

func (m *mockHistoryRepository) GetDailyStats(ctx context.Context, since time.Time) ([]domain.DailyStats, error) {
	return nil, nil
}

type mockStorage struct {
	history *mockHistoryRepository
}

func (m *mockStorage) History() HistoryRepository { return m.history }
func (m *mockStorage) Close() error               { return nil }
func (m *mockStorage) Migrate() error             { return nil }

var (
	_ HistoryRepository = (*mockHistoryRepository)(nil)
	_ Storage           = (*mockStorage)(nil)
)

func TestHistoryRepositoryContract(t *testing.T) {
	store := &mockStorage{history: &mockHistoryRepository{}}
	ctx := context.Background()
	now := time.Now()

	first := domain.NewPhaseRecord(domain.PhaseWork, 5, now.Add(-5*time.Second), now)
	second := domain.NewPhaseRecord(domain.PhaseRest, 5, now, now.Add(5*time.Second))

	if err := store.History().Save(ctx, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.History().Save(ctx, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	recent, _ := store.History().FindRecent(ctx, 1)
	if len(recent) != 1 || recent[0].ID != second.ID {
		t.Errorf("FindRecent(1) = %v, want newest record", recent)
	}

	if _, err := store.History().FindByID(ctx, "missing"); err != domain.ErrRecordNotFound {
		t.Errorf("FindByID() error = %v, want ErrRecordNotFound", err)
	}
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := SystemClock.Now()
	if got.Before(before) {
		t.Errorf("SystemClock.Now() = %v, before %v", got, before)
	}
}
