package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// historyRepository implements ports.HistoryRepository using SQLite.
// Timestamps are stored as unix milliseconds so range queries compare
// integers rather than formatted strings.
type historyRepository struct {
	db *sql.DB
}

// newHistoryRepository creates a new history repository.
func newHistoryRepository(db *sql.DB) ports.HistoryRepository {
	return &historyRepository{db: db}
}

// Save persists a completed phase.
func (r *historyRepository) Save(ctx context.Context, record *domain.PhaseRecord) error {
	query := `
		INSERT INTO phases (id, phase, seconds, started_at_ms, completed_at_ms, git_branch)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		string(record.Phase),
		record.Seconds,
		record.StartedAt.UnixMilli(),
		record.CompletedAt.UnixMilli(),
		record.GitBranch,
	)
	if err != nil {
		return fmt.Errorf("failed to save phase record: %w", err)
	}

	return nil
}

// FindByID retrieves a record by its unique identifier.
func (r *historyRepository) FindByID(ctx context.Context, id string) (*domain.PhaseRecord, error) {
	query := `
		SELECT id, phase, seconds, started_at_ms, completed_at_ms, git_branch
		FROM phases
		WHERE id = ?
	`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find phase record: %w", err)
	}
	return record, nil
}

// FindRecent returns the newest records first.
func (r *historyRepository) FindRecent(ctx context.Context, limit int) ([]*domain.PhaseRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := `
		SELECT id, phase, seconds, started_at_ms, completed_at_ms, git_branch
		FROM phases
		ORDER BY completed_at_ms DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent phases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*domain.PhaseRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phase record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetDailyStats returns one entry per day from since's day through today.
func (r *historyRepository) GetDailyStats(ctx context.Context, since time.Time) ([]domain.DailyStats, error) {
	loc := since.Location()
	start := startOfDay(since)
	today := startOfDay(time.Now().In(loc))

	query := `
		SELECT phase, seconds, completed_at_ms
		FROM phases
		WHERE completed_at_ms >= ?
	`

	rows, err := r.db.QueryContext(ctx, query, start.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []domain.DailyStats
	index := make(map[time.Time]int)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		index[d] = len(days)
		days = append(days, domain.DailyStats{Date: d})
	}

	for rows.Next() {
		var phase string
		var seconds int
		var completedMs int64
		if err := rows.Scan(&phase, &seconds, &completedMs); err != nil {
			return nil, fmt.Errorf("failed to scan daily stats: %w", err)
		}

		day := startOfDay(time.UnixMilli(completedMs).In(loc))
		i, ok := index[day]
		if !ok {
			continue
		}
		switch domain.Phase(phase) {
		case domain.PhaseWork:
			days[i].WorkPhases++
			days[i].TotalWorkTime += time.Duration(seconds) * time.Second
		case domain.PhaseRest:
			days[i].RestPhases++
		}
	}

	return days, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.PhaseRecord, error) {
	var (
		record      domain.PhaseRecord
		phase       string
		startedMs   int64
		completedMs int64
		branch      sql.NullString
	)

	if err := row.Scan(&record.ID, &phase, &record.Seconds, &startedMs, &completedMs, &branch); err != nil {
		return nil, err
	}

	record.Phase = domain.Phase(phase)
	record.StartedAt = time.UnixMilli(startedMs)
	record.CompletedAt = time.UnixMilli(completedMs)
	record.GitBranch = branch.String
	return &record, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
