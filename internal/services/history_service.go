package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// HistoryService records completed phases and reads them back for the
// history and stats commands. A nil storage disables it.
type HistoryService struct {
	storage     ports.Storage
	gitDetector ports.GitDetector
	workingDir  string
	logger      *slog.Logger
}

// NewHistoryService creates a new history service. gitDetector may be nil.
func NewHistoryService(storage ports.Storage, gitDetector ports.GitDetector, workingDir string, logger *slog.Logger) *HistoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryService{
		storage:     storage,
		gitDetector: gitDetector,
		workingDir:  workingDir,
		logger:      logger,
	}
}

// Enabled reports whether records are persisted.
func (s *HistoryService) Enabled() bool {
	return s.storage != nil
}

// Record tags rec with the current git branch when available and saves it.
func (s *HistoryService) Record(ctx context.Context, rec *domain.PhaseRecord) error {
	if !s.Enabled() || rec == nil {
		return nil
	}

	if s.gitDetector != nil {
		info, err := s.gitDetector.Detect(ctx, s.workingDir)
		if err != nil {
			s.logger.Debug("no git context for record", "error", err)
		} else {
			rec.GitBranch = info.Branch
		}
	}

	if err := s.storage.History().Save(ctx, rec); err != nil {
		return fmt.Errorf("failed to record phase: %w", err)
	}

	s.logger.Debug("phase recorded", "id", rec.ID, "phase", rec.Phase, "branch", rec.GitBranch)
	return nil
}

// Recent returns up to limit records, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]*domain.PhaseRecord, error) {
	if !s.Enabled() {
		return nil, nil
	}
	return s.storage.History().FindRecent(ctx, limit)
}

// Daily returns per-day stats for the last days days, today included.
func (s *HistoryService) Daily(ctx context.Context, days int) ([]domain.DailyStats, error) {
	if !s.Enabled() || days <= 0 {
		return nil, nil
	}
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), now.Day()-(days-1), 0, 0, 0, 0, now.Location())
	return s.storage.History().GetDailyStats(ctx, since)
}
