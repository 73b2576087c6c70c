// Package ports defines the interfaces (driven and driving ports)
// for pomo following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/xvierd/pomo/internal/domain"
)

// HistoryRepository defines the interface for completed-phase persistence.
// This is a driven port (implemented by adapters).
type HistoryRepository interface {
	// Save persists a completed phase.
	Save(ctx context.Context, record *domain.PhaseRecord) error

	// FindByID retrieves a record by its unique identifier.
	FindByID(ctx context.Context, id string) (*domain.PhaseRecord, error)

	// FindRecent returns the newest records first, at most limit of them.
	FindRecent(ctx context.Context, limit int) ([]*domain.PhaseRecord, error)

	// GetDailyStats returns one entry per calendar day in [since, now],
	// oldest first, including days with no completed phases.
	GetDailyStats(ctx context.Context, since time.Time) ([]domain.DailyStats, error)
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// History provides access to completed-phase records.
	History() HistoryRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
