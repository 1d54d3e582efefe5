package ports

import (
	"context"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

// RunStore persists evaluation run summaries so models can be compared
// across runs.
type RunStore interface {
	// EnsureSchema creates the storage schema if it does not exist.
	EnsureSchema(ctx context.Context) error

	// SaveRun stores a run summary.
	SaveRun(ctx context.Context, run *entities.Run) error

	// ListRuns returns stored runs, newest first. A non-empty model filters
	// to that model's runs.
	ListRuns(ctx context.Context, model string, limit int) ([]entities.Run, error)

	// FindRun returns the run with the given ID, or nil if absent.
	FindRun(ctx context.Context, id string) (*entities.Run, error)

	// Close releases the underlying storage.
	Close() error
}
