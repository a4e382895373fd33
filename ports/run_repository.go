package ports

import (
	"context"

	"synthgen/domain/core"
	"synthgen/domain/run"
)

// RunRepository persists generation run manifests
type RunRepository interface {
	// Create inserts a new run record
	Create(ctx context.Context, r *run.Run) error

	// GetByID retrieves a run by its ID
	GetByID(ctx context.Context, id core.RunID) (*run.Run, error)

	// List returns the most recent runs, newest first
	List(ctx context.Context, limit int) ([]*run.Run, error)
}
