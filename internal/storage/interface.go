package storage

import (
	"context"

	"github.com/mcoot/randstr/internal/model"
)

// Storage defines the interface for the run journal
type Storage interface {
	// SaveRun appends a run to the journal
	SaveRun(ctx context.Context, run *model.Run) error

	// GetRun returns a run by ID, or model.ErrRunNotFound
	GetRun(ctx context.Context, id model.RunID) (*model.Run, error)

	// ListRuns returns up to limit runs, newest first. A limit <= 0 returns all runs.
	ListRuns(ctx context.Context, limit int) ([]*model.Run, error)
}
