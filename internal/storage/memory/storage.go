package memory

import (
	"context"
	"sync"

	"github.com/mcoot/randstr/internal/model"
	"github.com/mcoot/randstr/internal/storage"
)

// DefaultMaxRuns is the journal cap used when none is configured
const DefaultMaxRuns = 1000

// Storage is an in-memory implementation of the storage interface.
// Once maxRuns runs are held, each new run evicts the oldest.
type Storage struct {
	mu sync.RWMutex

	runs    map[model.RunID]*model.Run
	order   []model.RunID
	maxRuns int
}

// New creates a new in-memory storage instance holding at most maxRuns runs.
// A maxRuns below one selects DefaultMaxRuns.
func New(maxRuns int) *Storage {
	if maxRuns < 1 {
		maxRuns = DefaultMaxRuns
	}
	return &Storage{
		runs:    make(map[model.RunID]*model.Run),
		maxRuns: maxRuns,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveRun(ctx context.Context, run *model.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.runs[run.ID]; !exists {
		s.order = append(s.order, run.ID)
	}
	s.runs[run.ID] = run

	for len(s.order) > s.maxRuns {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
	return nil
}

func (s *Storage) GetRun(ctx context.Context, id model.RunID) (*model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, model.ErrRunNotFound
	}
	return run, nil
}

func (s *Storage) ListRuns(ctx context.Context, limit int) ([]*model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.order)
	if limit > 0 && limit < n {
		n = limit
	}

	runs := make([]*model.Run, 0, n)
	for i := len(s.order) - 1; i >= 0 && len(runs) < n; i-- {
		runs = append(runs, s.runs[s.order[i]])
	}
	return runs, nil
}

// RunCount returns the number of stored runs (useful for testing)
func (s *Storage) RunCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
