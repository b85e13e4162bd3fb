package generator

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/randstr/internal/dependencies/clock"
	"github.com/mcoot/randstr/internal/dependencies/random"
	"github.com/mcoot/randstr/internal/model"
	"github.com/mcoot/randstr/internal/services/alphabet"
	"github.com/mcoot/randstr/internal/services/length"
	"github.com/mcoot/randstr/internal/services/sampler"
	"github.com/mcoot/randstr/internal/storage"
)

// Request describes one generation
type Request struct {
	// Length is a length specifier, "N" or "LO-HI"
	Length string

	Literals  []string
	FilePaths []string
	Classes   []string

	// Unique selects sampling without replacement
	Unique bool

	// Seed is the RNG seed; a fresh one is generated when nil
	Seed *int64

	// OnSeed is called with the seed in use before sources are resolved
	OnSeed func(seed int64)

	// OnAlphabet is called with the resolved alphabet before sampling
	OnAlphabet func(alphabet model.WeightedAlphabet)

	replayOf model.RunID
}

// Result is the outcome of a successful generation
type Result struct {
	Output   string
	Seed     int64
	Length   int
	Alphabet model.WeightedAlphabet
	Warnings []string

	// RunID is empty if the run could not be journalled
	RunID model.RunID
}

// Service orchestrates length parsing, alphabet resolution and sampling
type Service struct {
	alphabet *alphabet.Service
	storage  storage.Storage
	source   random.Source
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a new generator Service
func New(alphabetService *alphabet.Service, store storage.Storage, source random.Source, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		alphabet: alphabetService,
		storage:  store,
		source:   source,
		clock:    clk,
		logger:   logger,
	}
}

// Generate produces one random string. Every error is returned before any
// output exists; journalling failures are logged and never fail the call.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	lengthRange, err := length.Parse(req.Length)
	if err != nil {
		return nil, err
	}

	files, err := s.alphabet.LoadFiles(req.FilePaths)
	if err != nil {
		return nil, err
	}

	seed := s.seedFor(req)
	rng := s.source.New(seed)
	if req.OnSeed != nil {
		req.OnSeed(seed)
	}

	weighted, warnings := s.alphabet.Resolve(model.SourceBundle{
		Literals: req.Literals,
		Files:    files,
		Classes:  req.Classes,
	})
	if req.OnAlphabet != nil {
		req.OnAlphabet(weighted)
	}

	n := length.Choose(rng, lengthRange)

	output, err := sampler.Sample(rng, weighted, n, req.Unique)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("generated string",
		slog.Int64("seed", seed),
		slog.Int("length", n),
		slog.Bool("unique", req.Unique),
		slog.Int("alphabet_size", len(weighted)),
	)

	return &Result{
		Output:   output,
		Seed:     seed,
		Length:   n,
		Alphabet: weighted,
		Warnings: warnings,
		RunID:    s.record(ctx, req, seed, n),
	}, nil
}

// Replay regenerates a journalled run with its original inputs and seed
func (s *Service) Replay(ctx context.Context, id model.RunID) (*Result, error) {
	run, err := s.storage.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}

	seed := run.Seed
	return s.Generate(ctx, Request{
		Length:    run.Length,
		Literals:  run.Literals,
		FilePaths: run.FilePaths,
		Classes:   run.Classes,
		Unique:    run.Unique,
		Seed:      &seed,
		replayOf:  run.ID,
	})
}

// History returns up to limit journalled runs, newest first
func (s *Service) History(ctx context.Context, limit int) ([]*model.Run, error) {
	return s.storage.ListRuns(ctx, limit)
}

// GetRun returns one journalled run
func (s *Service) GetRun(ctx context.Context, id model.RunID) (*model.Run, error) {
	return s.storage.GetRun(ctx, id)
}

func (s *Service) seedFor(req Request) int64 {
	if req.Seed != nil {
		return *req.Seed
	}
	return s.source.NewSeed()
}

func (s *Service) record(ctx context.Context, req Request, seed int64, n int) model.RunID {
	run := &model.Run{
		ID:           model.RunID(uuid.NewString()),
		Seed:         seed,
		Length:       req.Length,
		ChosenLength: n,
		Literals:     req.Literals,
		FilePaths:    req.FilePaths,
		Classes:      req.Classes,
		Unique:       req.Unique,
		ReplayOf:     req.replayOf,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveRun(ctx, run); err != nil {
		s.logger.Warn("failed to journal run",
			slog.Int64("seed", seed),
			slog.String("error", err.Error()),
		)
		return ""
	}
	return run.ID
}
