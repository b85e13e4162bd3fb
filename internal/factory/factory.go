package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/randstr/internal/config"
	"github.com/mcoot/randstr/internal/dependencies/clock"
	"github.com/mcoot/randstr/internal/dependencies/random"
	"github.com/mcoot/randstr/internal/services/alphabet"
	"github.com/mcoot/randstr/internal/services/generator"
	"github.com/mcoot/randstr/internal/storage"
	"github.com/mcoot/randstr/internal/storage/memory"
	redisstorage "github.com/mcoot/randstr/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Source

	// Services
	AlphabetService  *alphabet.Service
	GeneratorService *generator.Service
}

// Close releases the storage connection, if the backend holds one
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the journal backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// MaxRuns caps the in-memory journal
	// If zero, memory.DefaultMaxRuns is used
	MaxRuns int
}

// ConfigFrom builds a factory Config from resolved application settings
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	out := Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		MaxRuns:     cfg.JournalMaxRuns,
	}
	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.RunTTL = cfg.RedisRunTTL
		redisCfg.MaxRuns = int64(cfg.JournalMaxRuns)
		out.RedisConfig = &redisCfg
	}
	return out
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New(cfg.MaxRuns)
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	src := random.NewSource()

	return newWithDependencies(store, clk, src, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, src random.Source, logger *slog.Logger) *App {
	alphabetService := alphabet.New(logger)
	generatorService := generator.New(alphabetService, store, src, clk, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           src,
		AlphabetService:  alphabetService,
		GeneratorService: generatorService,
	}
}
