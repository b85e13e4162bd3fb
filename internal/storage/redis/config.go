package redis

import "time"

// Config holds Redis connection and journal retention settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// RunTTL is how long a journalled run is kept (0 keeps it forever)
	RunTTL time.Duration

	// MaxRuns caps the journal index length (0 means unbounded)
	MaxRuns int64
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		RunTTL:       7 * 24 * time.Hour,
		MaxRuns:      1000,
	}
}
