package redis

import (
	"fmt"

	"github.com/mcoot/randstr/internal/model"
)

// Key prefix for all journal data
const keyPrefix = "randstr"

// runKey returns the Redis key for a Run
func runKey(id model.RunID) string {
	return fmt.Sprintf("%s:run:%s", keyPrefix, id)
}

// runsIndexKey returns the Redis key for the LIST of run IDs, newest first
func runsIndexKey() string {
	return fmt.Sprintf("%s:idx:runs", keyPrefix)
}
