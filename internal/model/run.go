package model

import "time"

// RunID uniquely identifies a journalled generation
type RunID string

// Run records the inputs of one generation so it can be replayed.
// The generated string itself is never stored.
type Run struct {
	ID           RunID     `json:"id"`
	Seed         int64     `json:"seed"`
	Length       string    `json:"length"`
	ChosenLength int       `json:"chosen_length"`
	Literals     []string  `json:"literals,omitempty"`
	FilePaths    []string  `json:"file_paths,omitempty"`
	Classes      []string  `json:"classes,omitempty"`
	Unique       bool      `json:"unique"`
	ReplayOf     RunID     `json:"replay_of,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
