package response

import (
	"time"

	"github.com/mcoot/randstr/internal/model"
	"github.com/mcoot/randstr/internal/services/generator"
)

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}

// GeneratedString is the response for a generation or replay
type GeneratedString struct {
	String   string   `json:"string"`
	Seed     int64    `json:"seed"`
	Length   int      `json:"length"`
	Warnings []string `json:"warnings"`
	RunID    string   `json:"run_id,omitempty"`
}

// GeneratedStringFromResult converts a generator Result
func GeneratedStringFromResult(r *generator.Result) GeneratedString {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return GeneratedString{
		String:   r.Output,
		Seed:     r.Seed,
		Length:   r.Length,
		Warnings: warnings,
		RunID:    string(r.RunID),
	}
}

// Run represents a journalled run
type Run struct {
	ID           string    `json:"id"`
	Seed         int64     `json:"seed"`
	Length       string    `json:"length"`
	ChosenLength int       `json:"chosen_length"`
	Alphabet     []string  `json:"alphabet"`
	Files        []string  `json:"files,omitempty"`
	Classes      []string  `json:"classes"`
	Unique       bool      `json:"unique"`
	ReplayOf     *string   `json:"replay_of"`
	CreatedAt    time.Time `json:"created_at"`
}

// RunFromModel converts a model.Run
func RunFromModel(r *model.Run) Run {
	var replayOf *string
	if r.ReplayOf != "" {
		id := string(r.ReplayOf)
		replayOf = &id
	}
	return Run{
		ID:           string(r.ID),
		Seed:         r.Seed,
		Length:       r.Length,
		ChosenLength: r.ChosenLength,
		Alphabet:     nonNil(r.Literals),
		Files:        r.FilePaths,
		Classes:      nonNil(r.Classes),
		Unique:       r.Unique,
		ReplayOf:     replayOf,
		CreatedAt:    r.CreatedAt,
	}
}

// RunList is the response for listing runs
type RunList struct {
	Runs []Run `json:"runs"`
}

// RunListFromModel converts journalled runs, keeping their order
func RunListFromModel(runs []*model.Run) RunList {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		out = append(out, RunFromModel(r))
	}
	return RunList{Runs: out}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
