package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/randstr/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []*model.Run:
		o.printRuns(v)
	case *model.Run:
		o.printRun(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ReplayResult is what `randstr replay` reports
type ReplayResult struct {
	String string      `json:"string"`
	Seed   int64       `json:"seed"`
	Length int         `json:"length"`
	RunID  model.RunID `json:"run_id,omitempty"`
}

func (o *Output) printRuns(runs []*model.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(o.w, "No runs recorded")
		return
	}
	for _, r := range runs {
		fmt.Fprintf(o.w, "%s  %s  seed=%d length=%s chosen=%d%s\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Seed, r.Length, r.ChosenLength, runFlags(r))
	}
}

func (o *Output) printRun(r *model.Run) {
	fmt.Fprintf(o.w, "Run: %s\n", r.ID)
	fmt.Fprintf(o.w, "Created: %s\n", r.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(o.w, "Seed: %d\n", r.Seed)
	fmt.Fprintf(o.w, "Length: %s (chose %d)\n", r.Length, r.ChosenLength)
	if len(r.Literals) > 0 {
		fmt.Fprintf(o.w, "Alphabet: %s\n", quoteAll(r.Literals))
	}
	if len(r.FilePaths) > 0 {
		fmt.Fprintf(o.w, "Files: %s\n", strings.Join(r.FilePaths, ", "))
	}
	if len(r.Classes) > 0 {
		fmt.Fprintf(o.w, "Classes: %s\n", quoteAll(r.Classes))
	}
	fmt.Fprintf(o.w, "Unique: %t\n", r.Unique)
	if r.ReplayOf != "" {
		fmt.Fprintf(o.w, "Replay of: %s\n", r.ReplayOf)
	}
}

func runFlags(r *model.Run) string {
	var parts []string
	if r.Unique {
		parts = append(parts, "unique")
	}
	if r.ReplayOf != "" {
		parts = append(parts, "replay-of="+string(r.ReplayOf))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

// printString writes a generated string, optionally newline terminated
func printString(w io.Writer, s string, newline bool) {
	if newline {
		fmt.Fprintln(w, s)
		return
	}
	fmt.Fprint(w, s)
}
