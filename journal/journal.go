// Package journal records the per-horizon summaries of each plotting run.
package journal

import (
	"fmt"
	"time"
)

// Run is one invocation of the plotter.
type Run struct {
	RunID     string
	Mode      string // "single" or "batch"
	Source    string // file or directory plotted
	Output    string // chart written
	Files     int
	Failed    int
	StartedAt time.Time
}

// HorizonSummary is one horizon of one source file within a run.
type HorizonSummary struct {
	RunID   string
	Source  string
	Horizon string
	Trades  int
	Mean    float64
	Total   float64
}

type Journal interface {
	RecordRun(Run) error
	RecordSummary(HorizonSummary) error
	Close() error
}

// Nop discards everything. It is used when journaling is off.
type Nop struct{}

func (Nop) RecordRun(Run) error                { return nil }
func (Nop) RecordSummary(HorizonSummary) error { return nil }
func (Nop) Close() error                       { return nil }

// Open returns the journal for kind ("none", "csv" or "sqlite"). For csv,
// paths are the runs and summaries files; for sqlite, the database path.
func Open(kind string, paths ...string) (Journal, error) {
	switch kind {
	case "", "none":
		return Nop{}, nil
	case "csv":
		if len(paths) != 2 {
			return nil, fmt.Errorf("csv journal needs runs and summaries paths")
		}
		return NewCSV(paths[0], paths[1])
	case "sqlite":
		if len(paths) != 1 {
			return nil, fmt.Errorf("sqlite journal needs a database path")
		}
		return NewSQLite(paths[0])
	}
	return nil, fmt.Errorf("unknown journal type %q", kind)
}
