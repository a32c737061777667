// Package markout loads markout tables and aggregates them into cumulative
// per-horizon curves.
package markout

import (
	"math"
	"time"
)

// Record is one markout row.
type Record struct {
	Timestamp float64 // unix seconds
	Horizon   string
	Markout   float64
}

// Time converts the record timestamp to wall-clock time.
func (r Record) Time() time.Time {
	sec, frac := math.Modf(r.Timestamp)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// Table is the ordered set of records loaded from one source file.
type Table struct {
	Source  string
	Records []Record
}

// Len returns the number of records in the table.
func (t Table) Len() int { return len(t.Records) }
