package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatRunOrg renders a run and its horizon summaries as an Org-mode block,
// with the run facts in a PROPERTIES drawer and one table per source.
func FormatRunOrg(r Run, summaries []HorizonSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Run: %s %s (%s)\n", r.Mode, r.Source, shortID(r.RunID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":RUN_ID: %s\n", r.RunID)
	fmt.Fprintf(&b, ":MODE: %s\n", r.Mode)
	fmt.Fprintf(&b, ":SOURCE: %s\n", r.Source)
	fmt.Fprintf(&b, ":OUTPUT: %s\n", r.Output)
	fmt.Fprintf(&b, ":FILES: %d\n", r.Files)
	fmt.Fprintf(&b, ":FAILED: %d\n", r.Failed)
	fmt.Fprintf(&b, ":STARTED_AT: %s\n", r.StartedAt.UTC().Format(time.RFC3339))
	b.WriteString(":END:\n")

	source := ""
	for _, s := range summaries {
		if s.Source != source {
			source = s.Source
			fmt.Fprintf(&b, "\n*** %s\n", source)
			b.WriteString("| horizon | trades | mean | total |\n")
			b.WriteString("|---------+--------+------+-------|\n")
		}
		fmt.Fprintf(&b, "| %s | %d | %.4f | %.4f |\n", s.Horizon, s.Trades, s.Mean, s.Total)
	}

	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
