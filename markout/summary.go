package markout

import (
	"fmt"
	"io"
	"strings"
)

// Summary is the per-horizon line of the summary table.
type Summary struct {
	Horizon string
	Mean    float64
	Count   int
	Total   float64
}

// Summarize returns one Summary per group, in group order.
func Summarize(groups []Group) []Summary {
	out := make([]Summary, 0, len(groups))
	for _, g := range groups {
		out = append(out, Summary{
			Horizon: g.Horizon.Label,
			Mean:    g.Mean(),
			Count:   g.Len(),
			Total:   g.Total(),
		})
	}
	return out
}

// WriteSummary prints the fixed-width summary table:
//
//	    5s: avg=  0.2500, trades=  2
func WriteSummary(w io.Writer, groups []Group) error {
	if _, err := fmt.Fprintf(w, "\nMarkout Summary:\n%s\n", strings.Repeat("-", 40)); err != nil {
		return err
	}
	for _, s := range Summarize(groups) {
		if _, err := fmt.Fprintf(w, "%6s: avg=%8.4f, trades=%3d\n", s.Horizon, s.Mean, s.Count); err != nil {
			return err
		}
	}
	return nil
}
