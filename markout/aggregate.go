package markout

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Group holds the records of one horizon in ascending timestamp order,
// with Cumulative[i] the running sum of Markout over Records[0..i].
type Group struct {
	Horizon    Horizon
	Records    []Record
	Cumulative []float64
}

// Len returns the number of trades in the group.
func (g Group) Len() int { return len(g.Records) }

// Markouts returns the raw markout values in timestamp order.
func (g Group) Markouts() []float64 {
	out := make([]float64, len(g.Records))
	for i, r := range g.Records {
		out[i] = r.Markout
	}
	return out
}

// Mean is the average raw markout, zero for an empty group.
func (g Group) Mean() float64 {
	if len(g.Records) == 0 {
		return 0
	}
	return stat.Mean(g.Markouts(), nil)
}

// Total is the final cumulative markout.
func (g Group) Total() float64 {
	if len(g.Cumulative) == 0 {
		return 0
	}
	return g.Cumulative[len(g.Cumulative)-1]
}

// Aggregate groups a table by horizon. Groups are ordered by horizon
// magnitude; equal magnitudes keep the order in which the horizons first
// appear. Records inside a group are stably sorted by timestamp.
func Aggregate(t Table) ([]Group, error) {
	index := make(map[string]int)
	var groups []Group

	for _, r := range t.Records {
		i, ok := index[r.Horizon]
		if !ok {
			h, err := ParseHorizon(r.Horizon)
			if err != nil {
				return nil, err
			}
			i = len(groups)
			index[r.Horizon] = i
			groups = append(groups, Group{Horizon: h})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Horizon.Magnitude < groups[b].Horizon.Magnitude
	})

	for i := range groups {
		g := &groups[i]
		sort.SliceStable(g.Records, func(a, b int) bool {
			return g.Records[a].Timestamp < g.Records[b].Timestamp
		})
		g.Cumulative = floats.CumSum(make([]float64, len(g.Records)), g.Markouts())
	}

	return groups, nil
}
