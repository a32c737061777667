package markout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	groups, err := Aggregate(Table{Records: []Record{
		{Timestamp: 100, Horizon: "5s", Markout: 1.0},
		{Timestamp: 200, Horizon: "5s", Markout: -0.5},
		{Timestamp: 50, Horizon: "1m", Markout: 2.0},
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, groups))

	want := "\nMarkout Summary:\n" +
		strings.Repeat("-", 40) + "\n" +
		"    1m: avg=  2.0000, trades=  1\n" +
		"    5s: avg=  0.2500, trades=  2\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, nil))
	assert.Equal(t, "\nMarkout Summary:\n"+strings.Repeat("-", 40)+"\n", buf.String())
}

func TestSummarize(t *testing.T) {
	groups, err := Aggregate(Table{Records: []Record{
		{Timestamp: 1, Horizon: "15m", Markout: -1},
		{Timestamp: 2, Horizon: "15m", Markout: -2},
	}})
	require.NoError(t, err)

	got := Summarize(groups)
	require.Len(t, got, 1)
	assert.Equal(t, "15m", got[0].Horizon)
	assert.Equal(t, 2, got[0].Count)
	assert.InDelta(t, -1.5, got[0].Mean, 1e-12)
	assert.InDelta(t, -3.0, got[0].Total, 1e-12)
}
