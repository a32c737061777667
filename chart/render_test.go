package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/rustyeddy/quickmark/markout"
)

func sampleGroups(t *testing.T) []markout.Group {
	t.Helper()
	groups, err := markout.Aggregate(markout.Table{Records: []markout.Record{
		{Timestamp: 1700000100, Horizon: "5s", Markout: 1.0},
		{Timestamp: 1700000200, Horizon: "5s", Markout: -0.5},
		{Timestamp: 1700000050, Horizon: "1m", Markout: 2.0},
	}})
	require.NoError(t, err)
	return groups
}

func requireWritten(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
}

func TestParseXAxis(t *testing.T) {
	x, err := ParseXAxis("time")
	require.NoError(t, err)
	assert.Equal(t, ByTime, x)

	x, err = ParseXAxis("")
	require.NoError(t, err)
	assert.Equal(t, ByIndex, x)
	assert.Equal(t, "index", x.String())

	_, err = ParseXAxis("price")
	assert.Error(t, err)
}

func TestPoints(t *testing.T) {
	groups := sampleGroups(t)
	g := groups[1]

	byIndex := Points(g, ByIndex)
	require.Len(t, byIndex, 2)
	assert.Equal(t, 0.0, byIndex[0].X)
	assert.Equal(t, 1.0, byIndex[1].X)
	assert.Equal(t, 0.5, byIndex[1].Y)

	byTime := Points(g, ByTime)
	assert.Equal(t, 1700000100.0, byTime[0].X)
	assert.Equal(t, 1700000200.0, byTime[1].X)
}

func TestNewPlotLegend(t *testing.T) {
	p, err := NewPlot(sampleGroups(t), ByIndex)
	require.NoError(t, err)
	assert.Equal(t, "Trade Number", p.X.Label.Text)
	assert.Equal(t, "Cumulative Markout", p.Y.Label.Text)
}

func TestRenderSingle(t *testing.T) {
	for _, ext := range []string{".png", ".svg"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", "single"+ext)
			err := WithCanvas(path, 6*vg.Inch, 4*vg.Inch, func(c *Canvas) error {
				return RenderSingle(c, sampleGroups(t), ByTime)
			})
			require.NoError(t, err)
			requireWritten(t, path)
		})
	}
}

func TestRenderSingleEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	err := WithCanvas(path, 4*vg.Inch, 3*vg.Inch, func(c *Canvas) error {
		return RenderSingle(c, nil, ByIndex)
	})
	require.NoError(t, err)
	requireWritten(t, path)
}

func TestRenderGrid(t *testing.T) {
	groups := sampleGroups(t)
	panels := []Panel{
		{Source: markout.ParseSource("markouts_aaaaaaaaaaaa_SOL-PERP.csv"), Groups: groups},
		{Source: markout.ParseSource("markouts_b_BTC-PERP.csv"), Groups: groups},
		{Source: markout.ParseSource("markouts_c_ETH-PERP.csv"), Err: errors.New("boom")},
		{Source: markout.ParseSource("markouts_d_JUP-PERP.csv")},
		{Source: markout.ParseSource("markouts_e_WIF-PERP.csv"), Groups: groups},
	}
	assert.Equal(t, 3, panels[0].Trades())

	path := filepath.Join(t.TempDir(), "grid.png")
	w, h := GridSize(len(panels), 3*vg.Inch, 2*vg.Inch)
	err := WithCanvas(path, w, h, func(c *Canvas) error {
		return RenderGrid(c, panels)
	})
	require.NoError(t, err)
	requireWritten(t, path)
}

func TestWithCanvasFailureWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.png")
	err := WithCanvas(path, vg.Inch, vg.Inch, func(*Canvas) error {
		return errors.New("draw failed")
	})
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewCanvasUnsupported(t *testing.T) {
	_, err := NewCanvas("chart.bmp", vg.Inch, vg.Inch)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestCanvasCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.svg")
	c, err := NewCanvas(path, vg.Inch, vg.Inch)
	require.NoError(t, err)
	assert.Equal(t, path, c.Path())
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	requireWritten(t, path)
}
