package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	sumPath := filepath.Join(dir, "summaries.csv")

	j, err := NewCSV(runsPath, sumPath)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	assert.Equal(t, [][]string{runsHeader}, readCSV(t, runsPath))
	assert.Equal(t, [][]string{summariesHeader}, readCSV(t, sumPath))
}

func TestCSVJournalAppends(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	sumPath := filepath.Join(dir, "summaries.csv")
	started := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, id := range []string{"R1", "R2"} {
		j, err := NewCSV(runsPath, sumPath)
		require.NoError(t, err)
		require.NoError(t, j.RecordRun(Run{
			RunID: id, Mode: "single", Source: "m.csv", Output: "m.png", Files: 1, StartedAt: started,
		}))
		require.NoError(t, j.RecordSummary(HorizonSummary{
			RunID: id, Source: "m.csv", Horizon: "5s", Trades: 2, Mean: 0.25, Total: 0.5,
		}))
		require.NoError(t, j.Close())
	}

	runs := readCSV(t, runsPath)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"R2", "single", "m.csv", "m.png", "1", "0", "2024-01-02T03:04:05Z"}, runs[2])

	sums := readCSV(t, sumPath)
	require.Len(t, sums, 3)
	assert.Equal(t, []string{"R1", "m.csv", "5s", "2", "0.250000", "0.500000"}, sums[1])
}

func TestOpen(t *testing.T) {
	j, err := Open("none")
	require.NoError(t, err)
	assert.Equal(t, Nop{}, j)
	assert.NoError(t, j.RecordRun(Run{}))

	_, err = Open("csv", "only-one.csv")
	assert.Error(t, err)

	_, err = Open("redis")
	assert.ErrorContains(t, err, "unknown journal type")

	dir := t.TempDir()
	j, err = Open("sqlite", filepath.Join(dir, "j.db"))
	require.NoError(t, err)
	assert.NoError(t, j.Close())
}
