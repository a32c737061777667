package compute

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/quickmark/markout"
)

func TestOutputPathMatchesSourceConvention(t *testing.T) {
	path := OutputPath("data", "3bA1f9c2d7e84b5f", "SOL-PERP")
	assert.Equal(t, filepath.Join("data", "markouts_3bA1f9c2_SOL-PERP.csv"), path)

	matched, err := filepath.Match(markout.FilePattern, filepath.Base(path))
	require.NoError(t, err)
	assert.True(t, matched)

	src := markout.ParseSource(path)
	assert.Equal(t, "3bA1f9c2", src.Account)
	assert.Equal(t, "SOL-PERP", src.Symbol)
	assert.Equal(t, "3bA1f9c2 / SOL-PERP", src.Title())
}

func TestInputPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("d", "oracle_BTC-PERP.csv"), OraclePath("d", "BTC-PERP"))
	assert.Equal(t, filepath.Join("d", "fills_abcdefgh_BTC-PERP.csv"), FillsPath("d", "abcdefghijk", "BTC-PERP"))
	assert.Equal(t, filepath.Join("d", "fills_abc_BTC-PERP.csv"), FillsPath("d", "abc", "BTC-PERP"))
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	acct := "3bA1f9c2d7e84b5f"
	writeFile(t, dir, "oracle_SOL-PERP.csv", oracleCSV)
	writeFile(t, dir, "fills_3bA1f9c2_SOL-PERP.csv", fillsCSV)

	results, err := RunBatch(dir, []Account{{ID: acct, Symbols: []string{"SOL-PERP", "BTC-PERP"}}}, []int{1, 5})

	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 4, results[0].Count)
	assert.Equal(t, OutputPath(dir, acct, "SOL-PERP"), results[0].Output)

	var nf *markout.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, OraclePath(dir, "BTC-PERP"), nf.Path)
	assert.Error(t, results[1].Err)

	files, derr := markout.Discover(dir)
	require.NoError(t, derr)
	assert.Equal(t, []string{OutputPath(dir, acct, "SOL-PERP")}, files)

	tbl, lerr := markout.Load(files[0])
	require.NoError(t, lerr)
	assert.Equal(t, 4, tbl.Len())

	_, serr := os.Stat(OutputPath(dir, acct, "BTC-PERP"))
	assert.True(t, os.IsNotExist(serr))
}
