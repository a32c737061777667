package markout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIgnoresExtraColumns(t *testing.T) {
	in := "ts,symbol,side,fill_price,horizon,markout\n" +
		"100,SOL-PERP,1,20.5,5s,1.0\n" +
		"200.5,SOL-PERP,-1,20.6,5s,-0.5\n" +
		"50,SOL-PERP,1,20.4,1m,2\n"

	tbl, err := Read(strings.NewReader(in), "mem.csv")
	require.NoError(t, err)

	assert.Equal(t, "mem.csv", tbl.Source)
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, Record{Timestamp: 200.5, Horizon: "5s", Markout: -0.5}, tbl.Records[1])
}

func TestReadHeaderOnly(t *testing.T) {
	tbl, err := Read(strings.NewReader("ts,horizon,markout\n"), "empty.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		msg  string
	}{
		{"empty", "", 0, "no header"},
		{"missing column", "ts,horizon\n1,5s\n", 1, "markout"},
		{"bad ts", "ts,horizon,markout\nnope,5s,1\n", 2, "bad ts"},
		{"bad markout", "ts,horizon,markout\n1,5s,x\n", 2, "bad markout"},
		{"nan markout", "ts,horizon,markout\n1,5s,0.1\n2,5s,NaN\n", 3, "not finite"},
		{"inf markout", "ts,horizon,markout\n1,5s,+Inf\n", 2, "not finite"},
		{"inf ts", "ts,horizon,markout\n-inf,5s,1\n", 2, "bad ts"},
		{"short row", "ts,horizon,markout\n1,5s\n", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in), "bad.csv")
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := Load(path)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, path, nf.Path)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markouts_acct_SOL-PERP.csv")
	require.NoError(t, os.WriteFile(path, []byte("ts,horizon,markout\n1700000000,1m,0.01\n"), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, path, tbl.Source)
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), tbl.Records[0].Time())
}
