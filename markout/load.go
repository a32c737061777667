package markout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

// Required column names in a markout CSV header.
const (
	ColTimestamp = "ts"
	ColHorizon   = "horizon"
	ColMarkout   = "markout"
)

// Load reads a markout CSV file. A missing file yields *NotFoundError and
// any structural problem yields *ParseError.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, &NotFoundError{Path: path}
		}
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read parses markout rows from r. Extra columns are ignored; source names
// the input in errors and in the returned table.
func Read(r io.Reader, source string) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return Table{}, &ParseError{Path: source, Err: errors.New("empty file, no header row")}
	}
	if err != nil {
		return Table{}, &ParseError{Path: source, Line: 1, Err: err}
	}

	idx, err := columnIndex(header, ColTimestamp, ColHorizon, ColMarkout)
	if err != nil {
		return Table{}, &ParseError{Path: source, Line: 1, Err: err}
	}
	its, ihz, imk := idx[0], idx[1], idx[2]

	t := Table{Source: source}
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return Table{}, &ParseError{Path: source, Line: line, Err: err}
		}

		ts, err := parseFinite(row[its])
		if err != nil {
			return Table{}, &ParseError{Path: source, Line: line, Err: fmt.Errorf("bad %s %q: %w", ColTimestamp, row[its], err)}
		}
		mk, err := parseFinite(row[imk])
		if err != nil {
			return Table{}, &ParseError{Path: source, Line: line, Err: fmt.Errorf("bad %s %q: %w", ColMarkout, row[imk], err)}
		}

		t.Records = append(t.Records, Record{
			Timestamp: ts,
			Horizon:   strings.TrimSpace(row[ihz]),
			Markout:   mk,
		})
	}

	return t, nil
}

// parseFinite rejects NaN and infinities, which strconv accepts but no
// chart can draw.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not finite")
	}
	return v, nil
}

func columnIndex(header []string, names ...string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	out := make([]int, len(names))
	var missing []string
	for i, n := range names {
		p, ok := pos[n]
		if !ok {
			missing = append(missing, n)
			continue
		}
		out[i] = p
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return out, nil
}
