package compute

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rustyeddy/quickmark/markout"
)

// csvRows opens path and calls fn for every data row with a column lookup
// built from the header.
func csvRows(path string, required []string, fn func(line int, col func(string) string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &markout.NotFoundError{Path: path}
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return &markout.ParseError{Path: path, Err: errors.New("empty file, no header row")}
	}
	if err != nil {
		return &markout.ParseError{Path: path, Line: 1, Err: err}
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	for _, name := range required {
		if _, ok := pos[name]; !ok {
			return &markout.ParseError{Path: path, Line: 1, Err: fmt.Errorf("missing required column %q", name)}
		}
	}

	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return &markout.ParseError{Path: path, Line: line, Err: err}
		}

		col := func(name string) string {
			i, ok := pos[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		if err := fn(line, col); err != nil {
			return &markout.ParseError{Path: path, Line: line, Err: err}
		}
	}
}

func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", name, s)
	}
	return v, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", name, s)
	}
	return v, nil
}
