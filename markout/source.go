package markout

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FilePattern matches the markout files picked up in batch mode.
const FilePattern = "markouts_*.csv"

// Source is the account and symbol encoded in a file name of the form
// markouts_<account>_<symbol...>.csv.
type Source struct {
	File    string
	Account string
	Symbol  string
}

// ParseSource derives account and symbol from path. Names that do not follow
// the convention yield a Source with empty Account and Symbol.
func ParseSource(path string) Source {
	base := filepath.Base(path)
	s := Source{File: base}

	parts := strings.Split(strings.TrimSuffix(base, filepath.Ext(base)), "_")
	if len(parts) < 3 {
		return s
	}
	s.Account = parts[1]
	s.Symbol = strings.Join(parts[2:], "_")
	return s
}

// ShortAccount is the account truncated to eight characters.
func (s Source) ShortAccount() string {
	if len(s.Account) <= 8 {
		return s.Account
	}
	return s.Account[:8]
}

// Title is the panel title used in batch mode.
func (s Source) Title() string {
	if s.Account == "" {
		return s.File
	}
	return fmt.Sprintf("%s / %s", s.ShortAccount(), s.Symbol)
}

// Discover returns the markout files in dir, sorted by name. A directory
// with no matches, or one that does not exist, yields an empty slice.
func Discover(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, FilePattern))
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
