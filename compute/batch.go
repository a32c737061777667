package compute

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Account is one account and the symbols computed for it.
type Account struct {
	ID      string
	Symbols []string
}

// PairResult is the outcome of one account/symbol pair in a batch.
type PairResult struct {
	Account string
	Symbol  string
	Output  string
	Count   int
	Err     error
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// OraclePath is the oracle candle file for symbol in dir.
func OraclePath(dir, symbol string) string {
	return filepath.Join(dir, fmt.Sprintf("oracle_%s.csv", symbol))
}

// FillsPath is the fills file for account and symbol in dir.
func FillsPath(dir, account, symbol string) string {
	return filepath.Join(dir, fmt.Sprintf("fills_%s_%s.csv", shortID(account), symbol))
}

// OutputPath is the markout file for account and symbol in dir. The name
// follows the markouts_<account>_<symbol>.csv convention the plotter parses.
func OutputPath(dir, account, symbol string) string {
	return filepath.Join(dir, fmt.Sprintf("markouts_%s_%s.csv", shortID(account), symbol))
}

// RunBatch computes markouts for every account/symbol pair from the oracle
// and fills files already in dir. A failing pair does not stop the others;
// the returned error joins every pair's failure.
func RunBatch(dir string, accounts []Account, horizons []int) ([]PairResult, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	var (
		out  []PairResult
		errs []error
	)
	for _, acct := range accounts {
		for _, sym := range acct.Symbols {
			pr := PairResult{
				Account: shortID(acct.ID),
				Symbol:  sym,
				Output:  OutputPath(dir, acct.ID, sym),
			}
			slog.Info("computing markouts", "account", pr.Account, "symbol", sym)

			results, err := Run(OraclePath(dir, sym), FillsPath(dir, acct.ID, sym), horizons, pr.Output)
			if err != nil {
				pr.Err = fmt.Errorf("%s %s: %w", pr.Account, sym, err)
				errs = append(errs, pr.Err)
			}
			pr.Count = len(results)
			out = append(out, pr)
		}
	}

	slog.Info("batch complete", "dir", dir, "pairs", len(out), "failed", len(errs))
	return out, errors.Join(errs...)
}
