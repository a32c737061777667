// Package compute derives per-fill markouts from oracle candles and fills.
package compute

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Fill is a trade execution with its derived fill price.
type Fill struct {
	Timestamp int64
	Symbol    string
	Direction string // maker order direction: "long", "short" or empty
	Price     float64
}

// Result is one markout row. It serializes to the columns the plotter reads.
type Result struct {
	Timestamp int64
	Symbol    string
	Side      int
	FillPrice float64
	Horizon   string
	Markout   float64
}

// Oracle maps a minute-aligned unix timestamp to the oracle close price.
type Oracle map[int64]float64

// LoadOracle reads an oracle candle CSV (columns ts, oracleClose).
func LoadOracle(path string) (Oracle, error) {
	o := make(Oracle)
	err := csvRows(path, []string{"ts", "oracleClose"}, func(_ int, col func(string) string) error {
		ts, err := parseInt("ts", col("ts"))
		if err != nil {
			return err
		}
		px, err := parseFloat("oracleClose", col("oracleClose"))
		if err != nil {
			return err
		}
		o[ts] = px
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// LoadFills reads a fills CSV. Rows with a zero base amount are dropped and
// the fill price is quote / base.
func LoadFills(path string) ([]Fill, error) {
	required := []string{"ts", "symbol", "makerOrderDirection", "baseAssetAmountFilled", "quoteAssetAmountFilled"}

	var fills []Fill
	err := csvRows(path, required, func(_ int, col func(string) string) error {
		ts, err := parseInt("ts", col("ts"))
		if err != nil {
			return err
		}
		base, err := parseFloat("baseAssetAmountFilled", col("baseAssetAmountFilled"))
		if err != nil {
			return err
		}
		if base == 0 {
			return nil
		}
		quote, err := parseFloat("quoteAssetAmountFilled", col("quoteAssetAmountFilled"))
		if err != nil {
			return err
		}

		fills = append(fills, Fill{
			Timestamp: ts,
			Symbol:    col("symbol"),
			Direction: col("makerOrderDirection"),
			Price:     quote / base,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fills, nil
}

// ParseHorizons parses a comma separated list of minute horizons, e.g. "1,5,15".
func ParseHorizons(s string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("bad horizon %q: %w", tok, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("bad horizon %q: must be positive", tok)
		}
		out = append(out, n)
	}
	return out, nil
}

func floorMinute(ts int64) int64 {
	return ts - ts%60
}

// Markouts evaluates every fill against the oracle close h minutes after the
// fill's minute. Fills without a direction or a usable price and horizons
// with no oracle point are skipped.
func Markouts(oracle Oracle, fills []Fill, horizons []int) []Result {
	out := make([]Result, 0, len(fills)*len(horizons))

	for _, f := range fills {
		if f.Direction == "" || f.Price == 0 || math.IsNaN(f.Price) || math.IsInf(f.Price, 0) {
			continue
		}
		side := -1
		if f.Direction == "long" {
			side = 1
		}
		base := floorMinute(f.Timestamp)

		for _, h := range horizons {
			px, ok := oracle[base+int64(h)*60]
			if !ok {
				continue
			}
			out = append(out, Result{
				Timestamp: f.Timestamp,
				Symbol:    f.Symbol,
				Side:      side,
				FillPrice: f.Price,
				Horizon:   fmt.Sprintf("%dm", h),
				Markout:   float64(side) * (px - f.Price) / f.Price,
			})
		}
	}
	return out
}

// Header is the column row written by WriteCSV.
var Header = []string{"ts", "symbol", "side", "fill_price", "horizon", "markout"}

// WriteCSV writes results as a markout CSV.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range results {
		err := cw.Write([]string{
			strconv.FormatInt(r.Timestamp, 10),
			r.Symbol,
			strconv.Itoa(r.Side),
			f(r.FillPrice),
			r.Horizon,
			f(r.Markout),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes results to path.
func SaveCSV(path string, results []Result) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(fh, results); err != nil {
		fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return fh.Close()
}

// Run loads both inputs, computes markouts and saves them to output.
func Run(oraclePath, fillsPath string, horizons []int, output string) ([]Result, error) {
	oracle, err := LoadOracle(oraclePath)
	if err != nil {
		return nil, err
	}
	fills, err := LoadFills(fillsPath)
	if err != nil {
		return nil, err
	}

	results := Markouts(oracle, fills, horizons)
	if err := SaveCSV(output, results); err != nil {
		return nil, err
	}
	return results, nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
