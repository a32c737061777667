// Package plot runs the single-file and batch chart modes.
package plot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rustyeddy/quickmark/chart"
	"github.com/rustyeddy/quickmark/internal/cli/options"
	"github.com/rustyeddy/quickmark/journal"
	"github.com/rustyeddy/quickmark/markout"
	"github.com/rustyeddy/quickmark/pkg/id"
)

// IsSingleFile reports whether target selects single-file mode.
func IsSingleFile(target string) bool {
	return strings.HasSuffix(target, ".csv")
}

// Single charts one markout file and prints its summary to out. The path is
// checked before anything is loaded.
func Single(rc *options.RootConfig, out io.Writer, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &markout.NotFoundError{Path: path}
		}
		return err
	}

	started := time.Now()
	tbl, err := markout.Load(path)
	if err != nil {
		return err
	}
	groups, err := markout.Aggregate(tbl)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	output := rc.OutputPath(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	w, h := rc.ChartSize()
	err = chart.WithCanvas(output, w, h, func(c *chart.Canvas) error {
		return chart.RenderSingle(c, groups, rc.XAxisMode())
	})
	if err != nil {
		return err
	}
	slog.Info("chart written", "path", output, "records", tbl.Len(), "horizons", len(groups))

	if rc.Cfg.Summary.Print {
		if err := markout.WriteSummary(out, groups); err != nil {
			return err
		}
	}

	run := journal.Run{
		RunID:     id.NewRunID(started),
		Mode:      "single",
		Source:    path,
		Output:    output,
		Files:     1,
		StartedAt: started,
	}
	if err := record(rc, run, []chart.Panel{{Source: markout.ParseSource(path), Groups: groups}}); err != nil {
		return err
	}

	show(rc, output)
	return nil
}

// Batch charts every markout file in dir as one grid. A directory without
// matches is reported on out and is not an error. Files that fail to load
// are drawn as empty panels and returned together in a *BatchError once the
// grid has been written.
func Batch(rc *options.RootConfig, out io.Writer, dir string) error {
	files, err := markout.Discover(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No markout files found in %s\n", dir)
		return nil
	}

	started := time.Now()
	panels := make([]chart.Panel, 0, len(files))
	for _, f := range files {
		pn := loadPanel(f)
		if pn.Err != nil {
			slog.Warn("skipping markout file", "file", f, "err", pn.Err)
		}
		panels = append(panels, pn)
	}

	output := rc.OutputPath("markouts_grid")
	pw, ph := rc.PanelSize()
	w, h := chart.GridSize(len(panels), pw, ph)
	err = chart.WithCanvas(output, w, h, func(c *chart.Canvas) error {
		return chart.RenderGrid(c, panels)
	})
	if err != nil {
		return err
	}
	rows, cols := chart.GridShape(len(panels))
	slog.Info("grid written", "path", output, "files", len(panels), "rows", rows, "cols", cols)

	if err := writeReport(out, panels); err != nil {
		return err
	}

	batchErr := newBatchError(panels)
	run := journal.Run{
		RunID:     id.NewRunID(started),
		Mode:      "batch",
		Source:    dir,
		Output:    output,
		Files:     len(panels),
		StartedAt: started,
	}
	if batchErr != nil {
		run.Failed = len(batchErr.Failures)
	}
	if err := record(rc, run, panels); err != nil {
		return err
	}

	show(rc, output)
	if batchErr != nil {
		return batchErr
	}
	return nil
}

func loadPanel(path string) chart.Panel {
	pn := chart.Panel{Source: markout.ParseSource(path)}
	tbl, err := markout.Load(path)
	if err != nil {
		pn.Err = err
		return pn
	}
	pn.Groups, pn.Err = markout.Aggregate(tbl)
	return pn
}

func record(rc *options.RootConfig, run journal.Run, panels []chart.Panel) (err error) {
	j, err := rc.OpenJournal()
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	defer func() {
		if cerr := j.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("journal: %w", cerr)
		}
	}()

	if err := j.RecordRun(run); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	for _, pn := range panels {
		for _, s := range markout.Summarize(pn.Groups) {
			err := j.RecordSummary(journal.HorizonSummary{
				RunID:   run.RunID,
				Source:  pn.Source.File,
				Horizon: s.Horizon,
				Trades:  s.Count,
				Mean:    s.Mean,
				Total:   s.Total,
			})
			if err != nil {
				return fmt.Errorf("journal: %w", err)
			}
		}
	}
	return nil
}

func show(rc *options.RootConfig, path string) {
	if !rc.Cfg.Chart.Open {
		return
	}
	if err := chart.Open(path); err != nil {
		slog.Warn("could not open chart", "path", path, "err", err)
	}
}
