// Package options holds the flags and resolved configuration shared by all
// quickmark commands.
package options

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/rustyeddy/quickmark/chart"
	"github.com/rustyeddy/quickmark/config"
	"github.com/rustyeddy/quickmark/journal"
)

type RootConfig struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	LogFormat  string

	// root command chart flags
	OutDir    string
	Format    string
	XAxis     string
	Open      bool
	NoSummary bool

	// Cfg is the merged config file + flags, set by Load.
	Cfg *config.Config
}

// Load reads the config file (if any), applies explicitly set flags on top,
// validates the result and installs the logger.
func (rc *RootConfig) Load(cmd *cobra.Command) error {
	cfg := config.Default()
	if rc.ConfigPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(rc.ConfigPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Chart.OutDir = rc.OutDir
	}
	if flags.Changed("format") {
		cfg.Chart.Format = rc.Format
	}
	if flags.Changed("x-axis") {
		cfg.Chart.XAxis = rc.XAxis
	}
	if flags.Changed("open") {
		cfg.Chart.Open = rc.Open
	}
	if flags.Changed("no-summary") {
		cfg.Summary.Print = !rc.NoSummary
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = rc.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = rc.LogFormat
	}
	if flags.Changed("db") {
		cfg.Journal = config.JournalConfig{Type: "sqlite", DBPath: rc.DBPath}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	rc.Cfg = cfg

	setupLogger(cmd.ErrOrStderr(), cfg.Log)
	return nil
}

func setupLogger(w io.Writer, cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// XAxisMode is the configured single-file x axis.
func (rc *RootConfig) XAxisMode() chart.XAxis {
	x, _ := chart.ParseXAxis(rc.Cfg.Chart.XAxis)
	return x
}

// ChartSize is the single-file figure size.
func (rc *RootConfig) ChartSize() (vg.Length, vg.Length) {
	return vg.Length(rc.Cfg.Chart.Width) * vg.Inch, vg.Length(rc.Cfg.Chart.Height) * vg.Inch
}

// PanelSize is the size of one batch grid cell.
func (rc *RootConfig) PanelSize() (vg.Length, vg.Length) {
	return vg.Length(rc.Cfg.Chart.PanelWidth) * vg.Inch, vg.Length(rc.Cfg.Chart.PanelHeight) * vg.Inch
}

// OutputPath places a chart named stem in the output directory.
func (rc *RootConfig) OutputPath(stem string) string {
	return filepath.Join(rc.Cfg.Chart.OutDir, stem+"."+rc.Cfg.Chart.Format)
}

// OpenJournal opens the configured run journal (a no-op journal when off).
func (rc *RootConfig) OpenJournal() (journal.Journal, error) {
	j := rc.Cfg.Journal
	switch j.Type {
	case "csv":
		return journal.Open(j.Type, j.RunsFile, j.SummariesFile)
	case "sqlite":
		return journal.Open(j.Type, j.DBPath)
	}
	return journal.Open(j.Type)
}

// OpenSQLite opens the journal database for queries.
func (rc *RootConfig) OpenSQLite() (*journal.SQLite, error) {
	if rc.Cfg.Journal.Type != "sqlite" {
		return nil, fmt.Errorf("journal queries need a sqlite journal (set --db or journal.db_path)")
	}
	return journal.NewSQLite(rc.Cfg.Journal.DBPath)
}
