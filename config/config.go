package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional quickmark configuration file.
type Config struct {
	Data    DataConfig    `json:"data" yaml:"data"`
	Chart   ChartConfig   `json:"chart" yaml:"chart"`
	Summary SummaryConfig `json:"summary" yaml:"summary"`
	Compute ComputeConfig `json:"compute" yaml:"compute"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// DataConfig locates markout files for batch mode.
type DataConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// ChartConfig controls chart output
type ChartConfig struct {
	OutDir      string  `json:"out_dir" yaml:"out_dir"`
	Format      string  `json:"format" yaml:"format"` // png | jpg | svg | pdf
	Width       float64 `json:"width" yaml:"width"`   // inches, single-file chart
	Height      float64 `json:"height" yaml:"height"` // inches, single-file chart
	PanelWidth  float64 `json:"panel_width" yaml:"panel_width"`
	PanelHeight float64 `json:"panel_height" yaml:"panel_height"`
	XAxis       string  `json:"x_axis" yaml:"x_axis"` // index | time
	Open        bool    `json:"open" yaml:"open"`
}

// SummaryConfig toggles the text summary in single-file mode.
type SummaryConfig struct {
	Print bool `json:"print" yaml:"print"`
}

// ComputeConfig drives "compute batch": one markout file per account and
// symbol, read from and written to data.dir.
type ComputeConfig struct {
	Horizons []int           `json:"horizons" yaml:"horizons"` // minutes
	Accounts []AccountConfig `json:"accounts,omitempty" yaml:"accounts,omitempty"`
}

// AccountConfig lists the symbols computed for one account.
type AccountConfig struct {
	ID      string   `json:"id" yaml:"id"`
	Symbols []string `json:"symbols" yaml:"symbols"`
}

// JournalConfig selects where run summaries are recorded.
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	RunsFile      string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	SummariesFile string `json:"summaries_file,omitempty" yaml:"summaries_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug | info | warn | error
	Format string `json:"format" yaml:"format"` // text | json
}

var (
	formats      = []string{"png", "jpg", "jpeg", "svg", "pdf"}
	xAxes        = []string{"index", "time"}
	journalTypes = []string{"none", "csv", "sqlite"}
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"text", "json"}
)

// LoadFromFile loads configuration from a file (YAML, falling back to JSON).
// Fields missing from the file keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON otherwise)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if !slices.Contains(formats, strings.ToLower(c.Chart.Format)) {
		return fmt.Errorf("chart.format must be one of %s", strings.Join(formats, ", "))
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart width and height must be positive")
	}
	if c.Chart.PanelWidth <= 0 || c.Chart.PanelHeight <= 0 {
		return fmt.Errorf("chart panel_width and panel_height must be positive")
	}
	if !slices.Contains(xAxes, c.Chart.XAxis) {
		return fmt.Errorf("chart.x_axis must be 'index' or 'time'")
	}
	if len(c.Compute.Horizons) == 0 {
		return fmt.Errorf("compute.horizons must not be empty")
	}
	for _, h := range c.Compute.Horizons {
		if h <= 0 {
			return fmt.Errorf("compute.horizons must be positive, got %d", h)
		}
	}
	for i, a := range c.Compute.Accounts {
		if a.ID == "" {
			return fmt.Errorf("compute.accounts[%d].id is required", i)
		}
		if len(a.Symbols) == 0 {
			return fmt.Errorf("compute.accounts[%d] (%s) has no symbols", i, a.ID)
		}
	}
	if !slices.Contains(journalTypes, c.Journal.Type) {
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && (c.Journal.RunsFile == "" || c.Journal.SummariesFile == "") {
		return fmt.Errorf("journal runs_file and summaries_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %s", strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be 'text' or 'json'")
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "data",
		},
		Chart: ChartConfig{
			OutDir:      ".",
			Format:      "png",
			Width:       12,
			Height:      8,
			PanelWidth:  4,
			PanelHeight: 3,
			XAxis:       "index",
		},
		Summary: SummaryConfig{
			Print: true,
		},
		Compute: ComputeConfig{
			Horizons: []int{1, 5, 15},
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
