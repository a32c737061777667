package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/quickmark/internal/cli/compute"
	"github.com/rustyeddy/quickmark/internal/cli/journal"
	"github.com/rustyeddy/quickmark/internal/cli/options"
	"github.com/rustyeddy/quickmark/internal/cli/plot"
	"github.com/rustyeddy/quickmark/markout"
)

const version = "0.3.0"

func NewRootCmd() *cobra.Command {
	rc := &options.RootConfig{}

	cmd := &cobra.Command{
		Use:   "quickmark [markouts.csv | dir]",
		Short: "Quickmark: cumulative markout charts by horizon",
		Long: `Plot cumulative markout per horizon.

  quickmark                     grid of every markouts_*.csv in ./data
  quickmark data/               grid of every markouts_*.csv in data/
  quickmark markouts_x_Y.csv    one chart for one file, plus a summary table

A directory named like a subcommand (compute, config, journal, version)
runs that subcommand instead; pass it as a path, e.g. quickmark ./config`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				_ = cmd.Usage()
				return fmt.Errorf("accepts at most 1 arg, received %d", len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rc.Load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := rc.Cfg.Data.Dir
			if len(args) == 1 {
				target = args[0]
			}
			if plot.IsSingleFile(target) {
				return plot.Single(rc, cmd.OutOrStdout(), target)
			}
			return plot.Batch(rc, cmd.OutOrStdout(), target)
		},
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite run journal (enables journaling)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&rc.LogFormat, "log-format", "text", "Log format: text|json")

	// Chart flags
	cmd.Flags().StringVarP(&rc.OutDir, "out", "o", ".", "Directory charts are written to")
	cmd.Flags().StringVar(&rc.Format, "format", "png", "Chart format: png|jpg|svg|pdf")
	cmd.Flags().StringVar(&rc.XAxis, "x-axis", "index", "Single-file x axis: index|time")
	cmd.Flags().BoolVar(&rc.Open, "open", false, "Open the chart in the system viewer")
	cmd.Flags().BoolVar(&rc.NoSummary, "no-summary", false, "Do not print the summary table")

	cmd.AddCommand(
		compute.New(rc),
		journal.New(rc),
		newConfigCmd(),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quickmark %s\n", version)
		},
	})

	return cmd
}

// Report prints err the way the command line shows it.
func Report(err error) {
	var nf *markout.NotFoundError
	if errors.As(err, &nf) {
		fmt.Fprintf(os.Stderr, "File not found: %s\n", nf.Path)
		return
	}
	fmt.Fprintln(os.Stderr, "error:", err)
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		Report(err)
		os.Exit(1)
	}
}
