package compute

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/quickmark/compute"
	"github.com/rustyeddy/quickmark/internal/cli/options"
)

func New(rc *options.RootConfig) *cobra.Command {
	var (
		oraclePath string
		fillsPath  string
		horizons   string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Calculate markouts from fills and oracle data",
		Long: `Compute per-fill markouts at each horizon (in minutes) from an oracle
candle CSV and a fills CSV, and write a markout CSV the plotter can read.

Example:
  quickmark compute --oracle data/oracle_SOL-PERP.csv \
    --fills data/fills_abcd1234_SOL-PERP.csv \
    --output data/markouts_abcd1234_SOL-PERP.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hs, err := compute.ParseHorizons(horizons)
			if err != nil {
				return err
			}

			slog.Info("computing markouts", "oracle", oraclePath, "fills", fillsPath, "horizons", horizons)
			results, err := compute.Run(oraclePath, fillsPath, hs, output)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d markouts to %s\n", len(results), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&oraclePath, "oracle", "", "Oracle candle CSV (ts, oracleClose)")
	cmd.Flags().StringVar(&fillsPath, "fills", "", "Fills CSV")
	cmd.Flags().StringVar(&horizons, "horizons", "1,5,15", "Comma-separated markout horizons in minutes")
	cmd.Flags().StringVar(&output, "output", "", "Output markout CSV")
	_ = cmd.MarkFlagRequired("oracle")
	_ = cmd.MarkFlagRequired("fills")
	_ = cmd.MarkFlagRequired("output")

	cmd.AddCommand(newBatchCmd(rc))

	return cmd
}

func newBatchCmd(rc *options.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Compute markouts for every account and symbol in the config",
		Long: `Compute markouts for each account/symbol pair listed under compute.accounts
in the config file. Inputs are read from data.dir:

  oracle_<symbol>.csv
  fills_<account[:8]>_<symbol>.csv

and each result is written next to them as markouts_<account[:8]>_<symbol>.csv,
ready for batch plotting.

Example:
  quickmark compute batch --config quickmark.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := rc.Cfg.Compute
			if len(cc.Accounts) == 0 {
				return fmt.Errorf("no compute.accounts configured (use --config)")
			}
			accounts := make([]compute.Account, len(cc.Accounts))
			for i, a := range cc.Accounts {
				accounts[i] = compute.Account{ID: a.ID, Symbols: a.Symbols}
			}

			results, err := compute.RunBatch(rc.Cfg.Data.Dir, accounts, cc.Horizons)
			w := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					continue
				}
				fmt.Fprintf(w, "Saved %d markouts to %s\n", r.Count, r.Output)
			}
			return err
		},
	}
}
