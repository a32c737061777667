package journal

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/quickmark/internal/cli/options"
	"github.com/rustyeddy/quickmark/journal"
)

func New(rc *options.RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query recorded plotting runs",
		Long: `Query runs recorded in the SQLite journal.

Examples:
  quickmark --db quickmark.sqlite journal runs
  quickmark --db quickmark.sqlite journal show <run-id>`,
	}

	cmd.AddCommand(newRunsCmd(rc), newShowCmd(rc))
	return cmd
}

func newRunsCmd(rc *options.RootConfig) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rc.OpenSQLite()
			if err != nil {
				return err
			}
			defer j.Close()

			runs, err := j.ListRuns(limit)
			if err != nil {
				return fmt.Errorf("query runs: %w", err)
			}
			return writeRuns(cmd, runs)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 = all)")
	return cmd
}

func writeRuns(cmd *cobra.Command, runs []journal.Run) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Run", "Started", "Mode", "Source", "Files", "Failed", "Output")
	for _, r := range runs {
		table.Append(
			r.RunID,
			r.StartedAt.Local().Format(time.DateTime),
			r.Mode,
			r.Source,
			fmt.Sprintf("%d", r.Files),
			fmt.Sprintf("%d", r.Failed),
			r.Output,
		)
	}
	return table.Render()
}

func newShowCmd(rc *options.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a run and its horizon summaries as Org",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rc.OpenSQLite()
			if err != nil {
				return err
			}
			defer j.Close()

			run, err := j.GetRun(args[0])
			if err != nil {
				return err
			}
			sums, err := j.ListSummariesByRunID(run.RunID)
			if err != nil {
				return fmt.Errorf("query summaries: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), journal.FormatRunOrg(run, sums))
			return nil
		},
	}
}
