package main

import (
	"fmt"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/torchastro/survcomp/internal/config"
	"github.com/torchastro/survcomp/internal/history"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded plot runs",
		Long: `History lists the runs recorded in the run ledger, newest first.

Each plot run is stored with its variant, survey suffix, output path, and
the binned counts of every panel. Use --variant to restrict the listing
to one parameter set and --limit to cap the number of rows.

Examples:
  # List every recorded run
  survcomp history

  # List the last five runs of parameter set 3
  survcomp history --variant 3 --limit 5`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().Int("variant", -1, "Only list runs of this parameter set")
	cmd.Flags().Int("limit", 0, "Maximum number of runs to list (0 = no limit)")
	cmd.Flags().String("ledger-dir", "", "Directory of the run ledger (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	variant, err := cmd.Flags().GetInt("variant")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	ledgerDir, err := cmd.Flags().GetString("ledger-dir")
	if err != nil {
		return err
	}
	if ledgerDir == "" {
		ledgerDir = config.XDGDataDir()
	}

	// Listing never creates a ledger; an empty one reads as no runs.
	ledger, err := history.Open(ledgerDir, history.Options{CreateIfNotExists: false})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
		return nil
	}
	defer ledger.Close()

	runs, err := ledger.ListRuns(cmd.Context(), variant, limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(r.Variant),
			r.Suffix,
			r.Format,
			r.OutputPath,
		})
	}

	md := markdown.NewMarkdown(cmd.OutOrStdout())
	md.H1("Recorded runs")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Created", "Variant", "Suffix", "Format", "Output"},
		Rows:   rows,
	})
	return md.Build()
}
