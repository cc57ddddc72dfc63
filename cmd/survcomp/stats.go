package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/torchastro/survcomp/internal/config"
	"github.com/torchastro/survcomp/internal/report"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <variant>",
		Short: "Print the binned comparison as a Markdown summary",
		Long: `Stats loads and bins the same catalogs as the plot command but writes a
Markdown summary instead of a figure: run metadata, per-dataset entry
totals, and one bin-count table per variable.

The summary goes to stdout by default, or to a file with --output.

Examples:
  # Summarize parameter set 3
  survcomp stats 3

  # Write the summary of the harry survey to a file
  survcomp stats 3 --harry -o set3-harry.md`,
		Args: cobra.ExactArgs(1),
		RunE: runStatsCmd,
	}

	addCommonFlags(cmd)

	cmd.Flags().StringP("output", "o", "",
		"Write the summary to this file instead of stdout")

	return cmd
}

// runStatsCmd executes the stats command.
func runStatsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	return runStats(cmd.Context(), cfg, logger, outputPath, cmd.OutOrStdout())
}

// runStats loads the catalogs, bins them, and writes the Markdown summary.
func runStats(ctx context.Context, cfg *config.Config, logger *slog.Logger, outputPath string, stdout io.Writer) error {
	cmp, err := loadComparison(ctx, cfg, logger)
	if err != nil {
		return err
	}

	output := stdout
	if outputPath != "" {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		f, err := os.Create(filepath.Clean(outputPath))
		if err != nil {
			return fmt.Errorf("failed to create summary file: %w", err)
		}
		defer f.Close()
		output = f
	}

	if _, err := report.NewMarkdownWriter(output).Write(cmp); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if outputPath != "" {
		fmt.Fprintf(stdout, "summary written to %s\n", outputPath)
	}
	return nil
}
