package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/torchastro/survcomp/internal/catalog"
	"github.com/torchastro/survcomp/internal/config"
	"github.com/torchastro/survcomp/internal/figure"
	"github.com/torchastro/survcomp/internal/history"
	"github.com/torchastro/survcomp/internal/model"
)

// NewPlotCmd creates the plot command.
func NewPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <variant>",
		Short: "Render the survey comparison figure for a variant",
		Long: `Plot loads the simulated survey table of the given parameter-set variant
together with the CORNISH source catalog and distance table, bins galactic
longitude, latitude, and heliocentric distance against the standard survey
binning, and writes a three-panel figure of overlaid step histograms into
the variant's set directory.

The figure is written atomically: a failed run never leaves a partial
image behind. Each successful run is also recorded in the run ledger
unless --no-history is given.

Examples:
  # Plot parameter set 3
  survcomp plot 3

  # Plot the simple ben survey of set 3
  survcomp plot 3 --ben

  # Write a jpg to an explicit location
  survcomp plot 3 --format jpg -o /tmp/compare.jpg

  # Use a custom configuration file
  survcomp plot 3 -c myconfig.yaml

Configuration file (.survcomp) example:
  data_dir: data/cornish
  catalogs:
    cornish: data/cornish/cornish-uchiis.txt
    cornish_distances: data/cornish/cornish-distances.txt
  figure:
    dpi: 300
    y_max: 70`,
		Args: cobra.ExactArgs(1),
		RunE: runPlotCmd,
	}

	addCommonFlags(cmd)

	// Output flags
	cmd.Flags().StringP("output", "o", "",
		"Write the figure to this path instead of the variant's set directory")
	cmd.Flags().String("format", config.DefaultFormat,
		"Output image format: png, jpg, or tiff")
	cmd.Flags().Int("dpi", config.DefaultDPI,
		"Output raster resolution")

	// Ledger flags
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the run ledger")

	return cmd
}

// addCommonFlags registers the flags shared by plot and stats.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("ben", false,
		"Use the simple ben Stromgren survey of the simulated catalog")
	cmd.Flags().Bool("harry", false,
		"Use the simple harry Stromgren survey of the simulated catalog")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .survcomp in current or home directory)")
	cmd.Flags().String("data-dir", "",
		"Root directory of the CORNISH catalogs and variant set directories")
}

// runPlotCmd executes the plot command.
func runPlotCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Cancel the run on interrupt so a long load cannot outlive the user.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runPlot(ctx, cfg, logger, cmd.OutOrStdout())
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flags win over the file; the file wins over the
// built-in defaults. Only flags the command actually registers are read,
// so plot and stats can share this.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	variant, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid variant %q: expected an integer index", args[0])
	}
	cfg.Variant = variant

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly named a config file, it must exist. The
	// default search locations may simply be absent.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	ben, err := cmd.Flags().GetBool("ben")
	if err != nil {
		return nil, err
	}
	harry, err := cmd.Flags().GetBool("harry")
	if err != nil {
		return nil, err
	}
	switch {
	case ben && harry:
		return nil, config.ErrConflictingSuffixes
	case ben:
		cfg.Suffix = model.SuffixBen
	case harry:
		cfg.Suffix = model.SuffixHarry
	}

	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if f := cmd.Flags().Lookup("output"); f != nil {
		cfg.OutputPath = f.Value.String()
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Figure.Format = f.Value.String()
	}
	if f := cmd.Flags().Lookup("dpi"); f != nil && f.Changed {
		dpi, err := strconv.Atoi(f.Value.String())
		if err != nil {
			return nil, fmt.Errorf("invalid dpi %q: %w", f.Value.String(), err)
		}
		cfg.Figure.DPI = dpi
	}
	if f := cmd.Flags().Lookup("no-history"); f != nil {
		cfg.NoHistory = f.Value.String() == "true"
	}

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// loadComparison loads the catalogs and bins them; shared by plot and stats.
func loadComparison(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*model.Comparison, error) {
	specs := cfg.ResolveDatasets(model.DefaultDatasetSpecs())

	samples, err := catalog.LoadAll(ctx, specs, logger)
	if err != nil {
		return nil, err
	}

	return model.BuildComparison(cfg.Variant, cfg.Suffix, model.DefaultVariables(), specs, samples)
}

// runPlot executes the comparison: load, bin, render, record, confirm.
func runPlot(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	logger.Info("starting comparison",
		"variant", cfg.Variant,
		"suffix", cfg.Suffix.String(),
		"dataDir", cfg.DataDir,
	)

	cmp, err := loadComparison(ctx, cfg, logger)
	if err != nil {
		return err
	}

	renderer := figure.NewRenderer(figure.Options{
		PlotSize: cfg.Figure.PlotSize,
		DPI:      cfg.Figure.DPI,
		FontSize: cfg.Figure.FontSize,
		YMax:     cfg.Figure.YMax,
		YTicks:   cfg.Figure.YTicks,
		Format:   cfg.Figure.Format,
		Logger:   logger,
	})

	outputPath := cfg.Output()
	if err := renderer.Save(cmp, outputPath); err != nil {
		return err
	}

	// Ledger failures are reported but do not undo a written figure.
	if !cfg.NoHistory {
		if err := recordRun(ctx, cfg, cmp, outputPath, logger); err != nil {
			logger.Error("failed to record run in ledger", "error", err)
		}
	}

	fmt.Fprintf(out, "plotted in %s\n", outputPath)
	return nil
}

// recordRun saves the comparison to the run ledger.
func recordRun(ctx context.Context, cfg *config.Config, cmp *model.Comparison, outputPath string, logger *slog.Logger) error {
	ledger, err := history.Open(cfg.LedgerDir, history.DefaultOptions())
	if err != nil {
		return err
	}
	defer ledger.Close()

	runID, err := ledger.SaveRun(ctx, cmp, outputPath, cfg.Figure.Format)
	if err != nil {
		return err
	}
	logger.Info("run recorded", "runID", runID, "ledgerDir", cfg.LedgerDir)
	return nil
}
