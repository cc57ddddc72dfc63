package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/torchastro/survcomp/internal/model"
)

// Default configuration values. The figure defaults reproduce the survey
// comparison plots the CORNISH analysis was published with.
const (
	// DefaultDataDir is the directory holding the CORNISH catalogs and the
	// per-variant simulated survey set directories.
	DefaultDataDir = "data/cornish"

	// DefaultFormat is the output image format.
	DefaultFormat = "png"

	// DefaultDPI is the output raster resolution.
	DefaultDPI = 300

	// DefaultPlotSize is the edge length of one panel in inches.
	DefaultPlotSize = 4.0

	// DefaultFontSize is the axis label font size in points.
	DefaultFontSize = 13

	// DefaultYMax is the fixed upper limit of every panel's count axis.
	// All panels share it so the histograms are visually comparable.
	DefaultYMax = 70

	// DefaultYTicks is the number of intervals the count axis is divided
	// into when placing tick marks.
	DefaultYTicks = 7

	// AppName is the application name used for XDG directory paths.
	AppName = "survcomp"
)

// Figure holds the rendering parameters of the output image.
type Figure struct {
	// Format is the raster format written: png, jpg, or tiff.
	Format string

	// DPI is the output resolution.
	DPI int

	// PlotSize is the edge length of one square panel in inches.
	PlotSize float64

	// FontSize is the axis label font size in points.
	FontSize float64

	// YMax is the shared upper limit of the count axes.
	YMax float64

	// YTicks is the number of tick intervals on the count axes.
	YTicks int
}

// Config holds all options for one survcomp run. It is populated from CLI
// flags and the optional config file, validated once, and treated as
// read-only afterwards.
type Config struct {
	// Variant is the simulated-survey parameter set index. The variant's
	// set directory under DataDir holds its survey table and receives the
	// output figure.
	Variant int

	// Suffix selects an alternate simple-survey definition for the
	// simulated catalog. At most one of the suffix flags may be set.
	Suffix model.Suffix

	// DataDir is the root directory of catalogs and variant sets.
	DataDir string

	// CornishCatalogPath overrides the CORNISH source catalog location.
	// Empty means DataDir/cornish-uchiis.txt.
	CornishCatalogPath string

	// CornishDistancesPath overrides the CORNISH distance table location.
	// Empty means DataDir/cornish-distances.txt.
	CornishDistancesPath string

	// OutputPath overrides the derived output figure location.
	OutputPath string

	// Figure holds the rendering parameters.
	Figure Figure

	// NoHistory disables recording the run in the sqlite ledger.
	NoHistory bool

	// LedgerDir is the directory of the run ledger database.
	// Defaults to the XDG data directory.
	LedgerDir string

	// ConfigFilePath is the explicit config file location, if any.
	ConfigFilePath string

	// Verbose enables debug-level logging.
	Verbose bool
}

// NewConfig returns a Config with all defaults applied. Defaults are set
// explicitly here rather than relying on zero values, because most of them
// are non-zero and the constructor doubles as their documentation.
func NewConfig() *Config {
	return &Config{
		DataDir:   DefaultDataDir,
		LedgerDir: XDGDataDir(),
		Figure: Figure{
			Format:   DefaultFormat,
			DPI:      DefaultDPI,
			PlotSize: DefaultPlotSize,
			FontSize: DefaultFontSize,
			YMax:     DefaultYMax,
			YTicks:   DefaultYTicks,
		},
	}
}

// XDGDataDir returns the XDG data directory for survcomp.
// On Linux: ~/.local/share/survcomp
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for survcomp.
// On Linux: ~/.config/survcomp
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// supportedFormats are the raster formats the figure backend can encode.
var supportedFormats = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"tiff": true,
}

// Validate checks the configuration and returns the first problem found.
// It is called once after flag parsing, before any file is opened.
func (c *Config) Validate() error {
	if c.Variant < 0 {
		return ErrInvalidVariant
	}
	if c.DataDir == "" {
		return ErrNoDataDir
	}
	if !supportedFormats[c.Figure.Format] {
		return ErrUnsupportedFormat
	}
	if c.Figure.DPI <= 0 {
		return ErrInvalidDPI
	}
	if c.Figure.PlotSize <= 0 {
		return ErrInvalidPlotSize
	}
	if c.Figure.YMax <= 0 {
		return ErrInvalidYMax
	}
	if c.Figure.YTicks <= 0 {
		return ErrInvalidYTicks
	}
	return nil
}
