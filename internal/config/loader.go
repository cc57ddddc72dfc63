package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".survcomp"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk yaml configuration. Every field is optional; unset
// fields keep their built-in defaults.
type File struct {
	// DataDir overrides the catalog root directory.
	DataDir string `yaml:"data_dir"`

	// Catalogs overrides the observational catalog locations.
	Catalogs struct {
		// Cornish is the CORNISH source catalog path.
		Cornish string `yaml:"cornish"`

		// CornishDistances is the CORNISH distance table path.
		CornishDistances string `yaml:"cornish_distances"`
	} `yaml:"catalogs"`

	// Figure overrides rendering parameters. Zero values are ignored.
	Figure struct {
		Format   string  `yaml:"format"`
		DPI      int     `yaml:"dpi"`
		PlotSize float64 `yaml:"plot_size"`
		FontSize float64 `yaml:"font_size"`
		YMax     float64 `yaml:"y_max"`
		YTicks   int     `yaml:"y_ticks"`
	} `yaml:"figure"`

	// LedgerDir overrides the run ledger location.
	LedgerDir string `yaml:"ledger_dir"`
}

// LoadConfigFile loads a yaml configuration file. A missing file returns
// ErrConfigNotFound so callers can decide whether that is fatal (explicit
// path) or fine (default search).
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file:
//  1. the explicit path, when given
//  2. .survcomp in the current directory
//  3. .survcomp in the user's home directory
//
// It returns the path found, or empty string when there is none.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Apply merges the file's set fields into the config. CLI flags are applied
// after the file, so flags win over the file and the file wins over the
// built-in defaults.
func (f *File) Apply(cfg *Config) {
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.Catalogs.Cornish != "" {
		cfg.CornishCatalogPath = f.Catalogs.Cornish
	}
	if f.Catalogs.CornishDistances != "" {
		cfg.CornishDistancesPath = f.Catalogs.CornishDistances
	}
	if f.Figure.Format != "" {
		cfg.Figure.Format = f.Figure.Format
	}
	if f.Figure.DPI > 0 {
		cfg.Figure.DPI = f.Figure.DPI
	}
	if f.Figure.PlotSize > 0 {
		cfg.Figure.PlotSize = f.Figure.PlotSize
	}
	if f.Figure.FontSize > 0 {
		cfg.Figure.FontSize = f.Figure.FontSize
	}
	if f.Figure.YMax > 0 {
		cfg.Figure.YMax = f.Figure.YMax
	}
	if f.Figure.YTicks > 0 {
		cfg.Figure.YTicks = f.Figure.YTicks
	}
	if f.LedgerDir != "" {
		cfg.LedgerDir = f.LedgerDir
	}
}
