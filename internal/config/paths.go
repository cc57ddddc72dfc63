package config

import (
	"fmt"
	"path/filepath"

	"github.com/torchastro/survcomp/internal/model"
)

// Catalog and output file naming. The variant's set directory both holds
// its simulated survey table and receives the output figure, mirroring the
// layout the survey pipeline writes.
const (
	simulatedSurveyBase = "final-survey"
	outputBase          = "hist-locations"
	cornishCatalogFile  = "cornish-uchiis.txt"
	cornishDistanceFile = "cornish-distances.txt"
)

// VariantDir returns the set directory of a simulated-survey variant.
func VariantDir(dataDir string, variant int) string {
	return filepath.Join(dataDir, fmt.Sprintf("set%d", variant))
}

// SimulatedSurveyPath returns the simulated survey table for a variant and
// suffix, e.g. data/cornish/set3/final-survey-ben.txt.
func SimulatedSurveyPath(dataDir string, variant int, suffix model.Suffix) string {
	return filepath.Join(VariantDir(dataDir, variant), simulatedSurveyBase+suffix.Fragment()+".txt")
}

// FigurePath returns the derived output location for a variant, suffix,
// and image format, e.g. data/cornish/set3/hist-locations-ben.png.
func FigurePath(dataDir string, variant int, suffix model.Suffix, format string) string {
	return filepath.Join(VariantDir(dataDir, variant), outputBase+suffix.Fragment()+"."+format)
}

// CornishCatalogPath returns the CORNISH source catalog location under the
// data directory.
func CornishCatalogPath(dataDir string) string {
	return filepath.Join(dataDir, cornishCatalogFile)
}

// CornishDistancesPath returns the CORNISH distance table location under
// the data directory.
func CornishDistancesPath(dataDir string) string {
	return filepath.Join(dataDir, cornishDistanceFile)
}

// Output returns the figure destination for the run: the explicit override
// when set, otherwise the derived variant path.
func (c *Config) Output() string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return FigurePath(c.DataDir, c.Variant, c.Suffix, c.Figure.Format)
}

// ResolveDatasets returns copies of the dataset specs with every source
// path filled in for this run. The specs themselves stay untouched, so the
// defaults can be resolved repeatedly with different configurations.
func (c *Config) ResolveDatasets(specs []model.DatasetSpec) []model.DatasetSpec {
	resolved := make([]model.DatasetSpec, len(specs))
	for i, spec := range specs {
		out := spec
		out.Sources = make([]model.Source, len(spec.Sources))
		for j, src := range spec.Sources {
			src.Path = c.sourcePath(src.Name)
			out.Sources[j] = src
		}
		resolved[i] = out
	}
	return resolved
}

// sourcePath maps a source name to its file location for this run.
func (c *Config) sourcePath(name string) string {
	switch name {
	case model.SourceSimulatedSurvey:
		return SimulatedSurveyPath(c.DataDir, c.Variant, c.Suffix)
	case model.SourceCornishCatalog:
		if c.CornishCatalogPath != "" {
			return c.CornishCatalogPath
		}
		return CornishCatalogPath(c.DataDir)
	case model.SourceCornishDistances:
		if c.CornishDistancesPath != "" {
			return c.CornishDistancesPath
		}
		return CornishDistancesPath(c.DataDir)
	default:
		// Unknown sources resolve relative to the data directory so that
		// config-file-defined datasets keep working.
		return filepath.Join(c.DataDir, name+".txt")
	}
}
