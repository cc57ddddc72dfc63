package model

import "github.com/torchastro/survcomp/internal/histogram"

// Dataset and source keys for the default CORNISH comparison.
const (
	DatasetSimulated = "simulated"
	DatasetCornish   = "cornish"

	SourceSimulatedSurvey  = "final-survey"
	SourceCornishCatalog   = "cornish-uchiis"
	SourceCornishDistances = "cornish-distances"
)

// DefaultVariables returns the three compared quantities with the survey's
// standard binning: galactic longitude in 2 degree bins over the CORNISH
// field, galactic latitude in 0.1 degree bins across the survey strip, and
// heliocentric distance in 1 kpc bins.
func DefaultVariables() []Variable {
	return []Variable{
		{
			Key:     VarLongitude,
			Symbol:  "l",
			Unit:    "deg",
			Edges:   histogram.Arange(10, 65, 2),
			AxisMin: 10,
			AxisMax: 65,
		},
		{
			Key:     VarLatitude,
			Symbol:  "b",
			Unit:    "deg",
			Edges:   histogram.Arange(-1, 1, 0.1),
			AxisMin: -1,
			AxisMax: 1,
		},
		{
			Key:     VarDistance,
			Symbol:  "d",
			Unit:    "kpc",
			Edges:   histogram.Arange(0, 20, 1),
			AxisMin: 0,
			AxisMax: 20,
		},
	}
}

// DefaultDatasetSpecs returns the two compared datasets with their column
// layouts. The simulated survey table stores distance, longitude, and
// latitude in columns 4, 11, and 12; the CORNISH source catalog is
// comma-delimited with positions in columns 1 and 2; CORNISH distances
// live in a separate whitespace table with the distance in column 1.
// Source paths are resolved per run by the config package.
func DefaultDatasetSpecs() []DatasetSpec {
	return []DatasetSpec{
		{
			Key:   DatasetCornish,
			Label: "CORNISH",
			Sources: []Source{
				{
					Name:       SourceCornishCatalog,
					Delimiter:  DelimComma,
					SkipHeader: 1,
					Columns: map[string]int{
						VarLongitude: 1,
						VarLatitude:  2,
					},
				},
				{
					Name:       SourceCornishDistances,
					Delimiter:  DelimWhitespace,
					SkipHeader: 1,
					Columns: map[string]int{
						VarDistance: 1,
					},
				},
			},
		},
		{
			Key:   DatasetSimulated,
			Label: "Simulated",
			Sources: []Source{
				{
					Name:       SourceSimulatedSurvey,
					Delimiter:  DelimWhitespace,
					SkipHeader: 1,
					Columns: map[string]int{
						VarDistance:  4,
						VarLongitude: 11,
						VarLatitude:  12,
					},
				},
			},
		},
	}
}
