package model

// Delimiter identifies how a catalog's columns are separated.
type Delimiter int

// Supported catalog delimiters.
const (
	// DelimWhitespace splits rows on any run of spaces or tabs.
	DelimWhitespace Delimiter = iota

	// DelimComma splits rows on commas.
	DelimComma
)

// String returns a human-readable delimiter name for logs and errors.
func (d Delimiter) String() string {
	if d == DelimComma {
		return "comma"
	}
	return "whitespace"
}

// Source describes one flat text table contributing values to a dataset.
// The observational and simulated catalogs store the same physical
// quantities in different columns, so every source carries its own
// variable-to-column map.
type Source struct {
	// Name identifies the source within its dataset (used in error
	// messages and path derivation, e.g. "final-survey").
	Name string

	// Path is the resolved file location. Default specs leave it empty;
	// config path derivation fills it in per run.
	Path string

	// Delimiter selects the column separator of the table.
	Delimiter Delimiter

	// SkipHeader is the number of leading lines to discard.
	SkipHeader int

	// Columns maps variable keys to 0-based column indices. The indices
	// are validated against the loaded table's width before any binning
	// or rendering happens.
	Columns map[string]int
}

// MaxColumn returns the largest column index the source consumes, or -1
// when the source maps no columns.
func (s Source) MaxColumn() int {
	max := -1
	for _, c := range s.Columns {
		if c > max {
			max = c
		}
	}
	return max
}

// DatasetSpec describes one labeled dataset drawn into every panel.
// A dataset may draw its variables from more than one file: the CORNISH
// survey stores positions in the source catalog and distances in a
// separate table.
type DatasetSpec struct {
	// Key identifies the dataset in samples, series, and the ledger.
	Key string

	// Label is the display name used in the figure legend.
	Label string

	// Sources are the text tables the dataset's values are read from.
	Sources []Source
}

// Sample holds the values extracted for one dataset, keyed by variable.
// A dataset with no rows yields empty slices, which downstream binning
// turns into all-zero counts rather than an error.
type Sample struct {
	// Dataset is the key of the DatasetSpec the values were read for.
	Dataset string

	// Values maps variable keys to the extracted column values. Fields
	// that failed numeric parsing are represented as NaN and ignored by
	// binning.
	Values map[string][]float64
}
