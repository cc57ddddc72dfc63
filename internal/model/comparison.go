package model

import (
	"fmt"
	"time"

	"github.com/torchastro/survcomp/internal/histogram"
)

// Series is one dataset's histogram inside a panel.
type Series struct {
	// Dataset is the key of the dataset the series was computed from.
	Dataset string

	// Label is the dataset's display label, shared with the legend.
	Label string

	// Counts holds one count per bin of the panel's variable.
	Counts []int

	// Entries is the number of values considered, including NaN and
	// out-of-range values.
	Entries int

	// InRange is the number of values that landed inside a bin.
	InRange int
}

// Panel is one variable rendered as an axes region, holding one series per
// dataset that maps a column for the variable.
type Panel struct {
	Variable Variable
	Series   []Series
}

// Comparison is the assembled report: an ordered sequence of panels built
// from the same datasets, plus the run identity needed for file naming and
// the ledger.
type Comparison struct {
	// Variant is the simulated-survey parameter set index.
	Variant int

	// Suffix is the simple-survey naming variant used for this run.
	Suffix Suffix

	// GeneratedAt records when the comparison was computed.
	GeneratedAt time.Time

	// Panels holds one entry per variable, in display order.
	Panels []Panel
}

// BuildComparison bins every dataset's sample against every variable's
// edges and assembles the panel sequence. Datasets appear in the order of
// specs, so series order (and therefore legend order) is deterministic.
// A dataset contributes a series to a panel only when one of its sources
// maps a column for the panel's variable; the default specs map every
// variable in every dataset.
func BuildComparison(variant int, suffix Suffix, vars []Variable, specs []DatasetSpec, samples map[string]Sample) (*Comparison, error) {
	cmp := &Comparison{
		Variant:     variant,
		Suffix:      suffix,
		GeneratedAt: time.Now().UTC(),
		Panels:      make([]Panel, 0, len(vars)),
	}

	for _, v := range vars {
		panel := Panel{Variable: v}
		for _, spec := range specs {
			sample, ok := samples[spec.Key]
			if !ok {
				return nil, fmt.Errorf("model: no sample loaded for dataset %q", spec.Key)
			}
			values, ok := sample.Values[v.Key]
			if !ok {
				continue
			}
			counts, err := histogram.Count(values, v.Edges)
			if err != nil {
				return nil, fmt.Errorf("model: binning %s for dataset %q: %w", v.Key, spec.Key, err)
			}
			panel.Series = append(panel.Series, Series{
				Dataset: spec.Key,
				Label:   spec.Label,
				Counts:  counts,
				Entries: len(values),
				InRange: histogram.Total(counts),
			})
		}
		cmp.Panels = append(cmp.Panels, panel)
	}

	return cmp, nil
}

// DatasetLabels returns the distinct dataset labels across all panels, in
// first-seen order. The figure legend shows exactly these labels, once
// each, regardless of how many panels a dataset appears in.
func (c *Comparison) DatasetLabels() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, p := range c.Panels {
		for _, s := range p.Series {
			if !seen[s.Label] {
				seen[s.Label] = true
				labels = append(labels, s.Label)
			}
		}
	}
	return labels
}
