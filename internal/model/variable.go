package model

// Variable keys for the quantities compared between the surveys.
const (
	VarLongitude = "l"
	VarLatitude  = "b"
	VarDistance  = "d"
)

// Variable describes one physical quantity drawn as a panel: its display
// symbol and unit, the shared bin edges every dataset is binned against,
// and the fixed axis range.
//
// The bin edges are shared by all datasets drawn into the variable's panel
// so the resulting histograms are directly comparable.
type Variable struct {
	// Key identifies the variable in column maps, reports, and the ledger.
	Key string

	// Symbol is the quantity symbol used for the axis label (e.g. "l").
	Symbol string

	// Unit is the unit label appended to the axis label (e.g. "deg").
	// Empty for dimensionless quantities.
	Unit string

	// Edges are the non-decreasing bin edges defining len(Edges)-1 bins.
	Edges []float64

	// AxisMin and AxisMax fix the panel's horizontal display range.
	AxisMin float64
	AxisMax float64
}

// AxisLabel returns the label drawn under the variable's panel,
// "symbol [unit]", or just the symbol when the variable has no unit.
func (v Variable) AxisLabel() string {
	if v.Unit == "" {
		return v.Symbol
	}
	return v.Symbol + " [" + v.Unit + "]"
}

// Bins returns the number of bins defined by the variable's edges.
func (v Variable) Bins() int {
	if len(v.Edges) < 2 {
		return 0
	}
	return len(v.Edges) - 1
}
