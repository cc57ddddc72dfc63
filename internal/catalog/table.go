package catalog

import "fmt"

// Table is a loaded catalog: a row-major numeric matrix with a uniform
// column count. A zero-row table is valid; absence of detections is a
// legitimate observational outcome.
type Table struct {
	rows [][]float64
	cols int
}

// Rows returns the number of data rows in the table.
func (t *Table) Rows() int {
	return len(t.rows)
}

// Cols returns the table's column count. It is zero only for tables with
// no rows at all.
func (t *Table) Cols() int {
	return t.cols
}

// Column returns a copy of column i across all rows.
// It returns ErrColumnOutOfRange when the table is non-empty and does not
// have column i. For a zero-row table every column is valid and empty,
// because there is no width to validate against.
func (t *Table) Column(i int) ([]float64, error) {
	if t.Rows() == 0 {
		return nil, nil
	}
	if i < 0 || i >= t.cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrColumnOutOfRange, i, t.cols)
	}
	out := make([]float64, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out, nil
}
