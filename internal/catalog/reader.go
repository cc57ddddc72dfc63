package catalog

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/torchastro/survcomp/internal/model"
)

// ReadTable parses a delimited text table from r. Leading lines are
// discarded according to skipHeader. Every remaining non-blank line must
// split into the same number of fields as the first one; fields that do
// not parse as numbers become NaN.
func ReadTable(r io.Reader, delim model.Delimiter, skipHeader int) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	t := &Table{}
	line := 0
	for scanner.Scan() {
		line++
		if line <= skipHeader {
			continue
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := splitFields(text, delim)
		if len(fields) == 0 {
			continue
		}
		if t.cols == 0 {
			t.cols = len(fields)
		} else if len(fields) != t.cols {
			return nil, fmt.Errorf("%w: line %d has %d columns, expected %d",
				ErrRaggedRow, line, len(fields), t.cols)
		}

		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				// Non-numeric fields (e.g. source names) become NaN and
				// are skipped by binning.
				v = math.NaN()
			}
			row[i] = v
		}
		t.rows = append(t.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if t.Rows() > 0 && t.cols == 0 {
		return nil, ErrEmptyTable
	}
	return t, nil
}

// splitFields splits a data line according to the source's delimiter.
func splitFields(line string, delim model.Delimiter) []string {
	if delim == model.DelimComma {
		return strings.Split(line, ",")
	}
	return strings.Fields(line)
}

// LoadTable reads a table from the file at path.
// Failures are wrapped in a LoadError naming the source and path.
func LoadTable(path, source string, delim model.Delimiter, skipHeader int) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // Catalog paths come from user configuration
	if err != nil {
		return nil, &LoadError{Path: path, Source: source, Err: err}
	}
	defer f.Close()

	t, err := ReadTable(f, delim, skipHeader)
	if err != nil {
		return nil, &LoadError{Path: path, Source: source, Err: err}
	}
	return t, nil
}
