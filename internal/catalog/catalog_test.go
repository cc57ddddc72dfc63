package catalog

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/torchastro/survcomp/internal/model"
)

// discardLogger returns a logger whose output is thrown away.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// writeFile creates a file with the given content in dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// TestReadTable covers the text-table parsing rules.
func TestReadTable(t *testing.T) {
	t.Parallel()

	t.Run("whitespace table with header", func(t *testing.T) {
		t.Parallel()
		input := "id l b\n1 10.5 -0.3\n2 12.0 0.1\n"
		table, err := ReadTable(strings.NewReader(input), model.DelimWhitespace, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if table.Rows() != 2 || table.Cols() != 3 {
			t.Fatalf("expected 2x3 table, got %dx%d", table.Rows(), table.Cols())
		}

		col, err := table.Column(1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if col[0] != 10.5 || col[1] != 12.0 {
			t.Errorf("expected [10.5 12.0], got %v", col)
		}
	})

	t.Run("comma table keeps non-numeric fields as NaN", func(t *testing.T) {
		t.Parallel()
		input := "name,l,b\nG010.001,10.5,-0.3\nG012.345,12.0,0.1\n"
		table, err := ReadTable(strings.NewReader(input), model.DelimComma, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		names, err := table.Column(0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for i, v := range names {
			if !math.IsNaN(v) {
				t.Errorf("row %d: expected NaN for name column, got %v", i, v)
			}
		}

		l, err := table.Column(1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if l[0] != 10.5 {
			t.Errorf("expected 10.5, got %v", l[0])
		}
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		t.Parallel()
		input := "h\n1 2\n\n3 4\n"
		table, err := ReadTable(strings.NewReader(input), model.DelimWhitespace, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if table.Rows() != 2 {
			t.Errorf("expected 2 rows, got %d", table.Rows())
		}
	})

	t.Run("ragged rows return ErrRaggedRow", func(t *testing.T) {
		t.Parallel()
		input := "h\n1 2 3\n4 5\n"
		_, err := ReadTable(strings.NewReader(input), model.DelimWhitespace, 1)
		if !errors.Is(err, ErrRaggedRow) {
			t.Errorf("expected ErrRaggedRow, got %v", err)
		}
	})

	t.Run("header-only input yields a zero-row table", func(t *testing.T) {
		t.Parallel()
		table, err := ReadTable(strings.NewReader("only a header\n"), model.DelimWhitespace, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if table.Rows() != 0 {
			t.Errorf("expected 0 rows, got %d", table.Rows())
		}
	})
}

// TestTableColumn verifies column extraction bounds.
func TestTableColumn(t *testing.T) {
	t.Parallel()

	table, err := ReadTable(strings.NewReader("1 2\n3 4\n"), model.DelimWhitespace, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	t.Run("out-of-range column returns ErrColumnOutOfRange", func(t *testing.T) {
		t.Parallel()
		if _, err := table.Column(5); !errors.Is(err, ErrColumnOutOfRange) {
			t.Errorf("expected ErrColumnOutOfRange, got %v", err)
		}
	})

	t.Run("negative column returns ErrColumnOutOfRange", func(t *testing.T) {
		t.Parallel()
		if _, err := table.Column(-1); !errors.Is(err, ErrColumnOutOfRange) {
			t.Errorf("expected ErrColumnOutOfRange, got %v", err)
		}
	})
}

// TestLoadTable checks file-level failure wrapping.
func TestLoadTable(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns LoadError", func(t *testing.T) {
		t.Parallel()
		_, err := LoadTable(filepath.Join(t.TempDir(), "absent.txt"), "final-survey", model.DelimWhitespace, 1)

		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected LoadError, got %v", err)
		}
		if loadErr.Source != "final-survey" {
			t.Errorf("expected source name in error, got %q", loadErr.Source)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected the cause to unwrap to fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("existing file loads", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "survey.txt", "h\n1 2 3\n")
		table, err := LoadTable(path, "final-survey", model.DelimWhitespace, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if table.Rows() != 1 {
			t.Errorf("expected 1 row, got %d", table.Rows())
		}
	})
}

// TestLoadDataset covers column-map validation and extraction.
func TestLoadDataset(t *testing.T) {
	t.Parallel()

	t.Run("extracts mapped columns", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeFile(t, dir, "survey.txt", "h\n0 1 2 3 4\n5 6 7 8 9\n")

		spec := model.DatasetSpec{
			Key:   "simulated",
			Label: "Simulated",
			Sources: []model.Source{{
				Name:       "survey",
				Path:       path,
				Delimiter:  model.DelimWhitespace,
				SkipHeader: 1,
				Columns:    map[string]int{"d": 4, "l": 1},
			}},
		}

		sample, err := LoadDataset(spec, discardLogger())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := sample.Values["d"]; got[0] != 4 || got[1] != 9 {
			t.Errorf("expected d=[4 9], got %v", got)
		}
		if got := sample.Values["l"]; got[0] != 1 || got[1] != 6 {
			t.Errorf("expected l=[1 6], got %v", got)
		}
	})

	t.Run("column beyond table width fails fast", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeFile(t, dir, "narrow.txt", "h\n1 2\n")

		spec := model.DatasetSpec{
			Key:   "simulated",
			Label: "Simulated",
			Sources: []model.Source{{
				Name:       "narrow",
				Path:       path,
				Delimiter:  model.DelimWhitespace,
				SkipHeader: 1,
				Columns:    map[string]int{"l": 11},
			}},
		}

		_, err := LoadDataset(spec, discardLogger())
		if !errors.Is(err, ErrColumnOutOfRange) {
			t.Errorf("expected ErrColumnOutOfRange, got %v", err)
		}

		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected LoadError, got %v", err)
		}
		if loadErr.Source != "narrow" {
			t.Errorf("expected offending source named, got %q", loadErr.Source)
		}
	})

	t.Run("zero-row catalog produces empty values", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeFile(t, dir, "empty.txt", "header only\n")

		spec := model.DatasetSpec{
			Key:   "cornish",
			Label: "CORNISH",
			Sources: []model.Source{{
				Name:       "empty",
				Path:       path,
				Delimiter:  model.DelimWhitespace,
				SkipHeader: 1,
				Columns:    map[string]int{"d": 1},
			}},
		}

		sample, err := LoadDataset(spec, discardLogger())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(sample.Values["d"]) != 0 {
			t.Errorf("expected empty values, got %v", sample.Values["d"])
		}
	})
}

// TestLoadAll checks the concurrent multi-dataset load path.
func TestLoadAll(t *testing.T) {
	t.Parallel()

	t.Run("loads every dataset", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		simPath := writeFile(t, dir, "sim.txt", "h\n1 2 3\n")
		obsPath := writeFile(t, dir, "obs.txt", "h\n4,5\n")

		specs := []model.DatasetSpec{
			{
				Key: "simulated", Label: "Simulated",
				Sources: []model.Source{{
					Name: "sim", Path: simPath,
					Delimiter: model.DelimWhitespace, SkipHeader: 1,
					Columns: map[string]int{"l": 0},
				}},
			},
			{
				Key: "cornish", Label: "CORNISH",
				Sources: []model.Source{{
					Name: "obs", Path: obsPath,
					Delimiter: model.DelimComma, SkipHeader: 1,
					Columns: map[string]int{"l": 1},
				}},
			},
		}

		samples, err := LoadAll(context.Background(), specs, discardLogger())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(samples) != 2 {
			t.Fatalf("expected 2 samples, got %d", len(samples))
		}
		if samples["cornish"].Values["l"][0] != 5 {
			t.Errorf("expected 5, got %v", samples["cornish"].Values["l"])
		}
	})

	t.Run("a missing file fails the whole load", func(t *testing.T) {
		t.Parallel()
		specs := []model.DatasetSpec{{
			Key: "simulated", Label: "Simulated",
			Sources: []model.Source{{
				Name: "sim", Path: filepath.Join(t.TempDir(), "absent.txt"),
				Delimiter: model.DelimWhitespace, SkipHeader: 1,
				Columns: map[string]int{"l": 0},
			}},
		}}

		if _, err := LoadAll(context.Background(), specs, discardLogger()); err == nil {
			t.Error("expected an error for the missing catalog")
		}
	})

	t.Run("cancelled context aborts loading", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		specs := []model.DatasetSpec{{
			Key: "simulated", Label: "Simulated",
			Sources: []model.Source{{
				Name: "sim", Path: "irrelevant.txt",
				Delimiter: model.DelimWhitespace, SkipHeader: 1,
				Columns: map[string]int{"l": 0},
			}},
		}}

		if _, err := LoadAll(ctx, specs, discardLogger()); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
