package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/torchastro/survcomp/internal/model"
)

// LoadDataset loads every source of a dataset spec and extracts the mapped
// columns. Column indices are validated against the loaded table's width
// here, at load time, so a misconfigured column map fails before any
// rendering starts.
func LoadDataset(spec model.DatasetSpec, logger *slog.Logger) (model.Sample, error) {
	sample := model.Sample{
		Dataset: spec.Key,
		Values:  make(map[string][]float64),
	}

	for _, src := range spec.Sources {
		table, err := LoadTable(src.Path, src.Name, src.Delimiter, src.SkipHeader)
		if err != nil {
			return model.Sample{}, err
		}

		if table.Rows() > 0 && src.MaxColumn() >= table.Cols() {
			return model.Sample{}, &LoadError{
				Path:   src.Path,
				Source: src.Name,
				Err: fmt.Errorf("%w: dataset %q references column %d but table has %d",
					ErrColumnOutOfRange, spec.Key, src.MaxColumn(), table.Cols()),
			}
		}
		if table.Rows() == 0 {
			logger.Warn("catalog has no rows", "dataset", spec.Key, "source", src.Name, "path", src.Path)
		}

		for variable, col := range src.Columns {
			values, err := table.Column(col)
			if err != nil {
				return model.Sample{}, &LoadError{Path: src.Path, Source: src.Name, Err: err}
			}
			sample.Values[variable] = values
		}

		logger.Debug("catalog loaded",
			"dataset", spec.Key,
			"source", src.Name,
			"rows", table.Rows(),
			"cols", table.Cols(),
		)
	}

	return sample, nil
}

// LoadAll loads all dataset specs concurrently. The sources are independent
// files, so they are read in parallel; the first failure cancels the rest
// and is returned as-is.
func LoadAll(ctx context.Context, specs []model.DatasetSpec, logger *slog.Logger) (map[string]model.Sample, error) {
	samples := make(map[string]model.Sample, len(specs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, spec := range specs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			sample, err := LoadDataset(spec, logger)
			if err != nil {
				return err
			}

			mu.Lock()
			samples[spec.Key] = sample
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return samples, nil
}
