package config

import "errors"

// Configuration validation errors. Package-level sentinels so callers can
// match them with errors.Is while users still get a readable message.
var (
	// ErrInvalidVariant is returned when the variant index is negative.
	ErrInvalidVariant = errors.New("invalid variant: must be non-negative")

	// ErrNoDataDir is returned when no data directory is configured.
	ErrNoDataDir = errors.New("no data directory configured")

	// ErrConflictingSuffixes is returned when both --ben and --harry are
	// set. The two simple-survey definitions are mutually exclusive, and
	// picking one silently would hide a likely operator mistake.
	ErrConflictingSuffixes = errors.New("conflicting survey suffixes: --ben and --harry cannot be used together")

	// ErrUnsupportedFormat is returned for output formats the figure
	// backend cannot encode. Supported: png, jpg, jpeg, tiff.
	ErrUnsupportedFormat = errors.New("unsupported output format: use png, jpg, or tiff")

	// ErrInvalidDPI is returned when the output resolution is not positive.
	ErrInvalidDPI = errors.New("invalid dpi: must be positive")

	// ErrInvalidPlotSize is returned when the panel size is not positive.
	ErrInvalidPlotSize = errors.New("invalid plot size: must be positive")

	// ErrInvalidYMax is returned when the count-axis limit is not positive.
	ErrInvalidYMax = errors.New("invalid y max: must be positive")

	// ErrInvalidYTicks is returned when the tick interval count is not positive.
	ErrInvalidYTicks = errors.New("invalid y ticks: must be positive")
)
