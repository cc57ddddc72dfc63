package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/torchastro/survcomp/internal/model"
)

// dbFileName is the ledger database file inside the ledger directory.
const dbFileName = "survcomp.db"

// Ledger provides SQLite-based storage for comparison runs.
type Ledger struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Ledger behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default ledger options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Run is one recorded plot run.
type Run struct {
	ID         int64
	CreatedAt  time.Time
	Variant    int
	Suffix     string
	OutputPath string
	Format     string
}

// SeriesRecord is one dataset's histogram of one variable in a recorded run.
type SeriesRecord struct {
	Variable string
	Dataset  string
	Entries  int
	InRange  int
	Counts   []int
}

// Open opens or creates a Ledger in the specified directory.
func Open(dir string, opts Options) (*Ledger, error) {
	dbPath := filepath.Join(dir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("ledger not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check ledger path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw / mode=rwc in its DSN to control
	// whether opening may create the file.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	// SQLite supports a single writer; the ledger is written once per run.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	l := &Ledger{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := l.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return l, nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// createTables creates the ledger schema if it doesn't exist.
func (l *Ledger) createTables() error {
	schema := `
	-- One row per plotted comparison.
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		variant INTEGER NOT NULL,
		suffix TEXT NOT NULL,
		output_path TEXT NOT NULL,
		format TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

	-- One row per dataset per variable of a run; counts as a JSON array.
	CREATE TABLE IF NOT EXISTS series (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		variable TEXT NOT NULL,
		dataset TEXT NOT NULL,
		entries INTEGER NOT NULL,
		in_range INTEGER NOT NULL,
		counts TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_series_run ON series(run_id);
	`
	_, err := l.db.Exec(schema)
	return err
}

// SaveRun records a comparison and its output file, returning the run id.
// The whole run is written in one transaction so a failed insert cannot
// leave a run without its series.
func (l *Ledger) SaveRun(ctx context.Context, cmp *model.Comparison, outputPath, format string) (int64, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, variant, suffix, output_path, format) VALUES (?, ?, ?, ?, ?)`,
		cmp.GeneratedAt.UTC().Format(time.RFC3339),
		cmp.Variant,
		cmp.Suffix.String(),
		outputPath,
		format,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	for _, panel := range cmp.Panels {
		for _, s := range panel.Series {
			counts, err := json.Marshal(s.Counts)
			if err != nil {
				return 0, fmt.Errorf("failed to encode counts: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO series (run_id, variable, dataset, entries, in_range, counts) VALUES (?, ?, ?, ?, ?, ?)`,
				runID, panel.Variable.Key, s.Dataset, s.Entries, s.InRange, string(counts),
			); err != nil {
				return 0, fmt.Errorf("failed to insert series: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns recorded runs, newest first. A negative variant lists
// every variant; limit <= 0 means no limit.
func (l *Ledger) ListRuns(ctx context.Context, variant, limit int) ([]Run, error) {
	query := `SELECT id, created_at, variant, suffix, output_path, format FROM runs`
	args := []any{}
	if variant >= 0 {
		query += ` WHERE variant = ?`
		args = append(args, variant)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &created, &r.Variant, &r.Suffix, &r.OutputPath, &r.Format); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunSeries returns every recorded series of a run.
func (l *Ledger) RunSeries(ctx context.Context, runID int64) ([]SeriesRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT variable, dataset, entries, in_range, counts FROM series WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query series: %w", err)
	}
	defer rows.Close()

	var records []SeriesRecord
	for rows.Next() {
		var rec SeriesRecord
		var counts string
		if err := rows.Scan(&rec.Variable, &rec.Dataset, &rec.Entries, &rec.InRange, &counts); err != nil {
			return nil, fmt.Errorf("failed to scan series: %w", err)
		}
		if err := json.Unmarshal([]byte(counts), &rec.Counts); err != nil {
			return nil, fmt.Errorf("failed to decode counts: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
