package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/piwi3910/PanelCut/internal/model"
)

// ErrJobNotFound is returned when the library has no job with the given ID.
var ErrJobNotFound = errors.New("job not found")

const librarySchema = `
CREATE TABLE IF NOT EXISTS jobs (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    created_at   TEXT NOT NULL,
    updated_at   TEXT NOT NULL,
    start_length REAL NOT NULL,
    top          TEXT NOT NULL,
    bottom       TEXT NOT NULL,
    spec         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS jobs_updated_at ON jobs (updated_at);
`

// JobSummary is one row of the library listing.
type JobSummary struct {
	ID          string
	Name        string
	UpdatedAt   string
	StartLength float64
	Top         model.TopCondition
	Bottom      model.BottomCondition
}

// Library is a SQLite store of saved jobs.
type Library struct {
	db *sql.DB
}

// DefaultLibraryPath returns ~/.panelcut/library.db.
func DefaultLibraryPath() string {
	return filepath.Join(DefaultConfigDir(), "library.db")
}

// OpenLibrary opens or creates the job library at path.
func OpenLibrary(ctx context.Context, path string) (*Library, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, librarySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate library: %w", err)
	}
	return &Library{db: db}, nil
}

func (l *Library) Close() error {
	return l.db.Close()
}

// Save inserts the job or replaces the stored copy with the same ID.
// The result is not stored; it is recomputed from the inputs on load.
func (l *Library) Save(ctx context.Context, job model.Job) error {
	if job.ID == "" {
		return fmt.Errorf("cannot save job without an id")
	}
	spec, err := json.Marshal(job.Spec)
	if err != nil {
		return fmt.Errorf("failed to marshal job inputs: %w", err)
	}
	_, err = l.db.ExecContext(ctx, `
        INSERT INTO jobs (id, name, created_at, updated_at, start_length, top, bottom, spec)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            name = excluded.name,
            updated_at = excluded.updated_at,
            start_length = excluded.start_length,
            top = excluded.top,
            bottom = excluded.bottom,
            spec = excluded.spec
    `, job.ID, job.Name, job.CreatedAt, job.UpdatedAt, job.Spec.StartLength,
		job.Spec.Top.String(), job.Spec.Bottom.String(), string(spec))
	if err != nil {
		return fmt.Errorf("failed to save job %s: %w", job.ID, err)
	}
	return nil
}

// Get loads one job by ID.
func (l *Library) Get(ctx context.Context, id string) (model.Job, error) {
	row := l.db.QueryRowContext(ctx, `
        SELECT id, name, created_at, updated_at, spec
        FROM jobs
        WHERE id = ?
    `, id)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return job, err
}

// List returns every job, most recently updated first.
func (l *Library) List(ctx context.Context) ([]JobSummary, error) {
	rows, err := l.db.QueryContext(ctx, `
        SELECT id, name, updated_at, start_length, top, bottom
        FROM jobs
        ORDER BY updated_at DESC, name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var out []JobSummary
	for rows.Next() {
		var s JobSummary
		var top, bottom string
		if err := rows.Scan(&s.ID, &s.Name, &s.UpdatedAt, &s.StartLength, &top, &bottom); err != nil {
			return nil, fmt.Errorf("failed to read job row: %w", err)
		}
		if s.Top, err = model.ParseTopCondition(top); err != nil {
			return nil, err
		}
		if s.Bottom, err = model.ParseBottomCondition(bottom); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// All loads every stored job, most recently updated first.
func (l *Library) All(ctx context.Context) ([]model.Job, error) {
	rows, err := l.db.QueryContext(ctx, `
        SELECT id, name, created_at, updated_at, spec
        FROM jobs
        ORDER BY updated_at DESC, name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Delete removes a job. Deleting a missing job returns ErrJobNotFound.
func (l *Library) Delete(ctx context.Context, id string) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (model.Job, error) {
	var job model.Job
	var spec string
	if err := row.Scan(&job.ID, &job.Name, &job.CreatedAt, &job.UpdatedAt, &spec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Job{}, err
		}
		return model.Job{}, fmt.Errorf("failed to read job row: %w", err)
	}
	if err := json.Unmarshal([]byte(spec), &job.Spec); err != nil {
		return model.Job{}, fmt.Errorf("failed to parse inputs of job %s: %w", job.ID, err)
	}
	job.Spec = job.Spec.Normalized()
	return job, nil
}
