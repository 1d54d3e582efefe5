// Package sqlite provides a SQLite implementation of the RunStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/nerbench/internal/domain/entities"
	"github.com/ersonp/nerbench/internal/infrastructure/config"
)

// Repository implements ports.RunStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite run store.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Evaluation runs (one row per evaluate invocation)
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		model_name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		total_documents INTEGER NOT NULL,
		exact_scores TEXT NOT NULL,
		partial_scores TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model_name);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveRun stores a run summary. Score blocks are serialized as JSON: they
// are read back whole for display, never queried by field.
func (r *Repository) SaveRun(ctx context.Context, run *entities.Run) error {
	exact, err := json.Marshal(run.Exact)
	if err != nil {
		return fmt.Errorf("marshaling exact scores: %w", err)
	}
	partial, err := json.Marshal(run.Partial)
	if err != nil {
		return fmt.Errorf("marshaling partial scores: %w", err)
	}

	query := `
		INSERT INTO runs (id, model_name, created_at, total_documents, exact_scores, partial_scores)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		run.ID,
		run.ModelName,
		run.CreatedAt,
		run.TotalDocuments,
		string(exact),
		string(partial),
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// ListRuns returns stored runs, newest first, optionally filtered by model.
func (r *Repository) ListRuns(ctx context.Context, model string, limit int) ([]entities.Run, error) {
	query := `
		SELECT id, model_name, created_at, total_documents, exact_scores, partial_scores
		FROM runs
	`
	var args []any
	if model != "" {
		query += " WHERE model_name = ?"
		args = append(args, model)
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []entities.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// FindRun returns the run with the given ID, or nil if absent.
func (r *Repository) FindRun(ctx context.Context, id string) (*entities.Run, error) {
	query := `
		SELECT id, model_name, created_at, total_documents, exact_scores, partial_scores
		FROM runs
		WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*entities.Run, error) {
	var run entities.Run
	var exact, partial string

	err := s.Scan(
		&run.ID,
		&run.ModelName,
		&run.CreatedAt,
		&run.TotalDocuments,
		&exact,
		&partial,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if err := json.Unmarshal([]byte(exact), &run.Exact); err != nil {
		return nil, fmt.Errorf("parsing exact scores: %w", err)
	}
	if err := json.Unmarshal([]byte(partial), &run.Partial); err != nil {
		return nil, fmt.Errorf("parsing partial scores: %w", err)
	}
	return &run, nil
}
