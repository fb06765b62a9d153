package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested run doesn't exist.
var ErrNotFound = errors.New("not found")

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings.
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance and applies any
// pending migrations.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// RecordRun persists one analysis run row.
func (s *SQLiteStorage) RecordRun(ctx context.Context, run *AnalysisRun) error {
	query := `
		INSERT INTO analysis_runs (id, root_path, platforms, lanes, signals, recommendations, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, query,
		run.ID, run.RootPath, run.Platforms, run.Lanes,
		run.Signals, run.Recommendations, run.DurationMs, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// GetRun fetches one run by id.
func (s *SQLiteStorage) GetRun(ctx context.Context, id string) (*AnalysisRun, error) {
	query := `
		SELECT id, root_path, platforms, lanes, signals, recommendations, duration_ms, created_at
		FROM analysis_runs
		WHERE id = ?
	`
	var run AnalysisRun
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID, &run.RootPath, &run.Platforms, &run.Lanes,
		&run.Signals, &run.Recommendations, &run.DurationMs, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first. An empty rootPath
// lists runs for every project.
func (s *SQLiteStorage) ListRuns(ctx context.Context, rootPath string, limit int) ([]*AnalysisRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, root_path, platforms, lanes, signals, recommendations, duration_ms, created_at
		FROM analysis_runs
	`
	args := []interface{}{}
	if rootPath != "" {
		query += " WHERE root_path = ?"
		args = append(args, rootPath)
	}
	query += " ORDER BY created_at DESC, id LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*AnalysisRun
	for rows.Next() {
		var run AnalysisRun
		if err := rows.Scan(
			&run.ID, &run.RootPath, &run.Platforms, &run.Lanes,
			&run.Signals, &run.Recommendations, &run.DurationMs, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
