// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpusdb keeps a history of corpus counting runs in SQLite so the
// size of a corpus can be followed across revisions.
package corpusdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/clear-corpus/pkg/types"
)

// Store manages the count history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at cfg.DBPath, creating parent
// directories and the schema as needed.
func Open(cfg types.HistoryConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = types.DefaultDBPath
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dir TEXT NOT NULL,
			ext TEXT NOT NULL,
			sentences INTEGER NOT NULL,
			words INTEGER NOT NULL,
			predicates INTEGER NOT NULL,
			counted_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS file_counts (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			path TEXT NOT NULL,
			sentences INTEGER NOT NULL,
			words INTEGER NOT NULL,
			predicates INTEGER NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_dir ON runs(dir)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a counting run and its per-file counts in one transaction
// and returns the new run id.
func (s *Store) Record(ctx context.Context, run types.CorpusCount) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	countedAt := run.CountedAt
	if countedAt.IsZero() {
		countedAt = time.Now()
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (dir, ext, sentences, words, predicates, counted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Dir, run.Ext, run.Sentences, run.Words, run.Predicates,
		countedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO file_counts (run_id, position, path, sentences, words, predicates)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, fc := range run.Files {
		if _, err := stmt.ExecContext(ctx, id, i, fc.Path, fc.Sentences, fc.Words, fc.Predicates); err != nil {
			return 0, fmt.Errorf("inserting file count %s: %w", fc.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// Runs returns recorded runs, newest first, each with its file counts.
// A limit of zero or less returns every run.
func (s *Store) Runs(ctx context.Context, limit int) ([]types.CorpusCount, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, dir, ext, sentences, words, predicates, counted_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}

	var runs []types.CorpusCount
	for rows.Next() {
		var (
			run       types.CorpusCount
			countedAt string
		)
		if err := rows.Scan(&run.ID, &run.Dir, &run.Ext, &run.Sentences, &run.Words, &run.Predicates, &countedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.CountedAt, _ = time.Parse(time.RFC3339Nano, countedAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		files, err := s.fileCounts(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Files = files
	}
	return runs, nil
}

func (s *Store) fileCounts(ctx context.Context, runID int64) ([]types.FileCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, sentences, words, predicates
		 FROM file_counts WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying file counts for run %d: %w", runID, err)
	}
	defer rows.Close()

	var files []types.FileCount
	for rows.Next() {
		var fc types.FileCount
		if err := rows.Scan(&fc.Path, &fc.Sentences, &fc.Words, &fc.Predicates); err != nil {
			return nil, fmt.Errorf("scanning file count: %w", err)
		}
		files = append(files, fc)
	}
	return files, rows.Err()
}
