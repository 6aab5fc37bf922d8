// Package store records batch translation results in a SQLite database.
// It is write-only from the translator's point of view: nothing stored
// here is consulted when translating.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/goodtranslator/internal/detect"
	"codeberg.org/snonux/goodtranslator/internal/translation"
)

// Record is one stored batch entry
type Record struct {
	RunID     string
	Position  int
	Text      string
	Result    string
	Backend   string
	Source    string
	Error     string
	CreatedAt time.Time
}

// Pair converts the record back into a translation pair. The error
// text is preserved but its type is not.
func (r Record) Pair() translation.Pair {
	res := translation.Result{
		Text:    r.Result,
		Backend: r.Backend,
		Source:  detect.Language(r.Source),
	}
	if r.Error != "" {
		res.Err = errors.New(r.Error)
	}
	return translation.Pair{Text: r.Text, Result: res}
}

// Store wraps the results database
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS results (
			run_id text NOT NULL,
			position integer NOT NULL,
			text text NOT NULL,
			result text NOT NULL,
			backend text NOT NULL,
			source_lang text NOT NULL,
			error text NOT NULL,
			created_at integer NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_results_created ON results (created_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// SaveBatch stores all pairs under a new run id in one transaction
func (s *Store) SaveBatch(ctx context.Context, pairs []translation.Pair) (string, error) {
	runID := uuid.NewString()
	now := time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (run_id, position, text, result, backend, source_lang, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range pairs {
		errText := ""
		if p.Result.Err != nil {
			errText = p.Result.Err.Error()
		}
		if _, err := stmt.ExecContext(ctx, runID, i, p.Text, p.Result.Text, p.Result.Backend,
			string(p.Result.Source), errText, now); err != nil {
			return "", fmt.Errorf("failed to insert result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit results: %w", err)
	}

	return runID, nil
}

// Results returns the records of a run in input order
func (s *Store) Results(ctx context.Context, runID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, position, text, result, backend, source_lang, error, created_at
		 FROM results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r       Record
			created int64
		)
		if err := rows.Scan(&r.RunID, &r.Position, &r.Text, &r.Result, &r.Backend, &r.Source, &r.Error, &created); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.CreatedAt = time.Unix(created, 0)
		records = append(records, r)
	}

	return records, rows.Err()
}
