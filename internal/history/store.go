package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"orgdir/internal/organizer"
)

// Move status values stored per file.
const (
	StatusMoved  = "moved"
	StatusFailed = "failed"
)

// Run is one recorded organize run.
type Run struct {
	ID           string    `json:"id"`
	Root         string    `json:"root"`
	RecordedAt   time.Time `json:"recorded_at"`
	TotalMoved   int       `json:"total_moved"`
	Failed       int       `json:"failed"`
	Unclassified int       `json:"unclassified"`
	Cancelled    bool      `json:"cancelled"`
}

// Move is one file a run touched.
type Move struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

// Store is the run journal. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// recordedAtLayout is fixed-width so stored timestamps sort as text.
const recordedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Open connects to the journal at path, creating the file and schema on
// first use.
func Open(path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores result under runID. Dry runs are skipped. Cancelled marks a
// run that stopped between categories.
func (s *Store) Record(ctx context.Context, runID string, result *organizer.RunResult, cancelled bool) error {
	if result == nil || result.DryRun {
		return nil
	}
	if strings.TrimSpace(runID) == "" {
		return errors.New("record run: empty run id")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return withBusyRetry(ctx, func() error {
		return s.recordTx(ctx, runID, result, cancelled)
	})
}

func (s *Store) recordTx(ctx context.Context, runID string, result *organizer.RunResult, cancelled bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, root, recorded_at, total_moved, failed, unclassified, cancelled)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID,
		result.Root,
		time.Now().UTC().Format(recordedAtLayout),
		result.TotalMoved,
		len(result.Failed),
		len(result.Unclassified),
		cancelled,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO moves (run_id, category, name, status, reason) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare move insert: %w", err)
	}
	defer stmt.Close()

	for _, cat := range result.Categories {
		reasons := make(map[string]string, len(cat.Failed))
		for _, f := range cat.Failed {
			reasons[f.Name] = f.Reason
		}
		for _, name := range cat.Files {
			status := StatusMoved
			reason := sql.NullString{}
			if r, ok := reasons[name]; ok {
				status = StatusFailed
				reason = sql.NullString{String: r, Valid: true}
			}
			if _, err := stmt.ExecContext(ctx, runID, cat.Category, name, status, reason); err != nil {
				return fmt.Errorf("insert move %s: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	query := `SELECT id, root, recorded_at, total_moved, failed, unclassified, cancelled
              FROM runs ORDER BY rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			recordedAt string
		)
		if err := rows.Scan(&run.ID, &run.Root, &recordedAt, &run.TotalMoved, &run.Failed, &run.Unclassified, &run.Cancelled); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		// A row written by hand may not parse; leave RecordedAt zero then.
		run.RecordedAt, _ = time.Parse(recordedAtLayout, recordedAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Moves returns the files recorded for runID in insertion order.
func (s *Store) Moves(ctx context.Context, runID string) ([]Move, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, name, status, reason FROM moves WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var (
			move   Move
			reason sql.NullString
		)
		if err := rows.Scan(&move.Category, &move.Name, &move.Status, &reason); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		move.Reason = reason.String
		moves = append(moves, move)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return moves, nil
}
