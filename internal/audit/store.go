// Package audit keeps a local SQLite log of every submission the CLI makes,
// so scored transactions can be looked up later when filing outcome reports.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded submission outcome.
type Entry struct {
	ID            string
	Endpoint      string
	TransactionID string
	Status        string
	RiskScore     *float64
	ErrorKind     string
	ErrorMessage  string
	Duration      time.Duration
	CreatedAt     time.Time
}

// Store is a SQLite-backed submission log.
type Store struct {
	db *sql.DB
}

// New opens the submission log at dbPath, creating it if needed.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) initSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS submissions (
			id TEXT PRIMARY KEY,
			endpoint TEXT NOT NULL,
			transaction_id TEXT,
			status TEXT NOT NULL,
			risk_score REAL,
			error_kind TEXT,
			error_message TEXT,
			duration_ns INTEGER,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_transaction ON submissions(transaction_id)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

// Record appends one submission outcome. The entry's ID and CreatedAt are
// filled in when unset.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	query := `INSERT INTO submissions (id, endpoint, transaction_id, status, risk_score, error_kind, error_message, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.Endpoint, e.TransactionID, e.Status, e.RiskScore,
		e.ErrorKind, e.ErrorMessage, e.Duration.Nanoseconds(), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, endpoint, transaction_id, status, risk_score, error_kind, error_message, duration_ns, created_at
		FROM submissions ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var durationNS int64
		if err := rows.Scan(&e.ID, &e.Endpoint, &e.TransactionID, &e.Status,
			&e.RiskScore, &e.ErrorKind, &e.ErrorMessage, &durationNS, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		e.Duration = time.Duration(durationNS)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
