package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "portfolio-rebalancer/internal/errors"
	"portfolio-rebalancer/internal/models"
)

// SQLiteJournal implements Journal using SQLite.
type SQLiteJournal struct {
	db *sql.DB
}

// NewSQLiteJournal opens (or creates) the journal database at the given
// path.
func NewSQLiteJournal(dbPath string) (*SQLiteJournal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	j := &SQLiteJournal{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return j, nil
}

func (j *SQLiteJournal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS recommendations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id TEXT NOT NULL,
		accounts INTEGER NOT NULL,
		trades INTEGER NOT NULL,
		payload TEXT NOT NULL,
		recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_recommendations_request
		ON recommendations(request_id);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Record stores one generated recommendation.
func (j *SQLiteJournal) Record(ctx context.Context, recommendation models.TradeRecommendation) error {
	payload, err := json.Marshal(recommendation)
	if err != nil {
		return apperrors.NewJournalError("record", err)
	}

	trades := 0
	for _, account := range recommendation.Accounts {
		trades += len(account.Trades)
	}

	_, err = j.db.ExecContext(ctx,
		`INSERT INTO recommendations (request_id, accounts, trades, payload) VALUES (?, ?, ?, ?)`,
		recommendation.RequestIdentifier, len(recommendation.Accounts), trades, string(payload))
	if err != nil {
		return apperrors.NewJournalError("record", err)
	}
	return nil
}

// List returns the most recent journal entries, newest first.
func (j *SQLiteJournal) List(ctx context.Context, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, request_id, accounts, trades, payload, recorded_at
		 FROM recommendations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, apperrors.NewJournalError("list", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var entry JournalEntry
		var recordedAt string
		if err := rows.Scan(&entry.ID, &entry.RequestID, &entry.Accounts, &entry.Trades, &entry.Payload, &recordedAt); err != nil {
			return nil, apperrors.NewJournalError("list", err)
		}
		if t, perr := time.Parse("2006-01-02 15:04:05", recordedAt); perr == nil {
			entry.RecordedAt = t
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
