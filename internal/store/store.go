// Package store provides the recommendation journal: a write-only audit
// record of generated recommendations. The pipeline never reads it back.
package store

import (
	"context"
	"time"

	"portfolio-rebalancer/internal/models"
)

// JournalEntry is one recorded recommendation run.
type JournalEntry struct {
	ID         int64
	RequestID  string
	Accounts   int
	Trades     int
	Payload    string // recommendation JSON as written to output
	RecordedAt time.Time
}

// Journal records generated recommendations for audit.
type Journal interface {
	Record(ctx context.Context, recommendation models.TradeRecommendation) error
	List(ctx context.Context, limit int) ([]JournalEntry, error)
	Close() error
}
