package store

import (
	"context"
	"database/sql"

	"github.com/phrasecoach/phrasecoach/plugin/catalog"
	"github.com/phrasecoach/phrasecoach/plugin/srs"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// Drill item catalog methods. Items are seeded once and read-only after.
	CreateDrillItem(ctx context.Context, create *catalog.Item) (*catalog.Item, error)
	ListDrillItems(ctx context.Context, find *FindDrillItem) ([]*catalog.Item, error)

	// ReviewState methods, keyed by drill item ID, last-write-wins.
	UpsertReviewState(ctx context.Context, upsert *srs.ReviewState) (*srs.ReviewState, error)
	GetReviewState(ctx context.Context, itemID string) (*srs.ReviewState, error)
	ListReviewStates(ctx context.Context, find *FindReviewState) ([]*srs.ReviewState, error)

	// ReviewLog methods. Logs are append-only.
	CreateReviewLog(ctx context.Context, create *ReviewLog) (*ReviewLog, error)
	ListReviewLogs(ctx context.Context, find *FindReviewLog) ([]*ReviewLog, error)
}
