package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ReviewLog is one graded attempt, append-only. It powers the stats surface
// and keeps an audit trail of how each rating was produced.
type ReviewLog struct {
	ID         string
	ItemID     string
	SessionUID string
	Rating     string
	// ErrorKinds is the comma-joined list of classifier finding kinds for
	// the attempt, empty when the attempt was correct.
	ErrorKinds string
	CreatedTs  int64
}

// FindReviewLog is the find condition for review logs.
type FindReviewLog struct {
	ItemID     *string
	SessionUID *string

	// Pagination
	Limit  *int
	Offset *int
}

// CreateReviewLog appends one graded attempt. A missing ID is filled in.
func (s *Store) CreateReviewLog(ctx context.Context, create *ReviewLog) (*ReviewLog, error) {
	if create.ID == "" {
		create.ID = uuid.NewString()
	}
	log, err := s.driver.CreateReviewLog(ctx, create)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create review log for item %s", create.ItemID)
	}
	return log, nil
}

// ListReviewLogs returns review logs matching the find condition, newest
// first.
func (s *Store) ListReviewLogs(ctx context.Context, find *FindReviewLog) ([]*ReviewLog, error) {
	logs, err := s.driver.ListReviewLogs(ctx, find)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list review logs")
	}
	return logs, nil
}
