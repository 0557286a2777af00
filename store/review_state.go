package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/phrasecoach/phrasecoach/plugin/srs"
)

// FindReviewState is the find condition for review states.
type FindReviewState struct {
	ItemIDs []string
	State   *srs.State
}

// GetReviewState returns the persisted scheduling record for an item, or nil
// when the item has never been graded. Malformed persisted values are clamped
// on read so the scheduler stays self-healing; review state is deliberately
// never cached, each grading call re-derives its decision from the latest
// read.
func (s *Store) GetReviewState(ctx context.Context, itemID string) (*srs.ReviewState, error) {
	state, err := s.driver.GetReviewState(ctx, itemID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get review state %s", itemID)
	}
	if state == nil {
		return nil, nil
	}
	state.Clamp()
	return state, nil
}

// ListReviewStates returns persisted scheduling records, clamped on read.
func (s *Store) ListReviewStates(ctx context.Context, find *FindReviewState) ([]*srs.ReviewState, error) {
	states, err := s.driver.ListReviewStates(ctx, find)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list review states")
	}
	for _, state := range states {
		state.Clamp()
	}
	return states, nil
}

// UpsertReviewState persists a scheduling record, last-write-wins per item.
func (s *Store) UpsertReviewState(ctx context.Context, upsert *srs.ReviewState) (*srs.ReviewState, error) {
	state, err := s.driver.UpsertReviewState(ctx, upsert)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upsert review state %s", upsert.ItemID)
	}
	return state, nil
}
