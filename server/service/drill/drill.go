// Package drill orchestrates one graded attempt: classify the learner's
// answer against the item's reference variants, map the findings to a rating,
// advance the item's scheduling state, and persist the outcome.
package drill

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/phrasecoach/phrasecoach/internal/profile"
	"github.com/phrasecoach/phrasecoach/plugin/catalog"
	"github.com/phrasecoach/phrasecoach/plugin/classifier"
	"github.com/phrasecoach/phrasecoach/plugin/srs"
	"github.com/phrasecoach/phrasecoach/store"
)

// Service grades attempts and owns the rating policy.
type Service struct {
	store  *store.Store
	policy srs.RatingPolicy
}

// NewService builds a grading service with the stock rating policy derived
// from the profile.
func NewService(store *store.Store, profile *profile.Profile) *Service {
	return &Service{
		store:  store,
		policy: srs.DefaultRatingPolicy(profile.SoftSpelling),
	}
}

// Outcome is the full result of grading one attempt.
type Outcome struct {
	Result classifier.Result `json:"result"`
	Rating srs.Rating        `json:"rating"`
	State  srs.ReviewState   `json:"state"`
}

// Grade classifies the answer, rates it, advances the item's review state and
// persists both the state and an append-only log row.
func (s *Service) Grade(ctx context.Context, item *catalog.Item, answer, sessionUID string, now time.Time) (*Outcome, error) {
	result := classifier.ClassifyVariants(answer, item.Variants()...)

	rating := srs.Good
	if !result.IsCorrect {
		rating = s.policy(result.Errors)
		if len(result.Errors) == 0 {
			// A mismatch none of the detectors could explain still counts as
			// a miss.
			rating = srs.Again
		}
	}

	state, err := s.store.GetReviewState(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		fresh := srs.NewReviewState(item.ID)
		state = &fresh
	}

	next := srs.GradeReview(*state, rating, now)
	if _, err := s.store.UpsertReviewState(ctx, &next); err != nil {
		return nil, err
	}

	if _, err := s.store.CreateReviewLog(ctx, &store.ReviewLog{
		ItemID:     item.ID,
		SessionUID: sessionUID,
		Rating:     rating.String(),
		ErrorKinds: joinErrorKinds(result.Errors),
		CreatedTs:  now.Unix(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to record attempt")
	}

	return &Outcome{Result: result, Rating: rating, State: next}, nil
}

func joinErrorKinds(errs []classifier.Error) string {
	if len(errs) == 0 {
		return ""
	}
	kinds := make([]string, 0, len(errs))
	for _, e := range errs {
		kinds = append(kinds, e.Kind.String())
	}
	return strings.Join(kinds, ",")
}
