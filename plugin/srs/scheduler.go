// Package srs implements the spaced-repetition state machine that turns graded
// drill attempts into per-item scheduling decisions. It is an SM-2 variant
// with four states: a single lapse at any point, Mastered included, resets the
// item to the short-interval regime, reflecting that forgetting is treated as
// more informative than success streaks.
package srs

import (
	"math"
	"time"
)

const (
	// minEase is the floor below which ease never drops.
	minEase = 1.3
	// defaultEase is the starting multiplier for freshly created states.
	defaultEase = 2.5
	// masteredThresholdDays is the interval beyond which an item counts as
	// mastered. Mastered is a terminal label, not a hard stop: a lapse still
	// pulls the item back to Learning.
	masteredThresholdDays = 180
)

// ReviewState is the mutable scheduling record for one drill item. It is
// created lazily on first grading and mutated only by GradeReview; callers
// persist the returned value.
type ReviewState struct {
	ItemID       string     `json:"itemId"`
	State        State      `json:"state"`
	Interval     int        `json:"interval"` // days, >= 1
	Ease         float64    `json:"ease"`     // >= 1.3
	Reps         int        `json:"reps"`
	Lapses       int        `json:"lapses"`
	Due          *time.Time `json:"due"`          // nil before first grading
	LastReviewed *time.Time `json:"lastReviewed"` // nil before first grading
}

// NewReviewState returns the initial state for an item that has never been
// graded.
func NewReviewState(itemID string) ReviewState {
	return ReviewState{
		ItemID:   itemID,
		State:    New,
		Interval: 1,
		Ease:     defaultEase,
	}
}

// Clamp normalizes a possibly malformed persisted state in place. Malformed
// external state is repaired on read, not rejected, so the scheduler remains
// self-healing.
func (s *ReviewState) Clamp() {
	if !s.State.IsValid() {
		s.State = New
	}
	if s.Interval < 1 {
		s.Interval = 1
	}
	if s.Ease < minEase {
		s.Ease = minEase
	}
	if s.Reps < 0 {
		s.Reps = 0
	}
	if s.Lapses < 0 {
		s.Lapses = 0
	}
	if s.State == New && s.Reps > 0 {
		// A graded item can no longer be New.
		s.State = Learning
	}
}

// IsDue reports whether the item should be shown at the given time. Items
// without a due timestamp (never graded) are always due.
func (s *ReviewState) IsDue(now time.Time) bool {
	if s.Due == nil {
		return true
	}
	return !s.Due.After(now)
}

// GradeReview advances the state machine for one graded attempt and returns
// the updated state. The input is not mutated; now is injected so the
// function stays deterministic for fixed inputs.
//
// Again from any state, Mastered included, is a lapse: interval resets to one
// day and the item demotes to Learning. Good walks New through Learning to
// Review on fixed short steps, then grows the interval by the ease factor.
func GradeReview(state ReviewState, rating Rating, now time.Time) ReviewState {
	s := state
	s.Clamp()

	switch {
	case rating == Again:
		s.Lapses++
		s.Interval = 1
		s.State = Learning

	case s.State == New:
		s.Interval = 1
		s.State = Learning

	case s.State == Learning:
		s.Interval = 3
		s.State = Review

	default: // Good from Review or Mastered.
		s.Ease = nextEase(s.Ease)
		s.Interval = int(math.Round(float64(s.Interval) * s.Ease))
		if s.Interval < 1 {
			s.Interval = 1
		}
		if s.Interval > masteredThresholdDays {
			s.State = Mastered
		} else {
			s.State = Review
		}
	}

	s.Reps++
	reviewed := now
	due := now.AddDate(0, 0, s.Interval)
	s.LastReviewed = &reviewed
	s.Due = &due
	return s
}

// nextEase applies the SM-2 ease update at the Good quality threshold and
// enforces the 1.3 floor. With quality fixed at 2 the delta works out to
// zero, so ease carries forward unchanged; the floor still repairs sub-1.3
// values that slipped in from persistence.
func nextEase(ease float64) float64 {
	q := float64(goodQuality)
	ease += 0.1 - (3-q)*(0.08+(3-q)*0.02)
	if ease < minEase {
		ease = minEase
	}
	return ease
}
