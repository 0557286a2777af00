package srs

import (
	"testing"
	"time"

	"github.com/phrasecoach/phrasecoach/plugin/classifier"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestGradeReviewGoodFromNew(t *testing.T) {
	s := GradeReview(NewReviewState("item-1"), Good, testNow)

	if s.State != Learning {
		t.Errorf("State = %v, want Learning", s.State)
	}
	if s.Interval != 1 {
		t.Errorf("Interval = %d, want 1", s.Interval)
	}
	if s.Reps != 1 {
		t.Errorf("Reps = %d, want 1", s.Reps)
	}
	if s.Due == nil || !s.Due.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("Due = %v, want now+1d", s.Due)
	}
	if s.LastReviewed == nil || !s.LastReviewed.Equal(testNow) {
		t.Errorf("LastReviewed = %v, want now", s.LastReviewed)
	}
}

func TestGradeReviewGoodFromLearning(t *testing.T) {
	s := NewReviewState("item-1")
	s.State = Learning
	s.Reps = 1

	s = GradeReview(s, Good, testNow)

	if s.State != Review {
		t.Errorf("State = %v, want Review", s.State)
	}
	if s.Interval != 3 {
		t.Errorf("Interval = %d, want 3", s.Interval)
	}
}

func TestGradeReviewGoodFromReviewGrowsInterval(t *testing.T) {
	s := ReviewState{ItemID: "item-1", State: Review, Interval: 3, Ease: 2.5, Reps: 2}

	s = GradeReview(s, Good, testNow)

	if s.State != Review {
		t.Errorf("State = %v, want Review", s.State)
	}
	// round(3 * 2.5) = 8
	if s.Interval != 8 {
		t.Errorf("Interval = %d, want 8", s.Interval)
	}
	if s.Ease < minEase {
		t.Errorf("Ease = %f dropped below floor", s.Ease)
	}
}

func TestGradeReviewLapseResetsFromAnyState(t *testing.T) {
	for _, state := range []State{New, Learning, Review, Mastered} {
		t.Run(state.String(), func(t *testing.T) {
			s := ReviewState{ItemID: "x", State: state, Interval: 200, Ease: 2.5, Reps: 9, Lapses: 1}

			s = GradeReview(s, Again, testNow)

			if s.State != Learning {
				t.Errorf("State = %v, want Learning", s.State)
			}
			if s.Interval != 1 {
				t.Errorf("Interval = %d, want 1", s.Interval)
			}
			if s.Lapses != 2 {
				t.Errorf("Lapses = %d, want 2", s.Lapses)
			}
			if s.Reps != 10 {
				t.Errorf("Reps = %d, want 10", s.Reps)
			}
		})
	}
}

func TestGradeReviewMasteryThreshold(t *testing.T) {
	s := ReviewState{ItemID: "x", State: Review, Interval: 3, Ease: 2.5}

	now := testNow
	for i := 0; i < 30; i++ {
		s = GradeReview(s, Good, now)
		if s.State == Mastered {
			break
		}
		if s.Interval <= masteredThresholdDays && s.State != Review {
			t.Fatalf("interval %d but state %v", s.Interval, s.State)
		}
		now = *s.Due
	}

	if s.State != Mastered {
		t.Fatalf("never reached Mastered, interval = %d", s.Interval)
	}
	if s.Interval <= masteredThresholdDays {
		t.Errorf("Mastered with interval %d <= %d", s.Interval, masteredThresholdDays)
	}
}

func TestGradeReviewEaseFloor(t *testing.T) {
	s := ReviewState{ItemID: "x", State: Review, Interval: 3, Ease: 1.3}
	for i := 0; i < 20; i++ {
		s = GradeReview(s, Good, testNow)
		if s.Ease < minEase {
			t.Fatalf("Ease = %f < %f after %d reviews", s.Ease, minEase, i+1)
		}
	}
}

func TestGradeReviewClampsMalformedState(t *testing.T) {
	s := ReviewState{ItemID: "x", State: State(42), Interval: -5, Ease: 0.4, Reps: -1, Lapses: -2}

	s = GradeReview(s, Good, testNow)

	if s.Ease < minEase {
		t.Errorf("Ease = %f, want >= %f", s.Ease, minEase)
	}
	if s.Interval < 1 {
		t.Errorf("Interval = %d, want >= 1", s.Interval)
	}
	if !s.State.IsValid() {
		t.Errorf("State = %v still invalid", s.State)
	}
}

func TestGradeReviewPure(t *testing.T) {
	original := ReviewState{ItemID: "x", State: Review, Interval: 10, Ease: 2.0, Reps: 4}
	snapshot := original

	_ = GradeReview(original, Good, testNow)

	if original != snapshot {
		t.Error("GradeReview mutated its input")
	}

	first := GradeReview(original, Good, testNow)
	second := GradeReview(original, Good, testNow)
	if first.Interval != second.Interval || first.Ease != second.Ease || first.State != second.State {
		t.Error("GradeReview is not deterministic for fixed inputs")
	}
}

func TestDefaultRatingPolicy(t *testing.T) {
	spelling := classifier.Error{Kind: classifier.Spelling, Position: 2, Observed: "chein"}
	grammar := classifier.Error{Kind: classifier.GrammarMissing, Position: classifier.NoPosition, Expected: "bien"}
	order := classifier.Error{Kind: classifier.WordOrderTransposition, Position: 0}

	tests := []struct {
		name         string
		softSpelling bool
		errs         []classifier.Error
		want         Rating
	}{
		{"no errors", true, nil, Good},
		{"single spelling soft", true, []classifier.Error{spelling}, Good},
		{"single spelling strict", false, []classifier.Error{spelling}, Again},
		{"grammar always again", true, []classifier.Error{grammar}, Again},
		{"word order always again", true, []classifier.Error{order}, Again},
		{"mixed always again", true, []classifier.Error{spelling, grammar}, Again},
		{
			"spelling on two tokens",
			true,
			[]classifier.Error{spelling, {Kind: classifier.Spelling, Position: 4, Observed: "mansion"}},
			Again,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := DefaultRatingPolicy(tt.softSpelling)
			if got := policy(tt.errs); got != tt.want {
				t.Errorf("policy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateJSONRoundTrip(t *testing.T) {
	for _, s := range []State{New, Learning, Review, Mastered} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back State
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != s {
			t.Errorf("round trip %v != %v", back, s)
		}
	}

	var invalid State
	if err := invalid.UnmarshalText([]byte("Forgotten")); err == nil {
		t.Error("expected error for unknown state name")
	}
}

func TestRatingJSONRoundTrip(t *testing.T) {
	for _, r := range []Rating{Again, Good} {
		text, err := r.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", r, err)
		}
		var back Rating
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != r {
			t.Errorf("round trip %v != %v", back, r)
		}
	}
}
