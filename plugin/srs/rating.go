package srs

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/phrasecoach/phrasecoach/plugin/classifier"
)

// Rating is the coarse graded outcome fed into the scheduler. On the
// underlying 0-3 quality scale, Again is any quality below 2 and Good is
// quality 2 or above.
type Rating int

const (
	Again Rating = iota + 1 // Incorrect attempt; resets to the short-interval regime.
	Good                    // Correct enough; advances the schedule.
)

// goodQuality is the quality value used for the ease update on a Good rating.
const goodQuality = 2

var (
	ratingNames  = [...]string{Again: "Again", Good: "Good"}
	ratingByName = map[string]Rating{
		"Again": Again,
		"Good":  Good,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Rating(0)
	_ json.Marshaler           = Rating(0)
	_ json.Unmarshaler         = (*Rating)(nil)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// IsValid reports whether r is a valid rating.
func (r Rating) IsValid() bool {
	return r == Again || r == Good
}

// String returns the name of the rating ("Again", "Good").
// For invalid values it returns "Rating(n)".
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("srs: invalid rating: %d", int(r))
	}
	return []byte(ratingNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	v, ok := ratingByName[string(text)]
	if !ok {
		return fmt.Errorf("srs: invalid rating: %q", text)
	}
	*r = v
	return nil
}

// MarshalJSON implements json.Marshaler. Rating serializes as a JSON string.
func (r Rating) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("srs: invalid rating: %s", data)
	}
	return r.UnmarshalText([]byte(s))
}

// RatingPolicy maps classifier findings to a Rating. The severity cutoff is a
// policy decision owned by the caller, not by the scheduler, so it is
// injectable rather than hard-coded.
type RatingPolicy func(errs []classifier.Error) Rating

// DefaultRatingPolicy returns the stock policy: any grammar, word-order or
// confusable finding rates Again. When softSpelling is set, a mismatch whose
// findings are all spelling slips on a single token rates Good instead.
func DefaultRatingPolicy(softSpelling bool) RatingPolicy {
	return func(errs []classifier.Error) Rating {
		if len(errs) == 0 {
			return Good
		}
		positions := map[int]bool{}
		for _, e := range errs {
			if e.Kind != classifier.Spelling {
				return Again
			}
			positions[e.Position] = true
		}
		if softSpelling && len(positions) == 1 {
			return Good
		}
		return Again
	}
}
