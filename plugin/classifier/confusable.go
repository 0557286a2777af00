package classifier

import "fmt"

// detectConfusables checks the curated pair list in both directions: the
// input contains one member while the expected text contains the other and
// not the first.
func detectConfusables(in, exp *tokenSeq) []Error {
	var errs []Error
	for _, pair := range confusablePairs {
		if in.wordSet[pair.A] && exp.wordSet[pair.B] && !exp.wordSet[pair.A] {
			errs = append(errs, confusableError(in, pair.A, pair.B, pair))
		}
		if in.wordSet[pair.B] && exp.wordSet[pair.A] && !exp.wordSet[pair.B] {
			errs = append(errs, confusableError(in, pair.B, pair.A, pair))
		}
	}
	return errs
}

func confusableError(in *tokenSeq, observed, expected string, pair confusablePair) Error {
	return Error{
		Kind:         Confusable,
		Position:     tokenPosition(in, observed),
		Observed:     observed,
		Expected:     expected,
		Message:      fmt.Sprintf("You wrote %q where %q is needed: %s.", observed, expected, pair.Rule),
		RelatedTopic: pair.Topic,
	}
}

// tokenPosition returns the index of the first occurrence of the word among
// the input tokens, or NoPosition.
func tokenPosition(in *tokenSeq, word string) int {
	for _, idx := range in.wordIdx {
		if in.tokens[idx] == word {
			return idx
		}
	}
	return NoPosition
}
