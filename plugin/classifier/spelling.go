package classifier

import (
	"fmt"

	"github.com/phrasecoach/phrasecoach/plugin/frtext"
)

// maxSpellingDistance is the inclusive edit-distance ceiling for flagging a
// token as a misspelling of its closest reference token.
const maxSpellingDistance = 2

// detectSpelling flags input tokens whose minimum edit distance to any
// expected token lies in (0, 2]. Accent subtype applies when stripping accents
// from both tokens makes them equal, typo otherwise.
func detectSpelling(in, exp *tokenSeq) []Error {
	var errs []Error
	for _, idx := range in.wordIdx {
		token := in.tokens[idx]

		best := ""
		bestDistance := -1
		for _, expIdx := range exp.wordIdx {
			candidate := exp.tokens[expIdx]
			d := frtext.EditDistance(token, candidate)
			if bestDistance < 0 || d < bestDistance {
				best, bestDistance = candidate, d
			}
		}
		if bestDistance <= 0 || bestDistance > maxSpellingDistance {
			continue
		}

		if frtext.StripAccents(token) == frtext.StripAccents(best) {
			errs = append(errs, Error{
				Kind:         Spelling,
				Subtype:      SubtypeAccent,
				Position:     idx,
				Observed:     token,
				Expected:     best,
				Message:      fmt.Sprintf("Check the accents: %q should be written %q.", token, best),
				RelatedTopic: "accents",
			})
			continue
		}
		errs = append(errs, Error{
			Kind:     Spelling,
			Subtype:  SubtypeTypo,
			Position: idx,
			Observed: token,
			Expected: best,
			Message:  fmt.Sprintf("Possible typo: %q looks like %q.", token, best),
		})
	}
	return errs
}
