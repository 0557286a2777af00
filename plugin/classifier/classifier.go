// Package classifier compares free-text learner input against a reference
// French sentence and taxonomizes the mismatch. It is an explicit rule engine
// over a small closed tag set, not a statistical parser: the goal is
// actionable, reproducible feedback, not linguistic completeness.
package classifier

import (
	"fmt"
	"strings"

	"github.com/phrasecoach/phrasecoach/plugin/frtext"
	"github.com/phrasecoach/phrasecoach/plugin/postag"
)

// tokenSeq is the shared working form of one side of a comparison: lowercased
// tokens with their tags, plus the indexes of non-punctuation tokens.
type tokenSeq struct {
	tokens    []string
	tags      []postag.Tag
	wordIdx   []int // token indexes excluding punctuation
	wordSet   map[string]bool
	foldedSet map[string]bool // accent-stripped word set
}

func newTokenSeq(text string) *tokenSeq {
	tokens := frtext.Tokenize(strings.ToLower(strings.ReplaceAll(text, "’", "'")))
	seq := &tokenSeq{
		tokens:    tokens,
		tags:      make([]postag.Tag, len(tokens)),
		wordSet:   make(map[string]bool),
		foldedSet: make(map[string]bool),
	}
	for i, token := range tokens {
		seq.tags[i] = postag.TagToken(token)
		if seq.tags[i] == postag.Punctuation {
			continue
		}
		seq.wordIdx = append(seq.wordIdx, i)
		seq.wordSet[token] = true
		seq.foldedSet[frtext.StripAccents(token)] = true
	}
	return seq
}

// words returns the non-punctuation tokens in order.
func (s *tokenSeq) words() []string {
	out := make([]string, len(s.wordIdx))
	for i, idx := range s.wordIdx {
		out[i] = s.tokens[idx]
	}
	return out
}

// Classify compares learner input against the expected sentence. It is a pure
// function over well-formed strings: empty input flows through normally and
// produces missing-word findings for every expected word.
func Classify(input, expected string) Result {
	if frtext.Normalize(input) == frtext.Normalize(expected) {
		return Result{IsCorrect: true}
	}

	in := newTokenSeq(input)
	exp := newTokenSeq(expected)

	// Detector execution order is fixed and is also the reported order.
	var errs []Error
	errs = append(errs, detectSpelling(in, exp)...)
	errs = append(errs, detectGrammar(in, exp)...)
	errs = append(errs, detectWordOrder(in, exp)...)
	errs = append(errs, detectConfusables(in, exp)...)

	errs = dedupe(errs)

	return Result{
		IsCorrect: false,
		Errors:    errs,
		Feedback:  renderFeedback(errs),
	}
}

// ClassifyVariants classifies against every non-empty reference variant and
// returns the most favorable result: an exact match on any variant wins, and
// otherwise the variant with the fewest findings is analyzed.
func ClassifyVariants(input string, variants ...string) Result {
	var best *Result
	for _, variant := range variants {
		if variant == "" {
			continue
		}
		result := Classify(input, variant)
		if result.IsCorrect {
			return result
		}
		if best == nil || len(result.Errors) < len(best.Errors) {
			r := result
			best = &r
		}
	}
	if best == nil {
		return Result{IsCorrect: true}
	}
	return *best
}

// dedupe removes repeated findings by (kind, position, observed), preserving
// the first occurrence and detector order.
func dedupe(errs []Error) []Error {
	if len(errs) < 2 {
		return errs
	}
	seen := make(map[string]bool, len(errs))
	out := errs[:0]
	for _, e := range errs {
		key := e.dedupeKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// renderFeedback builds the human feedback line: the primary finding's
// message, an optional remediation hint, and a count of remaining findings.
func renderFeedback(errs []Error) string {
	if len(errs) == 0 {
		return ""
	}
	primary := errs[0]
	feedback := primary.Message
	if primary.RelatedTopic != "" {
		feedback += fmt.Sprintf(" Review: %s.", primary.RelatedTopic)
	}
	if rest := len(errs) - 1; rest == 1 {
		feedback += " (1 more issue found.)"
	} else if rest > 1 {
		feedback += fmt.Sprintf(" (%d more issues found.)", rest)
	}
	return feedback
}
