// Package frtext provides text canonicalization for comparing learner input
// against reference French sentences. All functions are pure and total: they
// accept any string and never fail.
package frtext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strippedPunctuation is the fixed set of punctuation removed by Normalize.
// Apostrophes are intentionally absent: elision (j'ai, l'école) is part of
// the word form and must survive normalization.
const strippedPunctuation = ".,!?;:()«»\"…"

// paddedPunctuation is the set of punctuation the tokenizer isolates into
// standalone tokens.
const paddedPunctuation = ".,!?;:()«»\"…"

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes text for comparison: lowercase, typographic
// apostrophes folded to ASCII, hyphens converted to spaces so compound forms
// align token-for-token with their expanded forms, fixed punctuation stripped,
// whitespace collapsed. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "’", "'")
	text = strings.ReplaceAll(text, "-", " ")
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedPunctuation, r) {
			return -1
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

// StripAccents removes combining diacritical marks after Unicode canonical
// decomposition ("où" → "ou", "école" → "ecole"). Used only for
// accent-insensitive comparison, never for display.
func StripAccents(text string) string {
	out, _, err := transform.String(accentStripper, text)
	if err != nil {
		// transform.String only fails on a misbehaving transformer chain;
		// fall back to the input untouched.
		return text
	}
	return out
}

// Tokenize splits text into word and punctuation tokens. Punctuation from the
// padded set becomes its own token, and hyphens are split so inverted forms
// ("est-il") align with their non-hyphenated equivalents.
func Tokenize(text string) []string {
	text = strings.ReplaceAll(text, "’", "'")
	text = strings.ReplaceAll(text, "-", " ")
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		if strings.ContainsRune(paddedPunctuation, r) {
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.Fields(b.String())
}

// IsPunctuation reports whether the token consists solely of punctuation runes.
func IsPunctuation(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsPunct(r) && !strings.ContainsRune(paddedPunctuation, r) {
			return false
		}
	}
	return true
}

// EditDistance computes the classic Levenshtein distance between two strings
// with unit cost for insert, delete and substitute, operating on runes so
// accented characters count as single edits.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
