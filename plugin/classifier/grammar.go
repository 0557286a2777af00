package classifier

import (
	"fmt"
	"strings"

	"github.com/phrasecoach/phrasecoach/plugin/frtext"
	"github.com/phrasecoach/phrasecoach/plugin/postag"
)

// thirdPersonIrregulars are high-frequency il/elle forms used by the
// agreement check; none of them is a valid tu form.
var thirdPersonIrregulars = map[string]bool{
	"est": true, "a": true, "va": true, "fait": true, "peut": true,
	"veut": true, "doit": true, "vient": true, "prend": true, "met": true,
	"voit": true, "boit": true, "dit": true, "sait": true,
}

// detectGrammar reports missing and extra words via set difference (order is
// irrelevant, duplicates are not separately counted) and scans Pronoun→Verb
// bigrams for the two subject–verb agreement violations the engine knows
// about. Comparison is accent-insensitive so that accent slips stay in the
// spelling category.
func detectGrammar(in, exp *tokenSeq) []Error {
	var errs []Error

	// Missing: in expected, absent from input.
	seen := make(map[string]bool)
	for _, idx := range exp.wordIdx {
		word := exp.tokens[idx]
		folded := frtext.StripAccents(word)
		if seen[folded] || in.foldedSet[folded] {
			continue
		}
		seen[folded] = true
		errs = append(errs, Error{
			Kind:     GrammarMissing,
			Position: NoPosition,
			Expected: word,
			Message:  fmt.Sprintf("Missing word: %q (%s).", word, exp.tags[idx]),
		})
	}

	// Extra: in input, absent from expected.
	seen = make(map[string]bool)
	for _, idx := range in.wordIdx {
		word := in.tokens[idx]
		folded := frtext.StripAccents(word)
		if seen[folded] || exp.foldedSet[folded] {
			continue
		}
		seen[folded] = true
		errs = append(errs, Error{
			Kind:     GrammarExtra,
			Position: idx,
			Observed: word,
			Message:  fmt.Sprintf("Extra word: %q (%s).", word, in.tags[idx]),
		})
	}

	errs = append(errs, detectAgreement(in)...)
	return errs
}

// detectAgreement flags the two conjugation mismatches the tagger can see
// without a full morphological analysis: je followed by a tu form, and tu
// followed by an il/elle or je form.
func detectAgreement(in *tokenSeq) []Error {
	var errs []Error
	for n, idx := range in.wordIdx {
		if n+1 >= len(in.wordIdx) {
			break
		}
		next := in.wordIdx[n+1]
		if in.tags[idx] != postag.Pronoun {
			continue
		}
		pronoun := in.tokens[idx]
		verb := in.tokens[next]
		// Regular -e/-es present-tense forms carry no suffix the tagger
		// recognizes, so accept both tagged verbs and conjugated-looking
		// tokens here.
		verbish := in.tags[next] == postag.Verb || looksConjugated(verb)
		if !verbish {
			continue
		}

		switch pronoun {
		case "je", "j'":
			// je + second-person ending ("je parles"). No valid je form ends
			// in -es, so the suffix alone is decisive.
			if strings.HasSuffix(verb, "es") && looksConjugated(verb) {
				errs = append(errs, Error{
					Kind:         GrammarAgreement,
					Position:     next,
					Observed:     verb,
					Message:      fmt.Sprintf("Conjugation mismatch: %q is a tu form; after %q use the je form.", verb, pronoun),
					RelatedTopic: "verb-conjugation",
				})
			}
		case "tu":
			// tu + first/third-person singular form ("tu parle", "tu est").
			if thirdPersonIrregulars[verb] ||
				(looksConjugated(verb) && strings.HasSuffix(verb, "e") && !strings.HasSuffix(verb, "es")) {
				errs = append(errs, Error{
					Kind:         GrammarAgreement,
					Position:     next,
					Observed:     verb,
					Message:      fmt.Sprintf("Conjugation mismatch: after \"tu\" the verb takes the tu form, not %q.", verb),
					RelatedTopic: "verb-conjugation",
				})
			}
		}
	}
	return errs
}

// looksConjugated reports whether a token plausibly ends in a singular
// present-tense -e/-es ending. The length floor keeps short function words
// and most monosyllabic nouns out.
func looksConjugated(verb string) bool {
	if len([]rune(verb)) < 5 {
		return false
	}
	return strings.HasSuffix(verb, "e") || strings.HasSuffix(verb, "es")
}
