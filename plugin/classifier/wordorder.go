package classifier

import (
	"fmt"

	"github.com/phrasecoach/phrasecoach/plugin/frtext"
	"github.com/phrasecoach/phrasecoach/plugin/postag"
)

// prenominalAdjectives is the fixed exception list of adjectives that precede
// the noun (the BANGS set: beauty, age, number, goodness, size). Everything
// else is expected after the noun.
var prenominalAdjectives = map[string]bool{
	"beau": true, "bel": true, "belle": true, "beaux": true, "belles": true,
	"bon": true, "bonne": true, "bons": true, "bonnes": true,
	"grand": true, "grande": true, "grands": true, "grandes": true,
	"petit": true, "petite": true, "petits": true, "petites": true,
	"jeune": true, "jeunes": true,
	"vieux": true, "vieil": true, "vieille": true, "vieilles": true,
	"nouveau": true, "nouvel": true, "nouvelle": true, "nouveaux": true, "nouvelles": true,
	"joli": true, "jolie": true, "jolis": true, "jolies": true,
	"gros": true, "grosse": true, "grosses": true,
	"mauvais": true, "mauvaise": true, "mauvaises": true,
	"autre": true, "autres": true,
	"premier": true, "première": true, "dernier": true, "dernière": true,
	"long": true, "longue": true, "haut": true, "haute": true,
}

// detectWordOrder compares the punctuation-free token sequences positionally
// for adjacent transpositions, and scans the input for adjective-before-noun
// pairs outside the prenominal exception list.
func detectWordOrder(in, exp *tokenSeq) []Error {
	var errs []Error

	inWords := in.words()
	expWords := exp.words()
	for i := 0; i+1 < len(inWords) && i+1 < len(expWords); i++ {
		a, b := frtext.StripAccents(inWords[i]), frtext.StripAccents(inWords[i+1])
		ea, eb := frtext.StripAccents(expWords[i]), frtext.StripAccents(expWords[i+1])
		if a != b && a == eb && b == ea {
			errs = append(errs, Error{
				Kind:         WordOrderTransposition,
				Position:     in.wordIdx[i],
				Observed:     inWords[i] + " " + inWords[i+1],
				Expected:     expWords[i] + " " + expWords[i+1],
				Message:      fmt.Sprintf("Word order: %q and %q are swapped.", inWords[i], inWords[i+1]),
				RelatedTopic: "word-order",
			})
			i++ // a detected swap covers both positions
		}
	}

	for n := 0; n+1 < len(in.wordIdx); n++ {
		idx, next := in.wordIdx[n], in.wordIdx[n+1]
		if in.tags[idx] != postag.Adjective || in.tags[next] != postag.Noun {
			continue
		}
		adjective, noun := in.tokens[idx], in.tokens[next]
		if prenominalAdjectives[adjective] {
			continue
		}
		errs = append(errs, Error{
			Kind:         WordOrderAdjectivePlacement,
			Position:     idx,
			Observed:     adjective + " " + noun,
			Expected:     noun + " " + adjective,
			Message:      fmt.Sprintf("Most adjectives follow the noun: try %q.", noun+" "+adjective),
			RelatedTopic: "adjective-placement",
		})
	}

	return errs
}
