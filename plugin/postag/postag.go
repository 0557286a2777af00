// Package postag assigns coarse part-of-speech tags to French tokens using
// closed-class lookup tables and suffix rules. It is a deterministic heuristic,
// not a morphological analyzer: ambiguous or novel tokens default to Noun,
// which is an accepted approximation.
package postag

import (
	"fmt"
	"strings"

	"github.com/phrasecoach/phrasecoach/plugin/frtext"
)

// Tag is a coarse part-of-speech category.
type Tag int

const (
	Noun Tag = iota // default for unknown tokens
	Determiner
	Pronoun
	Verb
	Adposition
	Conjunction
	Adverb
	Punctuation
	Number
	Adjective
)

var tagNames = map[Tag]string{
	Noun:        "Noun",
	Determiner:  "Determiner",
	Pronoun:     "Pronoun",
	Verb:        "Verb",
	Adposition:  "Adposition",
	Conjunction: "Conjunction",
	Adverb:      "Adverb",
	Punctuation: "Punctuation",
	Number:      "Number",
	Adjective:   "Adjective",
}

// String returns the name of the tag. For invalid values it returns "Tag(n)".
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// Closed-class lookup tables. Lookup is on the lowercased token; elided forms
// keep their apostrophe ("l'", "j'"). Where a word appears in more than one
// class (leur, tout), the earlier table in resolution order wins.
var (
	determiners = toSet(
		"le", "la", "les", "l'", "un", "une", "des", "du", "au", "aux",
		"ce", "cet", "cette", "ces",
		"mon", "ma", "mes", "ton", "ta", "tes", "son", "sa", "ses",
		"notre", "nos", "votre", "vos", "leur", "leurs",
		"quel", "quelle", "quels", "quelles",
		"chaque", "quelques", "plusieurs", "tout", "toute", "tous", "toutes",
	)

	pronouns = toSet(
		"je", "j'", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles",
		"me", "m'", "te", "t'", "se", "s'", "moi", "toi", "lui", "eux", "y",
		"qui", "que", "qu'", "quoi", "dont",
		"celui", "celle", "ceux", "celles", "ça", "cela", "ceci",
		"rien", "personne", "chacun", "chacune", "quelqu'un",
	)

	// Irregular and high-frequency conjugated forms that suffix rules miss.
	irregularVerbs = toSet(
		"suis", "es", "est", "sommes", "êtes", "sont",
		"ai", "as", "a", "avons", "avez", "ont",
		"vais", "vas", "va", "allons", "allez", "vont",
		"fais", "fait", "faisons", "faites", "font",
		"peux", "peut", "pouvons", "pouvez", "peuvent",
		"veux", "veut", "voulons", "voulez", "veulent",
		"sais", "sait", "savons", "savez", "savent",
		"dois", "doit", "devons", "devez", "doivent",
		"viens", "vient", "venons", "venez", "viennent",
		"prends", "prend", "prenons", "prenez", "prennent",
		"mets", "met", "mettons", "mettez", "mettent",
		"vois", "voit", "voyons", "voyez", "voient",
		"bois", "boit", "buvons", "buvez", "boivent",
		"dis", "dit", "disons", "disent",
		"étais", "était", "étions", "étiez", "étaient",
		"avais", "avait", "avions", "aviez", "avaient",
		"serai", "seras", "sera", "serons", "serez", "seront",
		"aurai", "auras", "aura", "aurons", "aurez", "auront",
		"irai", "iras", "ira", "irons", "irez", "iront",
		"été", "eu",
	)

	adpositions = toSet(
		"à", "de", "d'", "en", "dans", "sur", "sous", "avec", "sans",
		"pour", "par", "chez", "vers", "entre", "contre", "depuis",
		"pendant", "avant", "après", "devant", "derrière", "jusque",
		"jusqu'à", "malgré", "selon", "sauf",
	)

	conjunctions = toSet(
		"et", "ou", "mais", "donc", "or", "ni", "car",
		"si", "quand", "comme", "lorsque", "puisque", "quoique",
	)

	adverbs = toSet(
		"ne", "n'", "pas", "plus", "moins", "très", "bien", "mal",
		"trop", "assez", "beaucoup", "peu", "souvent", "toujours", "jamais",
		"ici", "là", "où", "hier", "aujourd'hui", "demain", "maintenant",
		"déjà", "encore", "aussi", "alors", "puis", "ensuite", "enfin",
		"vite", "presque", "vraiment", "seulement", "surtout", "ensemble",
	)

	punctuationTokens = toSet(
		".", ",", "!", "?", ";", ":", "«", "»", "(", ")", "\"", "…",
	)

	numberWords = toSet(
		"zéro", "deux", "trois", "quatre", "cinq", "six", "sept", "huit",
		"neuf", "dix", "onze", "douze", "treize", "quatorze", "quinze",
		"seize", "vingt", "trente", "quarante", "cinquante", "soixante",
		"cent", "cents", "mille",
	)
)

// Suffix rules, applied only after every table misses.
var (
	verbSuffixes = []string{
		"er", "ir", "re", // infinitives
		"ez", "ons", "ent", "ais", "ait", "aient", "iez", "ions",
		"era", "erai", "eras", "erez", "eront",
		"é", "ée", "és", "ées",
	}

	adjectiveSuffixes = []string{
		"eux", "euse", "euses", "if", "ive", "ives",
		"al", "ale", "ales", "el", "elle", "elles",
		"able", "ible", "ique", "iques", "aire", "aires",
		"ain", "aine", "ien", "ienne",
	}
)

// minSuffixTokenLen guards suffix rules against firing on short function-like
// words the tables do not know ("fer" is a noun, not an -er infinitive).
const minSuffixTokenLen = 4

// TagToken returns the part-of-speech tag for a single token. Resolution
// order: closed-class tables in fixed priority (determiners, pronouns,
// irregular verbs, adpositions, conjunctions, adverbs, punctuation, numbers),
// then verb and adjective suffix rules, then Noun.
func TagToken(token string) Tag {
	word := strings.ToLower(strings.ReplaceAll(token, "’", "'"))

	switch {
	case determiners[word]:
		return Determiner
	case pronouns[word]:
		return Pronoun
	case irregularVerbs[word]:
		return Verb
	case adpositions[word]:
		return Adposition
	case conjunctions[word]:
		return Conjunction
	case adverbs[word]:
		return Adverb
	case punctuationTokens[word] || frtext.IsPunctuation(word):
		return Punctuation
	case numberWords[word] || isDigits(word):
		return Number
	}

	if len([]rune(word)) >= minSuffixTokenLen {
		for _, suffix := range verbSuffixes {
			if strings.HasSuffix(word, suffix) {
				return Verb
			}
		}
		for _, suffix := range adjectiveSuffixes {
			if strings.HasSuffix(word, suffix) {
				return Adjective
			}
		}
	}

	return Noun
}

// TagSequence tokenizes text and tags every token, punctuation included.
func TagSequence(text string) []Tag {
	tokens := frtext.Tokenize(text)
	tags := make([]Tag, len(tokens))
	for i, token := range tokens {
		tags[i] = TagToken(token)
	}
	return tags
}

func isDigits(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
