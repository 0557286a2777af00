package postag

import (
	"reflect"
	"testing"
)

func TestTagTokenClosedClasses(t *testing.T) {
	tests := []struct {
		token string
		want  Tag
	}{
		{"le", Determiner},
		{"La", Determiner},
		{"une", Determiner},
		{"ses", Determiner},
		{"je", Pronoun},
		{"j'", Pronoun},
		{"il", Pronoun},
		{"est", Verb},
		{"vais", Verb},
		{"ont", Verb},
		{"dans", Adposition},
		{"à", Adposition},
		{"et", Conjunction},
		{"ou", Conjunction},
		{"bien", Adverb},
		{"où", Adverb},
		{"jamais", Adverb},
		{".", Punctuation},
		{"«", Punctuation},
		{"deux", Number},
		{"42", Number},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := TagToken(tt.token); got != tt.want {
				t.Errorf("TagToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestTagTokenSuffixRules(t *testing.T) {
	tests := []struct {
		token string
		want  Tag
	}{
		{"parler", Verb},    // -er infinitive
		{"finir", Verb},     // -ir infinitive
		{"attendre", Verb},  // -re infinitive
		{"parlez", Verb},    // -ez
		{"mangeons", Verb},  // -ons
		{"parlaient", Verb}, // -aient
		{"mangé", Verb},     // past participle
		{"heureux", Adjective},
		{"sportive", Adjective},
		{"nationale", Adjective},
		{"possible", Adjective},
		{"magique", Adjective},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := TagToken(tt.token); got != tt.want {
				t.Errorf("TagToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestTagTokenDefaultsToNoun(t *testing.T) {
	for _, token := range []string{"chat", "maison", "pain", "fer", "vin"} {
		if got := TagToken(token); got != Noun {
			t.Errorf("TagToken(%q) = %v, want Noun", token, got)
		}
	}
}

// Resolution order: a word in two classes takes the earlier table.
func TestTagTokenPriorityOrder(t *testing.T) {
	// "leur" is both determiner and object pronoun; determiners win.
	if got := TagToken("leur"); got != Determiner {
		t.Errorf("TagToken(leur) = %v, want Determiner", got)
	}
	// "es" is an irregular verb form, not an -es suffix candidate.
	if got := TagToken("es"); got != Verb {
		t.Errorf("TagToken(es) = %v, want Verb", got)
	}
}

func TestTagSequence(t *testing.T) {
	got := TagSequence("le chat est petit .")
	want := []Tag{Determiner, Noun, Verb, Noun, Punctuation}
	// "petit" has no adjective suffix from the fixed set; defaults to Noun.
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagSequence = %v, want %v", got, want)
	}
}

func TestTagSequenceSplitsHyphens(t *testing.T) {
	got := TagSequence("Où est-il ?")
	want := []Tag{Adverb, Verb, Pronoun, Punctuation}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagSequence = %v, want %v", got, want)
	}
}

func TestStringNames(t *testing.T) {
	if Noun.String() != "Noun" || Adjective.String() != "Adjective" {
		t.Error("Tag.String() returned unexpected names")
	}
	if Tag(99).String() != "Tag(99)" {
		t.Errorf("invalid tag String() = %q", Tag(99).String())
	}
}
