package classifier

import "fmt"

// Kind identifies the category of a classifier finding.
type Kind int

const (
	Spelling Kind = iota + 1
	GrammarMissing
	GrammarExtra
	GrammarAgreement
	WordOrderTransposition
	WordOrderAdjectivePlacement
	Confusable
)

var kindNames = map[Kind]string{
	Spelling:                    "Spelling",
	GrammarMissing:              "Grammar-Missing",
	GrammarExtra:                "Grammar-Extra",
	GrammarAgreement:            "Grammar-Agreement",
	WordOrderTransposition:      "WordOrder-Transposition",
	WordOrderAdjectivePlacement: "WordOrder-AdjectivePlacement",
	Confusable:                  "Confusable",
}

// String returns the name of the kind. For invalid values it returns "Kind(n)".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsGrammar reports whether the kind is one of the grammar categories.
func (k Kind) IsGrammar() bool {
	return k == GrammarMissing || k == GrammarExtra || k == GrammarAgreement
}

// IsWordOrder reports whether the kind is one of the word-order categories.
func (k Kind) IsWordOrder() bool {
	return k == WordOrderTransposition || k == WordOrderAdjectivePlacement
}

// Spelling subtypes.
const (
	SubtypeAccent = "accent"
	SubtypeTypo   = "typo"
)

// NoPosition marks an Error that is not anchored to an input token.
const NoPosition = -1

// Error is a single classifier finding. Errors are data, not failures: they
// are always surfaced to the caller in full, subject only to deduplication.
type Error struct {
	Kind         Kind   `json:"kind"`
	Subtype      string `json:"subtype,omitempty"`
	Position     int    `json:"position"` // input token index, NoPosition when unanchored
	Observed     string `json:"observed,omitempty"`
	Expected     string `json:"expected,omitempty"`
	Message      string `json:"message"`
	RelatedTopic string `json:"relatedTopic,omitempty"` // remediation drill category
}

// dedupeKey is the composite identity used when merging detector output.
func (e Error) dedupeKey() string {
	return fmt.Sprintf("%d|%d|%s", e.Kind, e.Position, e.Observed)
}

// Result is the outcome of classifying one learner attempt.
type Result struct {
	IsCorrect bool `json:"isCorrect"`
	// Errors is ordered by detector execution (spelling, grammar, word order,
	// confusable), not by severity. Callers that want severity ranking must
	// re-sort.
	Errors   []Error `json:"errors"`
	Feedback string  `json:"feedback"`
}

// PrimaryError returns the first remaining error, or nil when the attempt was
// correct.
func (r *Result) PrimaryError() *Error {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}
