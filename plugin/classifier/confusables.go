package classifier

// confusablePair is a curated pair of French forms that learners routinely
// substitute for one another. Rule names the grammatical distinction; Topic is
// the remediation drill category attached to the finding.
type confusablePair struct {
	A     string
	B     string
	Rule  string
	Topic string
}

// confusablePairs is checked in both directions independently: writing A where
// the reference uses B is flagged, and vice versa.
var confusablePairs = []confusablePair{
	{A: "a", B: "à", Rule: "“a” (avoir) vs “à” (preposition)", Topic: "homophones"},
	{A: "ou", B: "où", Rule: "“ou” (or) vs “où” (where)", Topic: "homophones"},
	{A: "son", B: "sont", Rule: "“son” (possessive) vs “sont” (être)", Topic: "homophones"},
	{A: "ses", B: "ces", Rule: "“ses” (possessive) vs “ces” (demonstrative)", Topic: "homophones"},
	{A: "se", B: "ce", Rule: "“se” (reflexive) vs “ce” (demonstrative)", Topic: "homophones"},
	{A: "la", B: "là", Rule: "“la” (article) vs “là” (there)", Topic: "homophones"},
	{A: "c'est", B: "s'est", Rule: "“c'est” (it is) vs “s'est” (reflexive past)", Topic: "homophones"},
	{A: "le", B: "la", Rule: "masculine vs feminine article", Topic: "gender-articles"},
	{A: "un", B: "une", Rule: "masculine vs feminine article", Topic: "gender-articles"},
	{A: "ce", B: "cette", Rule: "masculine vs feminine demonstrative", Topic: "gender-articles"},
	{A: "mon", B: "ma", Rule: "masculine vs feminine possessive", Topic: "gender-articles"},
	{A: "du", B: "de", Rule: "partitive “du” vs plain “de”", Topic: "partitives"},
	{A: "bon", B: "bien", Rule: "“bon” (adjective) vs “bien” (adverb)", Topic: "adjective-adverb"},
	{A: "mes", B: "mais", Rule: "“mes” (possessive) vs “mais” (but)", Topic: "homophones"},
}
