package domain

// NormalizedLemma is the canonical form of a user-supplied word with inferred grammar.
// Gender and Article are either both set or both nil.
type NormalizedLemma struct {
	InputWord  string  `json:"input_word"`
	Lemma      string  `json:"lemma"`
	Gender     *Gender `json:"gender"`
	Article    *string `json:"article"`
	POS        string  `json:"pos"`
	Confidence float64 `json:"confidence"`
}

// HasGender reports whether gender (and therefore article) was inferred.
func (l NormalizedLemma) HasGender() bool {
	return l.Gender != nil && l.Article != nil
}

// IsNoun reports whether the analyzer tagged the lemma as a noun.
func (l NormalizedLemma) IsNoun() bool {
	return l.POS == POSNoun
}
