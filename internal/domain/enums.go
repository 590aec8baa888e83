package domain

import "strings"

// Gender is the grammatical gender of a Greek noun.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNeuter:
		return true
	}
	return false
}

// definiteArticles maps each gender to its nominative singular definite article.
var definiteArticles = map[Gender]string{
	GenderMasculine: "ο",
	GenderFeminine:  "η",
	GenderNeuter:    "το",
}

// Article returns the nominative singular definite article for the gender.
// The second value is false for an unknown gender.
func (g Gender) Article() (string, bool) {
	a, ok := definiteArticles[g]
	return a, ok
}

// DeclensionGroup classifies a noun's inflection pattern, e.g. "masculine_os".
type DeclensionGroup string

const (
	DeclensionMasculineOs DeclensionGroup = "masculine_os"
	DeclensionMasculineAs DeclensionGroup = "masculine_as"
	DeclensionMasculineIs DeclensionGroup = "masculine_is"
	DeclensionFeminineOs  DeclensionGroup = "feminine_os"
	DeclensionFeminineA   DeclensionGroup = "feminine_a"
	DeclensionFeminineI   DeclensionGroup = "feminine_i"
	DeclensionNeuterMa    DeclensionGroup = "neuter_ma"
	DeclensionNeuterOs    DeclensionGroup = "neuter_os"
	DeclensionNeuterO     DeclensionGroup = "neuter_o"
	DeclensionNeuterI     DeclensionGroup = "neuter_i"
)

func (d DeclensionGroup) String() string { return string(d) }

// IsValid reports whether the group has the "<gender>_<suffix>" shape.
// Groups outside the derivation table (e.g. "masculine_es") are accepted
// because the model may classify nouns the suffix table cannot.
func (d DeclensionGroup) IsValid() bool {
	gender, suffix, ok := strings.Cut(string(d), "_")
	if !ok || suffix == "" || !Gender(gender).IsValid() {
		return false
	}
	for _, r := range suffix {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Gender returns the gender prefix of the group.
func (d DeclensionGroup) Gender() Gender {
	gender, _, _ := strings.Cut(string(d), "_")
	return Gender(gender)
}

// Universal POS tags produced by the morphology analyzer.
const (
	POSNoun  = "NOUN"
	POSOther = "X"
)

// PartOfSpeechNoun is the only part_of_speech value accepted in generated entries.
const PartOfSpeechNoun = "noun"
