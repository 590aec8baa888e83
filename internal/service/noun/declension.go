package noun

import (
	"strings"

	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

type suffixRule struct {
	suffix string
	group  domain.DeclensionGroup
}

// declensionSuffixes lists unaccented nominative singular endings per gender.
// Order matters: the first matching suffix wins.
var declensionSuffixes = map[domain.Gender][]suffixRule{
	domain.GenderMasculine: {
		{"ος", domain.DeclensionMasculineOs},
		{"ας", domain.DeclensionMasculineAs},
		{"ης", domain.DeclensionMasculineIs},
	},
	domain.GenderFeminine: {
		{"ος", domain.DeclensionFeminineOs},
		{"α", domain.DeclensionFeminineA},
		{"η", domain.DeclensionFeminineI},
	},
	domain.GenderNeuter: {
		{"μα", domain.DeclensionNeuterMa},
		{"ος", domain.DeclensionNeuterOs},
		{"ο", domain.DeclensionNeuterO},
		{"ι", domain.DeclensionNeuterI},
	},
}

// DeriveDeclension infers the declension group from gender and the
// nominative singular (with or without article). The second value is false
// when no suffix rule matches.
func DeriveDeclension(gender domain.Gender, nominative string) (domain.DeclensionGroup, bool) {
	bare := domain.StripAccents(domain.StripArticle(nominative))
	if bare == "" {
		return "", false
	}
	for _, rule := range declensionSuffixes[gender] {
		if strings.HasSuffix(bare, rule.suffix) {
			return rule.group, true
		}
	}
	return "", false
}
