package verification

import "github.com/heartmarshall/mygreek-backend/internal/domain"

type fieldSpec struct {
	path   string
	weight float64
	// bare compares values with a leading definite article removed.
	bare bool
	get  func(d *domain.GeneratedNounData) *string
}

func str(s string) *string { return &s }

// comparedFields are the weighted fields checked between two generations.
var comparedFields = []fieldSpec{
	{path: "lemma", weight: 3.0, get: func(d *domain.GeneratedNounData) *string { return str(d.Lemma) }},
	{path: "grammar_data.gender", weight: 3.0, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.Gender.String())
	}},
	{path: "grammar_data.declension_group", weight: 2.0, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.DeclensionGroup.String())
	}},
	{path: "grammar_data.cases.singular.nominative", weight: 2.0, bare: true, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.Cases.Singular.Nominative)
	}},
	{path: "grammar_data.cases.singular.genitive", weight: 1.5, bare: true, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.Cases.Singular.Genitive)
	}},
	{path: "grammar_data.cases.singular.accusative", weight: 1.5, bare: true, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.Cases.Singular.Accusative)
	}},
	{path: "grammar_data.cases.singular.vocative", weight: 1.0, bare: true, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.Cases.Singular.Vocative)
	}},
	{path: "grammar_data.cases.plural.nominative", weight: 1.5, bare: true, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.Cases.Plural.Nominative)
	}},
	{path: "grammar_data.cases.plural.genitive", weight: 1.0, bare: true, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.Cases.Plural.Genitive)
	}},
	{path: "grammar_data.cases.plural.accusative", weight: 1.0, bare: true, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.Cases.Plural.Accusative)
	}},
	{path: "grammar_data.cases.plural.vocative", weight: 0.5, bare: true, get: func(d *domain.GeneratedNounData) *string {
		return str(d.GrammarData.Cases.Plural.Vocative)
	}},
	{path: "translation_en", weight: 1.0, get: func(d *domain.GeneratedNounData) *string { return str(d.TranslationEN) }},
	{path: "translation_en_plural", weight: 0.5, get: func(d *domain.GeneratedNounData) *string { return d.TranslationENPlural }},
	{path: "translation_ru", weight: 1.0, get: func(d *domain.GeneratedNounData) *string { return str(d.TranslationRU) }},
	{path: "pronunciation", weight: 1.0, get: func(d *domain.GeneratedNounData) *string { return str(d.Pronunciation) }},
}

// TotalWeight is the sum of all compared field weights.
var TotalWeight = func() float64 {
	var total float64
	for _, f := range comparedFields {
		total += f.weight
	}
	return total
}()

// Compare checks the weighted fields of two generations and returns the
// per-field results and the agreeing share of the total weight.
func Compare(primary, secondary domain.GeneratedNounData) ([]domain.FieldComparisonResult, float64) {
	results := make([]domain.FieldComparisonResult, 0, len(comparedFields))
	var agreeing float64

	for _, f := range comparedFields {
		p, s := f.get(&primary), f.get(&secondary)

		agrees := equalValues(p, s, f.bare)
		if agrees {
			agreeing += f.weight
		}

		results = append(results, domain.FieldComparisonResult{
			FieldPath:      f.path,
			PrimaryValue:   p,
			SecondaryValue: s,
			Agrees:         agrees,
			Weight:         f.weight,
		})
	}

	return results, agreeing / TotalWeight
}

func equalValues(a, b *string, bare bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if bare {
		return domain.StripArticle(*a) == domain.StripArticle(*b)
	}
	return *a == *b
}
