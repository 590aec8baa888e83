package noun

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

// exampleCount is the number of usage examples an entry carries; ids run 1..exampleCount.
const exampleCount = 2

// validate checks that every required field of a generated entry is present
// and well-formed. Part of speech is only checked for presence here.
func validate(d domain.GeneratedNounData) *domain.ValidationError {
	var errs []domain.FieldError
	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		}
	}

	required("lemma", d.Lemma)
	required("part_of_speech", d.PartOfSpeech)
	required("translation_en", d.TranslationEN)
	required("translation_ru", d.TranslationRU)
	required("pronunciation", d.Pronunciation)

	gd := d.GrammarData
	if !gd.Gender.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "grammar_data.gender",
			Message: fmt.Sprintf("must be masculine, feminine or neuter, got %q", gd.Gender),
		})
	}
	if !gd.DeclensionGroup.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "grammar_data.declension_group",
			Message: fmt.Sprintf("must look like <gender>_<ending>, got %q", gd.DeclensionGroup),
		})
	}

	for _, c := range []struct {
		number string
		forms  domain.CaseForms
	}{
		{"singular", gd.Cases.Singular},
		{"plural", gd.Cases.Plural},
	} {
		prefix, forms := "grammar_data.cases."+c.number+".", c.forms
		required(prefix+"nominative", forms.Nominative)
		required(prefix+"genitive", forms.Genitive)
		required(prefix+"accusative", forms.Accusative)
		required(prefix+"vocative", forms.Vocative)
	}

	if len(d.Examples) != exampleCount {
		errs = append(errs, domain.FieldError{
			Field:   "examples",
			Message: fmt.Sprintf("exactly %d examples required, got %d", exampleCount, len(d.Examples)),
		})
	}
	seen := make(map[int]bool, len(d.Examples))
	for i, ex := range d.Examples {
		prefix := fmt.Sprintf("examples[%d].", i)
		if ex.ID < 1 || ex.ID > exampleCount || seen[ex.ID] {
			errs = append(errs, domain.FieldError{
				Field:   prefix + "id",
				Message: fmt.Sprintf("must be a unique id from 1 to %d, got %d", exampleCount, ex.ID),
			})
		}
		seen[ex.ID] = true
		required(prefix+"greek", ex.Greek)
		required(prefix+"english", ex.English)
		required(prefix+"russian", ex.Russian)
	}

	if len(errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(errs)
}
