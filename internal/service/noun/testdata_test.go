package noun

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// entryJSON returns a valid entry for σπίτι, optionally modified.
func entryJSON(t *testing.T, modify func(m map[string]any)) string {
	t.Helper()

	m := map[string]any{
		"lemma":                 "σπίτι",
		"part_of_speech":        "noun",
		"translation_en":        "house",
		"translation_en_plural": "houses",
		"translation_ru":        "дом",
		"pronunciation":         "[ˈspiti]",
		"grammar_data": map[string]any{
			"gender":           "neuter",
			"declension_group": "neuter_i",
			"cases": map[string]any{
				"singular": map[string]any{
					"nominative": "το σπίτι",
					"genitive":   "του σπιτιού",
					"accusative": "το σπίτι",
					"vocative":   "σπίτι",
				},
				"plural": map[string]any{
					"nominative": "τα σπίτια",
					"genitive":   "των σπιτιών",
					"accusative": "τα σπίτια",
					"vocative":   "σπίτια",
				},
			},
		},
		"examples": []any{
			map[string]any{"id": 1, "greek": "Το σπίτι είναι μεγάλο.", "english": "The house is big.", "russian": "Дом большой."},
			map[string]any{"id": 2, "greek": "Τα σπίτια του χωριού είναι παλιά.", "english": "The village houses are old.", "russian": "Дома в деревне старые."},
		},
	}
	if modify != nil {
		modify(m)
	}

	b, err := json.Marshal(m)
	require.NoError(t, err)
	return string(b)
}

func grammar(m map[string]any) map[string]any {
	return m["grammar_data"].(map[string]any)
}

func singular(m map[string]any) map[string]any {
	return grammar(m)["cases"].(map[string]any)["singular"].(map[string]any)
}

func examples(m map[string]any) []any {
	return m["examples"].([]any)
}
