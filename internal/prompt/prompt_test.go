package prompt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

func TestWorkedExamples_AreValidEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw        string
		lemma      string
		gender     domain.Gender
		declension domain.DeclensionGroup
	}{
		{exampleMasculine, "άνθρωπος", domain.GenderMasculine, domain.DeclensionMasculineOs},
		{exampleNeuter, "πρόβλημα", domain.GenderNeuter, domain.DeclensionNeuterMa},
	}

	for _, tt := range tests {
		var got domain.GeneratedNounData
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))

		assert.Equal(t, tt.lemma, got.Lemma)
		assert.Equal(t, domain.PartOfSpeechNoun, got.PartOfSpeech)
		assert.Equal(t, tt.gender, got.GrammarData.Gender)
		assert.Equal(t, tt.declension, got.GrammarData.DeclensionGroup)
		require.Len(t, got.Examples, 2)
		assert.Equal(t, 1, got.Examples[0].ID)
		assert.Equal(t, 2, got.Examples[1].ID)
	}
}

func TestSystem_ContainsBothExamples(t *testing.T) {
	t.Parallel()

	assert.Contains(t, System, `"lemma": "άνθρωπος"`)
	assert.Contains(t, System, `"lemma": "πρόβλημα"`)
}

func TestSchema_ExactlyTwoExamples(t *testing.T) {
	t.Parallel()

	assert.Contains(t, System, "exactly 2")
	assert.Contains(t, Schema, `{"id": 1,`)
	assert.Contains(t, Schema, `{"id": 2,`)
}

func TestBuildUser(t *testing.T) {
	t.Parallel()

	g := domain.GenderNeuter
	article := "το"
	got := BuildUser(domain.NormalizedLemma{
		InputWord:  "σπίτια",
		Lemma:      "σπίτι",
		Gender:     &g,
		Article:    &article,
		POS:        "NOUN",
		Confidence: 1.0,
	})

	assert.Contains(t, got, `"σπίτι"`)
	assert.Contains(t, got, "- gender: neuter")
	assert.Contains(t, got, "- article: το")
	assert.Contains(t, got, "- part of speech: NOUN")
	assert.Contains(t, got, "- confidence: 1.00")
	assert.Contains(t, got, Schema)
}

func TestBuildUser_UnknownGender(t *testing.T) {
	t.Parallel()

	got := BuildUser(domain.NormalizedLemma{Lemma: "σπλίτρο", POS: "X", Confidence: 0.2})

	assert.Contains(t, got, "- gender: unknown")
	assert.Contains(t, got, "- article: unknown")
	assert.Contains(t, got, "- confidence: 0.20")
}
