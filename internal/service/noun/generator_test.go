package noun

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/mygreek-backend/internal/adapter/provider/completion"
	"github.com/heartmarshall/mygreek-backend/internal/domain"
	"github.com/heartmarshall/mygreek-backend/internal/prompt"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockCompleter struct {
	CompleteFunc func(ctx context.Context, req completion.Request) (*completion.Response, error)
}

func (m *mockCompleter) Complete(ctx context.Context, req completion.Request) (*completion.Response, error) {
	return m.CompleteFunc(ctx, req)
}

func replying(content string) *mockCompleter {
	return &mockCompleter{
		CompleteFunc: func(_ context.Context, req completion.Request) (*completion.Response, error) {
			return &completion.Response{Content: content, Model: "test-model", LatencyMS: 42}, nil
		},
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func neuterLemma() domain.NormalizedLemma {
	g := domain.GenderNeuter
	a := "το"
	return domain.NormalizedLemma{InputWord: "σπίτια", Lemma: "σπίτι", Gender: &g, Article: &a, POS: "NOUN", Confidence: 1.0}
}

func masculineLemma() domain.NormalizedLemma {
	g := domain.GenderMasculine
	a := "ο"
	return domain.NormalizedLemma{InputWord: "άνθρωπος", Lemma: "άνθρωπος", Gender: &g, Article: &a, POS: "NOUN", Confidence: 1.0}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	var got completion.Request
	llm := &mockCompleter{
		CompleteFunc: func(_ context.Context, req completion.Request) (*completion.Response, error) {
			got = req
			return &completion.Response{
				Content:   entryJSON(t, nil),
				Model:     "gpt-4o-mini-2024-07-18",
				Usage:     completion.Usage{TotalTokens: 900},
				LatencyMS: 1200,
			}, nil
		},
	}

	res, err := NewGenerator(slog.Default(), llm, "gpt-4o-mini").Generate(context.Background(), neuterLemma())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, completion.FormatJSONObject, got.ResponseFormat)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, completion.RoleSystem, got.Messages[0].Role)
	assert.Equal(t, prompt.System, got.Messages[0].Content)
	assert.Equal(t, completion.RoleUser, got.Messages[1].Role)
	assert.Contains(t, got.Messages[1].Content, "σπίτι")

	assert.Equal(t, "σπίτι", res.Noun.Lemma)
	assert.Equal(t, domain.DeclensionNeuterI, res.Noun.GrammarData.DeclensionGroup)
	assert.Equal(t, "τα σπίτια", res.Noun.GrammarData.Cases.Plural.Nominative)
	require.NotNil(t, res.Noun.TranslationENPlural)
	assert.Equal(t, "houses", *res.Noun.TranslationENPlural)
	assert.Equal(t, "gpt-4o-mini-2024-07-18", res.Model)
	assert.Equal(t, 900, res.Usage.TotalTokens)
	assert.Equal(t, int64(1200), res.LatencyMS)
	assert.Nil(t, res.Correction)
}

func TestGenerate_NullPluralTranslation(t *testing.T) {
	t.Parallel()

	raw := entryJSON(t, func(m map[string]any) { m["translation_en_plural"] = nil })

	res, err := NewGenerator(slog.Default(), replying(raw), "").Generate(context.Background(), neuterLemma())
	require.NoError(t, err)
	assert.Nil(t, res.Noun.TranslationENPlural)
}

func TestGenerate_MarkdownFence(t *testing.T) {
	t.Parallel()

	raw := "Here you go:\n```json\n" + entryJSON(t, nil) + "\n```"

	res, err := NewGenerator(slog.Default(), replying(raw), "").Generate(context.Background(), neuterLemma())
	require.NoError(t, err)
	assert.Equal(t, "σπίτι", res.Noun.Lemma)
}

func TestGenerate_InvalidJSON(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "not json at all", `{"lemma": "σπίτι",`, "}{"} {
		_, err := NewGenerator(slog.Default(), replying(raw), "").Generate(context.Background(), neuterLemma())
		require.Error(t, err)

		var gerr *GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.ErrorIs(t, err, ErrInvalidJSON)
		assert.Equal(t, raw, gerr.Raw)
		assert.Equal(t, "σπίτι", gerr.Lemma)
	}
}

func TestGenerate_SchemaMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(m map[string]any)
		wantField string
	}{
		{"missing lemma", func(m map[string]any) { delete(m, "lemma") }, "lemma"},
		{"empty russian", func(m map[string]any) { m["translation_ru"] = " " }, "translation_ru"},
		{"bad gender", func(m map[string]any) { grammar(m)["gender"] = "common" }, "grammar_data.gender"},
		{"bad declension", func(m map[string]any) { grammar(m)["declension_group"] = "third" }, "grammar_data.declension_group"},
		{"missing genitive", func(m map[string]any) { delete(singular(m), "genitive") }, "grammar_data.cases.singular.genitive"},
		{"no examples", func(m map[string]any) { m["examples"] = []any{} }, "examples"},
		{"wrong type", func(m map[string]any) { m["examples"] = "none" }, "examples"},
		{"one example", func(m map[string]any) { m["examples"] = examples(m)[:1] }, "examples"},
		{"three examples", func(m map[string]any) {
			m["examples"] = append(examples(m), map[string]any{"id": 3, "greek": "Ένα σπίτι.", "english": "A house.", "russian": "Дом."})
		}, "examples"},
		{"ids seven and nine", func(m map[string]any) {
			examples(m)[0].(map[string]any)["id"] = 7
			examples(m)[1].(map[string]any)["id"] = 9
		}, "examples[0].id"},
		{"duplicate ids", func(m map[string]any) { examples(m)[1].(map[string]any)["id"] = 1 }, "examples[1].id"},
		{"missing id", func(m map[string]any) { delete(examples(m)[0].(map[string]any), "id") }, "examples[0].id"},
		{"missing part of speech", func(m map[string]any) { delete(m, "part_of_speech") }, "part_of_speech"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := entryJSON(t, tt.modify)
			_, err := NewGenerator(slog.Default(), replying(raw), "").Generate(context.Background(), neuterLemma())
			require.Error(t, err)

			assert.ErrorIs(t, err, ErrSchemaMismatch)
			assert.ErrorIs(t, err, domain.ErrValidation)

			var gerr *GenerationError
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, raw, gerr.Raw)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Errors))
			for _, fe := range verr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestGenerate_WrongPartOfSpeech(t *testing.T) {
	t.Parallel()

	raw := entryJSON(t, func(m map[string]any) { m["part_of_speech"] = "verb" })

	_, err := NewGenerator(slog.Default(), replying(raw), "").Generate(context.Background(), neuterLemma())
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrWrongPartOfSpeech)
	assert.NotErrorIs(t, err, ErrSchemaMismatch)

	var gerr *GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, raw, gerr.Raw)
}

func TestGenerate_SchemaCheckedBeforePartOfSpeech(t *testing.T) {
	t.Parallel()

	raw := entryJSON(t, func(m map[string]any) {
		m["part_of_speech"] = "verb"
		delete(m, "translation_en")
	})

	_, err := NewGenerator(slog.Default(), replying(raw), "").Generate(context.Background(), neuterLemma())
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.NotErrorIs(t, err, ErrWrongPartOfSpeech)
}

func TestGenerate_GatewayErrorPropagates(t *testing.T) {
	t.Parallel()

	llm := &mockCompleter{
		CompleteFunc: func(context.Context, completion.Request) (*completion.Response, error) {
			return nil, &completion.StatusError{StatusCode: 429, Attempts: 3, Err: completion.ErrRateLimited}
		},
	}

	_, err := NewGenerator(slog.Default(), llm, "").Generate(context.Background(), neuterLemma())
	require.Error(t, err)
	assert.ErrorIs(t, err, completion.ErrRateLimited)

	var gerr *GenerationError
	assert.False(t, errors.As(err, &gerr))
}

func TestGenerate_DeclensionOverride(t *testing.T) {
	t.Parallel()

	raw := entryJSON(t, func(m map[string]any) {
		m["lemma"] = "άνθρωπος"
		grammar(m)["gender"] = "masculine"
		grammar(m)["declension_group"] = "masculine_as"
		singular(m)["nominative"] = "ο άνθρωπος"
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	res, err := NewGenerator(logger, replying(raw), "").Generate(context.Background(), masculineLemma())
	require.NoError(t, err)

	assert.Equal(t, domain.DeclensionMasculineOs, res.Noun.GrammarData.DeclensionGroup)
	require.NotNil(t, res.Correction)
	assert.Equal(t, DeclensionCorrection{From: domain.DeclensionMasculineAs, To: domain.DeclensionMasculineOs}, *res.Correction)

	out := logs.String()
	assert.Contains(t, out, "declension corrected")
	assert.Contains(t, out, "model_value=masculine_as")
	assert.Contains(t, out, "derived_value=masculine_os")
}

func TestGenerate_DeclensionOverride_WhateverTheModelSaid(t *testing.T) {
	t.Parallel()

	for _, said := range []string{"masculine_os", "masculine_is", "masculine_xyz", "masculine_as"} {
		raw := entryJSON(t, func(m map[string]any) {
			m["lemma"] = "άνθρωπος"
			grammar(m)["gender"] = "masculine"
			grammar(m)["declension_group"] = said
			singular(m)["nominative"] = "ο άνθρωπος"
		})

		res, err := NewGenerator(slog.Default(), replying(raw), "").Generate(context.Background(), masculineLemma())
		require.NoError(t, err)
		assert.Equal(t, domain.DeclensionMasculineOs, res.Noun.GrammarData.DeclensionGroup, "model said %s", said)
	}
}

func TestGenerate_DeclensionNotDerivable_Kept(t *testing.T) {
	t.Parallel()

	raw := entryJSON(t, func(m map[string]any) {
		m["lemma"] = "καφές"
		grammar(m)["gender"] = "masculine"
		grammar(m)["declension_group"] = "masculine_es"
		singular(m)["nominative"] = "ο καφές"
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	res, err := NewGenerator(logger, replying(raw), "").Generate(context.Background(), masculineLemma())
	require.NoError(t, err)

	assert.Equal(t, domain.DeclensionGroup("masculine_es"), res.Noun.GrammarData.DeclensionGroup)
	assert.Nil(t, res.Correction)
	assert.Contains(t, logs.String(), "declension not derivable")
}
