// Package noun generates complete Greek noun entries with a language model.
package noun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mygreek-backend/internal/adapter/provider/completion"
	"github.com/heartmarshall/mygreek-backend/internal/domain"
	"github.com/heartmarshall/mygreek-backend/internal/prompt"
)

type completer interface {
	Complete(ctx context.Context, req completion.Request) (*completion.Response, error)
}

// DeclensionCorrection records a declension group replaced by the derived one.
type DeclensionCorrection struct {
	From domain.DeclensionGroup `json:"from"`
	To   domain.DeclensionGroup `json:"to"`
}

// Result is a generated entry with call metadata.
type Result struct {
	Noun       domain.GeneratedNounData `json:"noun"`
	Model      string                   `json:"model"`
	Usage      completion.Usage         `json:"usage"`
	LatencyMS  int64                    `json:"latency_ms"`
	Correction *DeclensionCorrection    `json:"declension_correction,omitempty"`
}

// Generator asks one model for a noun entry and validates the answer.
type Generator struct {
	log   *slog.Logger
	llm   completer
	model string
}

// NewGenerator creates a Generator. An empty model uses the gateway default.
func NewGenerator(logger *slog.Logger, llm completer, model string) *Generator {
	return &Generator{
		log:   logger.With("service", "noun"),
		llm:   llm,
		model: model,
	}
}

// Messages builds the chat for a lemma.
func Messages(l domain.NormalizedLemma) []completion.Message {
	return []completion.Message{
		{Role: completion.RoleSystem, Content: prompt.System},
		{Role: completion.RoleUser, Content: prompt.BuildUser(l)},
	}
}

// Generate produces a validated entry for l. Gateway errors are returned
// wrapped; unusable output is returned as *GenerationError.
func (g *Generator) Generate(ctx context.Context, l domain.NormalizedLemma) (*Result, error) {
	resp, err := g.llm.Complete(ctx, completion.Request{
		Messages:       Messages(l),
		Model:          g.model,
		ResponseFormat: completion.FormatJSONObject,
	})
	if err != nil {
		return nil, fmt.Errorf("noun: complete %q: %w", l.Lemma, err)
	}

	data, err := parse(resp.Content)
	if err != nil {
		g.log.WarnContext(ctx, "unusable model output",
			slog.String("lemma", l.Lemma),
			slog.String("model", resp.Model),
			slog.String("error", err.Error()),
		)
		return nil, &GenerationError{Lemma: l.Lemma, Model: resp.Model, Raw: resp.Content, Err: err}
	}

	correction := g.correctDeclension(ctx, &data)

	g.log.InfoContext(ctx, "noun generated",
		slog.String("lemma", data.Lemma),
		slog.String("model", resp.Model),
		slog.String("declension_group", data.GrammarData.DeclensionGroup.String()),
		slog.Int64("latency_ms", resp.LatencyMS),
	)

	return &Result{
		Noun:       data,
		Model:      resp.Model,
		Usage:      resp.Usage,
		LatencyMS:  resp.LatencyMS,
		Correction: correction,
	}, nil
}

// parse decodes and validates model output. Schema problems are reported
// before the part of speech.
func parse(raw string) (domain.GeneratedNounData, error) {
	var data domain.GeneratedNounData

	body, ok := extractJSON(raw)
	if !ok || !json.Valid([]byte(body)) {
		return data, ErrInvalidJSON
	}

	if err := json.Unmarshal([]byte(body), &data); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			verr := domain.NewValidationError(typeErr.Field, fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value))
			return data, fmt.Errorf("%w: %w", ErrSchemaMismatch, verr)
		}
		return data, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	if verr := validate(data); verr != nil {
		return data, fmt.Errorf("%w: %w", ErrSchemaMismatch, verr)
	}

	if data.PartOfSpeech != domain.PartOfSpeechNoun {
		return data, fmt.Errorf("%w: %q", ErrWrongPartOfSpeech, data.PartOfSpeech)
	}

	return data, nil
}

// extractJSON returns the text between the first { and the last },
// dropping markdown fences or prose around the object.
func extractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// correctDeclension replaces the model's declension group with the one
// derived from gender and nominative singular when they disagree.
func (g *Generator) correctDeclension(ctx context.Context, d *domain.GeneratedNounData) *DeclensionCorrection {
	gd := &d.GrammarData
	nominative := gd.Cases.Singular.Nominative

	derived, ok := DeriveDeclension(gd.Gender, nominative)
	if !ok {
		g.log.WarnContext(ctx, "declension not derivable, keeping model value",
			slog.String("lemma", d.Lemma),
			slog.String("gender", gd.Gender.String()),
			slog.String("nominative", nominative),
			slog.String("declension_group", gd.DeclensionGroup.String()),
		)
		return nil
	}
	if derived == gd.DeclensionGroup {
		return nil
	}

	g.log.WarnContext(ctx, "declension corrected",
		slog.String("lemma", d.Lemma),
		slog.String("nominative", nominative),
		slog.String("model_value", gd.DeclensionGroup.String()),
		slog.String("derived_value", derived.String()),
	)

	c := &DeclensionCorrection{From: gd.DeclensionGroup, To: derived}
	gd.DeclensionGroup = derived
	return c
}
