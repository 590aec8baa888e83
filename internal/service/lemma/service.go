// Package lemma turns user-supplied Greek words into canonical lemmas with
// inferred gender, article and a confidence score.
package lemma

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

type spellChecker interface {
	Check(ctx context.Context, word string) (domain.SpellcheckResult, error)
}

type morphAnalyzer interface {
	Analyze(ctx context.Context, word string) domain.MorphologyResult
}

// Confidence levels, highest first.
const (
	ConfidenceNounWithGender   = 1.0
	ConfidenceNounInputInvalid = 0.95
	ConfidenceNounNoGender     = 0.8
	ConfidenceOtherValidInput  = 0.6
	ConfidenceFallback         = 0.5
	ConfidenceLemmaMisspelled  = 0.2
	ConfidenceFailed           = 0.0
)

// genderFeatures maps the analyzer's Gender feature to a domain gender.
var genderFeatures = map[string]domain.Gender{
	"Masc": domain.GenderMasculine,
	"Fem":  domain.GenderFeminine,
	"Neut": domain.GenderNeuter,
}

// Service normalizes words to lemmas.
type Service struct {
	log   *slog.Logger
	spell spellChecker
	morph morphAnalyzer
}

// NewService creates a lemma normalization service.
func NewService(logger *slog.Logger, spell spellChecker, morph morphAnalyzer) *Service {
	return &Service{
		log:   logger.With("service", "lemma"),
		spell: spell,
		morph: morph,
	}
}

// Normalize resolves word to its lemma. Bad input never fails: it yields
// confidence 0. Only spell oracle errors are returned.
func (s *Service) Normalize(ctx context.Context, word string) (domain.NormalizedLemma, error) {
	cleaned := domain.StripArticle(word)

	if cleaned == "" || !domain.IsGreekText(cleaned) {
		s.log.DebugContext(ctx, "rejected input", slog.String("word", word))
		return domain.NormalizedLemma{InputWord: word, Lemma: cleaned, Confidence: ConfidenceFailed}, nil
	}

	inputCheck, err := s.spell.Check(ctx, cleaned)
	if err != nil {
		return domain.NormalizedLemma{}, fmt.Errorf("lemma: spellcheck input: %w", err)
	}

	m := s.morph.Analyze(ctx, cleaned)
	if !m.AnalysisSuccessful {
		return domain.NormalizedLemma{
			InputWord:  word,
			Lemma:      m.Lemma,
			POS:        m.POS,
			Confidence: ConfidenceFailed,
		}, nil
	}

	lemmaCheck := inputCheck
	if m.Lemma != domain.NormalizeText(cleaned) {
		lemmaCheck, err = s.spell.Check(ctx, m.Lemma)
		if err != nil {
			return domain.NormalizedLemma{}, fmt.Errorf("lemma: spellcheck lemma: %w", err)
		}
	}

	res := domain.NormalizedLemma{
		InputWord: word,
		Lemma:     m.Lemma,
		POS:       m.POS,
	}

	if g, ok := genderFeatures[m.MorphFeatures["Gender"]]; ok {
		if article, ok := g.Article(); ok {
			res.Gender = &g
			res.Article = &article
		}
	}

	res.Confidence = confidence(res, inputCheck.IsValid, lemmaCheck.IsValid)

	s.log.DebugContext(ctx, "normalized",
		slog.String("word", word),
		slog.String("lemma", res.Lemma),
		slog.String("pos", res.POS),
		slog.Bool("input_valid", inputCheck.IsValid),
		slog.Bool("lemma_valid", lemmaCheck.IsValid),
		slog.Float64("confidence", res.Confidence),
	)

	return res, nil
}

// confidence applies the scoring cascade; the first matching rule wins.
func confidence(l domain.NormalizedLemma, inputValid, lemmaValid bool) float64 {
	switch {
	case !lemmaValid:
		return ConfidenceLemmaMisspelled
	case l.IsNoun() && l.HasGender() && inputValid:
		return ConfidenceNounWithGender
	case l.IsNoun() && l.HasGender():
		return ConfidenceNounInputInvalid
	case l.IsNoun():
		return ConfidenceNounNoGender
	case inputValid:
		return ConfidenceOtherValidInput
	default:
		return ConfidenceFallback
	}
}
