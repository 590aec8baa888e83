// Package verification cross-checks a generated noun entry against an
// independent generation by a second model.
package verification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mygreek-backend/internal/domain"
	"github.com/heartmarshall/mygreek-backend/internal/service/noun"
)

type nounGenerator interface {
	Generate(ctx context.Context, l domain.NormalizedLemma) (*noun.Result, error)
}

// Service runs the secondary generation and scores agreement.
type Service struct {
	log       *slog.Logger
	secondary nounGenerator
	model     string
}

// NewService creates a verifier. secondary must generate with model.
func NewService(logger *slog.Logger, secondary nounGenerator, model string) *Service {
	return &Service{
		log:       logger.With("service", "verification"),
		secondary: secondary,
		model:     model,
	}
}

// Model returns the secondary model identifier.
func (s *Service) Model() string { return s.model }

// Verify generates the entry again with the secondary model and compares it
// with primary. It never returns an error: failures become the error variant.
func (s *Service) Verify(ctx context.Context, primary domain.GeneratedNounData, l domain.NormalizedLemma) domain.CrossAIVerificationResult {
	secondary, err := s.Secondary(ctx, l)
	if err != nil {
		return s.failed(ctx, l, err)
	}
	return s.Compare(ctx, primary, secondary)
}

// Secondary runs only the secondary generation, for callers that schedule
// it alongside the primary one.
func (s *Service) Secondary(ctx context.Context, l domain.NormalizedLemma) (res *noun.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("verification: secondary generation panicked: %v", r)
		}
	}()
	return s.secondary.Generate(ctx, l)
}

// Compare scores primary against a finished secondary generation.
func (s *Service) Compare(ctx context.Context, primary domain.GeneratedNounData, secondary *noun.Result) domain.CrossAIVerificationResult {
	if secondary == nil {
		return s.failed(ctx, domain.NormalizedLemma{Lemma: primary.Lemma}, fmt.Errorf("verification: no secondary generation"))
	}

	comparisons, agreement := Compare(primary, secondary.Noun)

	model := s.model
	if model == "" {
		model = secondary.Model
	}

	var disagreements []string
	for _, c := range comparisons {
		if !c.Agrees {
			disagreements = append(disagreements, c.FieldPath)
		}
	}

	s.log.InfoContext(ctx, "verification complete",
		slog.String("lemma", primary.Lemma),
		slog.String("secondary_model", model),
		slog.Float64("overall_agreement", agreement),
		slog.Any("disagreements", disagreements),
	)

	gen := secondary.Noun
	return domain.VerificationSucceeded(domain.VerificationOutcome{
		Comparisons:         comparisons,
		OverallAgreement:    agreement,
		SecondaryModel:      model,
		SecondaryGeneration: &gen,
	})
}

func (s *Service) failed(ctx context.Context, l domain.NormalizedLemma, err error) domain.CrossAIVerificationResult {
	s.log.WarnContext(ctx, "verification failed",
		slog.String("lemma", l.Lemma),
		slog.String("secondary_model", s.model),
		slog.String("error", err.Error()),
	)
	return domain.VerificationFailed(err)
}
