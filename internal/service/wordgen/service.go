// Package wordgen runs the full pipeline for one user word: normalization,
// noun generation and optional cross-model verification.
package wordgen

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mygreek-backend/internal/domain"
	"github.com/heartmarshall/mygreek-backend/internal/service/noun"
	"github.com/heartmarshall/mygreek-backend/pkg/ctxutil"
)

type lemmaNormalizer interface {
	Normalize(ctx context.Context, word string) (domain.NormalizedLemma, error)
}

type nounGenerator interface {
	Generate(ctx context.Context, l domain.NormalizedLemma) (*noun.Result, error)
}

type crossVerifier interface {
	Verify(ctx context.Context, primary domain.GeneratedNounData, l domain.NormalizedLemma) domain.CrossAIVerificationResult
	Secondary(ctx context.Context, l domain.NormalizedLemma) (*noun.Result, error)
	Compare(ctx context.Context, primary domain.GeneratedNounData, secondary *noun.Result) domain.CrossAIVerificationResult
}

// Options controls verification.
type Options struct {
	Verify bool
	// Parallel runs the secondary generation concurrently with the primary one.
	Parallel bool
}

// Result is the pipeline output for one word.
type Result struct {
	RequestID            string                            `json:"request_id"`
	Lemma                domain.NormalizedLemma            `json:"lemma"`
	Noun                 domain.GeneratedNounData          `json:"noun"`
	Model                string                            `json:"model"`
	DeclensionCorrection *noun.DeclensionCorrection        `json:"declension_correction,omitempty"`
	Verification         *domain.CrossAIVerificationResult `json:"verification,omitempty"`
}

// Service wires the pipeline stages.
type Service struct {
	log      *slog.Logger
	lemmas   lemmaNormalizer
	nouns    nounGenerator
	verifier crossVerifier
	opts     Options
}

// NewService creates the pipeline. verifier may be nil, which disables verification.
func NewService(logger *slog.Logger, lemmas lemmaNormalizer, nouns nounGenerator, verifier crossVerifier, opts Options) *Service {
	return &Service{
		log:      logger.With("service", "wordgen"),
		lemmas:   lemmas,
		nouns:    nouns,
		verifier: verifier,
		opts:     opts,
	}
}

// Generate runs the pipeline with the service's default options.
func (s *Service) Generate(ctx context.Context, word string) (*Result, error) {
	return s.GenerateWithOptions(ctx, word, s.opts)
}

// GenerateWithOptions runs the pipeline for word. A word that cannot be
// normalized is a validation error and no model is called. Verification
// problems are reported in Result.Verification and never fail the call.
func (s *Service) GenerateWithOptions(ctx context.Context, word string, opts Options) (*Result, error) {
	ctx, requestID := ctxutil.EnsureRequestID(ctx)
	ctx = ctxutil.WithWord(ctx, word)

	l, err := s.lemmas.Normalize(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("wordgen: normalize: %w", err)
	}
	if l.Confidence == 0 {
		s.log.InfoContext(ctx, "word rejected",
			slog.String("request_id", requestID),
			slog.String("word", word),
		)
		return nil, domain.NewValidationError("word", "not a recognizable Greek word")
	}

	verify := opts.Verify && s.verifier != nil

	var (
		primary      *noun.Result
		verification *domain.CrossAIVerificationResult
	)
	switch {
	case verify && opts.Parallel:
		primary, verification, err = s.generateParallel(ctx, l)
	default:
		primary, err = s.nouns.Generate(ctx, l)
		if err == nil && verify {
			v := s.verifier.Verify(ctx, primary.Noun, l)
			verification = &v
		}
	}
	if err != nil {
		return nil, fmt.Errorf("wordgen: %w", err)
	}

	attrs := []any{
		slog.String("request_id", requestID),
		slog.String("word", word),
		slog.String("lemma", primary.Noun.Lemma),
		slog.String("declension_group", primary.Noun.GrammarData.DeclensionGroup.String()),
		slog.Float64("confidence", l.Confidence),
	}
	if verification != nil && !verification.Failed() {
		attrs = append(attrs, slog.Float64("overall_agreement", verification.OverallAgreement))
	}
	s.log.InfoContext(ctx, "word generated", attrs...)

	return &Result{
		RequestID:            requestID,
		Lemma:                l,
		Noun:                 primary.Noun,
		Model:                primary.Model,
		DeclensionCorrection: primary.Correction,
		Verification:         verification,
	}, nil
}

// generateParallel runs the primary and secondary generations together.
// A primary failure cancels the secondary; a secondary failure only marks
// the verification as failed.
func (s *Service) generateParallel(ctx context.Context, l domain.NormalizedLemma) (*noun.Result, *domain.CrossAIVerificationResult, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		primary, secondary *noun.Result
		secondaryErr       error
	)

	g.Go(func() error {
		res, err := s.nouns.Generate(gctx, l)
		if err != nil {
			return err
		}
		primary = res
		return nil
	})
	g.Go(func() error {
		secondary, secondaryErr = s.verifier.Secondary(gctx, l)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var v domain.CrossAIVerificationResult
	if secondaryErr != nil {
		s.log.WarnContext(ctx, "secondary generation failed",
			slog.String("lemma", l.Lemma),
			slog.String("error", secondaryErr.Error()),
		)
		v = domain.VerificationFailed(secondaryErr)
	} else {
		v = s.verifier.Compare(ctx, primary.Noun, secondary)
	}

	return primary, &v, nil
}
