// Package lexicon implements a lexicon-backed morphological analyzer for Modern Greek.
package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/mygreek-backend/internal/adapter/wiktextract"
	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

// Analyzer looks up surface forms in an in-memory lexicon.
// It is safe for concurrent use.
type Analyzer struct {
	log      *slog.Logger
	index    index
	language string
	version  string
}

// New loads the YAML lexicon at path, or the embedded lexicon when path is
// empty. The embedded lexicon is a small bootstrap set; production setups
// load a Wiktextract dump with NewFromWiktextract.
// Any load or validation failure is returned; the analyzer is never half-built.
func New(logger *slog.Logger, path string) (*Analyzer, error) {
	data, err := readLexicon(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	return NewFromBytes(logger, data)
}

// NewFromBytes builds an analyzer from YAML lexicon content.
func NewFromBytes(logger *slog.Logger, data []byte) (*Analyzer, error) {
	f, err := parseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}

	idx, _, err := buildIndex(f, true)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}

	return newAnalyzer(logger, f, idx, 0), nil
}

// NewFromWiktextract builds an analyzer from parsed Wiktextract dump entries.
// Homographs are resolved instead of rejected: a headword reading wins over
// an inflected one, then nouns win over other parts of speech.
func NewFromWiktextract(logger *slog.Logger, entries []wiktextract.Entry, version string) (*Analyzer, error) {
	f := fromWiktextract(entries, version)
	if len(f.Lemmas) == 0 {
		return nil, fmt.Errorf("lexicon: %w: no usable entries in dump", ErrInvalidLexicon)
	}

	idx, conflicts, err := buildIndex(f, false)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}

	return newAnalyzer(logger, f, idx, conflicts), nil
}

func newAnalyzer(logger *slog.Logger, f *lexiconFile, idx index, conflicts int) *Analyzer {
	a := &Analyzer{
		log:      logger.With("adapter", "lexicon"),
		index:    idx,
		language: f.Language,
		version:  f.Version,
	}

	a.log.Info("lexicon loaded",
		slog.String("language", f.Language),
		slog.String("version", f.Version),
		slog.Int("lemmas", len(f.Lemmas)),
		slog.Int("forms", len(idx)),
		slog.Int("conflicts", conflicts),
	)

	return a
}

// Size returns the number of indexed surface forms.
func (a *Analyzer) Size() int { return len(a.index) }

// Version returns the lexicon version string.
func (a *Analyzer) Version() string { return a.version }

// Analyze returns the morphological analysis of the first token of word.
//
// Empty or non-Greek input yields AnalysisSuccessful=false. Tokens missing
// from the lexicon are analyzed as themselves with POS "X" and no features.
// IsKnown is true when the lemma differs from the normalized token, so a
// nominative singular noun reports false even when it is in the lexicon.
func (a *Analyzer) Analyze(ctx context.Context, word string) domain.MorphologyResult {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return domain.FailedAnalysis(word)
	}
	if !domain.IsGreekText(trimmed) {
		a.log.DebugContext(ctx, "non-greek input", slog.String("word", word))
		return domain.FailedAnalysis(word)
	}

	tokens := tokenize(norm.NFC.String(trimmed))
	if len(tokens) == 0 {
		return domain.FailedAnalysis(word)
	}
	if len(tokens) > 1 {
		a.log.WarnContext(ctx, "multiple tokens, analyzing the first",
			slog.String("word", word),
			slog.Int("tokens", len(tokens)),
		)
	}

	surface := tokens[0]
	key := domain.NormalizeText(surface)

	res := domain.MorphologyResult{
		InputWord:          word,
		Lemma:              key,
		POS:                domain.POSOther,
		MorphFeatures:      map[string]string{},
		AnalysisSuccessful: true,
	}

	if entry, ok := a.index[key]; ok {
		res.Lemma = entry.lemma
		res.POS = entry.pos
		res.MorphFeatures = maps.Clone(entry.features)
	} else {
		a.log.DebugContext(ctx, "form not in lexicon", slog.String("form", key))
	}

	res.IsKnown = res.Lemma != key

	return res
}
