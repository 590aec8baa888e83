package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/heartmarshall/mygreek-backend/internal/adapter/morphology/lexicon"
	"github.com/heartmarshall/mygreek-backend/internal/adapter/provider/completion"
	"github.com/heartmarshall/mygreek-backend/internal/adapter/provider/spellcheck"
	"github.com/heartmarshall/mygreek-backend/internal/adapter/spell/wordlist"
	"github.com/heartmarshall/mygreek-backend/internal/config"
	"github.com/heartmarshall/mygreek-backend/internal/domain"
	"github.com/heartmarshall/mygreek-backend/internal/service/lemma"
	"github.com/heartmarshall/mygreek-backend/internal/service/noun"
	"github.com/heartmarshall/mygreek-backend/internal/service/verification"
	"github.com/heartmarshall/mygreek-backend/internal/service/wordgen"
)

type spellOracle interface {
	Check(ctx context.Context, word string) (domain.SpellcheckResult, error)
}

// App holds the constructed services. All fields are safe for concurrent use.
type App struct {
	Lemmas   *lemma.Service
	Words    *wordgen.Service
	Gateway  *completion.Gateway
	Analyzer *lexicon.Analyzer
}

// New builds the whole object graph from cfg. Data files are loaded eagerly,
// so a broken lexicon or word list fails here rather than on the first word.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	dumps := newDumpLoader(logger)

	analyzer, err := newAnalyzer(cfg.Lexicon, dumps, logger)
	if err != nil {
		return nil, fmt.Errorf("app: morphology: %w", err)
	}

	spell, err := newSpellOracle(cfg, dumps, logger)
	if err != nil {
		return nil, fmt.Errorf("app: spell: %w", err)
	}

	gateway := completion.New(completion.Config{
		APIKey:           cfg.LLM.APIKey,
		BaseURL:          cfg.LLM.BaseURL,
		AnthropicAPIKey:  cfg.LLM.AnthropicAPIKey,
		AnthropicBaseURL: cfg.LLM.AnthropicBaseURL,
		DefaultModel:     cfg.LLM.DefaultModel,
		Timeout:          cfg.LLM.Timeout,
		Temperature:      cfg.LLM.Temperature,
		MaxTokens:        cfg.LLM.MaxTokens,
		Retry: completion.RetryPolicy{
			MaxAttempts: cfg.LLM.MaxAttempts,
			Backoff:     cfg.LLM.Backoff,
		},
	}, logger)
	if !gateway.Configured() {
		logger.Warn("no completion API key configured, generation is disabled")
	}

	lemmas := lemma.NewService(logger, spell, analyzer)
	primary := noun.NewGenerator(logger, gateway, cfg.LLM.DefaultModel)

	var verifier *verification.Service
	if cfg.LLM.SecondaryModel != "" {
		secondary := noun.NewGenerator(logger, gateway, cfg.LLM.SecondaryModel)
		verifier = verification.NewService(logger, secondary, cfg.LLM.SecondaryModel)
	}

	opts := wordgen.Options{
		Verify:   cfg.Generation.Verify,
		Parallel: cfg.Generation.ParallelVerify,
	}
	// A nil *verification.Service must not reach the interface parameter.
	var words *wordgen.Service
	if verifier != nil {
		words = wordgen.NewService(logger, lemmas, primary, verifier, opts)
	} else {
		words = wordgen.NewService(logger, lemmas, primary, nil, opts)
	}

	logger.Info("application ready",
		slog.String("version", BuildVersion()),
		slog.String("lexicon_version", analyzer.Version()),
		slog.Int("lexicon_forms", analyzer.Size()),
		slog.String("spell_source", cfg.Spell.Source),
		slog.String("default_model", cfg.LLM.DefaultModel),
		slog.String("secondary_model", cfg.LLM.SecondaryModel),
	)

	return &App{
		Lemmas:   lemmas,
		Words:    words,
		Gateway:  gateway,
		Analyzer: analyzer,
	}, nil
}

func newAnalyzer(cfg config.LexiconConfig, dumps *dumpLoader, logger *slog.Logger) (*lexicon.Analyzer, error) {
	switch cfg.Format {
	case config.LexiconFormatYAML, "":
		return lexicon.New(logger, cfg.Path)
	case config.LexiconFormatWiktextract:
		entries, err := dumps.load(cfg.Path)
		if err != nil {
			return nil, err
		}
		return lexicon.NewFromWiktextract(logger, entries, filepath.Base(cfg.Path))
	default:
		return nil, fmt.Errorf("unknown lexicon format %q", cfg.Format)
	}
}

func newSpellOracle(cfg *config.Config, dumps *dumpLoader, logger *slog.Logger) (spellOracle, error) {
	switch cfg.Spell.Source {
	case config.SpellSourceHTTP:
		return spellcheck.NewClient(cfg.Spell.BaseURL, cfg.Spell.Timeout, logger), nil
	case config.SpellSourceWordList, "":
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Spell.Source)
	}

	var (
		o   *wordlist.Oracle
		err error
	)
	switch cfg.Spell.WordListFormat {
	case config.WordListFormatText, "":
		o, err = wordlist.New(logger, cfg.Spell.WordListPath)
	case config.WordListFormatWiktextract:
		path := cfg.Spell.WordListPath
		if path == "" && cfg.Lexicon.Format == config.LexiconFormatWiktextract {
			path = cfg.Lexicon.Path
		}
		if path == "" {
			return nil, fmt.Errorf("wiktextract word list needs a dump path")
		}
		entries, loadErr := dumps.load(path)
		if loadErr != nil {
			return nil, loadErr
		}
		o, err = wordlist.NewFromWiktextract(logger, entries)
	default:
		return nil, fmt.Errorf("unknown word list format %q", cfg.Spell.WordListFormat)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}
