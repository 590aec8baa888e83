package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Lexicon.validate(); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}

	if err := c.Spell.validate(); err != nil {
		return fmt.Errorf("spell: %w", err)
	}

	if c.Spell.Source == SpellSourceWordList && c.Spell.WordListFormat == WordListFormatWiktextract &&
		c.Spell.WordListPath == "" && c.Lexicon.Format != LexiconFormatWiktextract {
		return fmt.Errorf("spell.wordlist_format %q requires spell.wordlist_path or a wiktextract lexicon", WordListFormatWiktextract)
	}

	if c.Generation.Verify && c.LLM.SecondaryModel == "" {
		return fmt.Errorf("generation.verify requires llm.secondary_model")
	}

	return nil
}

func (l *LLMConfig) validate() error {
	if l.DefaultModel == "" {
		return fmt.Errorf("default_model is required")
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", l.Temperature)
	}
	if l.MaxAttempts < 1 || l.MaxAttempts > 10 {
		return fmt.Errorf("max_attempts must be in [1, 10] (got %d)", l.MaxAttempts)
	}

	backoff, err := ParseBackoff(l.BackoffRaw)
	if err != nil {
		return fmt.Errorf("backoff: %w", err)
	}
	if l.MaxAttempts > 1 && len(backoff) == 0 {
		return fmt.Errorf("backoff is required when max_attempts > 1")
	}
	l.Backoff = backoff

	return nil
}

func (l *LexiconConfig) validate() error {
	switch l.Format {
	case LexiconFormatYAML, "":
	case LexiconFormatWiktextract:
		if l.Path == "" {
			return fmt.Errorf("path is required for format %q", l.Format)
		}
	default:
		return fmt.Errorf("unknown format %q (want %q or %q)", l.Format, LexiconFormatYAML, LexiconFormatWiktextract)
	}
	return nil
}

func (s *SpellConfig) validate() error {
	switch s.Source {
	case SpellSourceWordList:
		switch s.WordListFormat {
		case WordListFormatText, WordListFormatWiktextract, "":
		default:
			return fmt.Errorf("unknown wordlist_format %q (want %q or %q)", s.WordListFormat, WordListFormatText, WordListFormatWiktextract)
		}
	case SpellSourceHTTP:
		if s.BaseURL == "" {
			return fmt.Errorf("base_url is required for source %q", s.Source)
		}
		if s.Timeout <= 0 {
			return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
		}
	default:
		return fmt.Errorf("unknown source %q (want %q or %q)", s.Source, SpellSourceWordList, SpellSourceHTTP)
	}
	return nil
}

// ParseBackoff parses a comma-separated string of durations (e.g. "1s,2s")
// into a slice of time.Duration. An empty string returns a nil slice.
// Negative durations are rejected.
func ParseBackoff(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("negative duration %q", p)
		}
		steps = append(steps, d)
	}

	return steps, nil
}
