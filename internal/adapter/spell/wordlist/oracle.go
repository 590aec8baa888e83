// Package wordlist implements a spelling oracle backed by a list of valid word forms.
package wordlist

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/mygreek-backend/internal/adapter/wiktextract"
	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

//go:embed data/el_words.txt
var embeddedWords []byte

// ErrEmptyWordList is returned when a word list contains no words.
var ErrEmptyWordList = errors.New("word list is empty")

// Oracle answers spelling checks from an in-memory set of word forms.
// The set is read-only after construction.
type Oracle struct {
	log   *slog.Logger
	words map[string]struct{}
}

// New loads the word list at path, or the embedded list when path is empty.
// The embedded list only covers a bootstrap vocabulary; point path at a full
// list or use NewFromWiktextract for real coverage.
func New(logger *slog.Logger, path string) (*Oracle, error) {
	if path == "" {
		return NewFromReader(logger, bytes.NewReader(embeddedWords))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	return NewFromReader(logger, f)
}

// NewFromReader reads one word per line. Blank lines and lines starting
// with # are skipped.
func NewFromReader(logger *slog.Logger, r io.Reader) (*Oracle, error) {
	words := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[domain.NormalizeText(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}
	return newOracle(logger, words)
}

// NewFromWiktextract collects every Greek headword and inflected form of
// parsed dump entries.
func NewFromWiktextract(logger *slog.Logger, entries []wiktextract.Entry) (*Oracle, error) {
	words := make(map[string]struct{})
	add := func(w string) {
		if domain.IsGreekText(w) {
			words[domain.NormalizeText(w)] = struct{}{}
		}
	}

	for _, e := range entries {
		add(e.Word)
		for _, f := range e.Forms {
			add(f.Form)
		}
	}

	return newOracle(logger, words)
}

func newOracle(logger *slog.Logger, words map[string]struct{}) (*Oracle, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("wordlist: %w", ErrEmptyWordList)
	}

	o := &Oracle{
		log:   logger.With("adapter", "wordlist"),
		words: words,
	}
	o.log.Info("word list loaded", slog.Int("words", len(words)))

	return o, nil
}

// Size returns the number of distinct words.
func (o *Oracle) Size() int { return len(o.words) }

// Check reports whether word is a known form. Lookup ignores case and
// Unicode composition but not accents.
func (o *Oracle) Check(ctx context.Context, word string) (domain.SpellcheckResult, error) {
	key := domain.NormalizeText(word)
	if key == "" {
		return domain.SpellcheckResult{}, nil
	}

	_, ok := o.words[key]
	o.log.DebugContext(ctx, "spellcheck", slog.String("word", key), slog.Bool("valid", ok))

	return domain.SpellcheckResult{IsValid: ok}, nil
}
