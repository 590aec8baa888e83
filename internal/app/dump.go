package app

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/heartmarshall/mygreek-backend/internal/adapter/wiktextract"
)

// dumpLoader parses each Wiktextract dump at most once, so a lexicon and a
// word list built from the same file share one pass over it.
type dumpLoader struct {
	log    *slog.Logger
	parsed map[string][]wiktextract.Entry
}

func newDumpLoader(logger *slog.Logger) *dumpLoader {
	return &dumpLoader{
		log:    logger.With("adapter", "wiktextract"),
		parsed: make(map[string][]wiktextract.Entry),
	}
}

func (d *dumpLoader) load(path string) ([]wiktextract.Entry, error) {
	path = filepath.Clean(path)
	if entries, ok := d.parsed[path]; ok {
		return entries, nil
	}

	entries, stats, err := wiktextract.ParseFile(path, wiktextract.LangGreek)
	if err != nil {
		return nil, fmt.Errorf("parse dump: %w", err)
	}

	d.log.Info("dump parsed",
		slog.String("path", path),
		slog.Int("total_lines", stats.TotalLines),
		slog.Int("malformed_lines", stats.MalformedLines),
		slog.Int("language_lines", stats.LanguageLines),
		slog.Int("headwords", stats.Headwords),
		slog.Int("form_of", stats.FormOfEntries),
	)

	d.parsed[path] = entries
	return entries, nil
}
