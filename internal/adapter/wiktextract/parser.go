package wiktextract

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// maxLineSize is the buffer size for bufio.Scanner (16 MB).
const maxLineSize = 16 << 20

// tagFormOf marks inflected-form senses; it carries no grammar.
const tagFormOf = "form-of"

// skipFormTags marks forms that are not inflected word forms.
var skipFormTags = []string{"romanization", "table-tags", "inflection-template", "class", "transliteration"}

// headGender maps the gender argument of head templates (e.g. {{el-noun|n}}) to tags.
var headGender = map[string]string{
	"m": "masculine",
	"f": "feminine",
	"n": "neuter",
}

// genderTags are the tags lifted from canonical forms and head templates.
var genderTags = []string{"masculine", "feminine", "neuter"}

// ParseFile opens path and parses it with Parse.
func ParseFile(path, langCode string) ([]Entry, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("wiktextract: open file: %w", err)
	}
	defer f.Close()

	return Parse(f, langCode)
}

// Parse streams a JSONL dump and returns the entries of one language, in
// file order. Malformed lines are counted and skipped.
func Parse(r io.Reader, langCode string) ([]Entry, Stats, error) {
	var (
		entries []Entry
		stats   Stats
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		stats.TotalLines++

		var ke kaikkiEntry
		if err := json.Unmarshal(line, &ke); err != nil {
			stats.MalformedLines++
			continue
		}
		if ke.LangCode != langCode || strings.TrimSpace(ke.Word) == "" {
			continue
		}
		stats.LanguageLines++

		e := buildEntry(&ke)
		if e.Headword {
			stats.Headwords++
		}
		if len(e.FormOf) > 0 {
			stats.FormOfEntries++
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("wiktextract: scanner error: %w", err)
	}

	return entries, stats, nil
}

func buildEntry(ke *kaikkiEntry) Entry {
	e := Entry{
		Word: strings.TrimSpace(ke.Word),
		POS:  strings.ToLower(ke.POS),
	}
	tags := slices.Clone(ke.Tags)

	for _, ht := range ke.HeadTemplates {
		for _, key := range []string{"g", "1"} {
			g, _, _ := strings.Cut(ht.Args[key], "-")
			if tag, ok := headGender[g]; ok {
				tags = append(tags, tag)
			}
		}
	}

	for _, kf := range ke.Forms {
		form := strings.TrimSpace(kf.Form)
		if form == "" || form == "-" || hasAny(kf.Tags, skipFormTags) {
			continue
		}
		if slices.Contains(kf.Tags, "canonical") {
			for _, t := range kf.Tags {
				if slices.Contains(genderTags, t) {
					tags = append(tags, t)
				}
			}
			continue
		}
		e.Forms = append(e.Forms, Form{Form: form, Tags: kf.Tags})
	}

	if len(ke.Senses) == 0 {
		e.Headword = true
	}
	for _, s := range ke.Senses {
		if len(s.FormOf) == 0 {
			e.Headword = true
			tags = append(tags, s.Tags...)
			continue
		}
		senseTags := slices.DeleteFunc(slices.Clone(s.Tags), func(t string) bool { return t == tagFormOf })
		for _, fo := range s.FormOf {
			if lemma := strings.TrimSpace(fo.Word); lemma != "" {
				e.FormOf = append(e.FormOf, FormOf{Lemma: lemma, Tags: senseTags})
			}
		}
	}

	e.Tags = dedupe(tags)
	return e
}

func hasAny(tags, want []string) bool {
	for _, t := range tags {
		if slices.Contains(want, t) {
			return true
		}
	}
	return false
}

// dedupe removes duplicate strings, keeping first occurrence order.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
