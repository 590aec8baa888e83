// Package wiktextract reads Kaikki/Wiktextract JSONL dictionary dumps.
// Pure function: reader in, entries out. It knows nothing about how the
// entries are indexed.
package wiktextract

// LangGreek is the Wiktextract language code of Modern Greek.
const LangGreek = "el"

// Entry is one dump line reduced to what morphology and spelling need.
type Entry struct {
	Word string
	// POS is the raw Wiktextract part of speech, e.g. "noun", "verb", "name".
	POS string
	// Tags holds grammatical tags of the headword (gender, etc.) gathered from
	// the entry, its canonical form, its head template and its lemma senses.
	Tags []string
	// Forms is the inflection table. Romanizations and table markers are dropped.
	Forms []Form
	// FormOf lists the lemmas this word is an inflected form of.
	FormOf []FormOf
	// Headword is true when at least one sense defines the word itself
	// rather than pointing to another lemma.
	Headword bool
}

// Form is one inflected form with its tags, e.g. "σπιτιού" [genitive singular].
type Form struct {
	Form string
	Tags []string
}

// FormOf links an inflected-form entry to its lemma.
type FormOf struct {
	Lemma string
	Tags  []string
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines     int
	MalformedLines int
	LanguageLines  int
	Headwords      int
	FormOfEntries  int
}

// kaikkiEntry mirrors the Kaikki JSONL structure (only fields we need).
type kaikkiEntry struct {
	Word          string           `json:"word"`
	POS           string           `json:"pos"`
	Lang          string           `json:"lang"`
	LangCode      string           `json:"lang_code"`
	Tags          []string         `json:"tags"`
	Forms         []kaikkiForm     `json:"forms"`
	HeadTemplates []kaikkiTemplate `json:"head_templates"`
	Senses        []kaikkiSense    `json:"senses"`
}

type kaikkiForm struct {
	Form string   `json:"form"`
	Tags []string `json:"tags"`
}

type kaikkiTemplate struct {
	Name string            `json:"name"`
	Args map[string]string `json:"args"`
}

type kaikkiSense struct {
	Tags   []string       `json:"tags"`
	FormOf []kaikkiFormOf `json:"form_of"`
}

type kaikkiFormOf struct {
	Word string `json:"word"`
}
