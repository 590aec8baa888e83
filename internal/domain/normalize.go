package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for lookup and comparison:
//   - composes to NFC
//   - trims leading/trailing whitespace
//   - converts to lowercase, with word-final sigma written as ς
//   - compresses runs of whitespace into one space
//
// Accents and diaeresis are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}
	return finalSigma(strings.Join(strings.Fields(strings.ToLower(text)), " "))
}

// finalSigma rewrites σ at the end of a word as ς.
func finalSigma(s string) string {
	if !strings.ContainsRune(s, 'σ') {
		return s
	}
	rs := []rune(s)
	for i, r := range rs {
		if r != 'σ' {
			continue
		}
		if i == len(rs)-1 || !unicode.IsLetter(rs[i+1]) {
			rs[i] = 'ς'
		}
	}
	return string(rs)
}

// greekScript matches text made only of basic Greek (U+0370–U+03FF),
// extended Greek (U+1F00–U+1FFF) and whitespace.
var greekScript = regexp.MustCompile(`^[\x{0370}-\x{03FF}\x{1F00}-\x{1FFF}\s]+$`)

// IsGreekText reports whether s is non-empty and written entirely in Greek script.
// The input is composed to NFC first so decomposed accents are accepted.
func IsGreekText(s string) bool {
	return greekScript.MatchString(norm.NFC.String(s))
}

// definiteArticleForms holds every inflected form of the Modern Greek definite article.
var definiteArticleForms = map[string]struct{}{
	"ο": {}, "η": {}, "το": {},
	"οι": {}, "τα": {},
	"του": {}, "της": {}, "των": {},
	"τον": {}, "την": {}, "τη": {},
	"τις": {}, "τους": {},
}

// IsDefiniteArticle reports whether token is a form of the definite article.
func IsDefiniteArticle(token string) bool {
	_, ok := definiteArticleForms[NormalizeText(token)]
	return ok
}

// StripArticle trims s and removes a leading definite-article token, returning
// the bare form. A lone article is returned unchanged.
func StripArticle(s string) string {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 || !IsDefiniteArticle(s[:i]) {
		return s
	}
	return strings.TrimSpace(s[i:])
}

// StripAccents removes combining marks (tonos, diaeresis, breathings) and lowercases s.
// Used for accent-insensitive suffix matching.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return NormalizeText(out)
}
