package lexicon

import (
	"strings"
	"unicode"
)

// isSeparator reports whether r ends a token: whitespace, comma, period, and
// the Greek question mark, ano teleia and numeral signs. NFC maps the Greek
// question mark to ';', ano teleia to U+00B7 and the numeral sign to U+02B9,
// so both spellings are listed.
func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case ',', '.',
		'\u037e', ';',
		'\u0387', '\u00b7',
		'\u0374', '\u02b9',
		'\u0375':
		return true
	}
	return false
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}
