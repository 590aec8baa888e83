// Package prompt holds the instructions sent to language models when
// generating Greek noun entries. Generation and verification share them so
// both models answer the same question.
package prompt

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

// Schema is the JSON shape every answer must follow.
const Schema = `{
  "lemma": "<nominative singular without article>",
  "part_of_speech": "noun",
  "translation_en": "<English translation, singular>",
  "translation_en_plural": "<English plural, or null if uncountable>",
  "translation_ru": "<Russian translation>",
  "pronunciation": "<IPA in square brackets>",
  "grammar_data": {
    "gender": "<masculine|feminine|neuter>",
    "declension_group": "<gender>_<ending>, e.g. masculine_os, feminine_a, neuter_ma",
    "cases": {
      "singular": {
        "nominative": "<article + form>",
        "genitive": "<article + form>",
        "accusative": "<article + form>",
        "vocative": "<form, no article>"
      },
      "plural": {
        "nominative": "<article + form>",
        "genitive": "<article + form>",
        "accusative": "<article + form>",
        "vocative": "<form, no article>"
      }
    }
  },
  "examples": [
    {"id": 1, "greek": "<sentence>", "english": "<translation>", "russian": "<translation>"},
    {"id": 2, "greek": "<sentence>", "english": "<translation>", "russian": "<translation>"}
  ]
}`

const exampleMasculine = `{
  "lemma": "άνθρωπος",
  "part_of_speech": "noun",
  "translation_en": "person",
  "translation_en_plural": "people",
  "translation_ru": "человек",
  "pronunciation": "[ˈanθropos]",
  "grammar_data": {
    "gender": "masculine",
    "declension_group": "masculine_os",
    "cases": {
      "singular": {"nominative": "ο άνθρωπος", "genitive": "του ανθρώπου", "accusative": "τον άνθρωπο", "vocative": "άνθρωπε"},
      "plural": {"nominative": "οι άνθρωποι", "genitive": "των ανθρώπων", "accusative": "τους ανθρώπους", "vocative": "άνθρωποι"}
    }
  },
  "examples": [
    {"id": 1, "greek": "Ο άνθρωπος περπατάει στον δρόμο.", "english": "The man is walking on the street.", "russian": "Человек идёт по улице."},
    {"id": 2, "greek": "Πολλοί άνθρωποι ήρθαν στη γιορτή.", "english": "Many people came to the party.", "russian": "Много людей пришло на праздник."}
  ]
}`

const exampleNeuter = `{
  "lemma": "πρόβλημα",
  "part_of_speech": "noun",
  "translation_en": "problem",
  "translation_en_plural": "problems",
  "translation_ru": "проблема",
  "pronunciation": "[ˈprovlima]",
  "grammar_data": {
    "gender": "neuter",
    "declension_group": "neuter_ma",
    "cases": {
      "singular": {"nominative": "το πρόβλημα", "genitive": "του προβλήματος", "accusative": "το πρόβλημα", "vocative": "πρόβλημα"},
      "plural": {"nominative": "τα προβλήματα", "genitive": "των προβλημάτων", "accusative": "τα προβλήματα", "vocative": "προβλήματα"}
    }
  },
  "examples": [
    {"id": 1, "greek": "Δεν υπάρχει κανένα πρόβλημα.", "english": "There is no problem at all.", "russian": "Нет никакой проблемы."},
    {"id": 2, "greek": "Λύσαμε όλα τα προβλήματα.", "english": "We solved all the problems.", "russian": "Мы решили все проблемы."}
  ]
}`

// System is the fixed system prompt.
var System = `You are an expert lexicographer of Modern Greek writing entries for a vocabulary app used by English and Russian speakers.

Rules:
- Answer with a single JSON object matching the schema you are given. No markdown, no commentary.
- "lemma" is the nominative singular without article, in monotonic orthography with correct accents.
- "part_of_speech" is always "noun". Use the gender you are given unless it is clearly wrong.
- Every case form except the vocative starts with its definite article (ο, η, το, του, της, τον, την, οι, τα, των, τους, τις).
- Vocative forms have no article.
- "declension_group" is "<gender>_<ending>" where ending is the transliterated nominative singular suffix (os, as, is, a, i, ma, o, ...).
- "translation_en_plural" is null when the noun has no natural English plural.
- "pronunciation" is IPA in square brackets with the stress mark.
- Give exactly 2 short everyday example sentences with ids 1 and 2.

Example for "άνθρωπος" (masculine):
` + exampleMasculine + `

Example for "πρόβλημα" (neuter):
` + exampleNeuter

// BuildUser renders the user prompt for one normalized lemma.
func BuildUser(l domain.NormalizedLemma) string {
	gender, article := "unknown", "unknown"
	if l.Gender != nil {
		gender = l.Gender.String()
	}
	if l.Article != nil {
		article = *l.Article
	}
	pos := l.POS
	if pos == "" {
		pos = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a vocabulary entry for the Greek noun %q.\n\n", l.Lemma)
	b.WriteString("Morphological analysis:\n")
	fmt.Fprintf(&b, "- lemma: %s\n", l.Lemma)
	fmt.Fprintf(&b, "- gender: %s\n", gender)
	fmt.Fprintf(&b, "- article: %s\n", article)
	fmt.Fprintf(&b, "- part of speech: %s\n", pos)
	fmt.Fprintf(&b, "- confidence: %.2f\n\n", l.Confidence)
	b.WriteString("Output ONLY a valid JSON object matching this exact schema:\n")
	b.WriteString(Schema)

	return b.String()
}
