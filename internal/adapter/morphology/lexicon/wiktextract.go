package lexicon

import (
	"github.com/heartmarshall/mygreek-backend/internal/adapter/wiktextract"
	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

// wiktextractPOS maps Wiktextract parts of speech to universal POS tags.
// Anything else becomes domain.POSOther.
var wiktextractPOS = map[string]string{
	"noun":     domain.POSNoun,
	"name":     "PROPN",
	"verb":     "VERB",
	"adj":      "ADJ",
	"adv":      "ADV",
	"pron":     "PRON",
	"prep":     "ADP",
	"conj":     "CCONJ",
	"det":      "DET",
	"article":  "DET",
	"num":      "NUM",
	"particle": "PART",
	"intj":     "INTJ",
}

// tagFeatures maps Wiktextract grammatical tags to feature name and value.
var tagFeatures = map[string][2]string{
	"masculine":  {"Gender", "Masc"},
	"feminine":   {"Gender", "Fem"},
	"neuter":     {"Gender", "Neut"},
	"nominative": {"Case", "Nom"},
	"genitive":   {"Case", "Gen"},
	"accusative": {"Case", "Acc"},
	"vocative":   {"Case", "Voc"},
	"singular":   {"Number", "Sing"},
	"plural":     {"Number", "Plur"},
}

func mapPOS(pos string) string {
	if p, ok := wiktextractPOS[pos]; ok {
		return p
	}
	return domain.POSOther
}

// tagsToFeatures converts tags to features. A feature that receives two
// different values (e.g. nominative and accusative) is ambiguous and dropped.
func tagsToFeatures(tags []string) map[string]string {
	out := map[string]string{}
	ambiguous := map[string]bool{}
	for _, t := range tags {
		f, ok := tagFeatures[t]
		if !ok {
			continue
		}
		if prev, seen := out[f[0]]; seen && prev != f[1] {
			ambiguous[f[0]] = true
		}
		out[f[0]] = f[1]
	}
	for name := range ambiguous {
		delete(out, name)
	}
	return out
}

// genderOnly keeps the Gender feature of a headword; case and number tags on
// a headword describe the citation form, not the lemma.
func genderOnly(tags []string) map[string]string {
	feats := tagsToFeatures(tags)
	if g, ok := feats["Gender"]; ok {
		return map[string]string{"Gender": g}
	}
	return nil
}

// fromWiktextract groups dump entries into lemmas. Headwords come first in
// dump order; inflected-form entries are attached to their lemma with the
// same part of speech, creating a featureless lemma when the dump has none.
func fromWiktextract(entries []wiktextract.Entry, version string) *lexiconFile {
	f := &lexiconFile{Language: wiktextract.LangGreek, Version: version}
	byLemma := make(map[string]int)

	lemmaAt := func(word, pos string) int {
		key := domain.NormalizeText(word) + "|" + pos
		if i, ok := byLemma[key]; ok {
			return i
		}
		byLemma[key] = len(f.Lemmas)
		f.Lemmas = append(f.Lemmas, lemmaEntry{Lemma: word, POS: pos})
		return byLemma[key]
	}

	for _, e := range entries {
		if !e.Headword || !domain.IsGreekText(e.Word) {
			continue
		}
		i := lemmaAt(e.Word, mapPOS(e.POS))
		le := &f.Lemmas[i]
		if le.Features == nil {
			le.Features = genderOnly(e.Tags)
		}
		for _, form := range e.Forms {
			if !domain.IsGreekText(form.Form) {
				continue
			}
			addForm(le, form.Form, tagsToFeatures(form.Tags))
		}
	}

	for _, e := range entries {
		if !domain.IsGreekText(e.Word) {
			continue
		}
		for _, fo := range e.FormOf {
			if !domain.IsGreekText(fo.Lemma) {
				continue
			}
			i := lemmaAt(fo.Lemma, mapPOS(e.POS))
			addForm(&f.Lemmas[i], e.Word, tagsToFeatures(fo.Tags))
		}
	}

	return f
}

// addForm appends form to le. A form listed again (a syncretic cell such as
// nominative and accusative plural) keeps only the features both listings share.
func addForm(le *lemmaEntry, form string, feats map[string]string) {
	key := domain.NormalizeText(form)
	for i := range le.Forms {
		if domain.NormalizeText(le.Forms[i].Form) != key {
			continue
		}
		for name, v := range le.Forms[i].Features {
			if feats[name] != v {
				delete(le.Forms[i].Features, name)
			}
		}
		return
	}
	le.Forms = append(le.Forms, formEntry{Form: form, Features: feats})
}
