package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/mygreek-backend/internal/domain"
)

//go:embed data/el_lexicon.yaml
var embeddedLexicon []byte

// ErrInvalidLexicon is returned when a lexicon file cannot be used.
var ErrInvalidLexicon = errors.New("invalid lexicon")

type lexiconFile struct {
	Language string       `yaml:"language"`
	Version  string       `yaml:"version"`
	Lemmas   []lemmaEntry `yaml:"lemmas"`
}

type lemmaEntry struct {
	Lemma    string            `yaml:"lemma"`
	POS      string            `yaml:"pos"`
	Features map[string]string `yaml:"features"`
	Forms    []formEntry       `yaml:"forms"`
}

type formEntry struct {
	Form     string            `yaml:"form"`
	Features map[string]string `yaml:"features"`
}

// analysis is the indexed reading of one surface form.
type analysis struct {
	lemma    string
	pos      string
	features map[string]string
}

func (a analysis) equal(b analysis) bool {
	return a.lemma == b.lemma && a.pos == b.pos && maps.Equal(a.features, b.features)
}

// index maps NormalizeText(form) to its analysis. Never written after build.
type index map[string]analysis

func readLexicon(path string) ([]byte, error) {
	if path == "" {
		return embeddedLexicon, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return data, nil
}

func parseLexicon(data []byte) (*lexiconFile, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	if len(f.Lemmas) == 0 {
		return nil, fmt.Errorf("%w: no lemmas", ErrInvalidLexicon)
	}
	return &f, nil
}

// buildIndex indexes every form of every lemma. In strict mode a form with
// two different analyses is an error; otherwise the preferred reading wins
// and the number of such conflicts is returned.
func buildIndex(f *lexiconFile, strict bool) (index, int, error) {
	idx := make(index, len(f.Lemmas)*4)
	conflicts := 0

	for i, le := range f.Lemmas {
		lemma := domain.NormalizeText(le.Lemma)
		if lemma == "" || le.POS == "" {
			return nil, 0, fmt.Errorf("%w: lemmas[%d]: lemma and pos are required", ErrInvalidLexicon, i)
		}

		forms := le.Forms
		if !hasForm(forms, lemma) {
			forms = append([]formEntry{{Form: lemma}}, forms...)
		}

		for j, fe := range forms {
			key := domain.NormalizeText(fe.Form)
			if key == "" {
				return nil, 0, fmt.Errorf("%w: lemmas[%d].forms[%d]: empty form", ErrInvalidLexicon, i, j)
			}

			a := analysis{lemma: lemma, pos: le.POS, features: mergeFeatures(le.Features, fe.Features)}
			prev, ok := idx[key]
			switch {
			case !ok:
				idx[key] = a
			case prev.equal(a):
			case strict:
				return nil, 0, fmt.Errorf("%w: form %q has conflicting analyses (%s/%s, %s/%s)",
					ErrInvalidLexicon, key, prev.lemma, prev.pos, a.lemma, a.pos)
			default:
				conflicts++
				if prefer(a, prev, key) {
					idx[key] = a
				}
			}
		}
	}

	return idx, conflicts, nil
}

// prefer reports whether a should replace prev as the reading of key.
// A headword reading beats an inflected one, then nouns beat other parts
// of speech; otherwise the first reading stays.
func prefer(a, prev analysis, key string) bool {
	aHead, prevHead := a.lemma == key, prev.lemma == key
	if aHead != prevHead {
		return aHead
	}
	return a.pos == domain.POSNoun && prev.pos != domain.POSNoun
}

func hasForm(forms []formEntry, lemma string) bool {
	for _, fe := range forms {
		if domain.NormalizeText(fe.Form) == lemma {
			return true
		}
	}
	return false
}

// mergeFeatures returns lemma features overlaid with form features.
func mergeFeatures(base, over map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(over))
	maps.Copy(out, base)
	maps.Copy(out, over)
	return out
}
