package domain

// SpellcheckResult is the answer of a spelling oracle for one word.
type SpellcheckResult struct {
	IsValid bool `json:"is_valid"`
}

// MorphologyResult is the analysis of a single token.
// MorphFeatures keys and values are analyzer-specific (e.g. "Gender": "Neut").
type MorphologyResult struct {
	InputWord          string            `json:"input_word"`
	Lemma              string            `json:"lemma"`
	POS                string            `json:"pos"`
	MorphFeatures      map[string]string `json:"morph_features"`
	IsKnown            bool              `json:"is_known"`
	AnalysisSuccessful bool              `json:"analysis_successful"`
}

// FailedAnalysis returns the result for input that could not be analyzed.
func FailedAnalysis(input string) MorphologyResult {
	return MorphologyResult{
		InputWord:     input,
		MorphFeatures: map[string]string{},
	}
}
