package domain

// FieldComparisonResult is the comparison of one field between two generations.
// Values are nil when the field is null in that generation.
type FieldComparisonResult struct {
	FieldPath      string  `json:"field_path"`
	PrimaryValue   *string `json:"primary_value"`
	SecondaryValue *string `json:"secondary_value"`
	Agrees         bool    `json:"agrees"`
	Weight         float64 `json:"weight"`
}

// VerificationOutcome is the payload of a completed cross-model verification.
type VerificationOutcome struct {
	Comparisons         []FieldComparisonResult `json:"comparisons"`
	OverallAgreement    float64                 `json:"overall_agreement"`
	SecondaryModel      string                  `json:"secondary_model"`
	SecondaryGeneration *GeneratedNounData      `json:"secondary_generation"`
}

// CrossAIVerificationResult is either a completed verification or an error,
// never both. The outcome fields are flattened in JSON when present.
type CrossAIVerificationResult struct {
	*VerificationOutcome
	Error string `json:"error,omitempty"`
}

// VerificationSucceeded wraps a completed outcome.
func VerificationSucceeded(outcome VerificationOutcome) CrossAIVerificationResult {
	return CrossAIVerificationResult{VerificationOutcome: &outcome}
}

// VerificationFailed builds the error variant.
func VerificationFailed(err error) CrossAIVerificationResult {
	msg := "verification failed"
	if err != nil {
		msg = err.Error()
	}
	return CrossAIVerificationResult{Error: msg}
}

// Failed reports whether verification could not be completed.
func (r CrossAIVerificationResult) Failed() bool {
	return r.VerificationOutcome == nil
}
