package noun

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON       = errors.New("invalid json")
	ErrSchemaMismatch    = errors.New("schema mismatch")
	ErrWrongPartOfSpeech = errors.New("wrong part of speech")
)

// GenerationError is returned when model output cannot be used.
// Raw holds the model's text as received.
type GenerationError struct {
	Lemma string
	Model string
	Raw   string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("noun: generate %q with %s: %v", e.Lemma, e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
