package turkmenfst

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks an unknown grammatical code or an illegal
	// suffix order.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedForm marks a stem that lacks the irregular paradigm
	// a requested form needs.
	ErrUnsupportedForm = errors.New("unsupported form")

	// ErrLexiconNotLoaded is returned by operations that need a lexicon
	// before Load has succeeded.
	ErrLexiconNotLoaded = errors.New("lexicon not loaded")
)

// ParamError reports an unrecognized code on one grammatical axis.
type ParamError struct {
	Axis string // "possessive", "case", "tense", "person"
	Code string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s code %q", e.Axis, e.Code)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

func sequenceError(cats []MorphCategory) error {
	return fmt.Errorf("%w: suffix order %v", ErrInvalidParameter, cats)
}
