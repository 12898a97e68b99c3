package editor

import (
	"errors"
	"strings"
)

// ErrValidation matches every *ValidationError
var ErrValidation = errors.New("invalid input")

// Field names used in validation errors
const (
	FieldLanguage = "language"
	FieldWord     = "word"
	FieldMeaning  = "meaning"
)

// ValidationError lists the fields that stop a submission
type ValidationError struct {
	Empty         []string
	WithSeparator []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Empty) > 0 {
		parts = append(parts, "empty: "+strings.Join(e.Empty, ", "))
	}
	if len(e.WithSeparator) > 0 {
		parts = append(parts, "contains comma: "+strings.Join(e.WithSeparator, ", "))
	}
	return ErrValidation.Error() + " (" + strings.Join(parts, "; ") + ")"
}

// Is makes errors.Is(err, ErrValidation) work
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// HasEmpty reports whether a field was left blank
func (e *ValidationError) HasEmpty() bool {
	return len(e.Empty) > 0
}
