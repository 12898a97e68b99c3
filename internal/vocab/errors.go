package vocab

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedRecord matches every *MalformedRecordError
	ErrMalformedRecord = errors.New("malformed record")

	// ErrDuplicateWord matches every *DuplicateWordError
	ErrDuplicateWord = errors.New("word already exists")
)

// MalformedRecordError describes a line that could not become an entry
type MalformedRecordError struct {
	Line   int // 1-based line number, 0 if unknown
	Text   string
	Fields int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, ErrMalformedRecord, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedRecord, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedRecord) work
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// DuplicateWordError reports a word that is already present in the store
type DuplicateWordError struct {
	Word string
	Line int // set when the duplicate came from a loaded file
}

func (e *DuplicateWordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, ErrDuplicateWord, e.Word)
	}
	return fmt.Sprintf("%s: %q", ErrDuplicateWord, e.Word)
}

// Is makes errors.Is(err, ErrDuplicateWord) work
func (e *DuplicateWordError) Is(target error) bool {
	return target == ErrDuplicateWord
}

// LoadReport is returned by Reload under LoadSkipMalformed when some lines
// were rejected. The store holds the accepted entries.
type LoadReport struct {
	Loaded   int
	Rejected []error
}

func (r *LoadReport) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "loaded %d entries, rejected %d lines", r.Loaded, len(r.Rejected))
	for _, err := range r.Rejected {
		b.WriteString("\n")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the rejected line errors to errors.Is and errors.As
func (r *LoadReport) Unwrap() []error {
	return r.Rejected
}
