package vocab

import (
	"slices"
	"strings"

	"github.com/ytget/langlearn/internal/model"
)

// FieldsPerRecord is the number of comma-separated fields in one line
const FieldsPerRecord = 3

// ParseLine turns one line of a .lang file into an entry. lineNo is only used
// for error reporting.
func ParseLine(lineNo int, text string) (model.Entry, error) {
	line := strings.TrimSuffix(text, "\r")
	fields := strings.Split(line, model.FieldSeparator)
	if len(fields) != FieldsPerRecord {
		return model.Entry{}, &MalformedRecordError{
			Line:   lineNo,
			Text:   text,
			Fields: len(fields),
			Reason: "expected 3 comma-separated fields",
		}
	}

	for _, field := range fields {
		if field == "" {
			return model.Entry{}, &MalformedRecordError{
				Line:   lineNo,
				Text:   text,
				Fields: len(fields),
				Reason: "empty field",
			}
		}
	}

	return model.NewEntry(fields[0], fields[1], fields[2]), nil
}

// ParseLines parses every non-blank line. Entries come back in file order and
// unsorted; the errors are *MalformedRecordError or *DuplicateWordError, one
// per rejected line, in file order.
func ParseLines(lines []string) ([]model.Entry, []error) {
	entries := make([]model.Entry, 0, len(lines))
	var errs []error

	for i, text := range lines {
		lineNo := i + 1
		if strings.TrimSpace(text) == "" {
			continue
		}

		entry, err := ParseLine(lineNo, text)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		// same word rule as Store.ContainsWord
		if slices.ContainsFunc(entries, func(e model.Entry) bool { return e.HasWord(entry.Word) }) {
			errs = append(errs, &DuplicateWordError{Word: entry.Word, Line: lineNo})
			continue
		}
		entries = append(entries, entry)
	}

	return entries, errs
}
