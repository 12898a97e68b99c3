package editor

import (
	"strings"

	"github.com/ytget/langlearn/internal/model"
	"github.com/ytget/langlearn/internal/vocab"
)

// NoSelection is the selected index while the form is in add mode
const NoSelection = -1

// Form is the record editor state. The text fields are written directly by
// the presentation layer.
type Form struct {
	Language string
	Word     string
	Meaning  string

	mode     model.SubmitMode
	selected int
}

// NewForm creates an empty form in add mode
func NewForm() *Form {
	return &Form{mode: model.SubmitAdd, selected: NoSelection}
}

// Mode returns the current submit mode
func (f *Form) Mode() model.SubmitMode {
	return f.mode
}

// Selected returns the index of the entry being edited, or NoSelection
func (f *Form) Selected() int {
	return f.selected
}

// Select loads entry into the fields and switches to update mode
func (f *Form) Select(index int, entry model.Entry) {
	f.Language = entry.Language
	f.Word = entry.Word
	f.Meaning = entry.Meaning
	f.selected = index
	f.mode = model.ModeForSelection(index >= 0)
}

// Deselect switches back to add mode and keeps whatever the fields contain
func (f *Form) Deselect() {
	f.selected = NoSelection
	f.mode = model.SubmitAdd
}

// Reset clears the fields and switches back to add mode
func (f *Form) Reset() {
	f.Language = ""
	f.Word = ""
	f.Meaning = ""
	f.Deselect()
}

// Normalize returns the trimmed fields with the language upper-cased and the
// word lower-cased
func (f *Form) Normalize() (language, word, meaning string) {
	language = strings.ToUpper(strings.TrimSpace(f.Language))
	word = strings.ToLower(strings.TrimSpace(f.Word))
	meaning = strings.TrimSpace(f.Meaning)
	return language, word, meaning
}

// Validate checks the normalized fields
func (f *Form) Validate() error {
	language, word, meaning := f.Normalize()
	return validate(language, word, meaning)
}

func validate(language, word, meaning string) error {
	verr := &ValidationError{}
	fields := []struct {
		name  string
		value string
	}{
		{FieldLanguage, language},
		{FieldWord, word},
		{FieldMeaning, meaning},
	}

	for _, field := range fields {
		if field.value == "" {
			verr.Empty = append(verr.Empty, field.name)
			continue
		}
		if strings.Contains(field.value, model.FieldSeparator) {
			verr.WithSeparator = append(verr.WithSeparator, field.name)
		}
	}

	if len(verr.Empty) > 0 || len(verr.WithSeparator) > 0 {
		return verr
	}
	return nil
}

// Submit adds or updates an entry in store according to the submit mode and
// returns the entry as stored. On success the form is reset.
//
// A rejected add, or an update that would give the entry the word of another
// entry, returns *vocab.DuplicateWordError and leaves store and form untouched.
func (f *Form) Submit(store *vocab.Store) (model.Entry, error) {
	language, word, meaning := f.Normalize()
	if err := validate(language, word, meaning); err != nil {
		return model.Entry{}, err
	}

	entry := model.NewEntry(language, word, meaning)

	switch f.mode {
	case model.SubmitUpdate:
		current, ok := store.At(f.selected)
		if !ok {
			// the selection went stale, e.g. after a reload
			f.Deselect()
			return f.Submit(store)
		}
		if other := store.IndexOfWord(word); other >= 0 && other != f.selected {
			return model.Entry{}, &vocab.DuplicateWordError{Word: word}
		}
		store.Update(f.selected, entry)
		entry.ID = current.ID
	default:
		if !store.Add(entry) {
			return model.Entry{}, &vocab.DuplicateWordError{Word: word}
		}
	}

	f.Reset()
	return entry, nil
}
