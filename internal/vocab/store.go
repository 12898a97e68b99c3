package vocab

import (
	"slices"

	"github.com/ytget/langlearn/internal/model"
)

// Store keeps entries sorted by language, then word, with at most one entry
// per word (case-insensitive) when mutated through Add and Reload.
type Store struct {
	entries []model.Entry
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{entries: make([]model.Entry, 0)}
}

// Clear removes every entry
func (s *Store) Clear() {
	s.entries = s.entries[:0]
}

// Add inserts entry unless an entry with the same word already exists.
// It reports whether the entry was inserted.
func (s *Store) Add(entry model.Entry) bool {
	if s.ContainsWord(entry.Word) {
		return false
	}
	s.entries = append(s.entries, entry)
	s.Sort()
	return true
}

// Update replaces the entry at index and re-sorts. The replacement keeps the
// ID of the slot it replaces. Other entries are not checked for the same word.
// An out-of-range index is a no-op and reports false.
func (s *Store) Update(index int, entry model.Entry) bool {
	if index < 0 || index >= len(s.entries) {
		return false
	}
	entry.ID = s.entries[index].ID
	s.entries[index] = entry
	s.Sort()
	return true
}

// Remove deletes the entry at index. An out-of-range index is a no-op.
func (s *Store) Remove(index int) bool {
	if index < 0 || index >= len(s.entries) {
		return false
	}
	s.entries = slices.Delete(s.entries, index, index+1)
	return true
}

// Reload replaces the contents of the store with the entries parsed from
// lines.
//
// Under LoadAbortOnMalformed the first rejected line is returned and the store
// is left as it was. Under LoadSkipMalformed the accepted entries replace the
// store and, if any line was rejected, a *LoadReport is returned.
func (s *Store) Reload(lines []string, policy LoadPolicy) error {
	entries, errs := ParseLines(lines)
	if len(errs) > 0 && policy == LoadAbortOnMalformed {
		return errs[0]
	}

	s.entries = entries
	s.Sort()

	if len(errs) > 0 {
		return &LoadReport{Loaded: len(entries), Rejected: errs}
	}
	return nil
}

// Lines returns the entries in order, one language,word,meaning line each
func (s *Store) Lines() []string {
	lines := make([]string, len(s.entries))
	for i, entry := range s.entries {
		lines[i] = entry.Line()
	}
	return lines
}

// Labels returns the "LANGUAGE / word" summaries in order
func (s *Store) Labels() []string {
	labels := make([]string, len(s.entries))
	for i, entry := range s.entries {
		labels[i] = entry.Label()
	}
	return labels
}

// Sort orders entries by language, then word. Mutating operations call it
// already.
func (s *Store) Sort() {
	slices.SortStableFunc(s.entries, func(a, b model.Entry) int {
		return a.Compare(b)
	})
}

// ContainsWord reports whether any entry has word, ignoring case
func (s *Store) ContainsWord(word string) bool {
	return s.IndexOfWord(word) >= 0
}

// IndexOfWord returns the position of the entry with word (ignoring case), or -1
func (s *Store) IndexOfWord(word string) int {
	return slices.IndexFunc(s.entries, func(e model.Entry) bool {
		return e.HasWord(word)
	})
}

// IndexOf returns the position of the entry with the given ID, or -1
func (s *Store) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.entries, func(e model.Entry) bool {
		return e.ID == id
	})
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at index
func (s *Store) At(index int) (model.Entry, bool) {
	if index < 0 || index >= len(s.entries) {
		return model.Entry{}, false
	}
	return s.entries[index], true
}

// Entries returns a copy of the entries in order
func (s *Store) Entries() []model.Entry {
	return slices.Clone(s.entries)
}
