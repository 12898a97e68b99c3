package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Text fragments used by the line and label forms of an entry
const (
	FieldSeparator = ","
	LabelSeparator = " / "
	EntryIDPrefix  = "entry_"
)

// Entry is one (language, word, meaning) vocabulary record.
//
// ID identifies the entry in memory only; it is never written to a file and
// takes no part in ordering or equality of records.
type Entry struct {
	ID       string
	Language string
	Word     string
	Meaning  string
}

// NewEntry creates an entry with a fresh in-memory ID
func NewEntry(language, word, meaning string) Entry {
	return Entry{
		ID:       generateEntryID(),
		Language: language,
		Word:     word,
		Meaning:  meaning,
	}
}

// Label returns the list summary, e.g. "EN / cat"
func (e Entry) Label() string {
	return e.Language + LabelSeparator + e.Word
}

// Line returns the entry in file form: language,word,meaning
func (e Entry) Line() string {
	return e.Language + FieldSeparator + e.Word + FieldSeparator + e.Meaning
}

// Compare orders entries by language, then by word, using byte-wise string comparison
func (e Entry) Compare(other Entry) int {
	if c := strings.Compare(e.Language, other.Language); c != 0 {
		return c
	}
	return strings.Compare(e.Word, other.Word)
}

// SameRecord reports whether both entries hold the same three fields
func (e Entry) SameRecord(other Entry) bool {
	return e.Language == other.Language && e.Word == other.Word && e.Meaning == other.Meaning
}

// HasWord reports whether the entry's word equals word, ignoring case
func (e Entry) HasWord(word string) bool {
	return strings.EqualFold(e.Word, word)
}

// generateEntryID uses UUID v7 so IDs sort by creation time
func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(EntryIDPrefix+"%d", time.Now().UnixNano())
	}
	return EntryIDPrefix + id.String()
}
