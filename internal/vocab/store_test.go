package vocab

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/langlearn/internal/model"
)

func records(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Line()
	}
	return out
}

func assertSorted(t *testing.T, s *Store) {
	t.Helper()
	entries := s.Entries()
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Compare(entries[i]), 0,
			"entries %d and %d out of order: %s, %s", i-1, i, entries[i-1].Label(), entries[i].Label())
	}
}

func TestNewStore(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Lines())
}

func TestStore_AddKeepsSortOrder(t *testing.T) {
	s := NewStore()

	require.True(t, s.Add(model.NewEntry("FR", "chat", "cat")))
	require.True(t, s.Add(model.NewEntry("EN", "dog", "canine")))
	require.True(t, s.Add(model.NewEntry("EN", "cat", "feline")))
	require.True(t, s.Add(model.NewEntry("DE", "hund", "dog")))

	assert.Equal(t, []string{"DE / hund", "EN / cat", "EN / dog", "FR / chat"}, s.Labels())
	assertSorted(t, s)
}

func TestStore_AddThenRead(t *testing.T) {
	tests := []struct {
		language, word, meaning string
	}{
		{"EN", "cat", "a small domesticated feline"},
		{"ES", "perro", "dog"},
		{"JA", "ねこ", "cat"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			s := NewStore()
			entry := model.NewEntry(tt.language, tt.word, tt.meaning)

			require.True(t, s.Add(entry))
			require.Equal(t, 1, s.Len())

			got, ok := s.At(0)
			require.True(t, ok)
			assert.Equal(t, entry, got)
		})
	}
}

func TestStore_AddRejectsDuplicateWord(t *testing.T) {
	s := NewStore()
	require.True(t, s.Add(model.NewEntry("EN", "dog", "canine")))
	before := s.Entries()

	assert.False(t, s.Add(model.NewEntry("FR", "dog", "different meaning")))
	assert.False(t, s.Add(model.NewEntry("EN", "DOG", "shouting")))
	assert.Equal(t, before, s.Entries())
}

func TestStore_WordsStayUnique(t *testing.T) {
	s := NewStore()
	words := []string{"cat", "Cat", "dog", "CAT", "bird", "DOG", "fish"}
	for i, w := range words {
		s.Add(model.NewEntry(fmt.Sprintf("L%d", i%3), w, "m"))
	}

	seen := map[string]string{}
	for _, e := range s.Entries() {
		key := strings.ToLower(e.Word)
		_, dup := seen[key]
		assert.False(t, dup, "word %q stored twice", e.Word)
		seen[key] = e.ID
	}
	assert.Equal(t, 4, s.Len())
}

func TestStore_ContainsWord(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("EN", "dog", "canine"))

	assert.True(t, s.ContainsWord("dog"))
	assert.True(t, s.ContainsWord("Dog"))
	assert.False(t, s.ContainsWord("cat"))
	assert.False(t, NewStore().ContainsWord("dog"))
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("EN", "dog", "canine"))
	s.Add(model.NewEntry("EN", "cat", "feline"))

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Entries())
	assert.False(t, s.ContainsWord("dog"))
	assert.True(t, s.Add(model.NewEntry("EN", "dog", "canine")))
}

func TestStore_UpdateReplacesOnlyThatSlot(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("EN", "apple", "fruit"))
	s.Add(model.NewEntry("EN", "bread", "food"))
	s.Add(model.NewEntry("EN", "cheese", "dairy"))
	original, _ := s.At(1)

	require.True(t, s.Update(1, model.NewEntry("EN", "zucchini", "vegetable")))

	assert.Equal(t, []string{"EN,apple,fruit", "EN,cheese,dairy", "EN,zucchini,vegetable"}, s.Lines())
	assertSorted(t, s)

	idx := s.IndexOf(original.ID)
	require.Equal(t, 2, idx, "replacement should keep the slot ID")
	got, _ := s.At(idx)
	assert.Equal(t, "zucchini", got.Word)
}

func TestStore_UpdateOutOfRangeIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("EN", "dog", "canine"))
	before := s.Entries()

	for _, index := range []int{-1, 1, 100} {
		assert.False(t, s.Update(index, model.NewEntry("FR", "chien", "dog")), "index %d", index)
	}
	assert.Equal(t, before, s.Entries())
}

func TestStore_UpdateSkipsDuplicateCheck(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("EN", "cat", "feline"))
	s.Add(model.NewEntry("EN", "dog", "canine"))

	require.True(t, s.Update(1, model.NewEntry("FR", "cat", "chat")))
	assert.Equal(t, []string{"EN / cat", "FR / cat"}, s.Labels())
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("EN", "cat", "feline"))
	s.Add(model.NewEntry("EN", "dog", "canine"))

	assert.False(t, s.Remove(2))
	assert.False(t, s.Remove(-1))
	require.True(t, s.Remove(0))
	assert.Equal(t, []string{"EN,dog,canine"}, s.Lines())
	assert.False(t, s.ContainsWord("cat"))
}

func TestStore_SortIsIdempotent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Reload([]string{
		"FR,chat,cat",
		"EN,zebra,striped horse",
		"EN,apple,fruit",
		"DE,apfel,apple",
	}, LoadSkipMalformed))

	first := s.Entries()
	s.Sort()
	assert.Equal(t, first, s.Entries())
	s.Sort()
	assert.Equal(t, first, s.Entries())
}

func TestStore_ReloadSortsByLanguage(t *testing.T) {
	s := NewStore()
	err := s.Reload([]string{
		"FR,chat,a small domesticated feline",
		"EN,cat,a small domesticated feline",
	}, LoadSkipMalformed)

	require.NoError(t, err)
	assert.Equal(t, []string{"EN / cat", "FR / chat"}, s.Labels())
}

func TestStore_ReloadDiscardsPreviousEntries(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("EN", "old", "gone"))

	require.NoError(t, s.Reload([]string{"EN,new,here"}, LoadSkipMalformed))
	assert.Equal(t, []string{"EN,new,here"}, s.Lines())
}

func TestStore_ReloadSkipReportsMalformedLines(t *testing.T) {
	s := NewStore()
	err := s.Reload([]string{
		"EN,cat,feline",
		"EN,cat",
		"FR,chien,dog,extra",
		"",
		"EN,Cat,duplicate",
		"ES,perro,dog",
	}, LoadSkipMalformed)

	require.Error(t, err)
	var report *LoadReport
	require.True(t, errors.As(err, &report))
	assert.Equal(t, 2, report.Loaded)
	assert.Len(t, report.Rejected, 3)

	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, 2, malformed.Fields)

	var duplicate *DuplicateWordError
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, 5, duplicate.Line)

	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.True(t, errors.Is(err, ErrDuplicateWord))
	assert.Equal(t, []string{"EN,cat,feline", "ES,perro,dog"}, s.Lines())
}

func TestStore_ReloadAbortLeavesStoreUnchanged(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("EN", "dog", "canine"))
	before := s.Entries()

	err := s.Reload([]string{"EN,cat,feline", "EN,cat"}, LoadAbortOnMalformed)

	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, "EN,cat", malformed.Text)
	assert.Equal(t, before, s.Entries())
}

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("FR", "chat", "a small domesticated feline"))
	s.Add(model.NewEntry("EN", "cat", "a small domesticated feline"))
	s.Add(model.NewEntry("DE", "katze", "cat; also a spiteful person"))
	s.Add(model.NewEntry("EN", "dog", "canine"))

	reloaded := NewStore()
	require.NoError(t, reloaded.Reload(s.Lines(), LoadAbortOnMalformed))

	assert.Equal(t, records(s.Entries()), records(reloaded.Entries()))
	for i, e := range s.Entries() {
		got, _ := reloaded.At(i)
		assert.True(t, e.SameRecord(got))
	}
}

func TestStore_IndexLookups(t *testing.T) {
	s := NewStore()
	cat := model.NewEntry("EN", "cat", "feline")
	s.Add(model.NewEntry("EN", "dog", "canine"))
	s.Add(cat)

	assert.Equal(t, 0, s.IndexOf(cat.ID))
	assert.Equal(t, -1, s.IndexOf("missing"))
	assert.Equal(t, -1, s.IndexOf(""))
	assert.Equal(t, 1, s.IndexOfWord("DOG"))
	assert.Equal(t, -1, s.IndexOfWord("bird"))

	_, ok := s.At(2)
	assert.False(t, ok)
}

func TestStore_EntriesReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Add(model.NewEntry("EN", "dog", "canine"))

	entries := s.Entries()
	entries[0].Word = "mutated"

	got, _ := s.At(0)
	assert.Equal(t, "dog", got.Word)
}
