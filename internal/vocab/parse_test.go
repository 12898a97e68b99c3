package vocab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantErr    bool
		wantFields int
		language   string
		word       string
		meaning    string
	}{
		{name: "three fields", text: "EN,cat,a small domesticated feline", language: "EN", word: "cat", meaning: "a small domesticated feline"},
		{name: "carriage return stripped", text: "EN,cat,feline\r", language: "EN", word: "cat", meaning: "feline"},
		{name: "spaces kept verbatim", text: "EN, cat , feline", language: "EN", word: " cat ", meaning: " feline"},
		{name: "two fields", text: "EN,cat", wantErr: true, wantFields: 2},
		{name: "one field", text: "garbage", wantErr: true, wantFields: 1},
		{name: "four fields", text: "EN,cat,feline,extra", wantErr: true, wantFields: 4},
		{name: "empty meaning", text: "EN,cat,", wantErr: true, wantFields: 3},
		{name: "empty language", text: ",cat,feline", wantErr: true, wantFields: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ParseLine(7, tt.text)
			if tt.wantErr {
				var malformed *MalformedRecordError
				require.True(t, errors.As(err, &malformed))
				assert.Equal(t, 7, malformed.Line)
				assert.Equal(t, tt.wantFields, malformed.Fields)
				assert.Equal(t, tt.text, malformed.Text)
				assert.Contains(t, err.Error(), "line 7")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.language, entry.Language)
			assert.Equal(t, tt.word, entry.Word)
			assert.Equal(t, tt.meaning, entry.Meaning)
			assert.NotEmpty(t, entry.ID)
		})
	}
}

func TestParseLines_SkipsBlankLines(t *testing.T) {
	entries, errs := ParseLines([]string{"", "EN,cat,feline", "   ", "FR,chat,cat", "\r"})

	assert.Empty(t, errs)
	require.Len(t, entries, 2)
	assert.Equal(t, "cat", entries[0].Word)
	assert.Equal(t, "chat", entries[1].Word)
}

func TestParseLines_KeepsFirstOfDuplicateWords(t *testing.T) {
	entries, errs := ParseLines([]string{"EN,dog,canine", "FR,DOG,chien"})

	require.Len(t, entries, 1)
	assert.Equal(t, "EN", entries[0].Language)
	require.Len(t, errs, 1)

	var duplicate *DuplicateWordError
	require.True(t, errors.As(errs[0], &duplicate))
	assert.Equal(t, "DOG", duplicate.Word)
	assert.Equal(t, 2, duplicate.Line)
}

func TestParseLines_DuplicatesFollowCaseFolding(t *testing.T) {
	// U+017F folds to s and U+212A (Kelvin sign) folds to k
	entries, errs := ParseLines([]string{"EN,s,letter", "EN,\u017f,long s", "EN,kilo,thousand", "EN,\u212Ailo,kelvin"})

	require.Len(t, entries, 2)
	assert.Equal(t, "s", entries[0].Word)
	assert.Equal(t, "kilo", entries[1].Word)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], ErrDuplicateWord)
	assert.ErrorIs(t, errs[1], ErrDuplicateWord)

	store := NewStore()
	err := store.Reload([]string{"EN,s,letter", "EN,\u017f,long s"}, LoadSkipMalformed)
	require.Error(t, err)
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.ContainsWord("\u017f"))
}

func TestLoadPolicy(t *testing.T) {
	for _, name := range LoadPolicyNames() {
		policy, err := ParseLoadPolicy(name)
		require.NoError(t, err)
		assert.Equal(t, name, policy.String())
	}

	_, err := ParseLoadPolicy("retry")
	assert.Error(t, err)
	assert.Equal(t, "unknown", LoadPolicy(9).String())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `word already exists: "dog"`, (&DuplicateWordError{Word: "dog"}).Error())
	assert.Equal(t, `line 3: word already exists: "dog"`, (&DuplicateWordError{Word: "dog", Line: 3}).Error())
	assert.Equal(t, "malformed record: empty field", (&MalformedRecordError{Reason: "empty field"}).Error())

	report := &LoadReport{Loaded: 1, Rejected: []error{&MalformedRecordError{Line: 2, Reason: "empty field"}}}
	assert.Equal(t, "loaded 1 entries, rejected 1 lines\nline 2: malformed record: empty field", report.Error())
}
