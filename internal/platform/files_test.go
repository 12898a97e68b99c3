package platform

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDocumentsDir(t *testing.T) {
	dir, err := GetHomeDocumentsDir()
	if err != nil {
		t.Fatalf("Failed to get documents directory: %v", err)
	}

	if filepath.Base(dir) != "Documents" {
		t.Errorf("Expected directory to end with 'Documents', got: %s", dir)
	}
}

func TestDefaultVocabularyPath(t *testing.T) {
	path := DefaultVocabularyPath()
	if filepath.Base(path) != DefaultFileName {
		t.Errorf("Expected %s, got %s", DefaultFileName, path)
	}
}

func TestEnsureLangExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"words", "words.lang"},
		{"words.lang", "words.lang"},
		{"words.LANG", "words.LANG"},
		{"/tmp/words.txt", "/tmp/words.txt.lang"},
	}

	for _, test := range tests {
		if got := EnsureLangExtension(test.input); got != test.expected {
			t.Errorf("EnsureLangExtension(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestWriteLinesTo_UsesPlatformLineEnding(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLinesTo(&buf, []string{"EN,cat,feline", "FR,chat,cat"}); err != nil {
		t.Fatalf("WriteLinesTo failed: %v", err)
	}

	expected := "EN,cat,feline" + LineEnding() + "FR,chat,cat" + LineEnding()
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestReadLinesFrom_StripsLineEndings(t *testing.T) {
	lines, err := ReadLinesFrom(strings.NewReader("EN,cat,feline\r\nFR,chat,cat\nDE,katze,cat"))
	if err != nil {
		t.Fatalf("ReadLinesFrom failed: %v", err)
	}

	expected := []string{"EN,cat,feline", "FR,chat,cat", "DE,katze,cat"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestWriteLinesThenReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	written := []string{"EN,cat,feline", "EN,dog,canine"}

	if err := WriteLines(path, written); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	read, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if strings.Join(read, "|") != strings.Join(written, "|") {
		t.Errorf("Expected %q, got %q", written, read)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the vocabulary file, found %d entries", len(entries))
	}
}

func TestWriteLines_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("EN,old,gone\nEN,older,gone\n"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	if err := WriteLines(path, []string{"EN,new,here"}); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	read, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(read) != 1 || read[0] != "EN,new,here" {
		t.Errorf("Expected only the new line, got %q", read)
	}
}

func TestReadLinesFrom_LongLine(t *testing.T) {
	long := "EN,word," + strings.Repeat("x", 200*1024)
	lines, err := ReadLinesFrom(strings.NewReader("EN,cat,feline\n" + long + "\nEN,dog,canine"))
	if err != nil {
		t.Fatalf("ReadLinesFrom failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[1] != long {
		t.Errorf("Long line was not read intact (len %d)", len(lines[1]))
	}
	if lines[2] != "EN,dog,canine" {
		t.Errorf("Expected last line without ending, got %q", lines[2])
	}
}

func TestWriteLines_KeepsExistingPermissions(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("EN,old,gone\n"), 0600); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		t.Fatalf("Failed to chmod: %v", err)
	}

	if err := WriteLines(path, []string{"EN,new,here"}); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}
}

func TestWriteLines_NewFileUsesDefaultPermissions(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), DefaultFileName)

	if err := WriteLines(path, []string{"EN,cat,feline"}); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != DefaultFilePermissions {
		t.Errorf("Expected mode %o, got %o", DefaultFilePermissions, perm)
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.lang"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist in chain, got: %v", err)
	}
	if !strings.Contains(err.Error(), "failed to open vocabulary file") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestWriteLines_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", DefaultFileName)
	if err := WriteLines(path, []string{"EN,cat,feline"}); err == nil {
		t.Error("Expected error when the directory does not exist")
	}
}
