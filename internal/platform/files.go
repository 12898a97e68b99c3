package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSWindows = "windows"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Vocabulary file naming
const (
	LangExtension   = ".lang"
	DefaultFileName = "vocabulary" + LangExtension
)

// Line endings
const (
	WindowsLineEnding = "\r\n"
	UnixLineEnding    = "\n"
)

// Android storage location for user documents
const AndroidDocumentsDir = "/sdcard/Documents"

// LineEnding returns the line ending used when writing files on this platform
func LineEnding() string {
	if runtime.GOOS == OSWindows {
		return WindowsLineEnding
	}
	return UnixLineEnding
}

// ReadLines reads every line of the file at path. The returned error wraps the
// os error, so errors.Is(err, fs.ErrNotExist) identifies a missing file.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer file.Close()

	return ReadLinesFrom(file)
}

// ReadLinesFrom reads every line from r, stripping \n and \r\n endings.
// Lines have no length limit.
func ReadLinesFrom(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
		}
	}
}

// WriteLinesTo writes each line followed by the platform line ending
func WriteLinesTo(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	ending := LineEnding()
	for _, line := range lines {
		if _, err := bw.WriteString(line + ending); err != nil {
			return fmt.Errorf("failed to write vocabulary file: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write vocabulary file: %w", err)
	}
	return nil
}

// WriteLines writes lines to path through a temp file in the same directory
// that replaces the target only after a complete write. An existing target
// keeps its permissions.
func WriteLines(path string, lines []string) error {
	perm := os.FileMode(DefaultFilePermissions)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create vocabulary file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if err := WriteLinesTo(f, lines); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to set vocabulary file permissions: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close vocabulary file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace vocabulary file: %w", err)
	}
	return nil
}

// EnsureLangExtension appends .lang unless path already ends with it
func EnsureLangExtension(path string) string {
	if strings.EqualFold(filepath.Ext(path), LangExtension) {
		return path
	}
	return path + LangExtension
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// IsAndroid reports whether the process runs as a Fyne Android app
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// GetHomeDocumentsDir returns the standard Documents directory for the user
func GetHomeDocumentsDir() (string, error) {
	if IsAndroid() {
		return AndroidDocumentsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Documents"), nil
}

// DefaultVocabularyPath returns the file used when none is configured
func DefaultVocabularyPath() string {
	dir, err := GetHomeDocumentsDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(dir, DefaultFileName)
}
