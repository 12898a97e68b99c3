// Package export writes a vocabulary in formats other programs can read. The
// native .lang form cannot carry commas inside fields; csv and yaml can.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ytget/langlearn/internal/model"
	"github.com/ytget/langlearn/internal/platform"
)

// Format is an export format name
type Format string

const (
	FormatLang Format = "lang"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// CSVHeader is the first record of a csv export
var CSVHeader = []string{"language", "word", "meaning"}

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatLang, FormatCSV, FormatYAML}
}

// ParseFormat maps a name to a Format
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (must be lang, csv or yaml)", name)
}

// record is the yaml shape of one entry
type record struct {
	Language string `yaml:"language"`
	Word     string `yaml:"word"`
	Meaning  string `yaml:"meaning"`
}

// Write serializes entries to w in the given format
func Write(w io.Writer, entries []model.Entry, format Format) error {
	switch format {
	case FormatLang:
		lines := make([]string, len(entries))
		for i, e := range entries {
			lines[i] = e.Line()
		}
		return platform.WriteLinesTo(w, lines)
	case FormatCSV:
		return writeCSV(w, entries)
	case FormatYAML:
		return writeYAML(w, entries)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func writeCSV(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Language, e.Word, e.Meaning}); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeYAML(w io.Writer, entries []model.Entry) error {
	records := make([]record, len(entries))
	for i, e := range entries {
		records[i] = record{Language: e.Language, Word: e.Word, Meaning: e.Meaning}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
