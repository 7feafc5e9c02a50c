package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatIDs prints one "id<TAB>title" line per item for piping
	FormatIDs Format = "ids"
)

// Formatter writes structured data in the selected format
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new output formatter
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{format: format, writer: writer}
}

// Format returns the configured format
func (f *Formatter) Format() Format {
	return f.format
}

// Structured reports whether data should go through Print instead of a printer
func (f *Formatter) Structured() bool {
	return f.format == FormatJSON || f.format == FormatYAML
}

// Print outputs data as JSON or YAML. Text output is left to the caller.
func (f *Formatter) Print(data any) error {
	switch f.format {
	case FormatJSON:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(f.writer)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(data)
	default:
		_, err := fmt.Fprintln(f.writer, data)
		return err
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "ids":
		return FormatIDs, nil
	default:
		return FormatText, fmt.Errorf("invalid format '%s': must be one of: text, json, yaml, ids", s)
	}
}
