package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CardFile is the top-level structure of a card import/export file.
type CardFile struct {
	Cards []CardImport `json:"cards" yaml:"cards"`
}

// CardImport defines a card in the file. Counts and ids are optional.
type CardImport struct {
	ID            string             `json:"id,omitempty" yaml:"id,omitempty"`
	Content       string             `json:"content" yaml:"content"`
	Category      string             `json:"category" yaml:"category"`
	Duration      string             `json:"duration,omitempty" yaml:"duration,omitempty"`
	ImageURL      string             `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ApprovedCount *int               `json:"approved_count,omitempty" yaml:"approved_count,omitempty"`
	RejectedCount *int               `json:"rejected_count,omitempty" yaml:"rejected_count,omitempty"`
	Suggestions   []SuggestionImport `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	CreatedAt     *string            `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// SuggestionImport defines one entry of a card's suggestion history.
type SuggestionImport struct {
	ID     string  `json:"id,omitempty" yaml:"id,omitempty"`
	Text   string  `json:"text" yaml:"text"`
	Author string  `json:"author,omitempty" yaml:"author,omitempty"`
	Date   *string `json:"date,omitempty" yaml:"date,omitempty"`
}

// Format selects the encoding of a card file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the encoding from the file extension. Anything other
// than .json is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadCardFile reads and parses a card file.
func LoadCardFile(path string) (*CardFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCardFile(data, FormatForPath(path))
}

// ParseCardFile decodes data in the given format.
func ParseCardFile(data []byte, format Format) (*CardFile, error) {
	var file CardFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing card file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing card file: %w", err)
		}
	}
	return &file, nil
}

// MarshalCardFile encodes file in the given format.
func MarshalCardFile(file *CardFile, format Format) ([]byte, error) {
	if format == FormatJSON {
		data, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return yaml.Marshal(file)
}

// WriteCardFile encodes file by the path's extension and writes it,
// replacing any existing file.
func WriteCardFile(path string, file *CardFile) error {
	data, err := MarshalCardFile(file, FormatForPath(path))
	if err != nil {
		return fmt.Errorf("encoding card file: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing card file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing card file: %w", err)
	}
	return nil
}
