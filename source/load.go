package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/schemawalk/tree"
)

// Format selects a decoder.
type Format int

const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

// ParseFormat maps "json", "yaml"/"yml" and "" (auto) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("source: unknown format %q", s)
}

// Decode decodes data in the given format. FormatAuto picks JSON when the
// first non-blank byte opens an object or array, YAML otherwise.
func Decode(data []byte, f Format) (tree.Value, error) {
	if f == FormatAuto {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			f = FormatJSON
		} else {
			f = FormatYAML
		}
	}
	if f == FormatJSON {
		return JSON(data)
	}
	return YAML(data)
}

// Load reads and decodes a file; .json files are decoded as JSON and
// everything else as YAML.
func Load(path string) (tree.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		f = FormatJSON
	}
	v, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
