package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk palette override format:
//
//	codes: ["140", "141", ...]
//	schemes:
//	  - {bg: "#f3e8ff", border: "#e9d5ff", text: "#7e22ce", dark_bg: ..., dark_border: ..., dark_text: ...}
//	default: {bg: ..., ...}
//
// Omitted sections fall back to the built-in values.
type File struct {
	Codes   []string      `yaml:"codes"`
	Schemes []ColorScheme `yaml:"schemes"`
	Default *ColorScheme  `yaml:"default"`
}

// LoadFile builds a resolver from a YAML palette file. An empty path
// returns the built-in palette.
func LoadFile(path string) (*Resolver, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading palette file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing palette file: %w", err)
	}

	codes := f.Codes
	if codes == nil {
		codes = DefaultCodes
	}
	schemes := f.Schemes
	if schemes == nil {
		schemes = DefaultSchemes
	}
	fallback := DefaultScheme
	if f.Default != nil {
		fallback = *f.Default
	}

	return New(codes, schemes, fallback)
}
