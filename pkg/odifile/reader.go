package odifile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadHeader reads the header fixture for a template tag from headersDir.
// The fixture is <headersDir>/<TAG>.txt; its first line is the tab-separated
// column list.
func LoadHeader(headersDir, tag string) ([]string, error) {
	path := filepath.Join(headersDir, strings.ToUpper(tag)+".txt")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read header fixture for %s: %w", tag, err)
	}
	first, _, _ := strings.Cut(string(raw), "\n")
	first = strings.TrimSuffix(first, "\r")
	if first == "" {
		return nil, fmt.Errorf("header fixture for %s is empty", tag)
	}
	return strings.Split(first, "\t"), nil
}

// HasHeader reports whether a header fixture exists for the template tag.
func HasHeader(headersDir, tag string) bool {
	_, err := os.Stat(filepath.Join(headersDir, strings.ToUpper(tag)+".txt"))
	return err == nil
}

// Load reads an export file and parses its rows against the header.
func Load(path, template string, header []string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	return Parse(path, template, header, raw), nil
}
