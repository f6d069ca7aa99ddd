package odifile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover returns the paths of candidate source files for a template tag,
// sorted by name. A file is a candidate when it has a .txt extension
// (case-insensitive) and its name contains the upper-cased tag. An empty tag
// matches every .txt file.
func Discover(sourceDir, tag string) ([]string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	tagUpper := strings.ToUpper(tag)
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".txt") {
			continue
		}
		if tagUpper != "" && !strings.Contains(strings.ToUpper(name), tagUpper) {
			continue
		}
		paths = append(paths, filepath.Join(sourceDir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// DiscoverAll returns every candidate source file in the directory.
func DiscoverAll(sourceDir string) ([]string, error) {
	return Discover(sourceDir, "")
}
