// Package checkrules registers the built-in file and row checks.
// Import for side effects:
//
//	import _ "github.com/odilint/odilint/pkg/check/rules"
package checkrules

import (
	"fmt"
	"sort"
	"strings"
)

// formatColumns renders an offending column map as `COL="value"` pairs in
// column-name order, for stable violation messages.
func formatColumns(columns map[string]string) string {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%q", name, columns[name])
	}
	return strings.Join(parts, ", ")
}
