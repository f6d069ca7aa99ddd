package checkrules

import (
	"fmt"
	"strings"

	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

func init() {
	check.Register(check.Def{
		ID:          "PK01",
		Name:        "primary-key-filled",
		Group:       "key",
		Description: "Primary key columns are filled in every row",
		Severity:    check.SeverityError,
		Check:       checkPrimaryKeyFilled,
		Fix:         "Fill the primary key columns for the flagged rows.",
	})

	check.Register(check.Def{
		ID:          "PK02",
		Name:        "primary-key-unique",
		Group:       "key",
		Description: "Primary key tuples are unique across all rows",
		Severity:    check.SeverityError,
		Check:       checkPrimaryKeyUnique,
		Rationale: `The import pipeline keys rows on the template's primary key columns.
Duplicate keys either overwrite earlier rows or reject the whole file.`,
		Fix: "Remove or re-key the duplicated rows.",
	})
}

func checkPrimaryKeyFilled(f *odifile.File, tpl schema.Template, _ map[string]any) []check.Violation {
	if len(tpl.PrimaryKey) == 0 {
		return nil
	}

	var violations []check.Violation
	for _, row := range f.Rows {
		empty := make(map[string]string)
		for _, col := range tpl.PrimaryKey {
			if row.Value(col) == "" {
				empty[col] = ""
			}
		}
		if len(empty) > 0 {
			violations = append(violations, check.Violation{
				CheckID:  "PK01",
				Severity: check.SeverityError,
				Message:  fmt.Sprintf("primary key empty: %s", formatColumns(empty)),
				Line:     row.Line,
				Columns:  empty,
			})
		}
	}
	return violations
}

// checkPrimaryKeyUnique verifies the key tuple is unique across rows. The
// tuple is the template's primary key, extended by UniqueExtra columns for
// templates that declare them.
func checkPrimaryKeyUnique(f *odifile.File, tpl schema.Template, _ map[string]any) []check.Violation {
	key := tpl.UniqueKey()
	if len(key) == 0 {
		return nil
	}

	seen := make(map[string]int, len(f.Rows)) // tuple -> first line
	var violations []check.Violation
	for _, row := range f.Rows {
		parts := make([]string, len(key))
		columns := make(map[string]string, len(key))
		for i, col := range key {
			parts[i] = row.Value(col)
			columns[col] = row.Value(col)
		}
		tuple := strings.Join(parts, "\x1f")

		if first, ok := seen[tuple]; ok {
			violations = append(violations, check.Violation{
				CheckID:  "PK02",
				Severity: check.SeverityError,
				Message:  fmt.Sprintf("duplicate primary key, first seen on line %d: %s", first, formatColumns(columns)),
				Line:     row.Line,
				Columns:  columns,
			})
			continue
		}
		seen[tuple] = row.Line
	}
	return violations
}
