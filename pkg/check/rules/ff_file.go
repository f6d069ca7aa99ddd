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
		ID:          "FF01",
		Name:        "file-name",
		Group:       "file",
		Description: "File name follows the transport naming layout",
		Severity:    check.SeverityError,
		Check:       checkFileName,
		Rationale: `The platform routes export files by name: tenant, template, target
environment and transmission date are all encoded in it. A misnamed file is
silently ignored by the import pipeline.`,
		Fix: "Rename the file to <TENANT>_<TEMPLATE>_<ENV>_<YYYYMMDD>[_<HHMISS>][_<TAG>].txt.",
	})

	check.Register(check.Def{
		ID:          "FF02",
		Name:        "file-content",
		Group:       "file",
		Description: "File is non-empty and decodes as UTF-8 text",
		Severity:    check.SeverityError,
		Check:       checkFileContent,
		Fix:         "Re-export the file in Unicode format.",
	})

	check.Register(check.Def{
		ID:          "FF03",
		Name:        "tab-delimited",
		Group:       "file",
		Description: "Every line is tab-delimited",
		Severity:    check.SeverityError,
		Check:       checkTabDelimited,
		Fix:         "Export the file with tab as the field delimiter.",
	})

	check.Register(check.Def{
		ID:          "FF04",
		Name:        "header-row",
		Group:       "file",
		Description: "File carries no header row",
		Severity:    check.SeverityError,
		Check:       checkHeaderRow,
		Rationale: `Export files are headerless; column names come from the template's
documented layout. A header row would be imported as data.`,
		Fix: "Remove the header row from the export.",
	})
}

func checkFileName(f *odifile.File, _ schema.Template, _ map[string]any) []check.Violation {
	if odifile.MatchName(f.Name) {
		return nil
	}
	return []check.Violation{{
		CheckID:  "FF01",
		Severity: check.SeverityError,
		Message:  fmt.Sprintf("file name %q does not follow <TENANT>_<TEMPLATE>_<ENV>_<YYYYMMDD>[_<HHMISS>][_<TAG>].txt", f.Name),
	}}
}

func checkFileContent(f *odifile.File, _ schema.Template, _ map[string]any) []check.Violation {
	if len(f.Raw) == 0 {
		return []check.Violation{{
			CheckID:  "FF02",
			Severity: check.SeverityError,
			Message:  "file is empty",
		}}
	}
	if !f.ValidUTF8() {
		return []check.Violation{{
			CheckID:  "FF02",
			Severity: check.SeverityError,
			Message:  "file content is not valid UTF-8",
		}}
	}
	return nil
}

func checkTabDelimited(f *odifile.File, _ schema.Template, _ map[string]any) []check.Violation {
	var violations []check.Violation
	for i, line := range f.Lines {
		if !strings.Contains(line, "\t") {
			violations = append(violations, check.Violation{
				CheckID:  "FF03",
				Severity: check.SeverityError,
				Message:  "line is not tab-delimited",
				Line:     i + 1,
			})
		}
	}
	return violations
}

// checkHeaderRow flags a first line that repeats the template's column
// names. Export files must not carry a header row; matching any known
// column name in the first line is treated as one.
func checkHeaderRow(f *odifile.File, _ schema.Template, _ map[string]any) []check.Violation {
	if len(f.Rows) == 0 {
		return nil
	}

	found := make(map[string]string)
	for _, field := range f.Rows[0].Fields {
		if f.HasColumn(field) {
			found[field] = field
		}
	}
	if len(found) == 0 {
		return nil
	}
	return []check.Violation{{
		CheckID:  "FF04",
		Severity: check.SeverityError,
		Message:  fmt.Sprintf("first line looks like a header row: %s", formatColumns(found)),
		Line:     1,
		Columns:  found,
	}}
}
