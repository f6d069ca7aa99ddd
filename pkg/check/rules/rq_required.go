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
		ID:          "RQ01",
		Name:        "required-filled",
		Group:       "required",
		Description: "Required columns are filled in every row",
		Severity:    check.SeverityError,
		Check:       checkRequiredFilled,
		Fix:         "Fill the required columns for the flagged rows.",
	})

	check.Register(check.Def{
		ID:          "RQ02",
		Name:        "any-of-filled",
		Group:       "required",
		Description: "At least one of the template's identifying columns is filled",
		Severity:    check.SeverityError,
		Check:       checkAnyOfFilled,
	})

	check.Register(check.Def{
		ID:          "RQ03",
		Name:        "dependent-column",
		Group:       "required",
		Description: "Dependent columns are filled together",
		Severity:    check.SeverityError,
		Check:       checkDependentColumns,
		Rationale: `Some columns only make sense as a pair: a payee identifier without
its payee type cannot be resolved during import.`,
	})
}

func checkRequiredFilled(f *odifile.File, tpl schema.Template, _ map[string]any) []check.Violation {
	if len(tpl.Required) == 0 {
		return nil
	}

	var violations []check.Violation
	for _, row := range f.Rows {
		empty := make(map[string]string)
		for _, col := range tpl.Required {
			if row.Value(col) == "" {
				empty[col] = ""
			}
		}
		if len(empty) > 0 {
			violations = append(violations, check.Violation{
				CheckID:  "RQ01",
				Severity: check.SeverityError,
				Message:  fmt.Sprintf("required column empty: %s", formatColumns(empty)),
				Line:     row.Line,
				Columns:  empty,
			})
		}
	}
	return violations
}

func checkAnyOfFilled(f *odifile.File, tpl schema.Template, _ map[string]any) []check.Violation {
	if len(tpl.AnyOf) == 0 {
		return nil
	}

	var violations []check.Violation
	for _, row := range f.Rows {
		filled := false
		for _, col := range tpl.AnyOf {
			if row.Value(col) != "" {
				filled = true
				break
			}
		}
		if !filled {
			violations = append(violations, check.Violation{
				CheckID:  "RQ02",
				Severity: check.SeverityError,
				Message:  fmt.Sprintf("one of %s is required", strings.Join(tpl.AnyOf, ", ")),
				Line:     row.Line,
			})
		}
	}
	return violations
}

func checkDependentColumns(f *odifile.File, tpl schema.Template, _ map[string]any) []check.Violation {
	if len(tpl.Dependents) == 0 {
		return nil
	}

	var violations []check.Violation
	for _, row := range f.Rows {
		for col, dep := range tpl.Dependents {
			if row.Value(col) != "" && row.Value(dep) == "" {
				violations = append(violations, check.Violation{
					CheckID:  "RQ03",
					Severity: check.SeverityError,
					Message:  fmt.Sprintf("%s is required if %s is provided", dep, col),
					Line:     row.Line,
					Columns:  map[string]string{col: row.Value(col), dep: ""},
				})
			}
		}
	}
	return violations
}
