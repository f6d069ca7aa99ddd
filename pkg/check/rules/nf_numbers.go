package checkrules

import (
	"fmt"
	"regexp"

	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

// numberPattern accepts US-format decimals: 12345 or 12345.67, optionally
// negative. No thousands separators, no exponents.
var numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// unitTypePrefix names the indicator column paired with a numeric column.
const unitTypePrefix = "UNITTYPEFOR"

func init() {
	check.Register(check.Def{
		ID:          "NF01",
		Name:        "number-format",
		Group:       "format",
		Description: "Numeric columns hold US-format numbers",
		Severity:    check.SeverityError,
		Check:       checkNumberFormat,
		Fix:         "Format numbers as 12345.67 with no grouping separators.",
	})

	check.Register(check.Def{
		ID:          "NF02",
		Name:        "unit-type-pairing",
		Group:       "format",
		Description: "Numeric columns and their unit type indicators are filled together",
		Severity:    check.SeverityError,
		Check:       checkUnitTypePairing,
		Rationale: `A numeric value is meaningless without its unit type (amount,
quantity, percentage), and a dangling unit type suggests a dropped value.`,
		Fix: "Fill both the numeric column and its UNITTYPEFOR column, or neither.",
	})
}

func checkNumberFormat(f *odifile.File, tpl schema.Template, _ map[string]any) []check.Violation {
	if len(tpl.Numbers) == 0 {
		return nil
	}

	var violations []check.Violation
	for _, row := range f.Rows {
		for _, col := range tpl.Numbers {
			v := row.Value(col)
			if v == "" || numberPattern.MatchString(v) {
				continue
			}
			violations = append(violations, check.Violation{
				CheckID:  "NF01",
				Severity: check.SeverityError,
				Message:  fmt.Sprintf("%s=%q is not in number format 12345.67", col, v),
				Line:     row.Line,
				Columns:  map[string]string{col: v},
			})
		}
	}
	return violations
}

// checkUnitTypePairing verifies each declared numeric column is filled
// together with its UNITTYPEFOR indicator. Numeric columns whose template
// header declares no indicator are skipped.
func checkUnitTypePairing(f *odifile.File, tpl schema.Template, _ map[string]any) []check.Violation {
	type pair struct{ number, unitType string }
	var pairs []pair
	for _, col := range tpl.Numbers {
		ut := unitTypePrefix + col
		if f.HasColumn(ut) {
			pairs = append(pairs, pair{number: col, unitType: ut})
		}
	}
	if len(pairs) == 0 {
		return nil
	}

	var violations []check.Violation
	for _, row := range f.Rows {
		for _, p := range pairs {
			nv, uv := row.Value(p.number), row.Value(p.unitType)
			if (nv == "") == (uv == "") {
				continue
			}
			violations = append(violations, check.Violation{
				CheckID:  "NF02",
				Severity: check.SeverityError,
				Message:  fmt.Sprintf("%s and %s must be provided together", p.number, p.unitType),
				Line:     row.Line,
				Columns:  map[string]string{p.number: nv, p.unitType: uv},
			})
		}
	}
	return violations
}
