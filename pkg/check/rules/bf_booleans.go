package checkrules

import (
	"fmt"

	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

func init() {
	check.Register(check.Def{
		ID:          "BF01",
		Name:        "boolean-domain",
		Group:       "format",
		Description: "Boolean columns contain only empty, 0 or 1",
		Severity:    check.SeverityError,
		Check:       checkBooleanDomain,
		Fix:         "Use 0, 1 or leave the column empty.",
	})
}

func checkBooleanDomain(f *odifile.File, tpl schema.Template, _ map[string]any) []check.Violation {
	if len(tpl.Booleans) == 0 {
		return nil
	}

	var violations []check.Violation
	for _, row := range f.Rows {
		for _, col := range tpl.Booleans {
			v := row.Value(col)
			if v == "" || v == "0" || v == "1" {
				continue
			}
			violations = append(violations, check.Violation{
				CheckID:  "BF01",
				Severity: check.SeverityError,
				Message:  fmt.Sprintf("%s=%q must be 0, 1 or empty", col, v),
				Line:     row.Line,
				Columns:  map[string]string{col: v},
			})
		}
	}
	return violations
}
