package checkrules

import (
	"fmt"
	"regexp"
	"time"

	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

// datePattern narrows the shape before calendar validation; time.Parse then
// rejects impossible dates like 13/32/2024.
var datePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

const dateLayout = "1/2/2006"

func init() {
	check.Register(check.Def{
		ID:          "DF01",
		Name:        "date-format",
		Group:       "format",
		Description: "Date columns hold MM/DD/YYYY dates",
		Severity:    check.SeverityError,
		Check:       checkDateFormat,
		Fix:         "Format dates as MM/DD/YYYY.",
	})
}

func checkDateFormat(f *odifile.File, tpl schema.Template, _ map[string]any) []check.Violation {
	if len(tpl.Dates) == 0 {
		return nil
	}

	var violations []check.Violation
	for _, row := range f.Rows {
		for _, col := range tpl.Dates {
			v := row.Value(col)
			if v == "" || validDate(v) {
				continue
			}
			violations = append(violations, check.Violation{
				CheckID:  "DF01",
				Severity: check.SeverityError,
				Message:  fmt.Sprintf("%s=%q is not a valid MM/DD/YYYY date", col, v),
				Line:     row.Line,
				Columns:  map[string]string{col: v},
			})
		}
	}
	return violations
}

func validDate(v string) bool {
	if !datePattern.MatchString(v) {
		return false
	}
	_, err := time.Parse(dateLayout, v)
	return err == nil
}
