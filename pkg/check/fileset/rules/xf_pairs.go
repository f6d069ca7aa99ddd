// Package filesetrules registers the built-in cross-file checks.
// Import for side effects:
//
//	import _ "github.com/odilint/odilint/pkg/check/fileset/rules"
package filesetrules

import (
	"fmt"
	"strings"

	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/check/fileset"
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

func init() {
	fileset.Register(fileset.RuleDef{
		ID:          "XF01",
		Name:        "file-pairs",
		Group:       "fileset",
		Description: "Paired templates ship matching file sets",
		Severity:    check.SeverityError,
		Check:       checkFilePairs,
	})

	fileset.Register(fileset.RuleDef{
		ID:          "XF02",
		Name:        "transactions-assigned",
		Group:       "fileset",
		Description: "Every transaction has at least one assignment in its companion file",
		Severity:    check.SeverityError,
		Check:       checkTransactionsAssigned,
	})

	fileset.Register(fileset.RuleDef{
		ID:          "XF03",
		Name:        "assignments-joined",
		Group:       "fileset",
		Description: "Every assignment joins a transaction in its companion file",
		Severity:    check.SeverityError,
		Check:       checkAssignmentsJoined,
	})
}

// pairedTemplates yields the templates declaring a companion, with pairing
// declared on one side only.
func pairedTemplates() []schema.Template {
	var paired []schema.Template
	for _, tpl := range schema.All() {
		if tpl.PairTag != "" {
			paired = append(paired, tpl)
		}
	}
	return paired
}

// companionName derives the expected companion file name by substituting
// the template tag once, e.g. CALD_TXSTA_DEV_20070805.txt -> CALD_TXTA_DEV_20070805.txt.
func companionName(name, tag, pairTag string) string {
	return strings.Replace(name, strings.ToUpper(tag), strings.ToUpper(pairTag), 1)
}

// matchedPairs returns the file pairs whose names correspond under tag
// substitution.
func matchedPairs(ctx *fileset.Context, tpl schema.Template) [][2]*odifile.File {
	companions := make(map[string]*odifile.File)
	for _, f := range ctx.Files(tpl.PairTag) {
		companions[f.Name] = f
	}

	var pairs [][2]*odifile.File
	for _, f := range ctx.Files(tpl.Tag) {
		if c, ok := companions[companionName(f.Name, tpl.Tag, tpl.PairTag)]; ok {
			pairs = append(pairs, [2]*odifile.File{f, c})
		}
	}
	return pairs
}

func checkFilePairs(ctx *fileset.Context) []check.Violation {
	var violations []check.Violation
	for _, tpl := range pairedTemplates() {
		companions := make(map[string]bool)
		for _, f := range ctx.Files(tpl.PairTag) {
			companions[f.Name] = true
		}
		own := make(map[string]bool)
		for _, f := range ctx.Files(tpl.Tag) {
			own[f.Name] = true
		}

		for _, f := range ctx.Files(tpl.Tag) {
			want := companionName(f.Name, tpl.Tag, tpl.PairTag)
			if !companions[want] {
				violations = append(violations, check.Violation{
					CheckID:  "XF01",
					Severity: check.SeverityError,
					Message:  fmt.Sprintf("no companion %s file %q", tpl.PairTag, want),
					File:     f.Name,
				})
			}
		}
		for _, f := range ctx.Files(tpl.PairTag) {
			want := companionName(f.Name, tpl.PairTag, tpl.Tag)
			if !own[want] {
				violations = append(violations, check.Violation{
					CheckID:  "XF01",
					Severity: check.SeverityError,
					Message:  fmt.Sprintf("no companion %s file %q", tpl.Tag, want),
					File:     f.Name,
				})
			}
		}
	}
	return violations
}

func checkTransactionsAssigned(ctx *fileset.Context) []check.Violation {
	var violations []check.Violation
	for _, tpl := range pairedTemplates() {
		for _, pair := range matchedPairs(ctx, tpl) {
			violations = append(violations, keyContainment(
				"XF02", pair[0], pair[1], tpl.PairKeyWidth,
				fmt.Sprintf("transaction has no assignment in %s", pair[1].Name))...)
		}
	}
	return violations
}

func checkAssignmentsJoined(ctx *fileset.Context) []check.Violation {
	var violations []check.Violation
	for _, tpl := range pairedTemplates() {
		for _, pair := range matchedPairs(ctx, tpl) {
			violations = append(violations, keyContainment(
				"XF03", pair[1], pair[0], tpl.PairKeyWidth,
				fmt.Sprintf("assignment has no transaction in %s", pair[0].Name))...)
		}
	}
	return violations
}

// keyContainment flags rows of a whose leading key tuple does not appear in b.
func keyContainment(checkID string, a, b *odifile.File, width int, message string) []check.Violation {
	if width <= 0 {
		return nil
	}

	keys := make(map[string]bool, len(b.Rows))
	for _, row := range b.Rows {
		keys[row.KeyTuple(width)] = true
	}

	var violations []check.Violation
	for _, row := range a.Rows {
		if keys[row.KeyTuple(width)] {
			continue
		}
		violations = append(violations, check.Violation{
			CheckID:  checkID,
			Severity: check.SeverityError,
			Message:  fmt.Sprintf("%s: key (%s)", message, strings.Join(row.Fields[:min(width, len(row.Fields))], ", ")),
			File:     a.Name,
			Line:     row.Line,
		})
	}
	return violations
}
