package commands

import (
	"fmt"
	"strings"

	"github.com/odilint/odilint/internal/cli/output"
	"github.com/odilint/odilint/internal/runner"
	"github.com/odilint/odilint/pkg/check"
)

// renderCheckResult writes a run's findings to the renderer and reports
// whether any issues were found.
func renderCheckResult(r *output.Renderer, res *runner.Result) bool {
	summary := buildSummary(res)

	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(buildCheckOutput(res, summary))
		return summary.TotalIssues > 0
	}

	if summary.TotalIssues == 0 {
		for _, tr := range res.Templates {
			if tr.Status == runner.StatusSkipped {
				r.Muted(fmt.Sprintf("%s skipped (%s)", tr.Tag, tr.Reason))
			}
		}
		r.Success(fmt.Sprintf("No issues found in %d files", summary.FilesChecked))
		return false
	}

	for _, tr := range res.Templates {
		switch tr.Status {
		case runner.StatusSkipped:
			r.Muted(fmt.Sprintf("%s skipped (%s)", tr.Tag, tr.Reason))
			continue
		case runner.StatusPassed:
			continue
		}
		for _, fr := range tr.Files {
			if len(fr.Violations) == 0 {
				continue
			}
			r.Println(r.Styles().FilePath.Render(fr.Path))
			for _, v := range fr.Violations {
				renderViolation(r, v, false)
			}
			r.Println("")
		}
	}

	if len(res.Fileset) > 0 {
		r.Header(2, "Cross-file checks")
		for _, v := range res.Fileset {
			renderViolation(r, v, true)
		}
		r.Println("")
	}

	// Print summary
	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), summary.FilesChecked)

	return true
}

func renderViolation(r *output.Renderer, v check.Violation, withFile bool) {
	loc := fmt.Sprintf("%d", v.Line)
	if v.Line == 0 {
		loc = "-"
	}
	msg := v.Message
	if withFile && v.File != "" {
		msg = v.File + ": " + msg
	}
	r.Printf("  %s  %s  %s  %s\n",
		r.Styles().Muted.Render(fmt.Sprintf("%-5s", loc)),
		severityStyle(r, v.Severity),
		r.Styles().Bold.Render(v.CheckID),
		msg,
	)
}

func severityStyle(r *output.Renderer, sev check.Severity) string {
	switch sev {
	case check.SeverityError:
		return r.Styles().Error.Render("error  ")
	case check.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case check.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case check.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}

func buildSummary(res *runner.Result) output.CheckSummary {
	summary := output.CheckSummary{
		FilesChecked: res.FilesChecked(),
		TotalIssues:  res.TotalViolations(),
	}
	for _, tr := range res.Templates {
		if tr.Status == runner.StatusSkipped {
			summary.TemplatesSkipped++
		} else {
			summary.TemplatesChecked++
		}
	}
	counts := res.Counts()
	summary.Errors = counts[check.SeverityError]
	summary.Warnings = counts[check.SeverityWarning]
	summary.Info = counts[check.SeverityInfo]
	summary.Hints = counts[check.SeverityHint]
	return summary
}

func buildCheckOutput(res *runner.Result, summary output.CheckSummary) output.CheckOutput {
	out := output.CheckOutput{Summary: summary}
	for _, tr := range res.Templates {
		tplOut := output.CheckTemplateResult{
			Tag:    tr.Tag,
			Status: string(tr.Status),
			Reason: tr.Reason,
		}
		for _, fr := range tr.Files {
			fileOut := output.CheckFileResult{
				Path: fr.Path,
				Rows: fr.Rows,
			}
			for _, v := range fr.Violations {
				fileOut.Violations = append(fileOut.Violations, toViolationDTO(v))
			}
			tplOut.Files = append(tplOut.Files, fileOut)
		}
		out.Templates = append(out.Templates, tplOut)
	}
	for _, v := range res.Fileset {
		out.Fileset = append(out.Fileset, toViolationDTO(v))
	}
	return out
}

func toViolationDTO(v check.Violation) output.CheckViolation {
	return output.CheckViolation{
		CheckID:  v.CheckID,
		Severity: v.Severity.String(),
		Message:  v.Message,
		File:     v.File,
		Line:     v.Line,
		Columns:  v.Columns,
	}
}
