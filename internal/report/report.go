// Package report renders a validation run as a standalone HTML document.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"github.com/odilint/odilint/internal/runner"
	"github.com/odilint/odilint/pkg/check"
)

const pageCSS = `
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 64rem; color: #1a1a1a; }
h1 { font-size: 1.4rem; } h2 { font-size: 1.1rem; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; margin: 0.5rem 0 1rem; }
th, td { border: 1px solid #d0d0d0; padding: 0.3rem 0.6rem; text-align: left; font-size: 0.9rem; }
th { background: #f2f2f2; }
.muted { color: #707070; font-size: 0.85rem; }
.badge { padding: 0.1rem 0.5rem; border-radius: 0.6rem; font-size: 0.8rem; }
.passed { background: #d9f2d9; color: #1d6b1d; }
.failed { background: #f8d7d7; color: #8f1d1d; }
.skipped { background: #eeeeee; color: #555555; }
.sev-error { color: #8f1d1d; font-weight: 600; }
.sev-warning { color: #8a6d00; }
.sev-info { color: #1d4f8f; }
.sev-hint { color: #707070; }
`

// Write renders the result to path as HTML.
func Write(path string, res *runner.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	return Render(f, res)
}

// Render writes the HTML report for a run.
func Render(w io.Writer, res *runner.Result) error {
	return page(res).Render(w)
}

func page(res *runner.Result) gomponents.Node {
	sections := []gomponents.Node{
		summarySection(res),
	}
	for _, tr := range res.Templates {
		sections = append(sections, templateSection(tr))
	}
	if len(res.Fileset) > 0 {
		sections = append(sections, filesetSection(res.Fileset))
	}

	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text("odilint report")),
			html.StyleEl(gomponents.Raw(pageCSS)),
		),
		html.Body(
			html.Main(
				html.H1(gomponents.Text("ODI/XDL validation report")),
				gomponents.Group(sections),
			),
		),
	)
}

func summarySection(res *runner.Result) gomponents.Node {
	counts := res.Counts()
	return html.Section(
		html.P(html.Class("muted"),
			gomponents.Text(fmt.Sprintf("Run %s, started %s, took %s",
				res.ID,
				res.StartedAt.Format(time.RFC3339),
				res.Duration.Round(time.Millisecond)))),
		html.Table(
			html.THead(html.Tr(
				html.Th(gomponents.Text("Files checked")),
				html.Th(gomponents.Text("Violations")),
				html.Th(gomponents.Text("Errors")),
				html.Th(gomponents.Text("Warnings")),
				html.Th(gomponents.Text("Info")),
				html.Th(gomponents.Text("Hints")),
			)),
			html.TBody(html.Tr(
				html.Td(gomponents.Text(fmt.Sprint(res.FilesChecked()))),
				html.Td(gomponents.Text(fmt.Sprint(res.TotalViolations()))),
				html.Td(gomponents.Text(fmt.Sprint(counts[check.SeverityError]))),
				html.Td(gomponents.Text(fmt.Sprint(counts[check.SeverityWarning]))),
				html.Td(gomponents.Text(fmt.Sprint(counts[check.SeverityInfo]))),
				html.Td(gomponents.Text(fmt.Sprint(counts[check.SeverityHint]))),
			)),
		),
	)
}

func templateSection(tr runner.TemplateResult) gomponents.Node {
	body := []gomponents.Node{
		html.H2(
			gomponents.Text(tr.Tag+" "),
			statusBadge(tr.Status),
		),
	}
	if tr.Status == runner.StatusSkipped {
		body = append(body, html.P(html.Class("muted"), gomponents.Text(tr.Reason)))
		return html.Section(body...)
	}

	for _, f := range tr.Files {
		body = append(body, fileBlock(f))
	}
	return html.Section(body...)
}

func fileBlock(f runner.FileResult) gomponents.Node {
	nodes := []gomponents.Node{
		html.P(
			html.Strong(gomponents.Text(f.Name)),
			html.Span(html.Class("muted"),
				gomponents.Text(fmt.Sprintf(" (%d rows, %d violations)", f.Rows, len(f.Violations)))),
		),
	}
	if len(f.Violations) > 0 {
		nodes = append(nodes, violationTable(f.Violations, false))
	}
	return html.Div(nodes...)
}

func filesetSection(violations []check.Violation) gomponents.Node {
	return html.Section(
		html.H2(gomponents.Text("Cross-file checks")),
		violationTable(violations, true),
	)
}

func violationTable(violations []check.Violation, withFile bool) gomponents.Node {
	head := []gomponents.Node{
		html.Th(gomponents.Text("Check")),
		html.Th(gomponents.Text("Severity")),
	}
	if withFile {
		head = append(head, html.Th(gomponents.Text("File")))
	}
	head = append(head,
		html.Th(gomponents.Text("Line")),
		html.Th(gomponents.Text("Message")),
	)

	rows := make([]gomponents.Node, 0, len(violations))
	for _, v := range violations {
		line := "-"
		if v.Line > 0 {
			line = fmt.Sprint(v.Line)
		}
		cells := []gomponents.Node{
			html.Td(gomponents.Text(v.CheckID)),
			html.Td(html.Class("sev-"+v.Severity.String()), gomponents.Text(v.Severity.String())),
		}
		if withFile {
			cells = append(cells, html.Td(gomponents.Text(v.File)))
		}
		cells = append(cells,
			html.Td(gomponents.Text(line)),
			html.Td(gomponents.Text(v.Message)),
		)
		rows = append(rows, html.Tr(cells...))
	}

	return html.Table(
		html.THead(html.Tr(head...)),
		html.TBody(rows...),
	)
}

func statusBadge(s runner.Status) gomponents.Node {
	return html.Span(html.Class("badge "+string(s)), gomponents.Text(string(s)))
}
