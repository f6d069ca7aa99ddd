// Package runner orchestrates a validation run: template discovery, file
// loading, per-file checks and cross-file checks, collected into a Result.
package runner

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/check/fileset"
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

// Status classifies the outcome of one template's validation.
type Status string

// Template statuses.
const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Config holds options for a validation run.
type Config struct {
	SourceDir  string
	HeadersDir string
	Templates  []string // restrict to these tags; empty means all registered
	CheckCfg   *check.Config
	FilesetCfg *fileset.AnalyzerConfig
	Logger     *slog.Logger
}

// FileResult holds the validation outcome for a single file.
type FileResult struct {
	Path       string
	Name       string
	Rows       int
	Violations []check.Violation
}

// TemplateResult holds the validation outcome for one template.
type TemplateResult struct {
	Tag    string
	Status Status
	Reason string // set when skipped
	Files  []FileResult
}

// Violations returns the total violation count across the template's files.
func (tr TemplateResult) Violations() int {
	n := 0
	for _, f := range tr.Files {
		n += len(f.Violations)
	}
	return n
}

// Result is the outcome of a whole validation run.
type Result struct {
	ID        string
	StartedAt time.Time
	Duration  time.Duration
	Templates []TemplateResult
	Fileset   []check.Violation // cross-file findings, reported separately
}

// Counts aggregates violations by severity across files and fileset checks.
func (r *Result) Counts() map[check.Severity]int {
	counts := make(map[check.Severity]int)
	for _, tr := range r.Templates {
		for _, f := range tr.Files {
			for _, v := range f.Violations {
				counts[v.Severity]++
			}
		}
	}
	for _, v := range r.Fileset {
		counts[v.Severity]++
	}
	return counts
}

// TotalViolations returns the number of findings across the whole run.
func (r *Result) TotalViolations() int {
	n := len(r.Fileset)
	for _, tr := range r.Templates {
		n += tr.Violations()
	}
	return n
}

// FilesChecked returns the number of files that were loaded and analyzed.
func (r *Result) FilesChecked() int {
	n := 0
	for _, tr := range r.Templates {
		n += len(tr.Files)
	}
	return n
}

// Run validates every selected template's source files and returns the
// collected results. Templates without matching files are skipped, not
// failed. Only I/O and configuration problems surface as errors.
func Run(cfg Config) (*Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	templates, err := selectTemplates(cfg.Templates)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
	analyzer := check.NewAnalyzer(cfg.CheckCfg)
	loaded := make(map[string][]*odifile.File)

	for _, tpl := range templates {
		tr := TemplateResult{Tag: tpl.Tag}

		paths, err := odifile.Discover(cfg.SourceDir, tpl.Tag)
		if err != nil {
			return nil, fmt.Errorf("discover %s files: %w", tpl.Tag, err)
		}
		if len(paths) == 0 {
			tr.Status = StatusSkipped
			tr.Reason = fmt.Sprintf("no %s files found", tpl.Tag)
			logger.Debug("template skipped", "template", tpl.Tag, "reason", tr.Reason)
			result.Templates = append(result.Templates, tr)
			continue
		}

		if !odifile.HasHeader(cfg.HeadersDir, tpl.Tag) {
			tr.Status = StatusSkipped
			tr.Reason = fmt.Sprintf("no header fixture for %s in %s", tpl.Tag, cfg.HeadersDir)
			logger.Warn("template skipped", "template", tpl.Tag, "reason", tr.Reason)
			result.Templates = append(result.Templates, tr)
			continue
		}
		header, err := odifile.LoadHeader(cfg.HeadersDir, tpl.Tag)
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			f, err := odifile.Load(path, tpl.Tag, header)
			if err != nil {
				return nil, err
			}
			loaded[strings.ToUpper(tpl.Tag)] = append(loaded[strings.ToUpper(tpl.Tag)], f)

			violations := analyzer.Analyze(f, tpl)
			tr.Files = append(tr.Files, FileResult{
				Path:       path,
				Name:       filepath.Base(path),
				Rows:       len(f.Rows),
				Violations: violations,
			})
			logger.Debug("file analyzed",
				"template", tpl.Tag, "file", filepath.Base(path),
				"rows", len(f.Rows), "violations", len(violations))
		}

		tr.Status = StatusPassed
		if tr.Violations() > 0 {
			tr.Status = StatusFailed
		}
		result.Templates = append(result.Templates, tr)
	}

	setAnalyzer := fileset.NewAnalyzer(cfg.FilesetCfg)
	result.Fileset = setAnalyzer.Analyze(fileset.NewContext(loaded))

	result.Duration = time.Since(result.StartedAt)
	return result, nil
}

// selectTemplates resolves the requested tags against the registry, or
// returns all registered templates when no filter is given.
func selectTemplates(tags []string) ([]schema.Template, error) {
	if len(tags) == 0 {
		return schema.All(), nil
	}

	templates := make([]schema.Template, 0, len(tags))
	for _, tag := range tags {
		tpl, ok := schema.Get(tag)
		if !ok {
			return nil, fmt.Errorf("unknown template %q (registered: %s)",
				tag, strings.Join(schema.Tags(), ", "))
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}
