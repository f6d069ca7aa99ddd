package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odilint/odilint/internal/cli/config"
	"github.com/odilint/odilint/internal/cli/output"
	"github.com/odilint/odilint/internal/report"
	"github.com/odilint/odilint/internal/runner"
	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/check/fileset"
	_ "github.com/odilint/odilint/pkg/check/fileset/rules" // register cross-file checks
	_ "github.com/odilint/odilint/pkg/check/rules"         // register file and row checks
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Templates []string // Template tags to validate; empty means all
	Format    string   // Output format: text, markdown, json
	Disable   []string // Check IDs to disable
	Severity  string   // Minimum severity: error, warning, info, hint
	Checks    []string // Run only specific checks
	Report    string   // HTML report path
	Watch     bool     // Re-run on source changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [template...]",
		Short: "Validate export files against template rule sets",
		Long: `Validate ODI/XDL export files in the source directory.

Every registered template's files are checked against its declared rule
set: required columns, primary key uniqueness, number/date/boolean
formats, unit type pairing and cross-file consistency for paired
templates. Templates without matching files are skipped.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Validate all templates
  odilint check

  # Validate specific templates
  odilint check TXSTA TXTA

  # Output as JSON
  odilint check --format json

  # Disable specific checks
  odilint check --disable NF02,BF01

  # Only report errors (ignore warnings/hints)
  odilint check --severity error

  # Write an HTML report
  odilint check --report report.html

  # Re-run whenever the source directory changes
  odilint check --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Templates = args
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Check IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Checks, "check", nil, "Run only specific checks")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Write an HTML report to this path")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-run when the source directory changes")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	if err := cfg.ValidateDirectories(); err != nil {
		return err
	}
	cfg.RegisterTemplates()

	severity := opts.Severity
	if severity == "" {
		severity = cfg.Severity
	}
	reportPath := opts.Report
	if reportPath == "" {
		reportPath = cfg.Report
	}

	runCfg := runner.Config{
		SourceDir:  cfg.SourceDir,
		HeadersDir: cfg.HeadersDir,
		Templates:  opts.Templates,
		CheckCfg:   buildCheckConfig(cfg, opts),
		FilesetCfg: buildFilesetConfig(cfg, opts),
		Logger:     cmdCtx.Logger,
	}

	runOnce := func() (bool, error) {
		res, err := runner.Run(runCfg)
		if err != nil {
			return false, err
		}

		filterResult(res, severity)

		if reportPath != "" {
			if err := report.Write(reportPath, res); err != nil {
				return false, err
			}
			cmdCtx.Logger.Debug("report written", "path", reportPath)
		}

		return renderCheckResult(r, res), nil
	}

	if opts.Watch {
		r.Muted(fmt.Sprintf("Watching %s (Ctrl-C to stop)", cfg.SourceDir))
		return runner.Watch(cmd.Context(), cfg.SourceDir, cmdCtx.Logger, func() {
			if _, err := runOnce(); err != nil {
				r.Println(r.Styles().Error.Render("Error: " + err.Error()))
			}
		})
	}

	hasIssues, err := runOnce()
	if err != nil {
		return err
	}
	// Exit with code 1 if issues found
	if hasIssues {
		return fmt.Errorf("validation issues found")
	}
	return nil
}

// buildCheckConfig merges project config and CLI flags into a check config.
// CLI flags take precedence.
func buildCheckConfig(cfg *config.Config, opts *CheckOptions) *check.Config {
	checkCfg := check.NewConfig()

	if cfg != nil && cfg.Checks != nil {
		for _, id := range cfg.Checks.Disabled {
			checkCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Checks.Severity {
			if s, ok := check.ParseSeverity(sev); ok {
				checkCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range cfg.Checks.Rules {
			checkCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	for _, id := range opts.Disable {
		checkCfg.Disable(strings.TrimSpace(id))
	}

	// If --check specified, disable all others
	if len(opts.Checks) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Checks {
			enabled[strings.TrimSpace(id)] = true
		}
		for _, def := range check.GetAll() {
			if !enabled[def.ID] {
				checkCfg.Disable(def.ID)
			}
		}
	}

	return checkCfg
}

// buildFilesetConfig mirrors buildCheckConfig for cross-file checks; the
// two share the disabled/severity config surface since check IDs are
// disjoint.
func buildFilesetConfig(cfg *config.Config, opts *CheckOptions) *fileset.AnalyzerConfig {
	fsCfg := fileset.NewAnalyzerConfig()

	if cfg != nil && cfg.Checks != nil {
		for _, id := range cfg.Checks.Disabled {
			fsCfg.DisabledRules[strings.TrimSpace(id)] = true
		}
		for id, sev := range cfg.Checks.Severity {
			if s, ok := check.ParseSeverity(sev); ok {
				fsCfg.SeverityOverrides[id] = s
			}
		}
	}

	for _, id := range opts.Disable {
		fsCfg.DisabledRules[strings.TrimSpace(id)] = true
	}

	if len(opts.Checks) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Checks {
			enabled[strings.TrimSpace(id)] = true
		}
		for _, rule := range fileset.GetAll() {
			if !enabled[rule.ID] {
				fsCfg.DisabledRules[rule.ID] = true
			}
		}
	}

	return fsCfg
}

// filterResult drops violations below the severity threshold and refreshes
// template statuses.
func filterResult(res *runner.Result, severityThreshold string) {
	threshold, ok := check.ParseSeverity(severityThreshold)
	if !ok {
		threshold = check.SeverityWarning
	}

	for ti := range res.Templates {
		tr := &res.Templates[ti]
		for fi := range tr.Files {
			var kept []check.Violation
			for _, v := range tr.Files[fi].Violations {
				if v.Severity <= threshold {
					kept = append(kept, v)
				}
			}
			tr.Files[fi].Violations = kept
		}
		if tr.Status != runner.StatusSkipped {
			tr.Status = runner.StatusPassed
			if tr.Violations() > 0 {
				tr.Status = runner.StatusFailed
			}
		}
	}

	var kept []check.Violation
	for _, v := range res.Fileset {
		if v.Severity <= threshold {
			kept = append(kept, v)
		}
	}
	res.Fileset = kept
}
