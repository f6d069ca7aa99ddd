package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odilint/odilint/internal/cli/output"
	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/check/fileset"
	_ "github.com/odilint/odilint/pkg/check/fileset/rules" // register cross-file checks
	_ "github.com/odilint/odilint/pkg/check/rules"         // register file and row checks
)

// ChecksOptions holds options for the checks command.
type ChecksOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// checkInfo is a uniform view over file and cross-file check definitions.
type checkInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"` // file, fileset
	Group       string   `json:"group"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	ConfigKeys  []string `json:"config_keys,omitempty"`
	Rationale   string   `json:"rationale,omitempty"`
	Fix         string   `json:"fix,omitempty"`
}

// NewChecksCommand creates the checks command.
func NewChecksCommand() *cobra.Command {
	opts := &ChecksOptions{}
	cmd := &cobra.Command{
		Use:   "checks [check-id]",
		Short: "List available checks",
		Long: `List all available checks with their documentation.

Checks are organized by group (file, key, required, format, fileset).
Use --verbose to see descriptions and fix guidance.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all checks
  odilint checks

  # Show details for a specific check
  odilint checks PK02

  # List checks in the format group
  odilint checks --group format

  # Show full documentation
  odilint checks -V

  # Output as JSON
  odilint checks --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showCheck(cmd, args[0], opts)
			}
			return listChecks(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func allCheckInfos() []checkInfo {
	var infos []checkInfo
	for _, def := range check.GetAll() {
		infos = append(infos, checkInfo{
			ID:          def.ID,
			Name:        def.Name,
			Type:        "file",
			Group:       def.Group,
			Description: def.Description,
			Severity:    def.Severity.String(),
			ConfigKeys:  def.ConfigKeys,
			Rationale:   def.Rationale,
			Fix:         def.Fix,
		})
	}
	for _, rule := range fileset.GetAll() {
		infos = append(infos, checkInfo{
			ID:          rule.ID,
			Name:        rule.Name,
			Type:        "fileset",
			Group:       rule.Group,
			Description: rule.Description,
			Severity:    rule.Severity.String(),
			ConfigKeys:  rule.ConfigKeys,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Type != infos[j].Type {
			return infos[i].Type < infos[j].Type
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

func listChecks(cmd *cobra.Command, opts *ChecksOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	infos := allCheckInfos()
	if opts.Group != "" {
		var filtered []checkInfo
		for _, ci := range infos {
			if ci.Group == opts.Group {
				filtered = append(filtered, ci)
			}
		}
		infos = filtered
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]any{
			"checks": infos,
			"count":  len(infos),
		})
	case output.ModeMarkdown:
		return listChecksMarkdown(r, infos, opts.Verbose)
	default:
		return listChecksText(r, infos, opts.Verbose)
	}
}

func listChecksText(r *output.Renderer, infos []checkInfo, verbose bool) error {
	styles := r.Styles()

	fileCount, filesetCount := 0, 0
	for _, ci := range infos {
		if ci.Type == "file" {
			fileCount++
		} else {
			filesetCount++
		}
	}

	r.Println("")
	r.Println(styles.Bold.Render(fmt.Sprintf("Checks (%d file, %d cross-file)", fileCount, filesetCount)))
	r.Println("")

	currentGroup := ""
	for _, ci := range infos {
		if ci.Group != currentGroup {
			currentGroup = ci.Group
			r.Println(styles.Bold.Render("  " + capitalizeFirst(currentGroup)))
		}
		r.Printf("    %s  %s - %s\n",
			styles.Muted.Render(ci.ID),
			ci.Name,
			severityLabel(styles, ci.Severity),
		)
		if verbose {
			r.Println(styles.Muted.Render("        " + ci.Description))
			if ci.Rationale != "" {
				r.Println(styles.Muted.Render("        Why: " + ci.Rationale))
			}
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'odilint checks <check-id>' for detailed documentation"))
	r.Println("")
	return nil
}

func listChecksMarkdown(r *output.Renderer, infos []checkInfo, verbose bool) error {
	r.Println("# Checks")
	r.Println("")

	currentGroup := ""
	for _, ci := range infos {
		if ci.Group != currentGroup {
			currentGroup = ci.Group
			r.Println("## " + capitalizeFirst(currentGroup))
			r.Println("")
		}
		r.Printf("- **%s** - %s (`%s`)\n", ci.ID, ci.Name, ci.Severity)
		if verbose {
			r.Println("  " + ci.Description)
		}
	}

	r.Println("")
	return nil
}

func showCheck(cmd *cobra.Command, checkID string, opts *ChecksOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	var found *checkInfo
	for _, ci := range allCheckInfos() {
		if strings.EqualFold(ci.ID, checkID) {
			found = &ci
			break
		}
	}
	if found == nil {
		return fmt.Errorf("check %q not found", checkID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(found)
	case output.ModeMarkdown:
		r.Printf("# %s - %s\n\n", found.ID, found.Name)
		r.Printf("**Type:** %s | **Group:** %s | **Severity:** `%s`\n\n", found.Type, found.Group, found.Severity)
		r.Println(found.Description)
		if found.Fix != "" {
			r.Println("")
			r.Println("## How to Fix")
			r.Println("")
			r.Println(found.Fix)
		}
		r.Println("")
		return nil
	default:
		return showCheckText(r, found)
	}
}

func showCheckText(r *output.Renderer, ci *checkInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Bold.Render(fmt.Sprintf("%s - %s", ci.ID, ci.Name)))
	r.Println("")
	r.Printf("  %s: %s\n", styles.Bold.Render("Type"), ci.Type)
	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), ci.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), ci.Severity)
	r.Println("")
	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + ci.Description)
	r.Println("")
	if ci.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + ci.Rationale)
		r.Println("")
	}
	if ci.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + ci.Fix)
		r.Println("")
	}
	if len(ci.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(ci.ConfigKeys, ", "))
		r.Println("")
	}
	return nil
}

func severityLabel(styles output.Styles, sev string) string {
	switch sev {
	case "error":
		return styles.Error.Render(sev)
	case "warning":
		return styles.Warning.Render(sev)
	case "info":
		return styles.Info.Render(sev)
	default:
		return styles.Muted.Render(sev)
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
