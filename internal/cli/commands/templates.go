package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/odilint/odilint/internal/cli/output"
	"github.com/odilint/odilint/pkg/schema"
)

// TemplatesOptions holds options for the templates command.
type TemplatesOptions struct {
	Format string // Output format
}

// NewTemplatesCommand creates the templates command.
func NewTemplatesCommand() *cobra.Command {
	opts := &TemplatesOptions{}
	cmd := &cobra.Command{
		Use:   "templates [tag]",
		Short: "List registered export templates",
		Long: `List the export templates known to the validator.

Built-in templates cover the standard transaction and assignment
exports. Additional templates declared in odilint.yaml are merged in.

Output adapts to environment:
  - Terminal: Styled table output
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all templates
  odilint templates

  # Show details for one template
  odilint templates TXTA

  # Output as JSON
  odilint templates --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showTemplate(cmd, args[0], opts)
			}
			return listTemplates(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listTemplates(cmd *cobra.Command, opts *TemplatesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}
	cmdCtx.Cfg.RegisterTemplates()

	templates := schema.All()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]any{
			"templates": templates,
			"count":     len(templates),
		})
	case output.ModeMarkdown:
		r.Println("# Templates")
		r.Println("")
		for _, tpl := range templates {
			r.Printf("- **%s** - %s\n", tpl.Tag, tpl.Description)
		}
		r.Println("")
		return nil
	default:
		return listTemplatesText(r, templates)
	}
}

func listTemplatesText(r *output.Renderer, templates []schema.Template) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Bold.Render(fmt.Sprintf("Templates (%d)", len(templates))))
	r.Println("")

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Tag", "Description", "Key", "Required", "Pair"})

	for _, tpl := range templates {
		pair := "-"
		if tpl.PairTag != "" {
			pair = tpl.PairTag
		}
		t.AppendRow(table.Row{
			tpl.Tag,
			tpl.Description,
			strings.Join(tpl.PrimaryKey, ", "),
			len(tpl.Required),
			pair,
		})
	}
	t.Render()

	r.Println("")
	r.Println(styles.Muted.Render("Use 'odilint templates <tag>' for the full rule set"))
	r.Println("")
	return nil
}

func showTemplate(cmd *cobra.Command, tag string, opts *TemplatesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}
	cmdCtx.Cfg.RegisterTemplates()

	tpl, ok := schema.Get(tag)
	if !ok {
		return fmt.Errorf("template %q not found", strings.ToUpper(tag))
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(tpl)
	case output.ModeMarkdown:
		return showTemplateMarkdown(r, tpl)
	default:
		return showTemplateText(r, tpl)
	}
}

func showTemplateText(r *output.Renderer, tpl schema.Template) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Bold.Render(fmt.Sprintf("%s - %s", tpl.Tag, tpl.Description)))
	r.Println("")

	printList := func(label string, cols []string) {
		if len(cols) == 0 {
			return
		}
		r.Printf("  %s: %s\n", styles.Bold.Render(label), strings.Join(cols, ", "))
	}

	printList("Primary key", tpl.PrimaryKey)
	printList("Required", tpl.Required)
	printList("Any of", tpl.AnyOf)
	printList("Unique over", tpl.UniqueKey())
	printList("Numbers", tpl.Numbers)
	printList("Dates", tpl.Dates)
	printList("Booleans", tpl.Booleans)
	if len(tpl.Dependents) > 0 {
		var pairs []string
		for col, dep := range tpl.Dependents {
			pairs = append(pairs, fmt.Sprintf("%s requires %s", col, dep))
		}
		r.Printf("  %s: %s\n", styles.Bold.Render("Dependents"), strings.Join(pairs, "; "))
	}
	if tpl.PairTag != "" {
		r.Printf("  %s: %s (key width %d)\n", styles.Bold.Render("Paired with"), tpl.PairTag, tpl.PairKeyWidth)
	}
	r.Println("")
	return nil
}

func showTemplateMarkdown(r *output.Renderer, tpl schema.Template) error {
	r.Printf("# %s - %s\n\n", tpl.Tag, tpl.Description)
	r.Println(output.FormatKeyValue("Primary key", strings.Join(tpl.PrimaryKey, ", ")))
	r.Println(output.FormatKeyValue("Required", strings.Join(tpl.Required, ", ")))
	if len(tpl.AnyOf) > 0 {
		r.Println(output.FormatKeyValue("Any of", strings.Join(tpl.AnyOf, ", ")))
	}
	if len(tpl.Numbers) > 0 {
		r.Println(output.FormatKeyValue("Numbers", strings.Join(tpl.Numbers, ", ")))
	}
	if len(tpl.Dates) > 0 {
		r.Println(output.FormatKeyValue("Dates", strings.Join(tpl.Dates, ", ")))
	}
	if len(tpl.Booleans) > 0 {
		r.Println(output.FormatKeyValue("Booleans", strings.Join(tpl.Booleans, ", ")))
	}
	if tpl.PairTag != "" {
		r.Println(output.FormatKeyValue("Paired with", tpl.PairTag))
	}
	r.Println("")
	return nil
}
