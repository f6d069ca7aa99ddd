package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/odilint/odilint/internal/cli/output"
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

// DiscoverOptions holds options for the discover command.
type DiscoverOptions struct {
	Format string // Output format
}

// discoverEntry groups the files found for one template tag.
type discoverEntry struct {
	Tag       string   `json:"tag"`
	HasHeader bool     `json:"has_header"`
	Files     []string `json:"files"`
}

// NewDiscoverCommand creates the discover command.
func NewDiscoverCommand() *cobra.Command {
	opts := &DiscoverOptions{}
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Show which export files match each template",
		Long: `Scan the source directory and report the export files matched to
each registered template, without running any checks.

Templates with no matching files are listed as absent. A template
whose header fixture is missing from the headers directory is flagged,
since its files cannot be validated.

Output adapts to environment:
  - Terminal: Styled summary with success indicator
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Show discovered files
  odilint discover

  # Discover against another source directory
  odilint discover --source-dir ./exports

  # Output as JSON
  odilint discover --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiscover(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func runDiscover(cmd *cobra.Command, opts *DiscoverOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	if err := cfg.ValidateDirectories(); err != nil {
		return err
	}
	cfg.RegisterTemplates()

	var entries []discoverEntry
	total := 0
	for _, tpl := range schema.All() {
		paths, err := odifile.Discover(cfg.SourceDir, tpl.Tag)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", cfg.SourceDir, err)
		}
		entry := discoverEntry{
			Tag:       tpl.Tag,
			HasHeader: odifile.HasHeader(cfg.HeadersDir, tpl.Tag),
		}
		for _, p := range paths {
			entry.Files = append(entry.Files, filepath.Base(p))
		}
		total += len(paths)
		entries = append(entries, entry)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]any{
			"source_dir": cfg.SourceDir,
			"templates":  entries,
			"file_count": total,
		})
	case output.ModeMarkdown:
		return discoverMarkdown(r, cfg.SourceDir, entries, total)
	default:
		return discoverText(r, entries, total)
	}
}

func discoverText(r *output.Renderer, entries []discoverEntry, total int) error {
	r.Success(fmt.Sprintf("Found %d export files", total))
	r.Println("")
	for _, e := range entries {
		if len(e.Files) == 0 {
			r.Muted(fmt.Sprintf("  %s: no files", e.Tag))
			continue
		}
		label := e.Tag
		if !e.HasHeader {
			label += " (missing header fixture)"
		}
		r.Println(r.Styles().Bold.Render("  " + label))
		for _, name := range e.Files {
			r.Printf("    - %s\n", name)
		}
	}
	return nil
}

func discoverMarkdown(r *output.Renderer, sourceDir string, entries []discoverEntry, total int) error {
	r.Println(output.FormatHeader(1, "Discovery Results"))
	r.Println("")
	r.Println(output.FormatKeyValue("Source", sourceDir))
	r.Println(output.FormatKeyValue("Files", fmt.Sprintf("%d", total)))
	r.Println("")
	for _, e := range entries {
		r.Println(output.FormatHeader(2, e.Tag))
		if !e.HasHeader {
			r.Println("Missing header fixture.")
		}
		if len(e.Files) == 0 {
			r.Println("No files.")
		}
		for _, name := range e.Files {
			r.Println("- " + name)
		}
		r.Println("")
	}
	return nil
}
