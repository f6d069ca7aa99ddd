package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/odilint/odilint/internal/cli/config"
	"github.com/odilint/odilint/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		SourceDir:    getEnvOrDefault("ODILINT_SOURCE_DIR", config.DefaultSourceDir),
		HeadersDir:   getEnvOrDefault("ODILINT_HEADERS_DIR", config.DefaultHeadersDir),
		Severity:     getEnvOrDefault("ODILINT_SEVERITY", config.DefaultSeverity),
		OutputFormat: getEnvOrDefault("ODILINT_OUTPUT", config.DefaultOutput),
		Report:       os.Getenv("ODILINT_REPORT"),
		Verbose:      os.Getenv("ODILINT_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
