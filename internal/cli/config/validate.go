package config

import (
	"fmt"
	"os"

	"github.com/odilint/odilint/pkg/check"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source_dir is required")
	}
	if c.HeadersDir == "" {
		return fmt.Errorf("headers_dir is required")
	}
	if c.Severity != "" {
		if _, ok := check.ParseSeverity(c.Severity); !ok {
			return fmt.Errorf("invalid severity %q: use error, warning, info or hint", c.Severity)
		}
	}
	for _, tc := range c.Templates {
		if tc.Tag == "" {
			return fmt.Errorf("template declaration without a tag")
		}
	}
	// Directory existence is checked by the commands that need it, so help
	// and listing commands work without a project.
	return nil
}

// ValidateDirectories checks if required directories exist.
func (c *Config) ValidateDirectories() error {
	if _, err := os.Stat(c.SourceDir); os.IsNotExist(err) {
		return fmt.Errorf("source directory does not exist: %s\nHint: create the directory or use --source-dir to specify a different path", c.SourceDir)
	}
	if _, err := os.Stat(c.HeadersDir); os.IsNotExist(err) {
		return fmt.Errorf("headers directory does not exist: %s\nHint: create the directory or use --headers-dir to specify a different path", c.HeadersDir)
	}
	return nil
}
