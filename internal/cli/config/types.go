// Package config provides configuration management for the odilint CLI.
//
// Configuration is layered: flags > ODILINT_* environment variables >
// odilint.yaml > defaults. Template rule sets can be declared in the config
// file alongside the built-ins.
package config

import "github.com/odilint/odilint/pkg/schema"

// Config holds all CLI configuration options.
type Config struct {
	SourceDir    string           `koanf:"source_dir"`
	HeadersDir   string           `koanf:"headers_dir"`
	Report       string           `koanf:"report"`
	OutputFormat string           `koanf:"output"`
	Verbose      bool             `koanf:"verbose"`
	Severity     string           `koanf:"severity"`
	Checks       *ChecksConfig    `koanf:"checks"`
	Templates    []TemplateConfig `koanf:"templates"`

	// ProjectRoot is the resolved project directory, not a config key.
	ProjectRoot string `koanf:"-"`
}

// ChecksConfig tunes individual checks.
type ChecksConfig struct {
	// Disabled lists check IDs to skip.
	Disabled []string `koanf:"disabled"`

	// Severity overrides default severities, keyed by check ID.
	Severity map[string]string `koanf:"severity"`

	// Rules carries check-specific options, keyed by check ID.
	Rules map[string]map[string]any `koanf:"rules"`
}

// TemplateConfig declares a template rule set in the config file.
type TemplateConfig struct {
	Tag          string            `koanf:"tag"`
	Description  string            `koanf:"description"`
	PrimaryKey   []string          `koanf:"primary_key"`
	Required     []string          `koanf:"required"`
	AnyOf        []string          `koanf:"any_of"`
	Dependents   map[string]string `koanf:"dependents"`
	Numbers      []string          `koanf:"numbers"`
	Dates        []string          `koanf:"dates"`
	Booleans     []string          `koanf:"booleans"`
	UniqueExtra  []string          `koanf:"unique_extra"`
	PairTag      string            `koanf:"pair_tag"`
	PairKeyWidth int               `koanf:"pair_key_width"`
}

// ToTemplate converts the declaration into a schema template.
func (tc TemplateConfig) ToTemplate() schema.Template {
	return schema.Template{
		Tag:          tc.Tag,
		Description:  tc.Description,
		PrimaryKey:   tc.PrimaryKey,
		Required:     tc.Required,
		AnyOf:        tc.AnyOf,
		Dependents:   tc.Dependents,
		Numbers:      tc.Numbers,
		Dates:        tc.Dates,
		Booleans:     tc.Booleans,
		UniqueExtra:  tc.UniqueExtra,
		PairTag:      tc.PairTag,
		PairKeyWidth: tc.PairKeyWidth,
	}
}

// RegisterTemplates registers config-declared rule sets alongside the
// built-ins. A declaration with a built-in tag replaces it.
func (c *Config) RegisterTemplates() {
	for _, tc := range c.Templates {
		if tc.Tag == "" {
			continue
		}
		schema.Register(tc.ToTemplate())
	}
}

// Default configuration values.
const (
	DefaultSourceDir  = "source"
	DefaultHeadersDir = "headers"
	DefaultSeverity   = "warning"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
