package check

// Config controls which checks are enabled and their severity.
type Config struct {
	// DisabledChecks contains check IDs to skip
	DisabledChecks map[string]bool

	// SeverityOverrides changes the default severity of checks
	SeverityOverrides map[string]Severity

	// RuleOptions carries check-specific options keyed by check ID
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all checks enabled.
func NewConfig() *Config {
	return &Config{
		DisabledChecks:    make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// IsDisabled returns true if the check should be skipped.
func (c *Config) IsDisabled(checkID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledChecks[checkID]
}

// GetSeverity returns the severity for a check, applying any override.
func (c *Config) GetSeverity(checkID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[checkID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns check-specific options, or nil when none are set.
func (c *Config) GetRuleOptions(checkID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[checkID]
}

// Disable disables a check by ID.
func (c *Config) Disable(checkID string) *Config {
	c.DisabledChecks[checkID] = true
	return c
}

// SetSeverity overrides the severity for a check.
func (c *Config) SetSeverity(checkID string, severity Severity) *Config {
	c.SeverityOverrides[checkID] = severity
	return c
}

// SetRuleOptions sets check-specific options.
func (c *Config) SetRuleOptions(checkID string, opts map[string]any) *Config {
	c.RuleOptions[checkID] = opts
	return c
}
