package fileset

import "github.com/odilint/odilint/pkg/check"

// Analyzer runs cross-file rules against the discovered file set.
type Analyzer struct {
	config *AnalyzerConfig
}

// AnalyzerConfig holds configuration for the cross-file analyzer.
type AnalyzerConfig struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]check.Severity
}

// NewAnalyzerConfig creates a default configuration.
func NewAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]check.Severity),
	}
}

// NewAnalyzer creates a new cross-file analyzer with optional configuration.
func NewAnalyzer(config *AnalyzerConfig) *Analyzer {
	if config == nil {
		config = NewAnalyzerConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all registered cross-file rules against the context.
func (a *Analyzer) Analyze(ctx *Context) []check.Violation {
	if ctx == nil {
		return nil
	}

	var violations []check.Violation
	for _, rule := range GetAll() {
		if a.config.DisabledRules[rule.ID] {
			continue
		}

		found := rule.Check(ctx)
		for i := range found {
			if sev, ok := a.config.SeverityOverrides[rule.ID]; ok {
				found[i].Severity = sev
			}
		}
		violations = append(violations, found...)
	}
	return violations
}
