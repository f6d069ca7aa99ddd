package check

import (
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

// Analyzer runs registered checks against loaded export files.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all enabled checks against the file and returns violations.
// Checks are independent: a failing check never blocks the others.
func (a *Analyzer) Analyze(f *odifile.File, tpl schema.Template) []Violation {
	if f == nil {
		return nil
	}

	var violations []Violation
	for _, def := range GetAll() {
		if a.config.IsDisabled(def.ID) {
			continue
		}

		opts := a.config.GetRuleOptions(def.ID)
		found := def.Check(f, tpl, opts)

		for i := range found {
			found[i].Severity = a.config.GetSeverity(def.ID, found[i].Severity)
			if found[i].File == "" {
				found[i].File = f.Name
			}
		}
		violations = append(violations, found...)
	}
	return violations
}
