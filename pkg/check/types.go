// Package check provides data-driven validation of ODI/XDL export files.
// Checks are stateless definitions registered at init time; all context
// comes via the check function parameters. The Analyzer runs every enabled
// check against a loaded file and collects violations.
package check

import (
	"strings"

	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

// Severity indicates the importance of a violation.
type Severity int

// Severity levels for violations.
const (
	// SeverityError indicates a critical issue that should be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityWarning, false
	}
}

// Violation represents a validation finding.
type Violation struct {
	CheckID  string
	Severity Severity
	Message  string
	File     string            // base name of the offending file
	Line     int               // 1-based data line; 0 means the whole file
	Columns  map[string]string // offending column -> value, when applicable
}

// CheckFunc analyzes a loaded file against a template rule set and returns
// violations. The opts parameter carries check-specific options from
// configuration.
type CheckFunc func(f *odifile.File, tpl schema.Template, opts map[string]any) []Violation

// Def is a data-driven check definition.
type Def struct {
	ID          string    // Unique identifier, e.g. "PK02"
	Name        string    // Human-readable name, e.g. "primary-key-unique"
	Group       string    // Category, e.g. "file", "key", "format"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this check accepts

	// Documentation fields for the checks command
	Rationale string // Why this check exists
	Fix       string // How to fix violations (when not obvious)
}
