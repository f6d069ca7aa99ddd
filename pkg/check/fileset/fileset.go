// Package fileset provides cross-file checks over the whole discovered set
// of export files. Paired templates (TXSTA/TXTA) are validated here: file
// pairing by name and key containment between companions.
package fileset

import (
	"strings"
	"sync"

	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/odifile"
)

// Context provides access to the discovered files for cross-file analysis.
type Context struct {
	files map[string][]*odifile.File // upper-cased tag -> loaded files
}

// NewContext creates a context over loaded files grouped by template tag.
func NewContext(files map[string][]*odifile.File) *Context {
	normalized := make(map[string][]*odifile.File, len(files))
	for tag, fs := range files {
		normalized[strings.ToUpper(tag)] = fs
	}
	return &Context{files: normalized}
}

// Files returns the loaded files for a template tag.
func (c *Context) Files(tag string) []*odifile.File {
	return c.files[strings.ToUpper(tag)]
}

// Tags returns the tags that have at least one loaded file.
func (c *Context) Tags() []string {
	tags := make([]string, 0, len(c.files))
	for tag := range c.files {
		tags = append(tags, tag)
	}
	return tags
}

// RuleDef is a cross-file check definition.
type RuleDef struct {
	ID          string   // Unique identifier, e.g. "XF01"
	Name        string   // Human-readable name, e.g. "file-pairs"
	Group       string   // Category, always "fileset" for built-ins
	Description string   // Human-readable description
	Severity    check.Severity
	Check       Check    // The check function
	ConfigKeys  []string // Configuration keys this check accepts
}

// Check is the function signature for cross-file checks.
type Check func(ctx *Context) []check.Violation

// globalRegistry is the single global registry for cross-file checks.
var globalRegistry = &registry{
	rules: make(map[string]RuleDef),
}

type registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// GetAll returns all registered cross-file rules.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// Count returns the number of registered cross-file rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}
