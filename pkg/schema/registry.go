package schema

import (
	"sort"
	"strings"
	"sync"
)

// globalRegistry is the single global registry for template rule sets.
var globalRegistry = &Registry{
	templates: make(map[string]Template),
}

// Registry stores registered templates keyed by upper-cased tag.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// Register adds a template to the global registry.
// Built-in templates call this from init(); config-declared templates are
// registered at load time. Registering an existing tag replaces it.
func Register(t Template) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.templates[strings.ToUpper(t.Tag)] = t
}

// Get returns a template by tag (case-insensitive).
func Get(tag string) (Template, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	t, ok := globalRegistry.templates[strings.ToUpper(tag)]
	return t, ok
}

// All returns all registered templates sorted by tag.
func All() []Template {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	templates := make([]Template, 0, len(globalRegistry.templates))
	for _, t := range globalRegistry.templates {
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Tag < templates[j].Tag
	})
	return templates
}

// Tags returns the sorted tags of all registered templates.
func Tags() []string {
	all := All()
	tags := make([]string, len(all))
	for i, t := range all {
		tags[i] = t.Tag
	}
	return tags
}

// Count returns the number of registered templates.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.templates)
}
