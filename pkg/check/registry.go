package check

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for file and row checks.
var globalRegistry = &Registry{
	checks: make(map[string]Def),
}

// Registry stores registered checks for discovery.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Def // keyed by ID
}

// Register adds a check to the global registry.
// Call this from init() functions in check packages.
func Register(def Def) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.checks[def.ID] = def
}

// GetAll returns all registered checks sorted by ID.
func GetAll() []Def {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	checks := make([]Def, 0, len(globalRegistry.checks))
	for _, def := range globalRegistry.checks {
		checks = append(checks, def)
	}
	sort.Slice(checks, func(i, j int) bool {
		return checks[i].ID < checks[j].ID
	})
	return checks
}

// GetByID returns a check by its ID.
func GetByID(id string) (Def, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.checks[id]
	return def, ok
}

// GetByGroup returns all checks in a specific group, sorted by ID.
func GetByGroup(group string) []Def {
	var checks []Def
	for _, def := range GetAll() {
		if def.Group == group {
			checks = append(checks, def)
		}
	}
	return checks
}

// Count returns the number of registered checks.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.checks)
}

// Clear removes all registered checks. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.checks = make(map[string]Def)
}
