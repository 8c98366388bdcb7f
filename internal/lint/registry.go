package lint

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownRule is returned when a rule table names a rule that is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrDuplicateRule is returned when registering a rule name twice.
	ErrDuplicateRule = errors.New("duplicate rule")
)

// Registry holds rule implementations keyed by name.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// DefaultRegistry creates a registry with every built-in rule.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	for _, rule := range builtinRules() {
		r.rules[rule.Name()] = rule
	}

	return r
}

// Register adds a rule.
func (r *Registry) Register(rule Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[rule.Name()]; ok {
		return errors.Wrapf(ErrDuplicateRule, "%q", rule.Name())
	}

	r.rules[rule.Name()] = rule

	return nil
}

// Get returns the named rule.
func (r *Registry) Get(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[name]

	return rule, ok
}

// Names returns the registered rule names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// KnownRules returns the names of every built-in rule.
func KnownRules() []string {
	return DefaultRegistry().Names()
}

// IsKnownRule reports whether name is a built-in rule.
func IsKnownRule(name string) bool {
	_, ok := DefaultRegistry().Get(name)

	return ok
}
