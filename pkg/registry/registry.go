package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/conform/pkg/schema"
)

// Registry manages named predicates that schema documents can reference.
type Registry struct {
	mu    sync.RWMutex
	preds map[string]schema.Predicate
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		preds: make(map[string]schema.Predicate),
	}
}

// Default returns a registry preloaded with the built-in predicates.
func Default() *Registry {
	r := NewRegistry()
	r.Register("non_empty", NonEmpty)
	r.Register("positive", Positive)
	r.Register("even", Even)
	return r
}

// Register adds a predicate to the registry.
// If a predicate with the same name exists, it is overwritten.
func (r *Registry) Register(name string, p schema.Predicate) {
	if p == nil {
		panic(fmt.Sprintf("registry: predicate %q is nil", name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preds[name] = p
}

// Lookup returns the predicate registered under name.
func (r *Registry) Lookup(name string) (schema.Predicate, error) {
	r.mu.RLock()
	p, ok := r.preds[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("predicate not found: %s", name)
	}
	return p, nil
}

// Names lists the registered predicate names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.preds))
	for name := range r.preds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NonEmpty rejects empty and whitespace-only strings.
func NonEmpty(value any) error {
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return schema.Errorf("Value must not be empty")
	}
	return nil
}

// Positive rejects numbers that are zero or negative.
func Positive(value any) error {
	if f, ok := schema.AsFloat64(value); ok && f <= 0 {
		return schema.Errorf("%v is not a positive number", value)
	}
	return nil
}

// Even rejects integral numbers that are odd.
func Even(value any) error {
	if n, ok := schema.AsInt64(value); ok && n%2 != 0 {
		return schema.Errorf("%d is not an even number", n)
	}
	return nil
}
