package variant

import (
	"sort"
	"sync"
)

// Registry is a named collection of schemas.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry registers the provided schemas, failing on duplicate names.
func NewRegistry(schemas ...*Schema) (*Registry, error) {
	r := &Registry{schemas: make(map[string]*Schema, len(schemas))}
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a schema under its name.
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return &MalformedSchemaError{Reason: "nil schema"}
	}
	if s.name == "" {
		return &MalformedSchemaError{Reason: "schema registered without a name"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.schemas[s.name]; dup {
		return &MalformedSchemaError{Schema: s.name, Reason: "schema registered twice"}
	}
	r.schemas[s.name] = s
	return nil
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns the registered schema names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
