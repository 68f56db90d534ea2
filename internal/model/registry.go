package model

import "fmt"

// Registry is an ordered mapping from model name to its FactSet. Iteration
// order is the insertion order, which downstream code relies on for
// deterministic presence lists and the first-wins best-model tie-break.
type Registry struct {
	names []string
	sets  map[string]*FactSet
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]*FactSet)}
}

// Add appends a named fact set. Model names must be unique.
func (r *Registry) Add(name string, fs *FactSet) error {
	if _, exists := r.sets[name]; exists {
		return fmt.Errorf("duplicate model name %q", name)
	}
	r.names = append(r.names, name)
	r.sets[name] = fs
	return nil
}

// Names returns the model names in insertion order. The returned slice is
// a copy; callers may reorder it freely.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Get returns the fact set for a model name.
func (r *Registry) Get(name string) (*FactSet, bool) {
	fs, ok := r.sets[name]
	return fs, ok
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.names)
}
