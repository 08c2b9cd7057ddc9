package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrRendererNotFound is returned when a renderer name is not registered.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry stores renderers by name. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds renderers by Name(). The call fails on the first nil, unnamed
// or duplicate renderer; earlier ones stay registered.
func (r *Registry) Register(renderers ...Renderer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, renderer := range renderers {
		if renderer == nil {
			return errors.New("render: renderer is required")
		}
		name := renderer.Name()
		if name == "" {
			return errors.New("render: renderer name is required")
		}
		if _, exists := r.renderers[name]; exists {
			return fmt.Errorf("render: renderer %q already registered", name)
		}
		r.renderers[name] = renderer
	}
	return nil
}

// MustRegister panics on registration failure. Meant for init-time wiring.
func (r *Registry) MustRegister(renderers ...Renderer) {
	if err := r.Register(renderers...); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}
