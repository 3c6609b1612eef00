package pipeline

import (
	"fmt"
	"sync"
)

// Registry maps pipeline names to lazily constructed singleton pipelines.
// It is built once at startup and passed to request handlers; there is no
// package-level instance.
type Registry struct {
	mu        sync.Mutex
	builders  map[string]func() (*Pipeline, error)
	pipelines map[string]*Pipeline
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders:  make(map[string]func() (*Pipeline, error)),
		pipelines: make(map[string]*Pipeline),
	}
}

// Register adds a named pipeline builder. The builder runs at most once, on
// first Get.
func (r *Registry) Register(name string, builder func() (*Pipeline, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[name] = builder
}

// Get returns the named pipeline, constructing it on first use.
func (r *Registry) Get(name string) (*Pipeline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.pipelines[name]; ok {
		return p, nil
	}
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown pipeline %q", name)
	}
	p, err := builder()
	if err != nil {
		return nil, err
	}
	r.pipelines[name] = p
	return p, nil
}

// Names returns the registered pipeline names.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	return names
}
