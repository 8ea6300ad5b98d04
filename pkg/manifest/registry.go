package manifest

import (
	"context"
	"fmt"
	"sync"
)

// HandlerFunc is a manifest handler implementation. It receives the
// positional argument values extracted by the command's constraints, in
// declaration order.
type HandlerFunc func(ctx context.Context, args []any) error

// Registry maps handler names to implementations.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]HandlerFunc),
	}
}

// Register adds a handler. An existing handler with the same name is
// overwritten.
func (r *Registry) Register(name string, fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = fn
}

// Execute looks up a handler by name and runs it.
func (r *Registry) Execute(ctx context.Context, name string, args []any) error {
	r.mu.RLock()
	fn, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("handler not found: %s", name)
	}
	return fn(ctx, args)
}

// Missing returns the handler names the spec references but the registry
// lacks, so callers can fail fast before dispatching.
func (r *Registry) Missing(spec *Spec) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var missing []string
	var walk func(cmds []CommandSpec)
	walk = func(cmds []CommandSpec) {
		for _, c := range cmds {
			if c.Handler != "" {
				if _, ok := r.handlers[c.Handler]; !ok {
					missing = append(missing, c.Handler)
				}
			}
			walk(c.Commands)
		}
	}
	walk(spec.Commands)
	return missing
}
