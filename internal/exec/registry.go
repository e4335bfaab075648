package exec

import (
	"context"
	"fmt"
	"sync"
)

// Runner is a named unit of work a Registry can run, such as one
// package manager invocation.
type Runner interface {
	Name() string
	Description() string
	Run(ctx context.Context, e *Executor) error
}

// Registry holds runners by name and remembers the order they were added.
type Registry struct {
	mu      sync.RWMutex
	runners []Runner
	byName  map[string]Runner
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Runner)}
}

// Add registers r. Nil runners, empty names and duplicates are rejected.
func (reg *Registry) Add(r Runner) error {
	if r == nil {
		return fmt.Errorf("cannot register nil runner")
	}
	name := r.Name()
	if name == "" {
		return fmt.Errorf("cannot register runner with empty name")
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, dup := reg.byName[name]; dup {
		return fmt.Errorf("%q is already registered", name)
	}
	reg.byName[name] = r
	reg.runners = append(reg.runners, r)
	return nil
}

// Lookup returns the runner registered as name.
func (reg *Registry) Lookup(name string) (Runner, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.byName[name]
	return r, ok
}

// All returns every runner in registration order.
func (reg *Registry) All() []Runner {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	return append([]Runner(nil), reg.runners...)
}

// Len returns the number of registered runners.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	return len(reg.runners)
}

// Run looks up name and runs it with e.
func (reg *Registry) Run(ctx context.Context, name string, e *Executor) error {
	r, ok := reg.Lookup(name)
	if !ok {
		return fmt.Errorf("no runner named %q", name)
	}
	return r.Run(ctx, e)
}
