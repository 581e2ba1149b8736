package provider

import (
	"fmt"
	"slices"
	"sync"
)

// Provider contributes a configuration fragment.
type Provider interface {
	Config() (Fragment, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() (Fragment, error)

// Config calls f.
func (f ProviderFunc) Config() (Fragment, error) {
	return f()
}

// Factory builds a provider with no arguments.
type Factory func() Provider

// Resolver maps a provider identifier to its factory.
// A false result means the identifier is unknown and must be skipped.
type Resolver interface {
	Resolve(id string) (Factory, bool)
}

// Resolvers tries each resolver in order and returns the first hit.
type Resolvers []Resolver

// Resolve implements Resolver.
func (r Resolvers) Resolve(id string) (Factory, bool) {
	for _, resolver := range r {
		if resolver == nil {
			continue
		}

		factory, ok := resolver.Resolve(id)
		if ok {
			return factory, true
		}
	}

	return nil, false
}

// Registry is a thread-safe mapping from provider identifiers to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:        sync.RWMutex{},
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under id.
// Returns ErrAlreadyRegistered if id is taken; use Replace to swap it.
func (r *Registry) Register(id string, factory Factory) error {
	if id == "" {
		return ErrEmptyIdentifier
	}

	if factory == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, id)
	}

	r.factories[id] = factory

	return nil
}

// Replace swaps the factory registered under id.
// Returns ErrNotRegistered if nothing is registered under id.
func (r *Registry) Replace(id string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotRegistered, id)
	}

	r.factories[id] = factory

	return nil
}

// Resolve implements Resolver.
func (r *Registry) Resolve(id string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[id]

	return factory, exists
}

// Identifiers returns the registered identifiers in sorted order.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

//nolint:gochecknoglobals // providers self-register from init functions.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by Register.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a factory to the default registry.
func Register(id string, factory Factory) error {
	return defaultRegistry.Register(id, factory)
}
