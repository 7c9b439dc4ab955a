package provider

import (
	"fmt"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
)

// Registry maps provider names to implementations.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// NewDefaultRegistry creates a registry with every built-in provider.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewYahooProvider())
	r.Register(NewCalProvider())
	return r
}

// Register adds a provider under its own name, replacing any previous
// registration.
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Get looks up a provider by name.
// Returns apperrors.ErrProviderNotFound for unknown names.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %q: %w", name, apperrors.ErrProviderNotFound)
	}
	return p, nil
}

// Names lists the registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
