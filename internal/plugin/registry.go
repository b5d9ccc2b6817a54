package plugin

import (
	"fmt"
	"log/slog"
)

// Module is the interface that every built-in plugin module implements to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Definition describes a plugin known to the registry.
type Definition struct {
	// ID is the canonical plugin identifier.
	ID string
	// Aliases are alternative identifiers that resolve to this plugin.
	Aliases []string
	// After lists canonical IDs that, when present, must be applied earlier.
	After []string
	// Requires lists canonical IDs that must be present in the sequence.
	Requires []string
	// Description is a short human-readable summary.
	Description string
}

// Registry holds the plugin definitions of a single application instance.
type Registry struct {
	definitions map[string]*Definition
	aliases     map[string]string
	order       []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		definitions: make(map[string]*Definition),
		aliases:     make(map[string]string),
	}
}

// NewWithModules creates a registry populated by the given modules.
func NewWithModules(modules ...Module) *Registry {
	r := New()
	for _, mod := range modules {
		mod.Register(r)
	}
	return r
}

// Register adds a plugin definition. Registering an identifier or alias twice
// is a programming error and panics.
func (r *Registry) Register(def *Definition) {
	if def == nil || def.ID == "" {
		panic("plugin definition must have an ID")
	}
	for _, name := range append([]string{def.ID}, def.Aliases...) {
		if _, exists := r.aliases[name]; exists {
			panic(fmt.Sprintf("plugin identifier '%s' already registered", name))
		}
	}

	slog.Debug("Registering plugin definition.", "id", def.ID, "aliases", def.Aliases)
	r.definitions[def.ID] = def
	r.aliases[def.ID] = def.ID
	for _, alias := range def.Aliases {
		r.aliases[alias] = def.ID
	}
	r.order = append(r.order, def.ID)
}

// Lookup finds a definition by canonical identifier or alias.
func (r *Registry) Lookup(id string) (*Definition, bool) {
	canonical, ok := r.aliases[id]
	if !ok {
		return nil, false
	}
	return r.definitions[canonical], true
}

// Definitions returns every definition in registration order.
func (r *Registry) Definitions() []*Definition {
	out := make([]*Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.definitions[id])
	}
	return out
}

// identifiers returns every canonical identifier and alias.
func (r *Registry) identifiers() []string {
	out := make([]string, 0, len(r.aliases))
	for _, id := range r.order {
		out = append(out, id)
		out = append(out, r.definitions[id].Aliases...)
	}
	return out
}
