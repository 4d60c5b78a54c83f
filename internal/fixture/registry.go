package fixture

import "fmt"

// Func creates a fixture value. Teardown work is registered with
// req.Cleanup and runs when the fixture's scope ends.
type Func func(req *Request) (any, error)

// Definition describes a registered fixture.
type Definition struct {
	Name  string
	Scope Scope
	Setup Func
}

// Registry holds fixture definitions by name.
type Registry struct {
	defs  map[string]Definition
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a fixture definition.
// Names must be unique within a registry.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("fixture name is required")
	}
	if def.Setup == nil {
		return fmt.Errorf("fixture %q: setup function is required", def.Name)
	}
	if def.Scope < ScopeFunction || def.Scope > ScopeSession {
		return fmt.Errorf("fixture %q: invalid scope %s", def.Name, def.Scope)
	}
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("fixture %q already registered", def.Name)
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered fixture names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
