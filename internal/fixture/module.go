package fixture

import "io/fs"

// Module groups test cases that share module-scoped fixtures.
// Attributes stand in for module-level variables that fixtures may read
// and mutate; store pointers when in-place mutation must be visible.
type Module struct {
	Name string

	// Dir is the directory the module's tests are defined in. Fixtures
	// resolve relative resource paths against it rather than against the
	// process working directory.
	Dir fs.FS

	attrs map[string]any
}

// NewModule creates a module rooted at dir.
func NewModule(name string, dir fs.FS) *Module {
	return &Module{
		Name:  name,
		Dir:   dir,
		attrs: make(map[string]any),
	}
}

// SetAttr defines or replaces a module attribute.
func (m *Module) SetAttr(name string, value any) {
	if m.attrs == nil {
		m.attrs = make(map[string]any)
	}
	m.attrs[name] = value
}

// Attr returns a module attribute.
func (m *Module) Attr(name string) (any, error) {
	if m == nil {
		return nil, &AttributeError{Attr: name}
	}
	v, ok := m.attrs[name]
	if !ok {
		return nil, &AttributeError{Module: m.Name, Attr: name}
	}
	return v, nil
}
