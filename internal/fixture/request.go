package fixture

import "log/slog"

// Request gives a fixture's setup access to the context it runs in.
type Request struct {
	test  *TestScope
	def   Definition
	state *scopeState
}

// FixtureName returns the name of the fixture being created.
func (r *Request) FixtureName() string {
	return r.def.Name
}

// Scope returns the declared scope of the fixture being created.
func (r *Request) Scope() Scope {
	return r.def.Scope
}

// Function returns the name of the test that triggered the creation.
func (r *Request) Function() string {
	return r.test.function
}

// Module returns the active module, or nil outside of a module.
func (r *Request) Module() *Module {
	return r.test.session.current
}

// Config returns the session configuration.
func (r *Request) Config() *Config {
	return r.test.session.config
}

// Logger returns the session logger.
func (r *Request) Logger() *slog.Logger {
	return r.test.session.logger
}

// Get returns the value of another fixture. The requested fixture must not
// have a narrower scope than the requesting one.
func (r *Request) Get(name string) (any, error) {
	return r.test.get(name, &r.def)
}

// Cleanup registers fn to run when this fixture's scope ends.
// Cleanups run in reverse registration order.
func (r *Request) Cleanup(fn func() error) {
	r.state.push(r.def.Name, fn)
}
