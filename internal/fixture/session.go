package fixture

import (
	"fmt"
	"io"
	"log/slog"
)

// Session owns the fixture caches for one test run.
//
// A Session is not safe for concurrent use.
type Session struct {
	// ID identifies the run in reports and logs.
	ID string

	registry *Registry
	config   *Config
	logger   *slog.Logger

	session *scopeState
	module  *scopeState
	current *Module
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger handed to fixtures through Request.Logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithIDGenerator sets the generator used for the session ID.
func WithIDGenerator(gen IDGenerator) SessionOption {
	return func(s *Session) {
		s.ID = gen.Generate()
	}
}

// NewSession creates a session over a registry and configuration.
// Without options the session logs nowhere and gets a UUIDv7 ID.
func NewSession(reg *Registry, cfg *Config, opts ...SessionOption) *Session {
	if cfg == nil {
		cfg = NewConfig(nil)
	}
	s := &Session{
		registry: reg,
		config:   cfg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		session:  newScopeState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ID == "" {
		s.ID = UUIDv7Generator{}.Generate()
	}
	return s
}

// Config returns the session configuration.
func (s *Session) Config() *Config {
	return s.config
}

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger {
	return s.logger
}

// CurrentModule returns the active module, or nil between modules.
func (s *Session) CurrentModule() *Module {
	return s.current
}

// EnterModule makes m the active module. A previously active module is
// torn down first and its teardown error returned; m is entered regardless.
func (s *Session) EnterModule(m *Module) error {
	if m == nil {
		return fmt.Errorf("module is required")
	}
	var err error
	if s.current != nil {
		err = s.ExitModule()
	}
	s.current = m
	s.module = newScopeState()
	s.logger.Debug("module entered", "session", s.ID, "module", m.Name)
	return err
}

// ExitModule tears down the module-scoped fixtures of the active module.
func (s *Session) ExitModule() error {
	if s.current == nil {
		return nil
	}
	name := s.current.Name
	err := s.module.teardown()
	s.current = nil
	s.module = nil
	s.logger.Debug("module exited", "session", s.ID, "module", name)
	if err != nil {
		return fmt.Errorf("module %q teardown: %w", name, err)
	}
	return nil
}

// Close exits the active module and tears down session-scoped fixtures.
func (s *Session) Close() error {
	modErr := s.ExitModule()
	if err := s.session.teardown(); err != nil {
		if modErr != nil {
			return fmt.Errorf("%w; session teardown: %w", modErr, err)
		}
		return fmt.Errorf("session teardown: %w", err)
	}
	return modErr
}

// StartTest opens the function scope for one test case.
// Call Finish on the returned scope once the test body has returned.
func (s *Session) StartTest(function string) *TestScope {
	return &TestScope{
		session:  s,
		function: function,
		state:    newScopeState(),
	}
}

// TestScope is the function-level scope of a single running test.
type TestScope struct {
	session   *Session
	function  string
	state     *scopeState
	resolving []string
}

// Resolve returns the values of the named fixtures, creating them as needed,
// in the order given.
func (ts *TestScope) Resolve(names ...string) (Values, error) {
	vals := make(Values, len(names))
	for _, name := range names {
		v, err := ts.get(name, nil)
		if err != nil {
			return nil, err
		}
		vals[name] = v
	}
	return vals, nil
}

// Get returns the value of a single fixture, creating it if needed.
func (ts *TestScope) Get(name string) (any, error) {
	return ts.get(name, nil)
}

// Finish runs the test's function-scoped cleanups.
func (ts *TestScope) Finish() error {
	return ts.state.teardown()
}

func (ts *TestScope) stateFor(def Definition) (*scopeState, error) {
	switch def.Scope {
	case ScopeSession:
		return ts.session.session, nil
	case ScopeModule:
		if ts.session.module == nil {
			return nil, fmt.Errorf("module-scoped fixture %q requested outside of a module", def.Name)
		}
		return ts.session.module, nil
	default:
		return ts.state, nil
	}
}

func (ts *TestScope) get(name string, requester *Definition) (any, error) {
	def, ok := ts.session.registry.Lookup(name)
	if !ok {
		lerr := &LookupError{Name: name}
		if requester != nil {
			lerr.Requester = requester.Name
		}
		return nil, lerr
	}
	if requester != nil && def.Scope < requester.Scope {
		return nil, &ScopeMismatchError{
			Requester:      requester.Name,
			RequesterScope: requester.Scope,
			Name:           def.Name,
			Scope:          def.Scope,
		}
	}

	state, err := ts.stateFor(def)
	if err != nil {
		return nil, err
	}
	if v, ok := state.values[name]; ok {
		return v, nil
	}
	// A failed setup is not retried while its scope instance lives.
	if err, ok := state.errs[name]; ok {
		return nil, err
	}

	for _, pending := range ts.resolving {
		if pending == name {
			path := append(append([]string{}, ts.resolving...), name)
			return nil, &CycleError{Path: path}
		}
	}
	ts.resolving = append(ts.resolving, name)
	defer func() { ts.resolving = ts.resolving[:len(ts.resolving)-1] }()

	req := &Request{test: ts, def: def, state: state}
	v, err := callSetup(def, req)
	if err != nil {
		serr := &SetupError{Name: name, Err: err}
		state.errs[name] = serr
		return nil, serr
	}
	state.values[name] = v

	ts.session.logger.Debug("fixture created",
		"fixture", name,
		"scope", def.Scope,
		"function", ts.function,
	)
	return v, nil
}

func callSetup(def Definition, req *Request) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return def.Setup(req)
}
