package fixture

import (
	"fmt"
	"strings"
)

// LookupError is returned when a requested fixture is not registered.
type LookupError struct {
	Name      string
	Requester string // requesting fixture, empty when a test asked directly
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.Requester != "" {
		return fmt.Sprintf("fixture %q not found (requested by fixture %q)", e.Name, e.Requester)
	}
	return fmt.Sprintf("fixture %q not found", e.Name)
}

// AttributeError is returned when a module does not define a requested attribute.
type AttributeError struct {
	Module string
	Attr   string
}

// Error implements the error interface.
func (e *AttributeError) Error() string {
	return fmt.Sprintf("module %q has no attribute %q", e.Module, e.Attr)
}

// ScopeMismatchError is returned when a fixture requests a fixture with a
// narrower scope than its own.
type ScopeMismatchError struct {
	Requester      string
	RequesterScope Scope
	Name           string
	Scope          Scope
}

// Error implements the error interface.
func (e *ScopeMismatchError) Error() string {
	return fmt.Sprintf("%s-scoped fixture %q cannot request %s-scoped fixture %q",
		e.RequesterScope, e.Requester, e.Scope, e.Name)
}

// CycleError is returned when fixtures request each other in a loop.
type CycleError struct {
	Path []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "fixture dependency cycle: " + strings.Join(e.Path, " -> ")
}

// SetupError wraps an error returned (or a panic raised) by a fixture's setup.
type SetupError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	return fmt.Sprintf("fixture %q setup failed: %v", e.Name, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
