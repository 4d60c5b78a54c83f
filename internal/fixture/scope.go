package fixture

import "fmt"

// Scope is the lifetime of a created fixture value.
// Wider scopes compare greater than narrower ones.
type Scope int

const (
	ScopeFunction Scope = iota
	ScopeModule
	ScopeSession
)

// String returns the scope name as used in logs and error messages.
func (s Scope) String() string {
	switch s {
	case ScopeFunction:
		return "function"
	case ScopeModule:
		return "module"
	case ScopeSession:
		return "session"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// ParseScope parses a scope name. The empty string means ScopeFunction.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "", "function":
		return ScopeFunction, nil
	case "module":
		return ScopeModule, nil
	case "session":
		return ScopeSession, nil
	default:
		return 0, fmt.Errorf("unknown fixture scope %q", name)
	}
}
