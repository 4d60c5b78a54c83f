package fixture

import "fmt"

// Values maps fixture names to the values resolved for one test.
type Values map[string]any

// Lookup returns the named value converted to V.
func Lookup[V any](vals Values, name string) (V, error) {
	var zero V
	raw, ok := vals[name]
	if !ok {
		return zero, fmt.Errorf("fixture %q was not requested", name)
	}
	if raw == nil {
		return zero, nil
	}
	v, ok := raw.(V)
	if !ok {
		return zero, fmt.Errorf("fixture %q is %T, not %T", name, raw, zero)
	}
	return v, nil
}
