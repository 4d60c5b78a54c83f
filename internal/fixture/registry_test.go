package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*Request) (any, error) { return nil, nil }

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Definition{Name: "b", Setup: noop}))
	require.NoError(t, reg.Register(Definition{Name: "a", Scope: ScopeSession, Setup: noop}))

	def, ok := reg.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, ScopeSession, def.Scope)

	_, ok = reg.Lookup("c")
	assert.False(t, ok)

	assert.Equal(t, []string{"b", "a"}, reg.Names())
}

func TestRegistry_RegisterRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want string
	}{
		{"missing name", Definition{Setup: noop}, "name is required"},
		{"missing setup", Definition{Name: "x"}, "setup function is required"},
		{"bad scope", Definition{Name: "x", Scope: Scope(9), Setup: noop}, "invalid scope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.def)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegistry_RegisterRejectsDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Definition{Name: "x", Setup: noop}))
	err := reg.Register(Definition{Name: "x", Setup: noop})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestParseScope(t *testing.T) {
	for _, s := range []Scope{ScopeFunction, ScopeModule, ScopeSession} {
		parsed, err := ParseScope(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeFunction, parsed)

	_, err = ParseScope("package")
	assert.Error(t, err)
	assert.Equal(t, "Scope(7)", Scope(7).String())
}

func TestModule_Attr(t *testing.T) {
	months := &[]string{"Jan"}
	m := NewModule("test_module02", nil)
	m.SetAttr("months", months)

	v, err := m.Attr("months")
	require.NoError(t, err)
	assert.Same(t, months, v)

	_, err = m.Attr("weeks")
	var aerr *AttributeError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, `module "test_module02" has no attribute "weeks"`, err.Error())

	var nilModule *Module
	_, err = nilModule.Attr("months")
	assert.ErrorAs(t, err, &aerr)
}

func TestConfig_OptionsAndStash(t *testing.T) {
	opts := map[string]string{"cmdopt": "QA"}
	cfg := NewConfig(opts)
	opts["cmdopt"] = "Prod"

	assert.Equal(t, "QA", cfg.Option("cmdopt"), "options are copied")
	assert.Equal(t, "", cfg.Option("missing"))

	cfg.Stash("weekdays1", []string{"mon"})
	v, ok := cfg.Stashed("weekdays1")
	require.True(t, ok)
	assert.Equal(t, []string{"mon"}, v)

	_, ok = cfg.Stashed("weekdays3")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	vals := Values{"n": 3, "none": nil}

	n, err := Lookup[int](vals, "n")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Lookup[string](vals, "n")
	assert.ErrorContains(t, err, "is int, not string")

	_, err = Lookup[int](vals, "missing")
	assert.ErrorContains(t, err, "was not requested")

	none, err := Lookup[[]int](vals, "none")
	require.NoError(t, err)
	assert.Nil(t, none)
}
