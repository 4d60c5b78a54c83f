package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmdoptRegistrar(t *testing.T) *Registrar {
	t.Helper()
	r := NewRegistrar()
	require.NoError(t, r.AddOption(Option{Name: OptionCmdopt, Default: DefaultCmdopt, Usage: "profile"}))
	return r
}

func TestRegistrar_AddOption(t *testing.T) {
	r := newCmdoptRegistrar(t)
	require.Len(t, r.Options(), 1)
	assert.Equal(t, "cmdopt", r.Options()[0].Name)

	err := r.AddOption(Option{Name: OptionCmdopt})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already added")

	assert.Error(t, r.AddOption(Option{}))
}

func TestRegistrar_ResolveDefault(t *testing.T) {
	r := newCmdoptRegistrar(t)
	values, err := r.Resolve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "QA", values.Get(OptionCmdopt))
}

func TestRegistrar_ResolveLayers(t *testing.T) {
	r := newCmdoptRegistrar(t)
	file := &File{Options: map[string]string{OptionCmdopt: "Prod"}}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	r.BindFlags(flags)

	// File overrides the default while the flag is untouched.
	values, err := r.Resolve(file, flags)
	require.NoError(t, err)
	assert.Equal(t, "Prod", values.Get(OptionCmdopt))

	// An explicit flag wins over the file.
	require.NoError(t, flags.Parse([]string{"--cmdopt", "Staging"}))
	values, err = r.Resolve(file, flags)
	require.NoError(t, err)
	assert.Equal(t, "Staging", values.Get(OptionCmdopt))
}

func TestRegistrar_BindFlagsDefault(t *testing.T) {
	r := newCmdoptRegistrar(t)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	r.BindFlags(flags)
	r.BindFlags(flags) // second bind is a no-op

	flag := flags.Lookup("cmdopt")
	require.NotNil(t, flag)
	assert.Equal(t, "QA", flag.DefValue)
}

func TestRegistrar_ResolveRejectsUnknownFileOption(t *testing.T) {
	r := newCmdoptRegistrar(t)
	_, err := r.Resolve(&File{Options: map[string]string{"cmdop": "Prod"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown option "cmdop"`)
}
