package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Option declares a string command-line option.
type Option struct {
	Name    string
	Default string
	Usage   string
}

// Values holds resolved option values by name.
type Values map[string]string

// Get returns the value of a named option, or "" if unknown.
func (v Values) Get(name string) string {
	return v[name]
}

// Registrar collects option declarations before any test is collected.
type Registrar struct {
	options []Option
	index   map[string]int
}

// NewRegistrar creates an empty registrar.
func NewRegistrar() *Registrar {
	return &Registrar{index: make(map[string]int)}
}

// AddOption declares an option. Names must be unique.
func (r *Registrar) AddOption(opt Option) error {
	if opt.Name == "" {
		return fmt.Errorf("option name is required")
	}
	if _, exists := r.index[opt.Name]; exists {
		return fmt.Errorf("option %q already added", opt.Name)
	}
	r.index[opt.Name] = len(r.options)
	r.options = append(r.options, opt)
	return nil
}

// Options returns the declared options in declaration order.
func (r *Registrar) Options() []Option {
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

// BindFlags registers one --<name> string flag per declared option.
func (r *Registrar) BindFlags(flags *pflag.FlagSet) {
	for _, opt := range r.options {
		if flags.Lookup(opt.Name) != nil {
			continue
		}
		flags.String(opt.Name, opt.Default, opt.Usage)
	}
}

// Resolve computes the final option values. file and flags may be nil.
// Options in the file that were never declared are rejected.
func (r *Registrar) Resolve(file *File, flags *pflag.FlagSet) (Values, error) {
	values := make(Values, len(r.options))
	for _, opt := range r.options {
		values[opt.Name] = opt.Default
	}

	if file != nil {
		for name, value := range file.Options {
			if _, ok := r.index[name]; !ok {
				return nil, fmt.Errorf("unknown option %q in config file", name)
			}
			values[name] = value
		}
	}

	if flags != nil {
		for _, opt := range r.options {
			flag := flags.Lookup(opt.Name)
			if flag == nil || !flag.Changed {
				continue
			}
			values[opt.Name] = flag.Value.String()
		}
	}

	return values, nil
}
