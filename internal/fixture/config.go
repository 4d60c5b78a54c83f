package fixture

// Config is the session-wide configuration object.
// It carries the resolved command-line option values and a stash that
// configure hooks use to hand state to fixtures.
type Config struct {
	options map[string]string
	stash   map[string]any
}

// NewConfig creates a Config from resolved option values.
// The map is copied.
func NewConfig(options map[string]string) *Config {
	c := &Config{
		options: make(map[string]string, len(options)),
		stash:   make(map[string]any),
	}
	for k, v := range options {
		c.options[k] = v
	}
	return c
}

// Option returns the resolved value of a named option, or "" if unset.
func (c *Config) Option(name string) string {
	return c.options[name]
}

// Stash stores a value for later retrieval by fixtures.
func (c *Config) Stash(key string, value any) {
	c.stash[key] = value
}

// Stashed returns a value previously stored with Stash.
func (c *Config) Stashed(key string) (any, bool) {
	v, ok := c.stash[key]
	return v, ok
}
