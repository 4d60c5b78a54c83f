package demo

import (
	"fmt"
	"slices"

	"github.com/roach88/fixtura/internal/config"
	"github.com/roach88/fixtura/internal/fixture"
)

// Stash keys for the shared weekday sets.
const (
	keyWeekdays1 = "weekdays1"
	keyWeekdays2 = "weekdays2"
)

// AddOptions declares the command-line options the demo fixtures read.
func AddOptions(r *config.Registrar) error {
	return r.AddOption(config.Option{
		Name:    config.OptionCmdopt,
		Default: config.DefaultCmdopt,
		Usage:   `configuration profile, "Prod" or anything else for QA`,
	})
}

// Configure stashes the shared weekday sets on the session configuration.
// It runs once per session, before any fixture is created.
func Configure(cfg *fixture.Config) {
	cfg.Stash(keyWeekdays1, []string{"mon", "tue", "wed"})
	cfg.Stash(keyWeekdays2, []string{"fri", "sat", "sun"})
}

// Register adds the demo fixtures to reg.
func Register(reg *fixture.Registry) error {
	defs := []fixture.Definition{
		{Name: "cmdopt", Scope: fixture.ScopeFunction, Setup: openProfile},
		{Name: "setup01", Scope: fixture.ScopeModule, Setup: setup01},
		{Name: "setup02", Scope: fixture.ScopeSession, Setup: setup02},
		{Name: "setup04", Scope: fixture.ScopeFunction, Setup: setup04},
		{Name: "setup05", Scope: fixture.ScopeFunction, Setup: setup05},
		{Name: "setup_list", Scope: fixture.ScopeFunction, Setup: setupList},
	}
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// openProfile opens the profile file selected by --cmdopt in the module's
// definition directory. The handle is closed when the test ends.
func openProfile(req *fixture.Request) (any, error) {
	opt := req.Config().Option(config.OptionCmdopt)
	module := req.Module()
	if module == nil {
		return nil, fmt.Errorf("no active module")
	}
	f, profile, err := config.OpenProfile(module.Dir, opt)
	if err != nil {
		return nil, err
	}
	req.Logger().Debug("profile opened", "profile", profile.Name, "path", profile.Path, "function", req.Function())
	req.Cleanup(f.Close)
	return f, nil
}

func stashedWeekdays(cfg *fixture.Config, key string) ([]string, error) {
	v, ok := cfg.Stashed(key)
	if !ok {
		return nil, fmt.Errorf("%s not configured", key)
	}
	days, ok := v.([]string)
	if !ok {
		return nil, fmt.Errorf("%s is %T, want []string", key, v)
	}
	return days, nil
}

// setup01 yields weekdays1 plus "thur" to every test of a module.
func setup01(req *fixture.Request) (any, error) {
	src, err := stashedWeekdays(req.Config(), keyWeekdays1)
	if err != nil {
		return nil, err
	}
	wk1 := append(slices.Clone(src), "thur")
	req.Cleanup(func() error {
		req.Logger().Debug("after yield in setup01")
		wk1 = wk1[:len(wk1)-1]
		return nil
	})
	return wk1, nil
}

// setup02 yields "thur" followed by weekdays2, once per session.
func setup02(req *fixture.Request) (any, error) {
	src, err := stashedWeekdays(req.Config(), keyWeekdays2)
	if err != nil {
		return nil, err
	}
	wk2 := make([]string, 0, len(src)+1)
	wk2 = append(wk2, "thur")
	wk2 = append(wk2, src...)
	return wk2, nil
}

// setup04 appends "April" to the requesting module's months and yields
// the same list.
func setup04(req *fixture.Request) (any, error) {
	v, err := req.Module().Attr("months")
	if err != nil {
		return nil, err
	}
	months, ok := v.(*[]string)
	if !ok {
		return nil, fmt.Errorf("months is %T, want *[]string", v)
	}

	req.Logger().Info("in fixture setup04",
		"scope", req.Scope(),
		"function", req.Function(),
		"module", req.Module().Name,
	)

	*months = append(*months, "April")
	return months, nil
}

// StructureFactory builds a fixed three-element container by kind name.
type StructureFactory func(name string) any

// setup05 yields a StructureFactory. "list" builds a slice, "tuple" a
// fixed-size array; any other name yields nil.
func setup05(*fixture.Request) (any, error) {
	return StructureFactory(func(name string) any {
		switch name {
		case "list":
			return []int{1, 2, 3}
		case "tuple":
			return [3]int{1, 2, 3}
		}
		return nil
	}), nil
}

func setupList(req *fixture.Request) (any, error) {
	req.Logger().Debug("in fixtures", "function", req.Function())
	return []string{"New York", "London", "Riyadh", "Singapore", "Mumbai"}, nil
}
