package fixture

import (
	"errors"
	"fmt"
)

// scopeState caches created values, failed setups and pending cleanups for
// one scope instance.
type scopeState struct {
	values   map[string]any
	errs     map[string]error
	cleanups []cleanup
}

type cleanup struct {
	fixture string
	fn      func() error
}

func newScopeState() *scopeState {
	return &scopeState{
		values: make(map[string]any),
		errs:   make(map[string]error),
	}
}

func (s *scopeState) push(fixture string, fn func() error) {
	s.cleanups = append(s.cleanups, cleanup{fixture: fixture, fn: fn})
}

// teardown runs the pending cleanups last-in first-out. Every cleanup runs
// even if an earlier one fails; the failures are joined.
func (s *scopeState) teardown() error {
	var errs []error
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		c := s.cleanups[i]
		if err := runCleanup(c.fn); err != nil {
			errs = append(errs, fmt.Errorf("fixture %q teardown: %w", c.fixture, err))
		}
	}
	s.cleanups = nil
	s.values = make(map[string]any)
	s.errs = make(map[string]error)
	return errors.Join(errs...)
}

func runCleanup(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
