package harness

import (
	"errors"
	"fmt"
)

// ExcInfo describes an error captured by Raises.
type ExcInfo struct {
	// Value is the captured error. A panic with a non-error value is
	// converted with fmt.Errorf("%v").
	Value error

	// Panicked reports whether the error was raised by a panic rather than
	// returned.
	Panicked bool
}

// String renders the captured error with its type, for logging.
func (e *ExcInfo) String() string {
	return fmt.Sprintf("<ExcInfo %T: %v>", e.Value, e.Value)
}

// Raises runs fn and returns the error it signals, whether returned or
// raised as a panic. The case fails if fn completes without one.
//
// Failed assertions and skips inside fn are not captured: they stop the
// case as usual.
func (t *T) Raises(fn func() error, msgAndArgs ...any) *ExcInfo {
	info := capture(fn)
	if info == nil {
		t.fail(&AssertionError{
			Kind:    KindRaises,
			Message: messageFromArgs(msgAndArgs...),
		})
	}
	return info
}

// RaisesAs is Raises plus a check that the captured error matches target
// in the sense of errors.As.
func (t *T) RaisesAs(fn func() error, target any, msgAndArgs ...any) *ExcInfo {
	info := t.Raises(fn, msgAndArgs...)
	if !errors.As(info.Value, target) {
		t.fail(&AssertionError{
			Kind:     KindRaises,
			Message:  messageFromArgs(msgAndArgs...),
			Expected: fmt.Sprintf("error assignable to %T", target),
			Actual:   fmt.Sprintf("%T: %v", info.Value, info.Value),
		})
	}
	return info
}

func capture(fn func() error) (info *ExcInfo) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r.(type) {
		case failNow, skipNow:
			panic(r)
		}
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		info = &ExcInfo{Value: err, Panicked: true}
	}()
	if err := fn(); err != nil {
		return &ExcInfo{Value: err}
	}
	return nil
}
