package harness

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Assertion kinds, used for categorization and default messages.
const (
	KindAssert   = "assert"
	KindEqual    = "equal"
	KindTruthy   = "truthy"
	KindContains = "contains"
	KindLess     = "less"
	KindRaises   = "raises"
)

var defaultMessages = map[string]string{
	KindAssert:   "assertion failed",
	KindEqual:    "values are not equal",
	KindTruthy:   "value is not truthy",
	KindContains: "element not found",
	KindLess:     "sequence is not less",
	KindRaises:   "did not raise",
}

// AssertionError describes a failed assertion.
// The first line of Error() is the message; detail lines follow.
type AssertionError struct {
	Kind     string // Assertion kind for categorization
	Message  string // Caller-supplied message, if any
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Diff     string // Structural diff, when one is available
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	msg := e.Message
	if msg == "" {
		msg = defaultMessages[e.Kind]
	}
	if msg == "" {
		msg = "assertion failed"
	}
	buf.WriteString(msg)

	if e.Expected != "" || e.Actual != "" {
		fmt.Fprintf(&buf, "\n  expected: %s", e.Expected)
		fmt.Fprintf(&buf, "\n  actual:   %s", e.Actual)
	}
	if e.Diff != "" {
		buf.WriteString("\n  diff (-expected +actual):\n")
		for _, line := range strings.Split(strings.TrimRight(e.Diff, "\n"), "\n") {
			buf.WriteString("    " + line + "\n")
		}
	}

	return strings.TrimRight(buf.String(), "\n")
}

// messageFromArgs formats optional msgAndArgs the way testify does:
// a single value is printed as is, a leading string is used as a format.
// Otherwise every value is printed with %+v, separated by spaces.
func messageFromArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	parts := make([]string, len(msgAndArgs))
	for i, arg := range msgAndArgs {
		parts[i] = fmt.Sprintf("%+v", arg)
	}
	return strings.Join(parts, " ")
}

// Assert stops the case with a failure unless cond holds.
func (t *T) Assert(cond bool, msgAndArgs ...any) {
	if cond {
		return
	}
	t.fail(&AssertionError{
		Kind:     KindAssert,
		Message:  messageFromArgs(msgAndArgs...),
		Expected: "true",
		Actual:   "false",
	})
}

// Equal stops the case with a failure unless expected and actual are
// deeply equal.
func (t *T) Equal(expected, actual any, msgAndArgs ...any) {
	if cmp.Equal(expected, actual) {
		return
	}
	t.fail(&AssertionError{
		Kind:     KindEqual,
		Message:  messageFromArgs(msgAndArgs...),
		Expected: fmt.Sprintf("%#v", expected),
		Actual:   fmt.Sprintf("%#v", actual),
		Diff:     cmp.Diff(expected, actual),
	})
}

// Truthy stops the case with a failure unless v is truthy: not nil, not a
// zero number, not false and not an empty string, slice, array or map.
func (t *T) Truthy(v any, msgAndArgs ...any) {
	if truthy(v) {
		return
	}
	t.fail(&AssertionError{
		Kind:     KindTruthy,
		Message:  messageFromArgs(msgAndArgs...),
		Expected: "truthy value",
		Actual:   fmt.Sprintf("%#v", v),
	})
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	default:
		return true
	}
}
