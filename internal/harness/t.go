package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/fixtura/internal/fixture"
)

// failNow and skipNow unwind a test body back to the runner.
type failNow struct{}

type skipNow struct {
	reason string
}

// T is handed to every test body. It records output and failures and
// stops the body on fatal assertions.
//
// Unlike testing.T, a T must only be used from the goroutine running the
// body.
type T struct {
	name     string
	output   []string
	failures []string
}

func newT(name string) *T {
	return &T{name: name}
}

// Name returns the name of the running case.
func (t *T) Name() string {
	return t.name
}

// Log records a line of output, formatted like fmt.Sprintln.
func (t *T) Log(args ...any) {
	t.output = append(t.output, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// Logf records a line of output, formatted like fmt.Sprintf.
func (t *T) Logf(format string, args ...any) {
	t.output = append(t.output, fmt.Sprintf(format, args...))
}

// Errorf records a failure and lets the body continue.
func (t *T) Errorf(format string, args ...any) {
	t.failures = append(t.failures, fmt.Sprintf(format, args...))
}

// Fatalf records a failure and stops the body.
func (t *T) Fatalf(format string, args ...any) {
	t.Errorf(format, args...)
	t.FailNow()
}

// FailNow stops the body, marking the case failed.
func (t *T) FailNow() {
	if len(t.failures) == 0 {
		t.failures = append(t.failures, "test failed")
	}
	panic(failNow{})
}

// Failed reports whether a failure has been recorded.
func (t *T) Failed() bool {
	return len(t.failures) > 0
}

// Skip stops the body and marks the case skipped.
func (t *T) Skip(reason string) {
	panic(skipNow{reason: reason})
}

// fail records an assertion error and stops the body.
func (t *T) fail(err *AssertionError) {
	t.failures = append(t.failures, err.Error())
	panic(failNow{})
}

func (t *T) failureMessage() string {
	return strings.Join(t.failures, "\n")
}

// Fixture returns the named fixture value as V, failing the case if it was
// not requested or has another type.
func Fixture[V any](t *T, fx fixture.Values, name string) V {
	v, err := fixture.Lookup[V](fx, name)
	if err != nil {
		t.Fatalf("%v", err)
	}
	return v
}
