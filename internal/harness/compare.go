package harness

import (
	"cmp"
	"fmt"
	"slices"
)

// Contains stops the case with a failure unless elem is in s.
func Contains[E comparable](t *T, s []E, elem E, msgAndArgs ...any) {
	if slices.Contains(s, elem) {
		return
	}
	t.fail(&AssertionError{
		Kind:     KindContains,
		Message:  messageFromArgs(msgAndArgs...),
		Expected: fmt.Sprintf("%v in %v", elem, s),
		Actual:   "not found",
	})
}

// Less stops the case with a failure unless a sorts strictly before b in
// lexicographic order. A proper prefix sorts before the longer sequence.
func Less[E cmp.Ordered](t *T, a, b []E, msgAndArgs ...any) {
	if slices.Compare(a, b) < 0 {
		return
	}
	t.fail(&AssertionError{
		Kind:     KindLess,
		Message:  messageFromArgs(msgAndArgs...),
		Expected: fmt.Sprintf("%v < %v", a, b),
		Actual:   fmt.Sprintf("compare = %d", slices.Compare(a, b)),
	})
}
