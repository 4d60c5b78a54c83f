package harness

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fixtura/internal/fixture"
)

// runBody runs a single body the way the runner does.
func runBody(body Body) (Outcome, string) {
	return call(newT("t"), body, fixture.Values{})
}

func TestAssert(t *testing.T) {
	out, _ := runBody(func(t *T, fx fixture.Values) { t.Assert(5+5 == 10) })
	assert.Equal(t, Passed, out)

	out, msg := runBody(func(t *T, fx fixture.Values) { t.Assert(5*5 == 0) })
	assert.Equal(t, Failed, out)
	assert.Equal(t, "assertion failed\n  expected: true\n  actual:   false", msg)
}

func TestAssertStopsAtFirstFailure(t *testing.T) {
	reached := false
	out, _ := runBody(func(t *T, fx fixture.Values) {
		t.Assert(false)
		reached = true
	})
	assert.Equal(t, Failed, out)
	assert.False(t, reached)
}

func TestEqual(t *testing.T) {
	out, _ := runBody(func(t *T, fx fixture.Values) {
		t.Equal([]int{1, 2}, []int{1, 2})
		t.Equal(1.0, 5.0/5)
	})
	assert.Equal(t, Passed, out)

	out, msg := runBody(func(t *T, fx fixture.Values) { t.Equal(0, 5*5, "failed test intentionally") })
	assert.Equal(t, Failed, out)
	require.Contains(t, msg, "\n")
	assert.Equal(t, "failed test intentionally", msg[:len("failed test intentionally")])
	assert.Contains(t, msg, "expected: 0")
	assert.Contains(t, msg, "actual:   25")
	assert.Contains(t, msg, "diff (-expected +actual)")
}

func TestTruthy(t *testing.T) {
	var nilMap map[string]int
	for _, v := range []any{1, 123, -1, "x", []int{0}, true, 0.5, map[string]int{"a": 1}, struct{}{}} {
		out, _ := runBody(func(t *T, fx fixture.Values) { t.Truthy(v) })
		assert.Equal(t, Passed, out, "%#v should be truthy", v)
	}
	for _, v := range []any{0, 0.0, "", []int{}, false, nil, nilMap, [0]int{}, uint(0)} {
		out, msg := runBody(func(t *T, fx fixture.Values) { t.Truthy(v) })
		assert.Equal(t, Failed, out, "%#v should be falsy", v)
		assert.Contains(t, msg, "value is not truthy")
	}
}

func TestContains(t *testing.T) {
	out, _ := runBody(func(t *T, fx fixture.Values) { Contains(t, []int{4, 1}, 4) })
	assert.Equal(t, Passed, out)

	out, msg := runBody(func(t *T, fx fixture.Values) { Contains(t, []int{4, 1}, 5) })
	assert.Equal(t, Failed, out)
	assert.Contains(t, msg, "element not found")
	assert.Contains(t, msg, "5 in [4 1]")
}

func TestLess(t *testing.T) {
	tests := []struct {
		a, b []int
		want Outcome
	}{
		{[]int{1, 2}, []int{1, 2, 4, 5}, Passed},
		{[]int{1, 3}, []int{1, 2, 4, 5}, Failed},
		{[]int{1, 2}, []int{1, 2}, Failed},
		{[]int{}, []int{0}, Passed},
	}
	for _, tt := range tests {
		out, _ := runBody(func(t *T, fx fixture.Values) { Less(t, tt.a, tt.b) })
		assert.Equal(t, tt.want, out, "%v < %v", tt.a, tt.b)
	}
}

func TestRaises_ReturnedError(t *testing.T) {
	var info *ExcInfo
	out, _ := runBody(func(t *T, fx fixture.Values) {
		info = t.Raises(func() error { return errors.New("Index Error func1 raised") })
	})
	assert.Equal(t, Passed, out)
	require.NotNil(t, info)
	assert.False(t, info.Panicked)
	assert.Equal(t, "Index Error func1 raised", info.Value.Error())
	assert.Contains(t, info.String(), "Index Error func1 raised")
}

func TestRaises_Panic(t *testing.T) {
	zero := 0
	var info *ExcInfo
	out, _ := runBody(func(t *T, fx fixture.Values) {
		info = t.Raises(func() error {
			t.Truthy(1 / zero)
			return nil
		})
	})
	assert.Equal(t, Passed, out)
	require.NotNil(t, info)
	assert.True(t, info.Panicked)
	assert.Contains(t, info.Value.Error(), "integer divide by zero")

	out, _ = runBody(func(t *T, fx fixture.Values) {
		info = t.Raises(func() error { panic("plain value") })
	})
	assert.Equal(t, Passed, out)
	assert.Equal(t, "plain value", info.Value.Error())
}

func TestRaises_DidNotRaise(t *testing.T) {
	out, msg := runBody(func(t *T, fx fixture.Values) {
		t.Raises(func() error { return nil })
	})
	assert.Equal(t, Failed, out)
	assert.Equal(t, "did not raise", msg)
}

func TestRaises_DoesNotSwallowAssertions(t *testing.T) {
	out, _ := runBody(func(t *T, fx fixture.Values) {
		t.Raises(func() error {
			t.Assert(false)
			return nil
		})
	})
	assert.Equal(t, Failed, out)

	out, _ = runBody(func(t *T, fx fixture.Values) {
		t.Raises(func() error {
			t.Skip("skip inside")
			return nil
		})
	})
	assert.Equal(t, Skipped, out)
}

func TestRaisesAs(t *testing.T) {
	out, _ := runBody(func(t *T, fx fixture.Values) {
		t.RaisesAs(func() error { return &fs.PathError{Op: "open", Path: "qa.prop", Err: fs.ErrNotExist} }, new(*fs.PathError))
	})
	assert.Equal(t, Passed, out)

	out, msg := runBody(func(t *T, fx fixture.Values) {
		t.RaisesAs(func() error { return errors.New("plain") }, new(*fs.PathError))
	})
	assert.Equal(t, Failed, out)
	assert.Contains(t, msg, "*fs.PathError")
}

func TestFixtureHelper(t *testing.T) {
	vals := fixture.Values{"setup_list": []string{"New York"}}

	var got []string
	out, _ := call(newT("t"), func(t *T, fx fixture.Values) {
		got = Fixture[[]string](t, fx, "setup_list")
	}, vals)
	assert.Equal(t, Passed, out)
	assert.Equal(t, []string{"New York"}, got)

	out, msg := call(newT("t"), func(t *T, fx fixture.Values) {
		Fixture[int](t, fx, "setup_list")
	}, vals)
	assert.Equal(t, Failed, out)
	assert.Contains(t, msg, "not int")
}

func TestMessageFromArgs(t *testing.T) {
	assert.Equal(t, "", messageFromArgs())
	assert.Equal(t, "plain", messageFromArgs("plain"))
	assert.Equal(t, "42", messageFromArgs(42))
	assert.Equal(t, "got 3 items", messageFromArgs("got %d items", 3))
	assert.Equal(t, "1 {A:2}", messageFromArgs(1, struct{ A int }{2}))
}

func TestEqual_FormattedMessage(t *testing.T) {
	out, msg := runBody(func(t *T, fx fixture.Values) {
		t.Equal(1, 2, "got %d items", 2)
	})
	assert.Equal(t, Failed, out)
	assert.Contains(t, msg, "got 2 items\n  expected: 1\n  actual:   2")
}

func TestAssertionError_DefaultMessage(t *testing.T) {
	err := &AssertionError{Kind: "unknown"}
	assert.Equal(t, "assertion failed", err.Error())

	err = &AssertionError{Kind: KindLess, Expected: "[1 2] < [1]", Actual: "compare = 1"}
	assert.Equal(t, "sequence is not less\n  expected: [1 2] < [1]\n  actual:   compare = 1", err.Error())
}
