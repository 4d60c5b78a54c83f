package demo

import (
	"errors"
	"io/fs"

	"github.com/roach88/fixtura/internal/fixture"
	"github.com/roach88/fixtura/internal/harness"
)

func divide(a, b int) int {
	return a / b
}

func func1() error {
	return errors.New("Index Error func1 raised")
}

// module03 shows expected-error capture.
func module03(dir fs.FS) harness.Suite {
	return harness.Suite{
		Module: fixture.NewModule("module03", dir),
		Cases: []harness.Case{
			// Errors rather than fails: the division panics before the
			// assertion gets a value to check.
			{Name: "test_case_01", Body: func(t *harness.T, _ fixture.Values) {
				t.Truthy(divide(1, 0))
			}},
			{Name: "test_case_02", Body: func(t *harness.T, _ fixture.Values) {
				t.Raises(func() error {
					t.Truthy(divide(1, 0))
					return nil
				})
			}},
			{Name: "test_case_03", Body: func(t *harness.T, _ fixture.Values) {
				excinfo := t.Raises(func1)
				t.Log(excinfo.String())
				t.Equal("Index Error func1 raised", excinfo.Value.Error())
			}},
		},
	}
}
