package demo

import (
	"io/fs"

	"github.com/roach88/fixtura/internal/fixture"
	"github.com/roach88/fixtura/internal/harness"
)

// divmod returns the quotient and remainder of a divided by b.
func divmod(a, b int) (int, int) {
	return a / b, a % b
}

// module01 holds plain assertions. There should be only one assert per
// case; test_a1 breaks that rule on purpose.
func module01(dir fs.FS) harness.Suite {
	return harness.Suite{
		Module: fixture.NewModule("module01", dir),
		Cases: []harness.Case{
			{Name: "test_a1", Body: func(t *harness.T, _ fixture.Values) {
				t.Log("This is my first test")
				t.Equal(10, 5+5)
				t.Equal(0, 5-5)
				t.Equal(25, 5*5)
				t.Equal(1.0, 5.0/5)
			}},
			{Name: "test_a2", Body: func(t *harness.T, _ fixture.Values) {
				t.Equal(0, 5*5, "failed test intentionally")
			}},
			{Name: "test_a3", Body: func(t *harness.T, _ fixture.Values) {
				t.Equal(2, 5/2) // integer truncating division
			}},
			{Name: "test_a4", Body: func(t *harness.T, _ fixture.Values) {
				t.Truthy(1)
			}},
			{Name: "test_a5", Body: func(t *harness.T, _ fixture.Values) {
				t.Truthy(123)
			}},
			{Name: "test_a6", Body: func(t *harness.T, _ fixture.Values) {
				t.Truthy(0)
			}},
			{Name: "test_a7", Body: func(t *harness.T, _ fixture.Values) {
				q, r := divmod(9, 2)
				harness.Contains(t, []int{q, r}, 4)
			}},
			{Name: "test_a8", Body: func(t *harness.T, _ fixture.Values) {
				harness.Less(t, []int{1, 2}, []int{1, 2, 4, 5})
			}},
			{Name: "test_a9", Body: func(t *harness.T, _ fixture.Values) {
				t.Equal([]int{1, 2}, []int{1, 2})
			}},
		},
	}
}
