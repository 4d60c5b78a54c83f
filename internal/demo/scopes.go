package demo

import (
	"io/fs"

	"github.com/roach88/fixtura/internal/fixture"
	"github.com/roach88/fixtura/internal/harness"
)

// scopes exercises every lifetime pattern inside one module. Its months
// attribute is mutated in place by setup04, so later cases observe the
// appends of earlier ones.
func scopes(dir fs.FS) harness.Suite {
	mod := fixture.NewModule("scopes", dir)
	mod.SetAttr("months", &[]string{"Jan", "Feb", "March"})

	return harness.Suite{
		Module: mod,
		Cases: []harness.Case{
			{Name: "test_setup01", Fixtures: []string{"setup01"}, Body: func(t *harness.T, fx fixture.Values) {
				t.Equal([]string{"mon", "tue", "wed", "thur"}, harness.Fixture[[]string](t, fx, "setup01"))
			}},
			{Name: "test_setup01_shared", Fixtures: []string{"setup01"}, Body: func(t *harness.T, fx fixture.Values) {
				wk1 := harness.Fixture[[]string](t, fx, "setup01")
				t.Equal(4, len(wk1))
				t.Equal("thur", wk1[len(wk1)-1])
			}},
			{Name: "test_setup02", Fixtures: []string{"setup02"}, Body: func(t *harness.T, fx fixture.Values) {
				t.Equal([]string{"thur", "fri", "sat", "sun"}, harness.Fixture[[]string](t, fx, "setup02"))
			}},
			{Name: "test_setup04", Fixtures: []string{"setup04"}, Body: func(t *harness.T, fx fixture.Values) {
				months := harness.Fixture[*[]string](t, fx, "setup04")
				t.Equal([]string{"Jan", "Feb", "March", "April"}, *months)
			}},
			{Name: "test_setup04_accumulates", Fixtures: []string{"setup04"}, Body: func(t *harness.T, fx fixture.Values) {
				months := harness.Fixture[*[]string](t, fx, "setup04")
				t.Equal([]string{"Jan", "Feb", "March", "April", "April"}, *months)
			}},
			{Name: "test_setup05_list", Fixtures: []string{"setup05"}, Body: func(t *harness.T, fx fixture.Values) {
				build := harness.Fixture[StructureFactory](t, fx, "setup05")
				t.Equal([]int{1, 2, 3}, build("list"))
			}},
			{Name: "test_setup05_tuple", Fixtures: []string{"setup05"}, Body: func(t *harness.T, fx fixture.Values) {
				build := harness.Fixture[StructureFactory](t, fx, "setup05")
				t.Equal([3]int{1, 2, 3}, build("tuple"))
			}},
			{Name: "test_setup05_unknown", Fixtures: []string{"setup05"}, Body: func(t *harness.T, fx fixture.Values) {
				build := harness.Fixture[StructureFactory](t, fx, "setup05")
				t.Assert(build("set") == nil)
			}},
		},
	}
}

// scopesMore runs after scopes: setup01 is rebuilt for it, setup02 is the
// instance created during scopes.
func scopesMore(dir fs.FS) harness.Suite {
	return harness.Suite{
		Module: fixture.NewModule("scopes_more", dir),
		Cases: []harness.Case{
			{Name: "test_setup01_fresh", Fixtures: []string{"setup01"}, Body: func(t *harness.T, fx fixture.Values) {
				t.Equal([]string{"mon", "tue", "wed", "thur"}, harness.Fixture[[]string](t, fx, "setup01"))
			}},
			{Name: "test_setup02_reused", Fixtures: []string{"setup02"}, Body: func(t *harness.T, fx fixture.Values) {
				t.Equal([]string{"thur", "fri", "sat", "sun"}, harness.Fixture[[]string](t, fx, "setup02"))
			}},
		},
	}
}
