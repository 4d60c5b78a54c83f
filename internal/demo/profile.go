package demo

import (
	"io"
	"io/fs"
	"strings"

	"github.com/roach88/fixtura/internal/fixture"
	"github.com/roach88/fixtura/internal/harness"
)

// profile reads the handle produced by the cmdopt fixture. Each case gets
// its own handle.
func profile(dir fs.FS) harness.Suite {
	return harness.Suite{
		Module: fixture.NewModule("profile", dir),
		Cases: []harness.Case{
			{Name: "test_read_profile", Fixtures: []string{"cmdopt"}, Body: func(t *harness.T, fx fixture.Values) {
				f := harness.Fixture[fs.File](t, fx, "cmdopt")
				data, err := io.ReadAll(f)
				if err != nil {
					t.Fatalf("read profile: %v", err)
				}
				t.Truthy(len(data))
				for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
					t.Log(line)
				}
			}},
			{Name: "test_profile_header", Fixtures: []string{"cmdopt"}, Body: func(t *harness.T, fx fixture.Values) {
				f := harness.Fixture[fs.File](t, fx, "cmdopt")
				data, err := io.ReadAll(f)
				if err != nil {
					t.Fatalf("read profile: %v", err)
				}
				first, _, _ := strings.Cut(string(data), "\n")
				t.Log(first)
				t.Assert(strings.HasPrefix(first, "profile="), "profile files start with their profile name")
			}},
		},
	}
}
