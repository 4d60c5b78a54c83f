package demo

import (
	"io/fs"

	"github.com/roach88/fixtura/internal/harness"
)

// Suites returns the demonstration suites in run order. dir is the
// directory the suites are treated as defined in; pass Files to use the
// bundled profile files.
func Suites(dir fs.FS) []harness.Suite {
	return []harness.Suite{
		module01(dir),
		module03(dir),
		module04(dir),
		fixtures01(dir),
		scopes(dir),
		scopesMore(dir),
		profile(dir),
	}
}
