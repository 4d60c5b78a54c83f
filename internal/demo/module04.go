package demo

import (
	"io/fs"
	"reflect"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/roach88/fixtura/internal/fixture"
	"github.com/roach88/fixtura/internal/harness"
)

const fahFactor = 9.0 / 5

// CentToFah converts degrees Celsius to Fahrenheit.
func CentToFah(cent float64) float64 {
	// The explicit conversion keeps the product rounded before the
	// addition, so no fused multiply-add changes the result.
	return float64(cent*fahFactor) + 32
}

// goVersionAbove reports whether a runtime.Version string is newer than
// threshold ("v1.6" style). Development builds count as newer.
func goVersionAbove(goVersion, threshold string) bool {
	v := "v" + strings.TrimPrefix(goVersion, "go")
	if !semver.IsValid(v) {
		return true
	}
	return semver.Compare(v, threshold) > 0
}

// module04 shows module-wide and per-case skips.
func module04(dir fs.FS) harness.Suite {
	return harness.Suite{
		Module: fixture.NewModule("module04", dir),
		Marks: []harness.Mark{
			harness.SkipIf(runtime.GOOS != "linux", "This test case works only for linux"),
		},
		Cases: []harness.Case{
			{
				Name:  "test_01",
				Marks: []harness.Mark{harness.Skip("skipping for no reason")},
				Body: func(t *harness.T, _ fixture.Values) {
					t.Equal(32.0, CentToFah(0))
				},
			},
			{
				Name: "test_02",
				Marks: []harness.Mark{
					harness.SkipIf(goVersionAbove(runtime.Version(), "v1.6"), "doesn't work on go version above 1.6"),
				},
				Body: func(t *harness.T, _ fixture.Values) {
					t.Equal(reflect.Float64, reflect.TypeOf(CentToFah(0)).Kind())
				},
			},
			{Name: "test_03", Body: func(t *harness.T, _ fixture.Values) {
				t.Log(runtime.GOOS)
				t.Equal(100.4, CentToFah(38))
			}},
		},
	}
}
