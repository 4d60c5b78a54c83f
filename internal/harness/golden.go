package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden renders report as text and compares it against a golden
// file stored in testdata/golden/{name}.golden.
//
// Only the text rendering is compared: it carries neither the session ID
// nor durations, so it is stable across runs.
//
// To regenerate golden files, run:
//
//	go test ./... -update
func AssertGolden(t *testing.T, name string, report *Report, verbose bool) error {
	t.Helper()

	var buf bytes.Buffer
	if err := WriteText(&buf, report, verbose); err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())

	return nil
}
