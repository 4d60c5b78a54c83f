package harness

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	report := NewReport("session-1")
	report.Results = []CaseResult{
		{NodeID: "module01::test_a1", Outcome: Passed, Output: []string{"This is my first test"}},
		{NodeID: "module01::test_a2", Outcome: Failed, Message: "failed test intentionally\n  expected: 0\n  actual:   25"},
		{NodeID: "module04::test_01", Outcome: Skipped, Message: "skipping for no reason"},
		{NodeID: "fixtures01::test_usefixturedemo", Outcome: XPassed, Message: "known issue"},
	}
	return report
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(), false))

	want := `module01::test_a1 PASSED
module01::test_a2 FAILED
    failed test intentionally
module04::test_01 SKIPPED
    skipping for no reason
fixtures01::test_usefixturedemo XPASS
    known issue

1 failed, 1 passed, 1 skipped, 1 xpassed
`
	assert.Equal(t, want, buf.String())
}

func TestWriteText_Verbose(t *testing.T) {
	report := sampleReport()
	report.AddError(`module "m" teardown: boom`)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, report, true))

	out := buf.String()
	assert.Contains(t, out, "    | This is my first test\n")
	assert.Contains(t, out, "    failed test intentionally\n      expected: 0\n      actual:   25\n")
	assert.Contains(t, out, "ERROR module \"m\" teardown: boom\n")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "session-1", decoded.SessionID)
	require.Len(t, decoded.Results, 4)
	assert.Equal(t, Failed, decoded.Results[1].Outcome)
}

func TestAssertGolden(t *testing.T) {
	require.NoError(t, AssertGolden(t, "sample", sampleReport(), false))
}
