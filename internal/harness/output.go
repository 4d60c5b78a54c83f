package harness

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

var outcomeLabels = map[Outcome]string{
	Passed:  "PASSED",
	Failed:  "FAILED",
	Errored: "ERROR",
	Skipped: "SKIPPED",
	XFailed: "XFAIL",
	XPassed: "XPASS",
}

// WriteText renders a report as one line per case followed by a summary.
//
// Non-passing cases get the first line of their message indented below
// them. In verbose mode the full message and the captured output are
// printed as well.
func WriteText(w io.Writer, report *Report, verbose bool) error {
	var buf strings.Builder

	for _, res := range report.Results {
		fmt.Fprintf(&buf, "%s %s\n", res.NodeID, outcomeLabels[res.Outcome])

		if res.Outcome != Passed && res.Message != "" {
			lines := strings.Split(res.Message, "\n")
			if !verbose {
				lines = lines[:1]
			}
			for _, line := range lines {
				fmt.Fprintf(&buf, "    %s\n", line)
			}
		}
		if verbose {
			for _, line := range res.Output {
				fmt.Fprintf(&buf, "    | %s\n", line)
			}
		}
	}

	for _, e := range report.Errors {
		fmt.Fprintf(&buf, "ERROR %s\n", e)
	}

	fmt.Fprintf(&buf, "\n%s\n", report.Summary())

	_, err := io.WriteString(w, buf.String())
	return err
}

// WriteJSON renders a report as indented JSON.
func WriteJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
