package harness

import (
	"fmt"
	"strings"
	"time"
)

// Outcome is the final state of one test case.
type Outcome string

const (
	Passed  Outcome = "passed"
	Failed  Outcome = "failed"
	Errored Outcome = "error"
	Skipped Outcome = "skipped"
	XFailed Outcome = "xfailed"
	XPassed Outcome = "xpassed"
)

// Phase is the part of a test case an outcome was decided in.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseCall     Phase = "call"
	PhaseTeardown Phase = "teardown"
)

// CaseResult is the outcome of a single test case.
type CaseResult struct {
	NodeID   string        `json:"node_id"`
	Module   string        `json:"module"`
	Name     string        `json:"name"`
	Outcome  Outcome       `json:"outcome"`
	Phase    Phase         `json:"phase"`
	Message  string        `json:"message,omitempty"`
	Output   []string      `json:"output,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Report is the outcome of a whole run.
type Report struct {
	SessionID string       `json:"session_id"`
	Results   []CaseResult `json:"results"`

	// Errors holds module and session teardown failures, which belong to
	// no single case.
	Errors []string `json:"errors,omitempty"`
}

// NewReport creates an empty report.
func NewReport(sessionID string) *Report {
	return &Report{
		SessionID: sessionID,
		Results:   []CaseResult{},
	}
}

// AddError records a failure outside of any case.
func (r *Report) AddError(err string) {
	r.Errors = append(r.Errors, err)
}

// Count returns the number of cases with the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Result returns the result recorded for a node ID.
func (r *Report) Result(nodeID string) (CaseResult, bool) {
	for _, res := range r.Results {
		if res.NodeID == nodeID {
			return res, true
		}
	}
	return CaseResult{}, false
}

// OK reports whether nothing failed or errored.
// Skips, expected failures and unexpected passes do not count against a run.
func (r *Report) OK() bool {
	return r.Count(Failed) == 0 && r.Count(Errored) == 0 && len(r.Errors) == 0
}

// summaryOrder is the order outcomes appear in the summary line.
var summaryOrder = []Outcome{Failed, Passed, Skipped, XFailed, XPassed, Errored}

// Summary returns a one-line count of outcomes such as
// "2 failed, 7 passed, 1 error". Zero counts are left out.
func (r *Report) Summary() string {
	var parts []string
	for _, o := range summaryOrder {
		n := r.Count(o)
		if n == 0 {
			continue
		}
		label := string(o)
		if o == Errored && n > 1 {
			label = "errors"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, label))
	}
	if len(parts) == 0 {
		return "no tests ran"
	}
	return strings.Join(parts, ", ")
}
