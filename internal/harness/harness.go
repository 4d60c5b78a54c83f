package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/fixtura/internal/fixture"
)

// Clock supplies the times used for case durations.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a run.
type Options struct {
	// Filter selects cases by node ID (path.Match syntax). Empty runs all.
	Filter string

	// Clock defaults to the system clock.
	Clock Clock

	// Logger receives one debug record per case. Defaults to discarding.
	Logger *slog.Logger
}

type runner struct {
	session *fixture.Session
	clock   Clock
	logger  *slog.Logger
	filter  string
}

// Run executes suites in order against session and returns the report.
//
// Run owns the session and closes it before returning; teardown failures
// of modules and of the session end up in Report.Errors. A cancelled ctx
// stops the run between cases and is returned together with the partial
// report.
func Run(ctx context.Context, session *fixture.Session, suites []Suite, opts Options) (*Report, error) {
	if err := ValidateSuites(suites); err != nil {
		return nil, fmt.Errorf("invalid suites: %w", err)
	}
	if err := checkFilter(opts.Filter); err != nil {
		return nil, err
	}

	r := &runner{
		session: session,
		clock:   opts.Clock,
		logger:  opts.Logger,
		filter:  opts.Filter,
	}
	if r.clock == nil {
		r.clock = systemClock{}
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs by default
	}

	report := NewReport(session.ID)
	runErr := r.runSuites(ctx, suites, report)

	if err := session.Close(); err != nil {
		report.AddError(err.Error())
	}
	return report, runErr
}

func (r *runner) runSuites(ctx context.Context, suites []Suite, report *Report) error {
	for _, suite := range suites {
		var cases []Case
		for _, c := range suite.Cases {
			if matchFilter(r.filter, suite.NodeID(c)) {
				cases = append(cases, c)
			}
		}
		if len(cases) == 0 {
			continue
		}

		// A skipped module is never entered, so none of its module-scoped
		// fixtures are created.
		if reason, ok := skipReason(suite.Marks); ok {
			for _, c := range cases {
				report.Results = append(report.Results, CaseResult{
					NodeID:  suite.NodeID(c),
					Module:  suite.Module.Name,
					Name:    c.Name,
					Outcome: Skipped,
					Phase:   PhaseSetup,
					Message: reason,
				})
			}
			r.logger.Debug("module skipped", "module", suite.Module.Name, "reason", reason)
			continue
		}

		if err := r.session.EnterModule(suite.Module); err != nil {
			report.AddError(err.Error())
		}
		for _, c := range cases {
			if err := ctx.Err(); err != nil {
				if exitErr := r.session.ExitModule(); exitErr != nil {
					report.AddError(exitErr.Error())
				}
				return err
			}
			res := r.runCase(suite, c)
			report.Results = append(report.Results, res)
			r.logger.Debug("case finished",
				"node", res.NodeID,
				"outcome", res.Outcome,
				"phase", res.Phase,
				"duration", res.Duration,
			)
		}
		if err := r.session.ExitModule(); err != nil {
			report.AddError(err.Error())
		}
	}
	return nil
}

// runCase executes one case: marks, fixture setup, body, teardown.
func (r *runner) runCase(suite Suite, c Case) CaseResult {
	start := r.clock.Now()
	res := CaseResult{
		NodeID: suite.NodeID(c),
		Module: suite.Module.Name,
		Name:   c.Name,
	}

	marks := make([]Mark, 0, len(suite.Marks)+len(c.Marks))
	marks = append(marks, suite.Marks...)
	marks = append(marks, c.Marks...)

	if reason, ok := skipReason(marks); ok {
		res.Outcome, res.Phase, res.Message = Skipped, PhaseSetup, reason
		res.Duration = r.clock.Now().Sub(start)
		return res
	}

	ts := r.session.StartTest(c.Name)
	t := newT(c.Name)

	vals, err := ts.Resolve(c.Fixtures...)
	if err != nil {
		res.Outcome, res.Phase, res.Message = Errored, PhaseSetup, err.Error()
	} else {
		res.Phase = PhaseCall
		res.Outcome, res.Message = call(t, c.Body, vals)
	}

	if err := ts.Finish(); err != nil {
		switch res.Outcome {
		case Failed, Errored:
			res.Message += "\nteardown: " + err.Error()
		default:
			res.Outcome, res.Phase, res.Message = Errored, PhaseTeardown, err.Error()
		}
	}

	if reason, ok := xfailReason(marks); ok && res.Phase == PhaseCall {
		switch res.Outcome {
		case Failed, Errored:
			res.Outcome, res.Message = XFailed, reason
		case Passed:
			res.Outcome, res.Message = XPassed, reason
		}
	}

	res.Output = t.output
	res.Duration = r.clock.Now().Sub(start)
	return res
}

// call runs a body and classifies how it ended.
func call(t *T, body Body, vals fixture.Values) (outcome Outcome, message string) {
	defer func() {
		rec := recover()
		switch v := rec.(type) {
		case nil:
			if t.Failed() {
				outcome, message = Failed, t.failureMessage()
			}
		case failNow:
			outcome, message = Failed, t.failureMessage()
		case skipNow:
			outcome, message = Skipped, v.reason
		default:
			outcome, message = Errored, fmt.Sprintf("panic: %v", rec)
		}
	}()

	body(t, vals)
	return Passed, ""
}
