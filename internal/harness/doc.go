// Package harness runs suites of test cases on top of fixture sessions.
//
// A Suite stands for one test module: it carries the fixture.Module the
// cases share, module-level marks, and the cases themselves. Run walks the
// suites in order, resolves each case's fixtures, runs the body, tears the
// function scope down and records a CaseResult.
//
// # Outcomes
//
// Every case ends in exactly one Outcome:
//
//   - passed: the body returned without a recorded failure
//   - failed: an assertion did not hold (T.Errorf, T.Fatalf, T.Equal, ...)
//   - error: a fixture failed to set up or tear down, or the body panicked
//     for any reason other than a failed assertion (for example a runtime
//     integer divide by zero)
//   - skipped: a Skip/SkipIf mark applied, or the body called T.Skip
//   - xfailed / xpassed: the case carries an XFail mark and failed / passed
//
// Failures and errors are kept apart on purpose: a failure means the code
// under test is wrong, an error means the test could not run.
//
// # Usage
//
//	reg := fixture.NewRegistry()
//	// register fixtures...
//	session := fixture.NewSession(reg, fixture.NewConfig(values))
//	report, err := harness.Run(ctx, session, suites, harness.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	harness.WriteText(os.Stdout, report, false)
//
// Run owns the session: it is closed before Run returns.
package harness
