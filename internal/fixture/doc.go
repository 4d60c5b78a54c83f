// Package fixture resolves named, scoped setup/teardown units for test cases.
//
// A fixture is registered once in a Registry and created lazily the first
// time a test (or another fixture) requests it. Its Scope decides how long
// the created value is cached and when its cleanups run:
//
//   - ScopeFunction: rebuilt for every test, cleaned up when the test ends
//   - ScopeModule: shared by the tests of one module, cleaned up on ExitModule
//   - ScopeSession: shared by the whole session, cleaned up on Close
//
// Cleanups registered through Request.Cleanup run in reverse registration
// order within their scope, on every exit path of the test that triggered
// them.
//
// # Session state
//
// State that a configure hook shares with fixtures lives on the session's
// Config (see Config.Stash), never in package variables, so every Session
// starts from a clean slate and tests can build as many as they like.
//
// # Concurrency
//
// A Session and everything hanging off it is single-threaded. Module and
// session scoped values are plain shared references: running tests that
// request them from several goroutines is a data race unless each worker
// gets its own Session.
package fixture
