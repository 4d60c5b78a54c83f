// Package demo holds the demonstration suites: fixture scopes, assertion
// idioms, expected errors and conditional skips.
//
// Some cases fail or error on purpose (module01::test_a2, module01::test_a6,
// module03::test_case_01); their outcomes are part of what is demonstrated.
package demo
