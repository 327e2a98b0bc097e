// Package preflight provides readiness checks for the filesystem paths an
// organize run depends on.
//
// The CLI runs them before touching anything. Results are advisory: a failed
// check is reported and logged, and any real damage still surfaces as
// per-file failures in the run result.
package preflight
