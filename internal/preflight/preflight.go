package preflight

import (
	"orgdir/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks that apply to organizing root. A dry run only
// needs to list the directory; a real run also needs write access to it and
// to the state directory holding the lock and history.
func RunAll(cfg *config.Config, root string, dryRun bool) []Result {
	if dryRun {
		return []Result{CheckDirectoryReadable("Target directory", root)}
	}

	results := []Result{CheckDirectoryAccess("Target directory", root)}
	if cfg != nil && cfg.Paths.StateDir != "" {
		results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))
	}
	return results
}

// Failed returns the subset of results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
