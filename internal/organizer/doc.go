// Package organizer classifies the immediate children of a directory by file
// extension and relocates each into its category subdirectory.
//
// The flow is Scan (one flat listing partitioned into categories and
// unclassified names), then Relocate per category, driven by Organize which
// accumulates a RunResult. Per-file move failures are captured as values and
// never abort a run; only an unreadable root directory is fatal. Dry runs
// compute the same partition and counts without touching the filesystem.
//
// The package never prints. Callers render the RunResult and may observe
// progress per category through WithObserver.
package organizer
