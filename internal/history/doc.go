// Package history keeps a SQLite journal of real organize runs.
//
// Each run stores a summary row keyed by its run ID plus one row per file the
// run touched, marked moved or failed. Dry runs are never written. The journal
// is an audit trail for the `history` command; it does not drive undo.
package history
