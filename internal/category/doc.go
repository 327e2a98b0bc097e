// Package category owns the mapping from destination categories to the file
// extensions they claim.
//
// A Table is built once per run by overlaying user overrides on the built-in
// defaults, then flattened into an Index that answers "which category does
// this extension belong to" with case-insensitive lookups. Both values are
// read-only after construction and are passed explicitly to the organizer;
// there is no package-level mutable state.
package category
