// Package config loads, normalizes, and validates orgdir configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads TOML files (JSON is accepted for files written by older tooling). The
// one setting the organizer consumes is the file_categories table of user
// overrides; the remaining sections steer logging, run history, and where
// state files live.
//
// Configuration problems never stop a run: a malformed or missing file is
// reported as a recoverable error next to a usable default Config, and the
// caller proceeds with no category overrides.
package config
