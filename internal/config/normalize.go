package config

import (
	"fmt"
	"sort"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return c.normalizeCategories()
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "console", "json":
		c.Logging.Format = format
	default:
		c.Logging.Format = defaultLogFormat
	}

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch level {
	case "debug", "info", "warn", "error":
		c.Logging.Level = level
	default:
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeCategories trims surrounding whitespace from category names.
// Extensions are left verbatim; lowercasing happens in the index. Two names
// that trim to the same category are rejected rather than merged.
func (c *Config) normalizeCategories() error {
	if len(c.FileCategories) == 0 {
		return nil
	}
	trimmed := make(map[string][]string, len(c.FileCategories))
	var clashes []string
	for name, exts := range c.FileCategories {
		key := strings.TrimSpace(name)
		if _, dup := trimmed[key]; dup {
			clashes = append(clashes, key)
			continue
		}
		trimmed[key] = exts
	}
	if len(clashes) > 0 {
		sort.Strings(clashes)
		return fmt.Errorf("%w: file_categories: %q defined more than once", ErrMalformed, clashes)
	}
	c.FileCategories = trimmed
	return nil
}
