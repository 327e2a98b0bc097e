package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"orgdir/internal/category"
)

var (
	// ErrMalformed marks a configuration file that could not be decoded or
	// that carries unusable category names.
	ErrMalformed = errors.New("malformed configuration")
	// ErrNotFound marks an explicitly requested configuration file that does
	// not exist.
	ErrNotFound = errors.New("configuration not found")
)

// Paths contains state locations.
type Paths struct {
	StateDir string `toml:"state_dir" json:"state_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" json:"format"`
	Level  string `toml:"level" json:"level"`
}

// History controls the run journal.
type History struct {
	Enabled bool `toml:"enabled" json:"enabled"`
}

// Config encapsulates all configuration values for orgdir.
//
// Configuration sections:
//   - FileCategories: per-category extension overrides; a listed category
//     replaces the built-in list for that name entirely
//   - Paths: where logs, lock files and run history are kept
//   - Logging: log format and level
//   - History: whether real runs are journaled
type Config struct {
	FileCategories map[string][]string `toml:"file_categories" json:"file_categories"`
	Paths          Paths               `toml:"paths" json:"paths"`
	Logging        Logging             `toml:"logging" json:"logging"`
	History        History             `toml:"history" json:"history"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Recoverable reports whether err is a configuration problem the caller may
// log and ignore, continuing with the Config returned alongside it.
func Recoverable(err error) bool {
	return errors.Is(err, ErrMalformed) || errors.Is(err, ErrNotFound)
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the resolved path, and whether that file exists.
//
// When the file is missing (explicit path only), cannot be decoded, or names
// unusable categories, Load returns a normalized default Config together with
// an error for which Recoverable is true. Any other error is fatal.
func Load(path string) (*Config, string, bool, error) {
	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if strings.TrimSpace(path) != "" && !exists {
		return fallback(resolvedPath, false, fmt.Errorf("%w: %s", ErrNotFound, resolvedPath))
	}

	cfg := Default()
	if exists {
		if err := decodeFile(resolvedPath, &cfg); err != nil {
			return fallback(resolvedPath, true, fmt.Errorf("%w: %s: %w", ErrMalformed, resolvedPath, err))
		}
	}

	if err := cfg.normalize(); err != nil {
		if errors.Is(err, ErrMalformed) {
			return fallback(resolvedPath, exists, fmt.Errorf("%s: %w", resolvedPath, err))
		}
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return fallback(resolvedPath, exists, fmt.Errorf("%s: %w", resolvedPath, err))
	}

	return &cfg, resolvedPath, exists, nil
}

func fallback(resolvedPath string, exists bool, cause error) (*Config, string, bool, error) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, cause
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.NewDecoder(file).Decode(cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
		return nil
	}

	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state directory.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StateDir, err)
	}
	return nil
}

// LogPath returns the log file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.StateDir, "orgdir.log")
}

// LockDir returns the directory that holds per-target lock files.
func (c *Config) LockDir() string {
	return filepath.Join(c.Paths.StateDir, "locks")
}

// HistoryPath returns the run history database location.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// CategoryTable resolves the effective category table: built-in defaults
// overlaid by FileCategories.
func (c *Config) CategoryTable() *category.Table {
	return category.Build(category.Default(), c.FileCategories)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultStateDir() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "orgdir")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/state/orgdir"
	}
	return filepath.Join(home, ".local", "state", "orgdir")
}

const sampleHeader = `# orgdir configuration.
#
# [file_categories] maps a category (a slash-separated folder path relative to
# the organized directory) to the extensions it claims. Listing a category
# replaces its built-in extensions entirely; new names add categories.

`

// CreateSample writes a sample configuration file, seeded with the built-in
// categories, to the specified location.
func CreateSample(path string) error {
	sample := Default()
	sample.FileCategories = category.DefaultMap()
	sample.Paths.StateDir = defaultStateDirSetting

	body, err := toml.Marshal(sample)
	if err != nil {
		return fmt.Errorf("encode sample config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, append([]byte(sampleHeader), body...), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
