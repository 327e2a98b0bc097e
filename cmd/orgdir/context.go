package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"orgdir/internal/config"
	"orgdir/internal/logging"
)

type commandContext struct {
	configFlag *string
	verbose    *bool
	jsonOutput *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configWarn   error
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string, verbose, jsonOutput *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
		jsonOutput: jsonOutput,
	}
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// ensureConfig loads configuration once. Recoverable problems (a missing
// explicit file, a malformed file) leave defaults in place and are kept as a
// warning; anything else is fatal.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.configFlagValue())
		if err != nil {
			if !config.Recoverable(err) {
				c.configErr = err
				return
			}
			c.configWarn = err
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the file logger once the config is known. Logger
// construction failures fall back to a no-op logger; logging never blocks a run.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg, c.verboseValue())
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
		if c.configWarn != nil {
			c.logger.Warn("configuration ignored; using defaults",
				logging.String("config_path", c.configPath),
				logging.Error(c.configWarn),
			)
		}
	})
	return c.logger
}

// reportConfigWarning tells the user a config file was ignored.
func (c *commandContext) reportConfigWarning(w io.Writer) {
	if c.configWarn == nil {
		return
	}
	fmt.Fprintf(w, "Warning: %v; using default categories\n", c.configWarn)
}

func (c *commandContext) verboseValue() bool {
	return c.verbose != nil && *c.verbose
}

func (c *commandContext) jsonValue() bool {
	return c.jsonOutput != nil && *c.jsonOutput
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
