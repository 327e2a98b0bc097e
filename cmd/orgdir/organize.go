package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"orgdir/internal/category"
	"orgdir/internal/config"
	"orgdir/internal/dirlock"
	"orgdir/internal/history"
	"orgdir/internal/logging"
	"orgdir/internal/organizer"
	"orgdir/internal/preflight"
)

type organizeOptions struct {
	path           string
	dryRun         bool
	yes            bool
	showConfigPath bool
}

var confirmResponses = map[string]struct{}{"y": {}, "Y": {}, "yes": {}, "Yes": {}}

func runOrganize(cmd *cobra.Command, ctx *commandContext, opts organizeOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := ctx.ensureLogger()
	jsonOut := ctx.jsonValue()
	out := cmd.OutOrStdout()
	ctx.reportConfigWarning(cmd.ErrOrStderr())
	createSampleOnFirstRun(ctx, logger)

	root, err := resolveRoot(opts.path)
	if err != nil {
		return err
	}
	base := filepath.Base(root)

	if !opts.dryRun && !opts.yes {
		prompt := out
		if jsonOut {
			prompt = cmd.ErrOrStderr()
		}
		if !confirm(cmd.InOrStdin(), prompt, base) {
			logger.Info("organize declined", logging.String(logging.FieldRoot, root))
			return organizer.ErrCancelled
		}
	}

	table := cfg.CategoryTable()
	for _, c := range table.Collisions() {
		logger.Warn("extension claimed by several categories; last one wins",
			logging.String("extension", c.Extension),
			logging.String("categories", strings.Join(c.Categories, ", ")),
		)
	}

	for _, check := range preflight.Failed(preflight.RunAll(cfg, root, opts.dryRun)) {
		logger.Warn("preflight check failed", logging.String("check", check.Name), logging.String("detail", check.Detail))
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s: %s\n", check.Name, check.Detail)
	}

	if !opts.dryRun {
		lock, err := dirlock.Acquire(cfg.LockDir(), root)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("release directory lock failed", logging.Error(err))
			}
		}()
	}

	runID := uuid.NewString()
	runCtx := logging.WithRunID(cmd.Context(), runID)

	orgOpts := []organizer.Option{organizer.WithLogger(logger)}
	var renderer *runRenderer
	if !jsonOut {
		renderer = newRunRenderer(out, opts.dryRun)
		renderer.header(base)
		orgOpts = append(orgOpts, organizer.WithObserver(renderer.category))
	}

	org := organizer.New(category.Flatten(table), orgOpts...)
	result, runErr := org.Organize(runCtx, root, opts.dryRun)
	if result == nil {
		return runErr
	}

	recordHistory(runCtx, logger, cfg, runID, result, runErr != nil)

	if jsonOut {
		if err := writeJSON(cmd, result); err != nil {
			return err
		}
	} else {
		renderer.summary(result)
	}
	return runErr
}

func resolveRoot(path string) (string, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: '%s' does not exist", organizer.ErrDirectoryUnreadable, path)
		}
		return "", fmt.Errorf("%w: stat %s: %w", organizer.ErrDirectoryUnreadable, path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: '%s' is not a directory", organizer.ErrDirectoryUnreadable, path)
	}
	return root, nil
}

// confirm asks once; anything other than an accepted response, including
// end of input, declines.
func confirm(in io.Reader, out io.Writer, base string) bool {
	fmt.Fprintf(out, "Organize directory '%s'? (y/N): ", base)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}
	_, ok := confirmResponses[strings.TrimRight(line, "\r\n")]
	return ok
}

// recordHistory journals a real run. The write is detached from
// cancellation so an interrupted run is still recorded.
func recordHistory(ctx context.Context, logger *slog.Logger, cfg *config.Config, runID string, result *organizer.RunResult, cancelled bool) {
	if result.DryRun || !cfg.History.Enabled {
		return
	}
	logger = logging.WithContext(ctx, logger)
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn("open run history failed", logging.Error(err))
		return
	}
	defer store.Close()
	if err := store.Record(context.WithoutCancel(ctx), runID, result, cancelled); err != nil {
		logger.Warn("record run history failed", logging.Error(err))
	}
}

// createSampleOnFirstRun writes the sample config to the default location
// when no config file exists yet. Errors are ignored.
func createSampleOnFirstRun(ctx *commandContext, logger *slog.Logger) {
	if ctx.configFlagValue() != "" || ctx.configExists {
		return
	}
	defaultPath, err := config.DefaultConfigPath()
	if err != nil || ctx.configPath != defaultPath {
		return
	}
	if err := os.MkdirAll(filepath.Dir(defaultPath), 0o755); err != nil {
		return
	}
	if err := config.CreateSample(defaultPath); err == nil {
		logger.Debug("created sample configuration", logging.String("config_path", defaultPath))
	}
}

func runShowConfigPath(cmd *cobra.Command, ctx *commandContext) error {
	if _, err := ctx.ensureConfig(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if ctx.jsonValue() {
		return writeJSON(cmd, map[string]any{"path": ctx.configPath, "exists": ctx.configExists})
	}
	fmt.Fprintf(out, "Configuration file: %s\n", ctx.configPath)
	if ctx.configExists {
		fmt.Fprintln(out, "Config file exists")
	} else {
		fmt.Fprintln(out, "Config file does not exist, will be created on first run")
	}
	return nil
}
