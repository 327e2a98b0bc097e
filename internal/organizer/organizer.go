package organizer

import (
	"context"
	"log/slog"
	"os"
	"sort"

	"github.com/google/uuid"

	"orgdir/internal/category"
	"orgdir/internal/fileutil"
	"orgdir/internal/logging"
)

// Mover relocates a single file, replacing any existing destination.
type Mover func(src, dst string) error

// Observer receives each category result as soon as it completes.
type Observer func(CategoryResult)

// RunResult summarizes one Organize call. Unclassified is sorted; Failed is
// in processing order (category discovery order, then sorted names).
type RunResult struct {
	Root         string           `json:"root"`
	DryRun       bool             `json:"dry_run"`
	TotalMoved   int              `json:"total_moved"`
	Categories   []CategoryResult `json:"categories"`
	Unclassified []string         `json:"unclassified"`
	Failed       []Failure        `json:"failed"`
}

// FailedNames returns the names of files that failed to move, sorted.
func (r *RunResult) FailedNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.Failed))
	for i, f := range r.Failed {
		names[i] = f.Name
	}
	sort.Strings(names)
	return names
}

// Organizer drives scanning and relocation for one extension index.
type Organizer struct {
	index    *category.Index
	logger   *slog.Logger
	move     Mover
	mkdirAll func(string, os.FileMode) error
	observer Observer
}

// Option customizes an Organizer.
type Option func(*Organizer)

// WithLogger sets the structured logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Organizer) {
		o.logger = logging.NewComponentLogger(logger, "organizer")
	}
}

// WithMover replaces the file move primitive (used in tests).
func WithMover(m Mover) Option {
	return func(o *Organizer) {
		if m != nil {
			o.move = m
		}
	}
}

// WithObserver registers a callback invoked after each category completes.
func WithObserver(fn Observer) Option {
	return func(o *Organizer) {
		o.observer = fn
	}
}

// New constructs an Organizer bound to idx.
func New(idx *category.Index, opts ...Option) *Organizer {
	o := &Organizer{
		index:    idx,
		logger:   logging.NewComponentLogger(nil, "organizer"),
		move:     fileutil.MoveReplace,
		mkdirAll: os.MkdirAll,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Organize scans root once and relocates every classified file into its
// category directory. An unreadable root aborts before anything moves. The
// context is consulted between categories only; once a category starts, its
// files run to completion. On cancellation the partial result is returned
// along with the context error.
func (o *Organizer) Organize(ctx context.Context, root string, dryRun bool) (*RunResult, error) {
	if _, ok := logging.RunIDFromContext(ctx); !ok {
		ctx = logging.WithRunID(ctx, uuid.NewString())
	}
	logger := logging.WithContext(ctx, o.logger).With(
		logging.String(logging.FieldRoot, root),
		logging.Bool("dry_run", dryRun),
	)

	partition, err := Scan(root, o.index)
	if err != nil {
		logger.Error("scan failed", logging.Error(err))
		return nil, err
	}
	logger.Info("scan complete",
		logging.Int("entries", partition.Total()),
		logging.Int("categories", len(partition.Order)),
		logging.Int("unclassified", len(partition.Unclassified)),
	)

	unclassified := append([]string{}, partition.Unclassified...)
	sort.Strings(unclassified)
	result := &RunResult{
		Root:         root,
		DryRun:       dryRun,
		Categories:   make([]CategoryResult, 0, len(partition.Order)),
		Unclassified: unclassified,
		Failed:       []Failure{},
	}

	for _, dest := range partition.Order {
		files := partition.Files[dest]
		if len(files) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			logger.Warn("organize interrupted", logging.Int("moved", result.TotalMoved), logging.Error(err))
			return result, err
		}
		cr := o.relocate(logger, root, dest, files, dryRun)
		result.Categories = append(result.Categories, cr)
		result.TotalMoved += cr.Moved
		result.Failed = append(result.Failed, cr.Failed...)
		if o.observer != nil {
			o.observer(cr)
		}
	}

	logger.Info("organize complete",
		logging.Int("moved", result.TotalMoved),
		logging.Int("failed", len(result.Failed)),
		logging.Int("unclassified", len(result.Unclassified)),
	)
	return result, nil
}
