package organizer

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"orgdir/internal/logging"
)

// Failure records one file that could not be relocated.
type Failure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// CategoryResult is the outcome of relocating one category's files. Files is
// sorted by byte order and Failed follows the same order.
type CategoryResult struct {
	Category string    `json:"category"`
	Files    []string  `json:"files"`
	Moved    int       `json:"moved"`
	Failed   []Failure `json:"failed,omitempty"`
}

// FailedNames returns the names of files that failed to move.
func (r CategoryResult) FailedNames() []string {
	names := make([]string, len(r.Failed))
	for i, f := range r.Failed {
		names[i] = f.Name
	}
	return names
}

// Relocate moves each named file from root into root/category, creating the
// destination as needed. Names are processed in sorted order. With dryRun
// every file counts as moved and nothing is touched. A failure on one file is
// recorded and the rest of the batch continues.
func (o *Organizer) Relocate(root, category string, names []string, dryRun bool) CategoryResult {
	return o.relocate(o.logger, root, category, names, dryRun)
}

func (o *Organizer) relocate(logger *slog.Logger, root, category string, names []string, dryRun bool) CategoryResult {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	result := CategoryResult{Category: category, Files: sorted}
	if dryRun {
		result.Moved = len(sorted)
		return result
	}

	destDir := filepath.Join(root, filepath.FromSlash(category))
	for _, name := range sorted {
		if err := o.relocateOne(root, destDir, name); err != nil {
			logger.Warn("file move failed",
				logging.String(logging.FieldCategory, category),
				logging.String("file", name),
				logging.Error(err),
			)
			result.Failed = append(result.Failed, Failure{Name: name, Reason: err.Error(), Err: err})
			continue
		}
		logger.Debug("file moved",
			logging.String(logging.FieldCategory, category),
			logging.String("file", name),
		)
		result.Moved++
	}
	return result
}

func (o *Organizer) relocateOne(root, destDir, name string) error {
	if err := o.mkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create destination %s: %w", destDir, err)
	}
	return o.move(filepath.Join(root, name), filepath.Join(destDir, name))
}
