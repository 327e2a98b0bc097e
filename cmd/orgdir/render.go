package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"orgdir/internal/organizer"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const separatorWidth = 40

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runRenderer prints live progress for an organize run: a header, one block
// per category as it completes, then a summary.
type runRenderer struct {
	out      io.Writer
	colorize bool
	dryRun   bool
}

func newRunRenderer(out io.Writer, dryRun bool) *runRenderer {
	return &runRenderer{out: out, colorize: shouldColorize(out), dryRun: dryRun}
}

func (r *runRenderer) paint(kind statusKind, s string) string {
	if !r.colorize {
		return s
	}
	return statusKindColor(kind) + s + ansiReset
}

func (r *runRenderer) header(base string) {
	title := "Organizing: " + base
	if r.dryRun {
		title = "Dry run - preview for: " + base
	}
	fmt.Fprintf(r.out, "\n%s\n%s\n", r.paint(statusInfo, title), strings.Repeat("-", separatorWidth))
}

// category is installed as the organizer observer.
func (r *runRenderer) category(result organizer.CategoryResult) {
	fmt.Fprintf(r.out, "\n%s/ (%s)\n", r.paint(statusInfo, result.Category), pluralFiles(len(result.Files)))

	failed := make(map[string]struct{}, len(result.Failed))
	for _, f := range result.Failed {
		failed[f.Name] = struct{}{}
	}
	for _, name := range result.Files {
		switch {
		case r.dryRun:
			fmt.Fprintf(r.out, "   %s %s\n", r.paint(statusInfo, "->"), name)
		case hasKey(failed, name):
			fmt.Fprintf(r.out, "   %s %s\n", r.paint(statusError, "x"), name)
		default:
			fmt.Fprintf(r.out, "   %s %s\n", r.paint(statusOK, "ok"), name)
		}
	}
}

func (r *runRenderer) summary(result *organizer.RunResult) {
	if result == nil {
		return
	}
	if len(result.Categories) > 0 {
		rows := make([][]string, 0, len(result.Categories))
		for _, cr := range result.Categories {
			rows = append(rows, []string{
				cr.Category,
				strconv.Itoa(len(cr.Files)),
				strconv.Itoa(cr.Moved),
				strconv.Itoa(len(cr.Failed)),
			})
		}
		moveHeader := "Moved"
		if r.dryRun {
			moveHeader = "Would move"
		}
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, renderTable(
			[]string{"Category", "Files", moveHeader, "Failed"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
		))
	}

	if len(result.Unclassified) > 0 {
		fmt.Fprintf(r.out, "\n%s\n", r.paint(statusWarn, fmt.Sprintf("Unclassified (%d):", len(result.Unclassified))))
		for _, name := range result.Unclassified {
			fmt.Fprintf(r.out, "   - %s\n", name)
		}
	}
	if len(result.Failed) > 0 {
		fmt.Fprintf(r.out, "\n%s\n", r.paint(statusError, fmt.Sprintf("Failed (%d):", len(result.Failed))))
		for _, f := range sortedFailures(result.Failed) {
			fmt.Fprintf(r.out, "   - %s: %s\n", f.Name, f.Reason)
		}
	}

	action := "Organized"
	if r.dryRun {
		action = "Would organize"
	}
	fmt.Fprintf(r.out, "\nSummary: %s %s\n", action, pluralFiles(result.TotalMoved))
	if n := len(result.Unclassified); n > 0 {
		fmt.Fprintf(r.out, "   Unclassified: %s\n", pluralFiles(n))
	}
	if n := len(result.Failed); n > 0 {
		fmt.Fprintf(r.out, "   Failed: %s\n", pluralFiles(n))
	}
	fmt.Fprintln(r.out)
}

func sortedFailures(failures []organizer.Failure) []organizer.Failure {
	out := append([]organizer.Failure(nil), failures...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return strconv.Itoa(n) + " files"
}

func hasKey(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
