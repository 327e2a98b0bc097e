package organizer_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"orgdir/internal/fileutil"
	"orgdir/internal/organizer"
	"orgdir/internal/testsupport"
)

func TestRelocatePartialFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFiles(t, dir, "c.txt", "a.txt", "b.txt")

	var calls []string
	failing := func(src, dst string) error {
		calls = append(calls, filepath.Base(src))
		if filepath.Base(src) == "b.txt" {
			return errors.New("injected failure")
		}
		return fileutil.MoveReplace(src, dst)
	}

	org := organizer.New(defaultIndex(), organizer.WithMover(failing))
	result := org.Relocate(dir, "Docs", []string{"c.txt", "a.txt", "b.txt"}, false)

	if result.Moved != 2 {
		t.Fatalf("expected 2 moved, got %d", result.Moved)
	}
	if got := result.FailedNames(); !reflect.DeepEqual(got, []string{"b.txt"}) {
		t.Fatalf("expected [b.txt] failed, got %v", got)
	}
	if result.Failed[0].Reason == "" || result.Failed[0].Err == nil {
		t.Fatalf("expected failure reason, got %+v", result.Failed[0])
	}
	if !reflect.DeepEqual(calls, []string{"a.txt", "b.txt", "c.txt"}) {
		t.Fatalf("expected sorted processing order, got %v", calls)
	}
	testsupport.RequireExists(t, filepath.Join(dir, "Docs", "a.txt"))
	testsupport.RequireExists(t, filepath.Join(dir, "Docs", "c.txt"))
	testsupport.RequireExists(t, filepath.Join(dir, "b.txt"))
}

func TestRelocateSortsByteOrder(t *testing.T) {
	org := organizer.New(defaultIndex())
	result := org.Relocate(t.TempDir(), "Images", []string{"b.png", "B.png", "a.png", "A.png"}, true)
	want := []string{"A.png", "B.png", "a.png", "b.png"}
	if !reflect.DeepEqual(result.Files, want) {
		t.Fatalf("expected case-sensitive sort %v, got %v", want, result.Files)
	}
}

func TestRelocateDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFiles(t, dir, "one.pdf", "two.pdf")

	moves := 0
	org := organizer.New(defaultIndex(), organizer.WithMover(func(string, string) error {
		moves++
		return nil
	}))
	result := org.Relocate(dir, "Docs/PDF", []string{"one.pdf", "two.pdf"}, true)

	if result.Moved != 2 || len(result.Failed) != 0 {
		t.Fatalf("unexpected dry run result %+v", result)
	}
	if moves != 0 {
		t.Fatalf("dry run invoked mover %d times", moves)
	}
	if _, err := os.Stat(filepath.Join(dir, "Docs")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("dry run created destination directory: %v", err)
	}
}

func TestRelocateCreatesNestedDestination(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFiles(t, dir, "doc.pdf")

	org := organizer.New(defaultIndex())
	result := org.Relocate(dir, "Docs/PDF", []string{"doc.pdf"}, false)
	if result.Moved != 1 {
		t.Fatalf("expected 1 moved, got %+v", result)
	}
	testsupport.RequireExists(t, filepath.Join(dir, "Docs", "PDF", "doc.pdf"))
	testsupport.RequireMissing(t, filepath.Join(dir, "doc.pdf"))
}

func TestRelocateOverwritesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Docs", "notes.txt"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := organizer.New(defaultIndex()).Relocate(dir, "Docs", []string{"notes.txt"}, false)
	if result.Moved != 1 {
		t.Fatalf("expected move, got %+v", result)
	}
	got, err := os.ReadFile(filepath.Join(dir, "Docs", "notes.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestRelocateDestinationCreationFailureIsPerFile(t *testing.T) {
	dir := t.TempDir()
	// A plain file occupies the category path, so MkdirAll fails.
	testsupport.WriteFiles(t, dir, "Images", "pic.jpg", "other.jpg")

	result := organizer.New(defaultIndex()).Relocate(dir, "Images", []string{"pic.jpg", "other.jpg"}, false)
	if result.Moved != 0 {
		t.Fatalf("expected no moves, got %d", result.Moved)
	}
	if got := result.FailedNames(); !reflect.DeepEqual(got, []string{"other.jpg", "pic.jpg"}) {
		t.Fatalf("expected both files failed, got %v", got)
	}
	testsupport.RequireExists(t, filepath.Join(dir, "pic.jpg"))
}

func TestRelocateVanishedSourceFails(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFiles(t, dir, "here.txt")

	result := organizer.New(defaultIndex()).Relocate(dir, "Docs", []string{"gone.txt", "here.txt"}, false)
	if result.Moved != 1 {
		t.Fatalf("expected 1 moved, got %d", result.Moved)
	}
	if got := result.FailedNames(); !reflect.DeepEqual(got, []string{"gone.txt"}) {
		t.Fatalf("expected gone.txt failed, got %v", got)
	}
}
