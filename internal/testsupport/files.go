package testsupport

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path, including parents, with the given contents.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteFiles creates each named file directly under dir. Every file holds its
// own name so moved files can be told apart afterwards.
func WriteFiles(t testing.TB, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		WriteFile(t, filepath.Join(dir, name), name)
	}
}

// RequireExists fails the test when path is absent.
func RequireExists(t testing.TB, path string) {
	t.Helper()

	if _, err := os.Lstat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
}

// RequireMissing fails the test when path is present.
func RequireMissing(t testing.TB, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	if err == nil {
		t.Fatalf("expected %s to be absent", path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("stat %s: %v", path, err)
	}
}
