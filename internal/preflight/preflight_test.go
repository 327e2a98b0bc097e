package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"orgdir/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryReadable_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if result := CheckDirectoryReadable("test", dir); !result.Passed {
		t.Fatalf("expected read-only dir to be readable, got: %s", result.Detail)
	}
	if result := CheckDirectoryAccess("test", dir); result.Passed {
		t.Fatal("expected write check to fail on read-only dir")
	}
}

func TestRunAll_DryRunChecksTargetOnly(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(t.TempDir(), "missing")

	results := RunAll(&cfg, t.TempDir(), true)
	if len(results) != 1 || !results[0].Passed {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestRunAll_RealRunChecksStateDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(t.TempDir(), "missing")

	results := RunAll(&cfg, t.TempDir(), false)
	if len(results) != 2 {
		t.Fatalf("expected two checks, got %+v", results)
	}
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "State directory" {
		t.Fatalf("expected state directory failure, got %+v", failed)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(nil, t.TempDir(), false); len(results) != 1 {
		t.Fatalf("expected only the target check, got %+v", results)
	}
}
