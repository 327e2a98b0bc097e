package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"orgdir/internal/config"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultConfigWhenAbsent(t *testing.T) {
	home := isolateHome(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved != filepath.Join(home, ".config", "orgdir", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Paths.StateDir != filepath.Join(home, ".local", "state", "orgdir") {
		t.Fatalf("unexpected state dir %q", cfg.Paths.StateDir)
	}
	if len(cfg.FileCategories) != 0 {
		t.Fatalf("expected no overrides, got %v", cfg.FileCategories)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
}

func TestLoadHonoursXDGStateHome(t *testing.T) {
	isolateHome(t)
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.StateDir != filepath.Join(state, "orgdir") {
		t.Fatalf("unexpected state dir %q", cfg.Paths.StateDir)
	}
}

func TestLoadTOMLOverrides(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	body := `
[file_categories]
Images = [".heic"]
"Docs/Notes" = [".org", ".NOTES"]

[paths]
state_dir = "~/state"

[logging]
format = "JSON"
level = "bogus"

[history]
enabled = false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution %q exists=%v", resolved, exists)
	}
	want := map[string][]string{
		"Images":     {".heic"},
		"Docs/Notes": {".org", ".NOTES"},
	}
	if !reflect.DeepEqual(cfg.FileCategories, want) {
		t.Fatalf("unexpected categories %v", cfg.FileCategories)
	}
	if cfg.Paths.StateDir != filepath.Join(home, "state") {
		t.Fatalf("expected expanded state dir, got %q", cfg.Paths.StateDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled")
	}

	table := cfg.CategoryTable()
	exts, _ := table.Extensions("Images")
	if !reflect.DeepEqual(exts, []string{".heic"}) {
		t.Fatalf("expected override in resolved table, got %v", exts)
	}
}

func TestLoadJSONConfig(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "legacy.json")
	body := `{"file_categories": {"CustomDocs": [".mydoc", ".notes"], "Images": [".jpg", ".png"]}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.FileCategories["CustomDocs"]; !reflect.DeepEqual(got, []string{".mydoc", ".notes"}) {
		t.Fatalf("unexpected CustomDocs %v", got)
	}
	if !cfg.History.Enabled {
		t.Fatal("fields absent from JSON should keep defaults")
	}
}

func TestLoadMalformedFileDegradesToDefaults(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[file_categories\nImages = "), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if !errors.Is(err, config.ErrMalformed) || !config.Recoverable(err) {
		t.Fatalf("expected recoverable ErrMalformed, got %v", err)
	}
	if cfg == nil || len(cfg.FileCategories) != 0 {
		t.Fatalf("expected default config without overrides, got %+v", cfg)
	}
	if !exists {
		t.Fatal("malformed file still exists")
	}
}

func TestLoadInvalidJSONDegradesToDefaults(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("invalid json content"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _, err := config.Load(path)
	if !config.Recoverable(err) {
		t.Fatalf("expected recoverable error, got %v", err)
	}
	if cfg == nil || cfg.FileCategories != nil {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, resolved, exists, err := config.Load(path)
	if !errors.Is(err, config.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if cfg == nil || exists || resolved != path {
		t.Fatalf("unexpected fallback cfg=%v resolved=%q exists=%v", cfg, resolved, exists)
	}
}

func TestLoadRejectsEscapingCategoryNames(t *testing.T) {
	isolateHome(t)
	for _, name := range []string{"../outside", "/abs", "a/../../b", ".", "Docs//PDF"} {
		path := filepath.Join(t.TempDir(), "bad.toml")
		doc := map[string]any{"file_categories": map[string][]string{name: {".x"}}}
		data, err := toml.Marshal(doc)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, _, _, err := config.Load(path)
		if !errors.Is(err, config.ErrMalformed) {
			t.Fatalf("%q: expected ErrMalformed, got %v", name, err)
		}
		if len(cfg.FileCategories) != 0 {
			t.Fatalf("%q: overrides should be dropped, got %v", name, cfg.FileCategories)
		}
	}
}

func TestLoadRejectsCategoriesThatTrimToTheSameName(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "dup.toml")
	doc := "[file_categories]\nImages = [\".png\"]\n\" Images\" = [\".jpg\"]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if !errors.Is(err, config.ErrMalformed) || !config.Recoverable(err) {
		t.Fatalf("expected recoverable ErrMalformed, got %v", err)
	}
	if !strings.Contains(err.Error(), "Images") {
		t.Fatalf("expected clashing name in error, got %v", err)
	}
	if !exists || len(cfg.FileCategories) != 0 {
		t.Fatalf("expected defaults with no overrides, got exists=%v categories=%v", exists, cfg.FileCategories)
	}
}

func TestLoadFindsProjectConfig(t *testing.T) {
	isolateHome(t)
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	body := "[file_categories]\nProject = [\".proj\"]\n"
	if err := os.WriteFile(filepath.Join(cwd, "orgdir.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || filepath.Base(resolved) != "orgdir.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if _, ok := cfg.FileCategories["Project"]; !ok {
		t.Fatalf("expected Project override, got %v", cfg.FileCategories)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	isolateHome(t)
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# orgdir configuration.") {
		t.Fatalf("expected header comment, got %q", string(data)[:40])
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if got := cfg.FileCategories["Docs/PDF"]; !reflect.DeepEqual(got, []string{".pdf"}) {
		t.Fatalf("expected default categories in sample, got %v", got)
	}
	defaults := config.Default()
	if !reflect.DeepEqual(cfg.CategoryTable().Names(), defaults.CategoryTable().Names()) {
		t.Fatal("sample categories should not reorder the default table")
	}
}

func TestEnsureDirectories(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(t.TempDir(), "state", "orgdir")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.StateDir); err != nil || !info.IsDir() {
		t.Fatalf("expected state dir, err=%v", err)
	}
	if filepath.Dir(cfg.HistoryPath()) != cfg.Paths.StateDir || filepath.Dir(cfg.LockDir()) != cfg.Paths.StateDir {
		t.Fatal("derived paths should live under the state dir")
	}
}
