package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/contentcompass/trendcompass/internal/testenv"
)

// Helpers

func setupTempDir(t *testing.T) testenv.Dirs {
	t.Helper()
	dirs := testenv.Apply(t.Setenv, t.TempDir())
	// Clear env override variables so tests aren't affected by the host environment.
	t.Setenv("TRENDCOMPASS_ENABLED_CATEGORIES", "")
	t.Setenv("TRENDCOMPASS_MODE", "")
	t.Setenv("TRENDCOMPASS_DEMO_DIR", "")
	t.Setenv(APIKeyEnvVar, "")
	// Reset global config so tests don't leak state.
	configMu.Lock()
	globalConfig = nil
	configMu.Unlock()
	return dirs
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Mode != ModeUnset {
		t.Errorf("Mode = %q, want unset", cfg.Mode)
	}
	if cfg.Fetch.Timeout != 30.0 {
		t.Errorf("Timeout = %v, want 30", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.BaseURL != "https://api.virlo.ai" {
		t.Errorf("BaseURL = %q", cfg.Fetch.BaseURL)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	setupTempDir(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeUnset || cfg.Fetch.Timeout != 30.0 {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setupTempDir(t)
	cfg := DefaultConfig()
	cfg.Mode = ModeDemo
	cfg.EnabledCategories = []string{"hashtags", "trends"}
	cfg.Fetch.Timeout = 12.5

	if err := Save(cfg, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Mode != ModeDemo {
		t.Errorf("Mode = %q", loaded.Mode)
	}
	if len(loaded.EnabledCategories) != 2 {
		t.Errorf("EnabledCategories = %v", loaded.EnabledCategories)
	}
	if loaded.Fetch.Timeout != 12.5 {
		t.Errorf("Timeout = %v", loaded.Fetch.Timeout)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dirs := setupTempDir(t)
	if err := os.MkdirAll(dirs.Config, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dirs.Config, "config.toml"), []byte("mode = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err == nil {
		t.Error("expected parse error")
	}
	// Malformed files degrade to defaults instead of blocking startup.
	if cfg.Fetch.Timeout != 30.0 {
		t.Errorf("fallback config = %+v", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	setupTempDir(t)
	t.Setenv("TRENDCOMPASS_MODE", ModeLive)
	t.Setenv("TRENDCOMPASS_ENABLED_CATEGORIES", "hashtags, videos")
	t.Setenv("TRENDCOMPASS_DEMO_DIR", "/tmp/demo-data")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeLive {
		t.Errorf("Mode = %q", cfg.Mode)
	}
	if len(cfg.EnabledCategories) != 2 || cfg.EnabledCategories[1] != "videos" {
		t.Errorf("EnabledCategories = %v", cfg.EnabledCategories)
	}
	if cfg.Demo.Dir != "/tmp/demo-data" {
		t.Errorf("Demo.Dir = %q", cfg.Demo.Dir)
	}
}

func TestSetMode(t *testing.T) {
	setupTempDir(t)
	if err := SetMode(ModeDemo); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	if got := Get().Mode; got != ModeDemo {
		t.Errorf("Mode after SetMode = %q", got)
	}
	// And it survives a reload from disk.
	cfg, err := Reload()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeDemo {
		t.Errorf("reloaded Mode = %q", cfg.Mode)
	}
}

func TestSetModeDoesNotBakeEnvOverrides(t *testing.T) {
	setupTempDir(t)
	base := DefaultConfig()
	base.EnabledCategories = []string{"trends", "hashtags"}
	if err := Save(base, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("TRENDCOMPASS_ENABLED_CATEGORIES", "videos")
	t.Setenv("TRENDCOMPASS_MODE", "live")
	if err := SetMode(ModeDemo); err != nil {
		t.Fatalf("SetMode: %v", err)
	}

	// The file keeps its own values; only the mode changes.
	onDisk, err := loadFile(ConfigFile())
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if onDisk.Mode != ModeDemo {
		t.Errorf("on-disk Mode = %q, want demo", onDisk.Mode)
	}
	if len(onDisk.EnabledCategories) != 2 || onDisk.EnabledCategories[0] != "trends" {
		t.Errorf("env override leaked into file: %v", onDisk.EnabledCategories)
	}
}

func TestUpdateMutateErrorAbortsWrite(t *testing.T) {
	setupTempDir(t)
	base := DefaultConfig()
	base.Mode = ModeDemo
	if err := Save(base, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	wantErr := os.ErrInvalid
	if err := Update(func(c *Config) error { return wantErr }); err != wantErr {
		t.Fatalf("Update err = %v, want %v", err, wantErr)
	}
	onDisk, _ := loadFile(ConfigFile())
	if onDisk.Mode != ModeDemo {
		t.Errorf("aborted update changed the file: %q", onDisk.Mode)
	}
}

func TestIsCategoryEnabled(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.IsCategoryEnabled("trends") {
		t.Error("empty list should enable everything")
	}
	cfg.EnabledCategories = []string{"hashtags"}
	if cfg.IsCategoryEnabled("trends") {
		t.Error("trends not in list, should be disabled")
	}
	if !cfg.IsCategoryEnabled("hashtags") {
		t.Error("hashtags in list, should be enabled")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	setupTempDir(t)
	cfg := Get()
	cfg.Mode = ModeLive
	cfg.EnabledCategories = append(cfg.EnabledCategories, "rogue")
	if Get().Mode == ModeLive {
		t.Error("mutating the returned config leaked into the singleton")
	}
}
