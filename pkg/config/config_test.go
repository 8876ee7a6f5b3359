package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir, err := os.MkdirTemp("", "easechaos-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.Department = "CE"
	cfg.Year = 3
	cfg.Theme = "dark"
	cfg.View = "day"
	cfg.CacheBackend = "redis"
	cfg.RedisAddr = "localhost:6379"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".easechaos.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}
	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".easechaos.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected an error when loading invalid JSON, got nil")
	}
}

func TestConfigValidate(t *testing.T) {
	bad := []*AppConfig{
		{Theme: "sepia"},
		{Year: 7},
		{View: "month"},
		{Department: "Computer"},
		{APIURL: "not a url"},
		{CacheBackend: "memcached"},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected %+v to be invalid", cfg)
		}
	}

	good := &AppConfig{APIURL: "https://example.com", Department: "CE", Year: 4, Theme: "system"}
	if err := good.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	if err := Save(&AppConfig{Theme: "neon"}); err == nil {
		t.Fatalf("expected Save to reject an invalid theme")
	}
	if _, err := os.Stat(filepath.Join(tempDir, ".easechaos.json")); !os.IsNotExist(err) {
		t.Errorf("expected no config file to be written")
	}
}

func TestWithEnv(t *testing.T) {
	t.Setenv("EASECHAOS_API_URL", "http://localhost:8000")
	t.Setenv("EASECHAOS_YEAR", "2")
	t.Setenv("EASECHAOS_THEME", "")

	cfg := &AppConfig{APIURL: "https://remote", Year: 3, Theme: "light"}
	got := cfg.WithEnv()

	if got.APIURL != "http://localhost:8000" || got.Year != 2 {
		t.Errorf("expected env overrides, got %+v", got)
	}
	if got.Theme != "light" {
		t.Errorf("empty env value must not override, got %q", got.Theme)
	}
	if cfg.APIURL != "https://remote" {
		t.Errorf("WithEnv must not modify the receiver")
	}
}

func TestDraftDefaults(t *testing.T) {
	cfg := &AppConfig{}
	if cfg.DraftName() != DefaultDraft || cfg.ExamDraftName() != DefaultExamDraft {
		t.Errorf("expected defaults, got %s / %s", cfg.DraftName(), cfg.ExamDraftName())
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	// Registers a restore-to-unset cleanup, then clears the variable so
	// godotenv is free to set it.
	t.Setenv("EASECHAOS_DEPARTMENT", "")
	os.Unsetenv("EASECHAOS_DEPARTMENT")

	if _, ok := os.LookupEnv("EASECHAOS_DEPARTMENT"); ok {
		t.Fatalf("expected EASECHAOS_DEPARTMENT to be unset before Load")
	}

	workDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workDir, ".env"), []byte("EASECHAOS_DEPARTMENT=MN\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.WithEnv().Department; got != "MN" {
		t.Errorf("expected department from .env, got %q", got)
	}
}
