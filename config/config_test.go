package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromBytes(t *testing.T) {
	yamlData := `
site:
  title: Field Notes
  icon: leaf
content:
  dir: posts
  ignore_patterns:
    - "drafts/**"
nav:
  - label: Home
    icon: home
    slug: home
  - label: About
    slug: about
`
	cfg, err := LoadFromBytes([]byte(yamlData))
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}

	if cfg.Site.Title != "Field Notes" {
		t.Errorf("Site.Title = %q", cfg.Site.Title)
	}
	if cfg.Content.Dir != "posts" {
		t.Errorf("Content.Dir = %q", cfg.Content.Dir)
	}
	if len(cfg.Nav) != 2 {
		t.Fatalf("len(Nav) = %d, want 2", len(cfg.Nav))
	}
	if cfg.Nav[0].Label != "Home" || cfg.Nav[1].Slug != "about" {
		t.Errorf("Nav entries out of order: %+v", cfg.Nav)
	}
}

func TestLoadFromBytes_Defaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("site:\n  description: just a site\n"))
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if cfg.Site.Title != "Untitled Site" {
		t.Errorf("default Site.Title = %q", cfg.Site.Title)
	}
	if cfg.Content.Dir != "content" {
		t.Errorf("default Content.Dir = %q", cfg.Content.Dir)
	}
	if cfg.TUI.Theme != "kanagawa" {
		t.Errorf("default TUI.Theme = %q", cfg.TUI.Theme)
	}
}

func TestLoadFromBytes_EnvExpansion(t *testing.T) {
	t.Setenv("LOAM_TEST_TITLE", "From Env")

	cfg, err := LoadFromBytes([]byte("site:\n  title: ${LOAM_TEST_TITLE}\ncontent:\n  dir: ${LOAM_TEST_DIR:-content}\n"))
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if cfg.Site.Title != "From Env" {
		t.Errorf("Site.Title = %q, want env value", cfg.Site.Title)
	}
	if cfg.Content.Dir != "content" {
		t.Errorf("Content.Dir = %q, want fallback default", cfg.Content.Dir)
	}
}

func TestLoadFromBytes_InvalidNav(t *testing.T) {
	_, err := LoadFromBytes([]byte("nav:\n  - icon: home\n"))
	if err == nil {
		t.Fatal("expected validation error for nav entry with no label or slug")
	}
}

func TestLoadFromBytes_InvalidIgnorePattern(t *testing.T) {
	_, err := LoadFromBytes([]byte("content:\n  dir: content\n  ignore_patterns: [\"[\"]\n"))
	if err == nil {
		t.Fatal("expected validation error for bad ignore pattern")
	}
}

func TestUnmarshalExtension(t *testing.T) {
	yamlData := `
site:
  title: Ext Site
logging:
  level: debug
  report_caller: true
`
	cfg, err := LoadFromBytes([]byte(yamlData))
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}

	var logCfg struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
	}
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		t.Fatalf("UnmarshalExtension() error = %v", err)
	}
	if logCfg.Level != "debug" || !logCfg.ReportCaller {
		t.Errorf("logging extension = %+v", logCfg)
	}

	// Missing keys are not an error
	var unknown struct{}
	if err := cfg.UnmarshalExtension("unknown", &unknown); err != nil {
		t.Fatalf("UnmarshalExtension should not error for non-existent keys: %v", err)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(tmpDir, "loam.yml")
	if err := os.WriteFile(configPath, []byte("site:\n  title: T\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Found walking up from a nested directory
	found, err := FindConfigFile(nested)
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if found != configPath {
		t.Errorf("FindConfigFile() = %q, want %q", found, configPath)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "loam.toml")
	tomlData := `
[site]
title = "TOML Site"

[content]
dir = "entries"
`
	if err := os.WriteFile(path, []byte(tomlData), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Site.Title != "TOML Site" || cfg.Content.Dir != "entries" {
		t.Errorf("TOML config = %+v", cfg)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "loam.yml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
