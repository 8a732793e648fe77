package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Menu.Tag != "li" || cfg.Menu.Class != "menu" || cfg.Menu.ActiveClass != "active" {
		t.Errorf("unexpected default menu %+v", cfg.Menu)
	}
	if !cfg.PrettyURLs {
		t.Error("expected pretty_urls on by default")
	}
	if cfg.MaxConcurrency != 8 {
		t.Errorf("expected default max_concurrency 8, got %d", cfg.MaxConcurrency)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.navmark.yml")

	original := DefaultConfig()
	original.Origin = "https://weather.example"
	original.Menu.ActiveClass = "current"
	original.SiteDir = "_site"
	original.Include = []string{"**/*.html"}
	original.PrettyURLs = false
	original.Server.Port = 9000

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Origin != original.Origin {
		t.Errorf("origin: got %q, want %q", loaded.Origin, original.Origin)
	}
	if loaded.Menu != original.Menu {
		t.Errorf("menu: got %+v, want %+v", loaded.Menu, original.Menu)
	}
	if loaded.SiteDir != original.SiteDir {
		t.Errorf("site_dir: got %q, want %q", loaded.SiteDir, original.SiteDir)
	}
	if loaded.PrettyURLs {
		t.Error("pretty_urls: got true, want false")
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("server.port: got %d, want 9000", loaded.Server.Port)
	}
	if len(loaded.Include) == 0 || loaded.Include[0] != "**/*.html" {
		t.Errorf("include: got %v", loaded.Include)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Menu.Class != "menu" {
		t.Errorf("expected default menu class, got %q", cfg.Menu.Class)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("origin: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadDoesNotAlterDefaultExcludes(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".navmark.yml")
	if err := os.WriteFile(path, []byte("exclude:\n  - drafts/**\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Exclude) == 0 || cfg.Exclude[0] != "drafts/**" {
		t.Errorf("exclude: got %v, want drafts/** first", cfg.Exclude)
	}
	if DefaultExcludes[0] != ".git/**" {
		t.Errorf("DefaultExcludes was modified: %v", DefaultExcludes)
	}
	if got := DefaultConfig().Exclude; got[0] != ".git/**" {
		t.Errorf("DefaultConfig().Exclude: got %v", got)
	}

	cfg.Exclude[0] = "changed/**"
	if DefaultExcludes[0] != ".git/**" {
		t.Errorf("config exclude shares storage with DefaultExcludes")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("NAVMARK_ORIGIN", "https://override.example")
	t.Setenv("NAVMARK_MENU__ACTIVE_CLASS", "is-active")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Origin != "https://override.example" {
		t.Errorf("origin override failed: got %q", loaded.Origin)
	}
	if loaded.Menu.ActiveClass != "is-active" {
		t.Errorf("nested override failed: got %q", loaded.Menu.ActiveClass)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"NAVMARK_ORIGIN", "origin"},
		{"NAVMARK_SITE_DIR", "site_dir"},
		{"NAVMARK_MENU__CLASS", "menu.class"},
		{"NAVMARK_SERVER__ALLOW_ALL", "server.allow_all"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}

	cfg.Origin = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty origin should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative origin", func(c *Config) { c.Origin = "example.com" }},
		{"empty tag", func(c *Config) { c.Menu.Tag = "" }},
		{"upper case tag", func(c *Config) { c.Menu.Tag = "LI" }},
		{"empty menu class", func(c *Config) { c.Menu.Class = "" }},
		{"active class with space", func(c *Config) { c.Menu.ActiveClass = "is active" }},
		{"negative concurrency", func(c *Config) { c.MaxConcurrency = -1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSelector(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Menu = MenuConfig{Tag: "div", Class: "nav-item", ActiveClass: "current"}
	sel := cfg.Selector()
	if sel.Tag != "div" || sel.MenuClass != "nav-item" || sel.ActiveClass != "current" {
		t.Errorf("unexpected selector %+v", sel)
	}
}

func TestParsedOrigin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Origin = ""
	if _, ok, err := cfg.ParsedOrigin(); ok || err != nil {
		t.Errorf("empty origin: ok=%v err=%v", ok, err)
	}

	cfg.Origin = "https://weather.example/ignored"
	o, ok, err := cfg.ParsedOrigin()
	if err != nil || !ok {
		t.Fatalf("ParsedOrigin: ok=%v err=%v", ok, err)
	}
	if o.String() != "https://weather.example" {
		t.Errorf("origin = %q", o.String())
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"drafts/**", []string{"drafts/**"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
