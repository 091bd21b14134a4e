package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != 3000 {
		t.Fatalf("unexpected default port %d", cfg.Port)
	}
	if cfg.AssetsDir != "assets" || !cfg.BrandScoped {
		t.Fatalf("unexpected asset defaults: %+v", cfg)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" || cfg.OpenAITimeout != 20*time.Second {
		t.Fatalf("unexpected upstream defaults: %+v", cfg)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PRISM_PORT", "8080")
	t.Setenv("PRISM_ASSETS_DIR", "/srv/screens")
	t.Setenv("PRISM_BRAND_SCOPED", "false")
	t.Setenv("PRISM_OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != 8080 || cfg.AssetsDir != "/srv/screens" || cfg.BrandScoped {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Fatalf("api key not picked up from env: %+v", cfg)
	}
}

func TestConfigFileOverridesDefaultsAndEnvWins(t *testing.T) {
	dir := t.TempDir()
	content := "port: 4000\nlog_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "prism.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("PRISM_PORT", "5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("config file not read: %+v", cfg)
	}
	if cfg.Port != 5000 {
		t.Fatalf("env must win over config file, got %d", cfg.Port)
	}
}

func TestMalformedConfigFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "prism.yaml"), []byte(":\tnot yaml"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Chdir(dir)

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}
