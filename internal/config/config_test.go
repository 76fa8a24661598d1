package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spellserve.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `{"listen": ":9090", "dict_dir": "/dicts", "languages": ["en", "ru"]}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("listen = %q", cfg.Listen)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %v", cfg.ReadTimeout)
	}
	if cfg.CustomDict != filepath.Join("/dicts", "custom") {
		t.Errorf("custom dict = %q", cfg.CustomDict)
	}
	if len(cfg.Languages) != 2 {
		t.Errorf("languages = %v", cfg.Languages)
	}
	if len(cfg.Providers) != 2 {
		t.Errorf("providers = %v", cfg.Providers)
	}
}

func TestLoadRequiresDictDir(t *testing.T) {
	path := writeConfig(t, `{}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error without dict_dir")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"listen": ":9090", "dict_dir": "/dicts"}`)
	t.Setenv("SPELLSERVE_LISTEN", ":7070")
	t.Setenv("SPELLSERVE_LANGUAGES", "de,fr")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":7070" {
		t.Errorf("listen = %q, env override lost", cfg.Listen)
	}
	if len(cfg.Languages) != 2 || cfg.Languages[0] != "de" {
		t.Errorf("languages = %v", cfg.Languages)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
