package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  port: 9090
corpus:
  source: file
  path: ./faq.txt
match:
  strong: 0.35
  fail_limit: 5
synonym:
  provider: http
  base_url: https://api.datamuse.com/words
  timeout_ms: 2000
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("host default = %q, want localhost", cfg.Server.Host)
	}
	if cfg.Match.Strong != 0.35 {
		t.Errorf("strong = %f, want 0.35", cfg.Match.Strong)
	}
	if cfg.Match.Weak != 0.2 {
		t.Errorf("weak default = %f, want 0.2", cfg.Match.Weak)
	}
	if cfg.Match.FailLimit != 5 {
		t.Errorf("fail_limit = %d, want 5", cfg.Match.FailLimit)
	}
	if cfg.Synonym.Timeout() != 2*time.Second {
		t.Errorf("timeout = %v, want 2s", cfg.Synonym.Timeout())
	}
	// Relative ./ paths resolve against the config directory.
	if cfg.Corpus.Path != filepath.Join(dir, "faq.txt") {
		t.Errorf("corpus path = %q, want inside %q", cfg.Corpus.Path, dir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	if cfg.Match.Strong != 0.3 || cfg.Match.Weak != 0.2 || cfg.Match.Gap != 0.08 {
		t.Errorf("threshold defaults wrong: %+v", cfg.Match)
	}
	if cfg.Match.FailLimit != 3 || cfg.Match.TopK != 3 {
		t.Errorf("limit defaults wrong: %+v", cfg.Match)
	}
	if cfg.Match.EscalationMessage == "" {
		t.Error("escalation message default missing")
	}
	if cfg.Fuzzy.MaxScore != 0.45 || cfg.Fuzzy.MinTokenLength != 3 {
		t.Errorf("fuzzy defaults wrong: %+v", cfg.Fuzzy)
	}
	if cfg.Synonym.Provider != "none" {
		t.Errorf("synonym provider default = %q, want none", cfg.Synonym.Provider)
	}
	if cfg.Corpus.Source != "file" {
		t.Errorf("corpus source default = %q, want file", cfg.Corpus.Source)
	}
}
