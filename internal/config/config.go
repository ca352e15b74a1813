// Package config provides configuration loading and structs for the kotae server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Match   MatchConfig   `yaml:"match"`
	Fuzzy   FuzzyConfig   `yaml:"fuzzy"`
	Synonym SynonymConfig `yaml:"synonym"`
	Watch   WatchConfig   `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CorpusConfig selects and locates the corpus source.
type CorpusConfig struct {
	// Source is "file" (Q:/A: text blocks) or "sqlite".
	Source       string `yaml:"source"`
	Path         string `yaml:"path"`
	DatabasePath string `yaml:"database_path"`
	// ExtraScripts names additional Unicode scripts kept during
	// normalization (as in unicode.Scripts, e.g. "Thai").
	ExtraScripts []string `yaml:"extra_scripts"`
}

// MatchConfig holds the decision thresholds. These are tunable per
// deployment; the defaults are sane starting points, not contracts.
type MatchConfig struct {
	Strong            float64 `yaml:"strong"`
	Weak              float64 `yaml:"weak"`
	Gap               float64 `yaml:"gap"`
	FuzzyAccept       float64 `yaml:"fuzzy_accept"`
	AmbiguityEpsilon  float64 `yaml:"ambiguity_epsilon"`
	FailLimit         int     `yaml:"fail_limit"`
	TopK              int     `yaml:"top_k"`
	EscalationMessage string  `yaml:"escalation_message"`
}

// FuzzyConfig holds fuzzy index settings.
type FuzzyConfig struct {
	MaxScore       float64 `yaml:"max_score"`
	MaxTokenEdits  int     `yaml:"max_token_edits"`
	MinTokenLength int     `yaml:"min_token_length"`
}

// SynonymConfig selects the lexical database used for query expansion.
type SynonymConfig struct {
	// Provider is "http", "static", or "none".
	Provider  string `yaml:"provider"`
	BaseURL   string `yaml:"base_url"`
	Param     string `yaml:"param"`
	TablePath string `yaml:"table_path"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Timeout returns the per-word lookup timeout.
func (s *SynonymConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutMs) * time.Millisecond
}

// WatchConfig controls the corpus file watcher.
type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Corpus.Path = expandPath(cfg.Corpus.Path, configDir)
	cfg.Corpus.DatabasePath = expandPath(cfg.Corpus.DatabasePath, configDir)
	cfg.Synonym.TablePath = expandPath(cfg.Synonym.TablePath, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
