package synonym

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// StaticProvider serves synonyms from an in-memory table, for offline
// deployments or tests. Lookups are case-insensitive.
type StaticProvider struct {
	table map[string][]string
}

// NewStaticProvider creates a provider from a word -> synonyms map.
func NewStaticProvider(table map[string][]string) *StaticProvider {
	lowered := make(map[string][]string, len(table))
	for word, syns := range table {
		lowered[strings.ToLower(word)] = syns
	}
	return &StaticProvider{table: lowered}
}

// LoadStaticProvider reads a YAML file mapping words to synonym lists.
func LoadStaticProvider(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonym table: %w", err)
	}
	var table map[string][]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse synonym table: %w", err)
	}
	return NewStaticProvider(table), nil
}

// Synonyms returns the configured synonym set for word, or nothing.
func (p *StaticProvider) Synonyms(ctx context.Context, word string) ([]string, error) {
	return p.table[strings.ToLower(word)], nil
}
