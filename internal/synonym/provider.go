// Package synonym widens query recall by expanding words with synonyms from
// an external lexical database.
package synonym

import "context"

// Provider looks up the synonym set for a single word. Implementations may
// fail or time out per word; callers treat failure as "no synonyms found".
type Provider interface {
	Synonyms(ctx context.Context, word string) ([]string, error)
}

// NoopProvider never returns synonyms. Used when expansion is disabled.
type NoopProvider struct{}

// Synonyms always returns an empty set.
func (NoopProvider) Synonyms(ctx context.Context, word string) ([]string, error) {
	return nil, nil
}
