package engine

import (
	"github.com/hyperjump/kotae/internal/fuzzy"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/relevance"
)

// Snapshot is one immutable view of the corpus plus both derived indexes.
// It is built in full on every reload and swapped in atomically, so
// concurrent queries see either the whole old or the whole new corpus,
// never a mix.
type Snapshot struct {
	ID        string
	Entries   []models.FaqEntry
	Relevance *relevance.Index
	Fuzzy     *fuzzy.Index
}

// Size returns the number of entries in the snapshot.
func (s *Snapshot) Size() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}
