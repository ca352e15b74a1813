// Package corpus loads the FAQ question/answer corpus from external sources.
package corpus

import (
	"context"

	"github.com/hyperjump/kotae/internal/models"
)

// Source hands back the full ordered corpus. Implementations must return
// the complete set on every call; a failed load must leave no partial
// state behind (the engine keeps its previous snapshot on error).
type Source interface {
	Load(ctx context.Context) ([]models.FaqEntry, error)
}
