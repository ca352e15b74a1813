package corpus

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hyperjump/kotae/internal/models"
)

func newTestSQLiteSource(t *testing.T) *SQLiteSource {
	t.Helper()
	src, err := NewSQLiteSource(filepath.Join(t.TempDir(), "faq.db"))
	if err != nil {
		t.Fatalf("NewSQLiteSource failed: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestSQLiteSourceRoundTrip(t *testing.T) {
	src := newTestSQLiteSource(t)
	ctx := context.Background()

	entries := []models.FaqEntry{
		{Question: "How do I reset my password?", Answer: "Use the reset link."},
		{Question: "How do I contact support?", Answer: "Call 16221."},
	}
	if err := src.ReplaceEntries(ctx, entries); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	loaded, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Load returned %d entries, want 2", len(loaded))
	}
	// Ordering is stable by position.
	if loaded[0].Question != entries[0].Question || loaded[1].Answer != entries[1].Answer {
		t.Errorf("loaded entries out of order: %+v", loaded)
	}
}

func TestSQLiteSourceReplaceDiscardsPrior(t *testing.T) {
	src := newTestSQLiteSource(t)
	ctx := context.Background()

	first := []models.FaqEntry{{Question: "Old?", Answer: "Old."}}
	if err := src.ReplaceEntries(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := []models.FaqEntry{
		{Question: "New one?", Answer: "One."},
		{Question: "New two?", Answer: "Two."},
	}
	if err := src.ReplaceEntries(ctx, second); err != nil {
		t.Fatal(err)
	}

	loaded, err := src.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 || loaded[0].Question != "New one?" {
		t.Errorf("prior corpus not discarded: %+v", loaded)
	}
}

func TestSQLiteSourceEmpty(t *testing.T) {
	src := newTestSQLiteSource(t)
	loaded, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("empty database returned %d entries", len(loaded))
	}
}
