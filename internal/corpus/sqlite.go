package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/kotae/internal/models"
)

// SQLiteSource reads the corpus from a SQLite database, for deployments
// that maintain FAQ entries in a table instead of a text file.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens (or creates) the database at dbPath and ensures the
// faq_entries schema exists. Parent directories are created if missing.
func NewSQLiteSource(dbPath string) (*SQLiteSource, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS faq_entries (
		position INTEGER PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Load returns all entries ordered by position.
func (s *SQLiteSource) Load(ctx context.Context) ([]models.FaqEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question, answer FROM faq_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query corpus: %w", err)
	}
	defer rows.Close()

	var entries []models.FaqEntry
	for rows.Next() {
		var e models.FaqEntry
		if err := rows.Scan(&e.Question, &e.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus rows: %w", err)
	}
	return entries, nil
}

// ReplaceEntries swaps the stored corpus for entries in one transaction.
func (s *SQLiteSource) ReplaceEntries(ctx context.Context, entries []models.FaqEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM faq_entries`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear corpus: %w", err)
	}
	for i, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO faq_entries (position, question, answer) VALUES (?, ?, ?)`,
			i, e.Question, e.Answer,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert entry %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
