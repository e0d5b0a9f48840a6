package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteStore implements Store over a SQLite database. The caller owns the
// *sql.DB; with the modernc driver it should be limited to one open
// connection.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLiteStore over db.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// CreateTable creates the notes table if it does not exist. Run once at
// startup, before serving.
func (s *SQLiteStore) CreateTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS notes (
			path        TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			modified    TEXT NOT NULL,
			stat_blocks INTEGER NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("creating notes table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Upsert(ctx context.Context, meta NoteMeta) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (path, title, modified, stat_blocks)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title = excluded.title,
			modified = excluded.modified,
			stat_blocks = excluded.stat_blocks`,
		meta.Path, meta.Title, meta.Modified.UTC().Format(time.RFC3339Nano), meta.StatBlocks)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", meta.Path, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE path = ?`, path); err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, path string) (NoteMeta, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT path, title, modified, stat_blocks FROM notes WHERE path = ?`, path)
	meta, err := scanNote(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return NoteMeta{}, ErrNotFound
	}
	return meta, err
}

func (s *SQLiteStore) List(ctx context.Context) ([]NoteMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, title, modified, stat_blocks FROM notes ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var out []NoteMeta
	for rows.Next() {
		meta, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, meta)
	}
	return out, rows.Err()
}

func scanNote(scan func(...any) error) (NoteMeta, error) {
	var meta NoteMeta
	var modified string
	if err := scan(&meta.Path, &meta.Title, &modified, &meta.StatBlocks); err != nil {
		return NoteMeta{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, modified)
	if err != nil {
		return NoteMeta{}, fmt.Errorf("parsing modified time for %s: %w", meta.Path, err)
	}
	meta.Modified = t
	return meta, nil
}
