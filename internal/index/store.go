// Package index maintains metadata about the notes of a vault so the
// preview server can list them without rescanning on every request.
package index

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get for unknown notes.
var ErrNotFound = errors.New("note not indexed")

// NoteMeta is the indexed metadata of one note.
type NoteMeta struct {
	Path       string    `json:"path"`  // vault-relative path
	Title      string    `json:"title"` // first heading, or the file stem
	Modified   time.Time `json:"modified"`
	StatBlocks int       `json:"stat_blocks"` // fenced stat-block count
}

// Store is the interface for reading and writing note metadata. All
// implementations are safe for concurrent use.
type Store interface {
	// Upsert inserts or replaces the metadata for a note.
	Upsert(ctx context.Context, meta NoteMeta) error

	// Delete removes a note from the index. Deleting an unknown note is
	// not an error.
	Delete(ctx context.Context, path string) error

	// Get returns the metadata for one note.
	Get(ctx context.Context, path string) (NoteMeta, error)

	// List returns all indexed notes ordered by path.
	List(ctx context.Context) ([]NoteMeta, error)
}
