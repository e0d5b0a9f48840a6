package server

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/matthewbaird/dmtools/internal/index"
	"github.com/matthewbaird/dmtools/internal/vault"
)

// Scan rebuilds the index from the vault's current contents.
func Scan(ctx context.Context, v *vault.Vault, store index.Store) error {
	notes, err := v.Notes()
	if err != nil {
		return err
	}
	for _, note := range notes {
		if err := ScanNote(ctx, v, store, note); err != nil {
			return err
		}
	}
	return nil
}

// ScanNote refreshes a single note's index entry. A note that no longer
// exists is removed from the index.
func ScanNote(ctx context.Context, v *vault.Vault, store index.Store, note string) error {
	data, err := v.Read(note)
	if errors.Is(err, vault.ErrNotFound) {
		return store.Delete(ctx, note)
	}
	if err != nil {
		return err
	}

	info, err := v.Modified(note)
	if err != nil {
		return err
	}

	return store.Upsert(ctx, index.NoteMeta{
		Path:       note,
		Title:      noteTitle(note, string(data)),
		Modified:   info.ModTime(),
		StatBlocks: len(vault.Fences(string(data))),
	})
}

// noteTitle is the note's first top-level heading, falling back to the
// file stem.
func noteTitle(note, body string) string {
	for _, line := range strings.Split(body, "\n") {
		if title := strings.TrimSpace(strings.TrimPrefix(line, "# ")); strings.HasPrefix(line, "# ") && title != "" {
			return title
		}
	}
	return strings.TrimSuffix(path.Base(note), ".md")
}
