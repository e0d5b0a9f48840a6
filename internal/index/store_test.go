package index

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// storeUnderTest runs the same contract against every Store implementation.
func storeUnderTest(t *testing.T, name string, s Store) {
	ctx := context.Background()
	mod := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run(name+"/get missing", func(t *testing.T) {
		_, err := s.Get(ctx, "ghost.md")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run(name+"/upsert and get", func(t *testing.T) {
		meta := NoteMeta{Path: "npcs/grog.md", Title: "Grog", Modified: mod, StatBlocks: 2}
		require.NoError(t, s.Upsert(ctx, meta))

		got, err := s.Get(ctx, "npcs/grog.md")
		require.NoError(t, err)
		assert.Equal(t, meta, got)
	})

	t.Run(name+"/upsert replaces", func(t *testing.T) {
		meta := NoteMeta{Path: "npcs/grog.md", Title: "Grog the Great", Modified: mod.Add(time.Hour), StatBlocks: 3}
		require.NoError(t, s.Upsert(ctx, meta))

		got, err := s.Get(ctx, "npcs/grog.md")
		require.NoError(t, err)
		assert.Equal(t, "Grog the Great", got.Title)
		assert.Equal(t, 3, got.StatBlocks)
	})

	t.Run(name+"/list ordered by path", func(t *testing.T) {
		require.NoError(t, s.Upsert(ctx, NoteMeta{Path: "a.md", Title: "A", Modified: mod}))
		require.NoError(t, s.Upsert(ctx, NoteMeta{Path: "z.md", Title: "Z", Modified: mod}))

		notes, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 3)
		assert.Equal(t, "a.md", notes[0].Path)
		assert.Equal(t, "npcs/grog.md", notes[1].Path)
		assert.Equal(t, "z.md", notes[2].Path)
	})

	t.Run(name+"/delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "a.md"))
		_, err := s.Get(ctx, "a.md")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting an unknown note is a no-op.
		assert.NoError(t, s.Delete(ctx, "never-existed.md"))
	})
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, "memory", NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	s := NewSQLiteStore(db)
	require.NoError(t, s.CreateTable(context.Background()))
	storeUnderTest(t, "sqlite", s)
}
