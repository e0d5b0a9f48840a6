package index

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore implements Store with an in-memory map. The default when no
// DATABASE_URL is configured, and what the tests use.
type MemoryStore struct {
	mu    sync.RWMutex
	notes map[string]NoteMeta
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{notes: make(map[string]NoteMeta)}
}

func (s *MemoryStore) Upsert(_ context.Context, meta NoteMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[meta.Path] = meta
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notes, path)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, path string) (NoteMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.notes[path]
	if !ok {
		return NoteMeta{}, ErrNotFound
	}
	return meta, nil
}

func (s *MemoryStore) List(_ context.Context) ([]NoteMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]NoteMeta, 0, len(s.notes))
	for _, meta := range s.notes {
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out, nil
}
