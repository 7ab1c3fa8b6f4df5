package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/stylematch/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory catalog of candidate products.
// Candidates hands out a fresh snapshot slice, so a matching request sees a
// stable catalog even while upserts land concurrently.
type MemoryStore struct {
	items map[string]domain.Candidate
	mutex sync.RWMutex
}

// NewMemoryStore creates an empty catalog store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]domain.Candidate),
	}
}

// Candidates returns a snapshot of the full catalog, ordered by ID so
// snapshots are reproducible
func (s *MemoryStore) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	candidates := make([]domain.Candidate, 0, len(s.items))
	for _, c := range s.items {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})

	return candidates, nil
}

// Upsert inserts or replaces candidates by ID
func (s *MemoryStore) Upsert(ctx context.Context, candidates ...domain.Candidate) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, c := range candidates {
		if c.ID == "" {
			return fmt.Errorf("%w: candidate without ID", domain.ErrInvalidRequest)
		}
		s.items[c.ID] = c
	}

	return nil
}

// Size returns the number of candidates in the catalog
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.items)
}

// LoadFile seeds the catalog from a JSON file containing an array of
// candidates. Used at startup to load the product catalog snapshot.
func (s *MemoryStore) LoadFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var candidates []domain.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return 0, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := s.Upsert(ctx, candidates...); err != nil {
		return 0, err
	}
	return len(candidates), nil
}
