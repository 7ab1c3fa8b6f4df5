package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stylematch/backend/internal/domain"
)

func TestMemoryStore_UpsertAndCandidates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("empty store yields empty snapshot", func(t *testing.T) {
		candidates, err := store.Candidates(ctx)
		if err != nil {
			t.Fatalf("Candidates() error = %v", err)
		}
		if len(candidates) != 0 {
			t.Errorf("len = %d, want 0", len(candidates))
		}
	})

	t.Run("upsert inserts and replaces by ID", func(t *testing.T) {
		err := store.Upsert(ctx,
			domain.Candidate{ID: "b", Title: "Denim Jacket", Price: 80},
			domain.Candidate{ID: "a", Title: "Linen Shirt", Price: 40},
		)
		if err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}

		err = store.Upsert(ctx, domain.Candidate{ID: "a", Title: "Linen Shirt v2", Price: 45})
		if err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}

		candidates, err := store.Candidates(ctx)
		if err != nil {
			t.Fatalf("Candidates() error = %v", err)
		}
		if len(candidates) != 2 {
			t.Fatalf("len = %d, want 2", len(candidates))
		}
		// Snapshot is ordered by ID
		if candidates[0].ID != "a" || candidates[1].ID != "b" {
			t.Errorf("order = %s, %s, want a, b", candidates[0].ID, candidates[1].ID)
		}
		if candidates[0].Title != "Linen Shirt v2" {
			t.Errorf("Title = %s, want replaced value", candidates[0].Title)
		}
	})

	t.Run("rejects candidate without ID", func(t *testing.T) {
		err := store.Upsert(ctx, domain.Candidate{Title: "No ID"})
		if err == nil {
			t.Error("Upsert() error = nil, want error")
		}
	})

	t.Run("snapshot is isolated from later upserts", func(t *testing.T) {
		snapshot, err := store.Candidates(ctx)
		if err != nil {
			t.Fatalf("Candidates() error = %v", err)
		}
		before := len(snapshot)

		if err := store.Upsert(ctx, domain.Candidate{ID: "z", Title: "Late arrival"}); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}

		if len(snapshot) != before {
			t.Errorf("snapshot length changed after upsert: %d -> %d", before, len(snapshot))
		}
	})
}

func TestMemoryStore_LoadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("loads candidates from JSON file", func(t *testing.T) {
		seed := `[
			{"id": "a", "title": "Linen Shirt", "price": 40, "embedding": [1, 0], "tags": ["casual"]},
			{"id": "b", "title": "Denim Jacket", "price": 80, "embedding": [0, 1]}
		]`
		path := filepath.Join(t.TempDir(), "catalog.json")
		if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
			t.Fatalf("failed to write seed file: %v", err)
		}

		store := NewMemoryStore()
		count, err := store.LoadFile(ctx, path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if count != 2 {
			t.Errorf("count = %d, want 2", count)
		}
		if store.Size() != 2 {
			t.Errorf("Size() = %d, want 2", store.Size())
		}
	})

	t.Run("fails for missing file", func(t *testing.T) {
		store := NewMemoryStore()
		_, err := store.LoadFile(ctx, filepath.Join(t.TempDir(), "missing.json"))
		if err == nil {
			t.Error("LoadFile() error = nil, want error")
		}
	})

	t.Run("fails for malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatalf("failed to write seed file: %v", err)
		}

		store := NewMemoryStore()
		_, err := store.LoadFile(ctx, path)
		if err == nil {
			t.Error("LoadFile() error = nil, want error")
		}
	})
}
