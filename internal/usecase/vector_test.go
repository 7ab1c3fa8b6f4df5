package usecase

import (
	"errors"
	"math"
	"testing"

	"github.com/stylematch/backend/internal/domain"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("returns 1 for a vector against itself", func(t *testing.T) {
		v := domain.Embedding{0.3, -0.7, 0.2, 1.5}
		got, err := CosineSimilarity(v, v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got-1) > 1e-9 {
			t.Errorf("CosineSimilarity(v, v) = %v, want 1", got)
		}
	})

	t.Run("is symmetric", func(t *testing.T) {
		a := domain.Embedding{1, 2, 3}
		b := domain.Embedding{-4, 0.5, 2}
		ab, err := CosineSimilarity(a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ba, err := CosineSimilarity(b, a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ab != ba {
			t.Errorf("CosineSimilarity not symmetric: %v vs %v", ab, ba)
		}
	})

	t.Run("returns 0 for orthogonal vectors", func(t *testing.T) {
		got, err := CosineSimilarity(domain.Embedding{1, 0}, domain.Embedding{0, 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Errorf("similarity = %v, want 0", got)
		}
	})

	t.Run("returns 0 not NaN for zero vector", func(t *testing.T) {
		got, err := CosineSimilarity(domain.Embedding{0, 0, 0}, domain.Embedding{1, 2, 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Errorf("similarity = %v, want 0", got)
		}
		if math.IsNaN(got) {
			t.Error("similarity is NaN, want 0")
		}
	})

	t.Run("returns -1 for opposed vectors", func(t *testing.T) {
		got, err := CosineSimilarity(domain.Embedding{1, 0}, domain.Embedding{-1, 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got+1) > 1e-9 {
			t.Errorf("similarity = %v, want -1", got)
		}
	})

	t.Run("fails on dimension mismatch", func(t *testing.T) {
		_, err := CosineSimilarity(domain.Embedding{1, 2}, domain.Embedding{1, 2, 3})
		if !errors.Is(err, domain.ErrDimensionMismatch) {
			t.Errorf("error = %v, want ErrDimensionMismatch", err)
		}
	})
}

func TestAverageVectors(t *testing.T) {
	t.Run("single vector is identity", func(t *testing.T) {
		v := domain.Embedding{1.5, -2, 0.25}
		got, err := AverageVectors([]domain.Embedding{v})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range v {
			if got[i] != v[i] {
				t.Errorf("avg[%d] = %v, want %v", i, got[i], v[i])
			}
		}
	})

	t.Run("computes element-wise mean", func(t *testing.T) {
		got, err := AverageVectors([]domain.Embedding{
			{1, 2, 3},
			{4, 5, 6},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := domain.Embedding{2.5, 3.5, 4.5}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("avg[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("fails on empty input", func(t *testing.T) {
		_, err := AverageVectors(nil)
		if !errors.Is(err, domain.ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("fails on mixed dimensions", func(t *testing.T) {
		_, err := AverageVectors([]domain.Embedding{
			{1, 2, 3},
			{1, 2},
		})
		if !errors.Is(err, domain.ErrDimensionMismatch) {
			t.Errorf("error = %v, want ErrDimensionMismatch", err)
		}
	})
}

func TestValidateEmbedding(t *testing.T) {
	testCases := []struct {
		name    string
		vector  domain.Embedding
		wantErr bool
	}{
		{"finite values", domain.Embedding{1, -2.5, 0}, false},
		{"empty vector", domain.Embedding{}, false},
		{"NaN", domain.Embedding{1, math.NaN()}, true},
		{"positive Inf", domain.Embedding{math.Inf(1)}, true},
		{"negative Inf", domain.Embedding{0, math.Inf(-1), 2}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEmbedding(tc.vector)
			if tc.wantErr && !errors.Is(err, domain.ErrInvalidEmbedding) {
				t.Errorf("error = %v, want ErrInvalidEmbedding", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDotProduct(t *testing.T) {
	t.Run("computes dot product", func(t *testing.T) {
		got, err := DotProduct(domain.Embedding{1, 2, 3}, domain.Embedding{4, 5, 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 32 {
			t.Errorf("dot = %v, want 32", got)
		}
	})

	t.Run("fails on dimension mismatch", func(t *testing.T) {
		_, err := DotProduct(domain.Embedding{1}, domain.Embedding{1, 2})
		if !errors.Is(err, domain.ErrDimensionMismatch) {
			t.Errorf("error = %v, want ErrDimensionMismatch", err)
		}
	})
}
