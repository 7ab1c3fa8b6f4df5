package usecase

import (
	"math"

	"github.com/stylematch/backend/internal/domain"
)

// DotProduct calculates the dot product of two equal-length vectors
func DotProduct(a, b domain.Embedding) (float64, error) {
	if len(a) != len(b) {
		return 0, domain.ErrDimensionMismatch
	}
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Magnitude calculates the Euclidean norm of a vector
func Magnitude(v domain.Embedding) float64 {
	sum := 0.0
	for _, val := range v {
		sum += val * val
	}
	return math.Sqrt(sum)
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// Fails with ErrDimensionMismatch on unequal lengths. If either vector has
// zero magnitude the similarity is 0, not NaN: a zero vector carries no
// direction to relate to.
func CosineSimilarity(a, b domain.Embedding) (float64, error) {
	dot, err := DotProduct(a, b)
	if err != nil {
		return 0, err
	}

	magA := Magnitude(a)
	magB := Magnitude(b)
	if magA == 0 || magB == 0 {
		return 0, nil
	}

	return dot / (magA * magB), nil
}

// AverageVectors returns the element-wise arithmetic mean of the input vectors.
// Fails with ErrEmptyInput for an empty slice and ErrDimensionMismatch if the
// vectors do not all share one length.
func AverageVectors(vectors []domain.Embedding) (domain.Embedding, error) {
	if len(vectors) == 0 {
		return nil, domain.ErrEmptyInput
	}

	dim := len(vectors[0])
	avg := make(domain.Embedding, dim)
	for _, v := range vectors {
		if len(v) != dim {
			return nil, domain.ErrDimensionMismatch
		}
		for i, val := range v {
			avg[i] += val
		}
	}

	n := float64(len(vectors))
	for i := range avg {
		avg[i] /= n
	}
	return avg, nil
}

// ValidateEmbedding rejects embeddings containing NaN or Inf values
func ValidateEmbedding(v domain.Embedding) error {
	for _, val := range v {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return domain.ErrInvalidEmbedding
		}
	}
	return nil
}
