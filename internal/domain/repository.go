package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching style analyses
type CacheRepository interface {
	Get(ctx context.Context, key string) (*StyleAnalysis, error)
	Set(ctx context.Context, key string, value *StyleAnalysis, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// VisionClient defines the interface for the external vision/embedding provider
type VisionClient interface {
	AnalyzeImage(ctx context.Context, imageURL string) (*StyleAnalysis, error)
}

// CatalogRepository supplies the candidate set for a matching request.
// Candidates returns a read-only snapshot: the slice and everything it
// references must not change for the duration of the request.
type CatalogRepository interface {
	Candidates(ctx context.Context) ([]Candidate, error)
	Upsert(ctx context.Context, candidates ...Candidate) error
}
