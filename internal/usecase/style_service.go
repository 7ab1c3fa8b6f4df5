package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/stylematch/backend/internal/domain"
)

// StyleServiceConfig holds configuration for the style service
type StyleServiceConfig struct {
	CacheTTL time.Duration
	Matching MatchConfig
}

// StyleService resolves a match request end to end: turn the query image into
// a style embedding (cache-first), snapshot the catalog, and run the matching
// engine over it
type StyleService struct {
	cache    domain.CacheRepository
	vision   domain.VisionClient
	catalog  domain.CatalogRepository
	matcher  *MatchingService
	cacheTTL time.Duration
}

// NewStyleService creates a style service with its dependencies
func NewStyleService(
	cache domain.CacheRepository,
	vision domain.VisionClient,
	catalog domain.CatalogRepository,
	config StyleServiceConfig,
) *StyleService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &StyleService{
		cache:    cache,
		vision:   vision,
		catalog:  catalog,
		matcher:  NewMatchingService(config.Matching),
		cacheTTL: cacheTTL,
	}
}

// FindMatches handles one end-user match request.
// Flow: check analysis cache -> analyze image -> snapshot catalog -> match
func (s *StyleService) FindMatches(ctx context.Context, request *domain.MatchRequest) (*domain.MatchPage, error) {
	if request == nil || strings.TrimSpace(request.ImageURL) == "" {
		return nil, domain.ErrInvalidRequest
	}

	analysis, err := s.resolveAnalysis(ctx, request.ImageURL)
	if err != nil {
		return nil, err
	}

	candidates, err := s.catalog.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	input := &MatchInput{
		Query:       analysis.Embedding,
		QueryTags:   analysis.StyleTags,
		Preferences: request.Preferences,
		Filters:     request.Filters,
		SortBy:      request.SortBy,
		Page:        request.Page,
		PageSize:    request.PageSize,
	}

	return s.matcher.ComputeMatches(ctx, input, candidates)
}

// resolveAnalysis returns the style analysis for an image, from cache when
// available, otherwise from the vision provider
func (s *StyleService) resolveAnalysis(ctx context.Context, imageURL string) (*domain.StyleAnalysis, error) {
	cacheKey := analysisCacheKey(imageURL)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		cached.Source = "Cache"
		return cached, nil
	}

	analysis, err := s.vision.AnalyzeImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	if err := ValidateEmbedding(analysis.Embedding); err != nil {
		return nil, err
	}
	if len(analysis.Embedding) == 0 {
		return nil, fmt.Errorf("%w: provider returned empty embedding", domain.ErrInvalidEmbedding)
	}

	analysis.Source = "Vision"
	analysis.CachedAt = time.Now()
	if err := s.cache.Set(ctx, cacheKey, analysis, s.cacheTTL); err != nil {
		// A failed cache write only costs a future provider call
		log.Printf("[STYLE] Failed to cache analysis for %q: %v", imageURL, err)
	}

	return analysis, nil
}

// AverageStyle computes a combined style embedding from several analyses,
// e.g. to build a profile vector from a user's saved looks
func (s *StyleService) AverageStyle(analyses []domain.StyleAnalysis) (domain.Embedding, error) {
	if len(analyses) == 0 {
		return nil, domain.ErrEmptyInput
	}

	vectors := make([]domain.Embedding, 0, len(analyses))
	for _, a := range analyses {
		if err := ValidateEmbedding(a.Embedding); err != nil {
			return nil, err
		}
		vectors = append(vectors, a.Embedding)
	}

	return AverageVectors(vectors)
}

// analysisCacheKey derives a stable cache key from an image URL.
// Format: "analysis:{sha256 of url}" - hashing keeps arbitrary URLs out of
// the key space.
func analysisCacheKey(imageURL string) string {
	sum := sha256.Sum256([]byte(imageURL))
	return "analysis:" + hex.EncodeToString(sum[:])
}
