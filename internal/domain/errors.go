package domain

import "errors"

var (
	// ErrDimensionMismatch is returned when two embeddings of different lengths are compared
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrEmptyInput is returned when an operation requires at least one vector
	ErrEmptyInput = errors.New("empty vector input")

	// ErrInvalidEmbedding is returned when an embedding contains NaN or Inf values
	ErrInvalidEmbedding = errors.New("embedding contains non-finite values")

	// ErrInvalidFilterCriteria is returned when filter criteria are self-contradictory
	ErrInvalidFilterCriteria = errors.New("invalid filter criteria")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrVisionAPIFailure is returned when the vision provider request fails
	ErrVisionAPIFailure = errors.New("vision API request failed")

	// ErrAnalysisNotFound is returned when the vision provider has no analysis for an image
	ErrAnalysisNotFound = errors.New("no style analysis found for image")

	// ErrCatalogUnavailable is returned when the catalog store cannot supply candidates
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
