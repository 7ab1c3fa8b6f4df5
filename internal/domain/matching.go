package domain

import "time"

// Embedding is a fixed-length vector of learned style features.
// All embeddings compared within one request must share the same length.
type Embedding []float64

// Candidate represents a catalog product eligible for matching.
// Immutable once fetched for a scoring pass.
type Candidate struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	ProductURL string    `json:"productUrl,omitempty"`
	Store      string    `json:"store,omitempty"`
	Price      float64   `json:"price"`
	Embedding  Embedding `json:"embedding,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Colors     []string  `json:"colors,omitempty"`
	Occasions  []string  `json:"occasions,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// PriceRange is an inclusive price preference window
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ScoreWeights configures the contribution of each factor to the total score.
// Weights are not normalized: if they sum to more than 1 the total score can
// exceed 1. Callers wanting a [0,1] total must supply weights summing to 1.
type ScoreWeights struct {
	Style    float64 `json:"style"`
	Color    float64 `json:"color"`
	Price    float64 `json:"price"`
	Occasion float64 `json:"occasion"`
}

// UserPreferences carries optional per-user matching preferences
type UserPreferences struct {
	PriceRange *PriceRange   `json:"priceRange,omitempty"`
	Colors     []string      `json:"colors,omitempty"`
	Occasions  []string      `json:"occasions,omitempty"`
	Weights    *ScoreWeights `json:"weights,omitempty"`
}

// MatchScore holds the weighted total and per-factor sub-scores for one candidate.
// Sub-scores are in [0,1] (style can be negative for opposed embeddings); the
// total is the weighted sum and inherits the weight caveat on ScoreWeights.
type MatchScore struct {
	Total    float64 `json:"total"`
	Style    float64 `json:"style"`
	Color    float64 `json:"color"`
	Price    float64 `json:"price"`
	Occasion float64 `json:"occasion"`
}

// FilterCriteria holds the hard thresholds applied after scoring.
// Zero-valued fields mean "no restriction": a nil price bound, an empty store
// or category list, and a zero MinMatchScore all pass everything through.
type FilterCriteria struct {
	MinMatchScore      float64  `json:"minMatchScore"`
	MinPrice           *float64 `json:"minPrice,omitempty"`
	MaxPrice           *float64 `json:"maxPrice,omitempty"`
	Stores             []string `json:"stores,omitempty"`
	Categories         []string `json:"categories,omitempty"`
	OnlyHighConfidence bool     `json:"onlyHighConfidence"`
}

// SortOrder selects the ranking applied to filtered matches
type SortOrder string

const (
	SortBestMatch SortOrder = "best_match"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortNewest    SortOrder = "newest"
)

// Valid reports whether the sort order is one of the supported values
func (o SortOrder) Valid() bool {
	switch o {
	case SortBestMatch, SortPriceAsc, SortPriceDesc, SortNewest:
		return true
	}
	return false
}

// MatchResult is one ranked, explained match
type MatchResult struct {
	Candidate   Candidate  `json:"candidate"`
	Score       MatchScore `json:"score"`
	Explanation string     `json:"explanation"`
	Favorite    bool       `json:"favorite"`
}

// MatchPage is the paginated output of one matching request.
// Skipped counts candidates excluded for malformed embeddings rather than
// low scores; callers can surface it for observability.
type MatchPage struct {
	Results    []MatchResult `json:"results"`
	TotalItems int           `json:"totalItems"`
	TotalPages int           `json:"totalPages"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	Skipped    int           `json:"skipped,omitempty"`
}

// MatchRequest is an end-user matching request as received over HTTP
type MatchRequest struct {
	ImageURL    string           `json:"imageUrl" binding:"required"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
	Filters     FilterCriteria   `json:"filters"`
	SortBy      SortOrder        `json:"sortBy,omitempty"`
	Page        int              `json:"page,omitempty"`
	PageSize    int              `json:"pageSize,omitempty"`
}

// StyleAnalysis is what the vision provider returns for one image:
// an embedding plus the style tags it detected
type StyleAnalysis struct {
	Embedding Embedding `json:"embedding"`
	StyleTags []string  `json:"styleTags,omitempty"`
	Source    string    `json:"source,omitempty"` // "Vision" or "Cache"
	CachedAt  time.Time `json:"cachedAt,omitempty"`
}
