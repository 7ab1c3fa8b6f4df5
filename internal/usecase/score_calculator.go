package usecase

import (
	"math"

	"github.com/stylematch/backend/internal/domain"
)

// Default factor weights: style dominates but no secondary factor is negligible
const (
	defaultStyleWeight    = 0.4
	defaultColorWeight    = 0.2
	defaultPriceWeight    = 0.2
	defaultOccasionWeight = 0.2
)

// neutralScore is used for color/occasion when either side has no data.
// Absent data neither rewards nor penalizes a candidate.
const neutralScore = 0.5

// DefaultScoreWeights returns the standard factor weighting
func DefaultScoreWeights() domain.ScoreWeights {
	return domain.ScoreWeights{
		Style:    defaultStyleWeight,
		Color:    defaultColorWeight,
		Price:    defaultPriceWeight,
		Occasion: defaultOccasionWeight,
	}
}

// ScoreCalculator combines cosine similarity with color, price, and occasion
// signals into one weighted score per candidate
type ScoreCalculator struct {
	weights domain.ScoreWeights
}

// NewScoreCalculator creates a score calculator. Per-request preference
// weights override these defaults when present.
func NewScoreCalculator(weights domain.ScoreWeights) *ScoreCalculator {
	if weights == (domain.ScoreWeights{}) {
		weights = DefaultScoreWeights()
	}
	return &ScoreCalculator{weights: weights}
}

// Score computes the weighted match score for one candidate against the query
// embedding. The total is the weighted sum of the components; weights are
// applied as given, without normalization.
func (c *ScoreCalculator) Score(
	query domain.Embedding,
	candidate *domain.Candidate,
	prefs *domain.UserPreferences,
) (domain.MatchScore, error) {
	styleScore, err := CosineSimilarity(query, candidate.Embedding)
	if err != nil {
		return domain.MatchScore{}, err
	}

	weights := c.weights
	if prefs != nil && prefs.Weights != nil {
		weights = *prefs.Weights
	}

	var prefColors, prefOccasions []string
	var priceRange *domain.PriceRange
	if prefs != nil {
		prefColors = prefs.Colors
		prefOccasions = prefs.Occasions
		priceRange = prefs.PriceRange
	}

	score := domain.MatchScore{
		Style:    styleScore,
		Color:    preferenceOverlap(prefColors, candidate.Colors),
		Price:    priceScore(candidate.Price, priceRange),
		Occasion: preferenceOverlap(prefOccasions, candidate.Occasions),
	}
	score.Total = score.Style*weights.Style +
		score.Color*weights.Color +
		score.Price*weights.Price +
		score.Occasion*weights.Occasion

	return score, nil
}

// preferenceOverlap scores tag overlap between a preference set and candidate
// metadata, falling back to the neutral score when either side is absent
func preferenceOverlap(preferred, actual []string) float64 {
	if len(preferred) == 0 || len(actual) == 0 {
		return neutralScore
	}
	return overlapScore(normalizeTags(preferred), normalizeTags(actual))
}

// priceScore is 1.0 inside the preferred range and decays linearly toward 0
// as the price moves away from the range midpoint, measured against the range
// width. With no range set every price scores 1.0: price is an opt-in signal,
// not an implicit penalty.
func priceScore(price float64, priceRange *domain.PriceRange) float64 {
	if priceRange == nil {
		return 1.0
	}

	if price >= priceRange.Min && price <= priceRange.Max {
		return 1.0
	}

	width := priceRange.Max - priceRange.Min
	if width == 0 {
		// Degenerate range (min == max): anything off the point scores 0
		return 0
	}

	mid := (priceRange.Min + priceRange.Max) / 2
	return math.Max(0, 1-math.Abs(price-mid)/width)
}
