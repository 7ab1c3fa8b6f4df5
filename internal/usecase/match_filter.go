package usecase

import (
	"fmt"

	"github.com/stylematch/backend/internal/domain"
)

// scoredCandidate pairs a candidate with its computed score for the
// filter and ranking stages
type scoredCandidate struct {
	candidate domain.Candidate
	score     domain.MatchScore
}

// MatchFilter applies hard thresholds to scored candidates.
// Empty store/category lists and unset price bounds mean "no restriction".
type MatchFilter struct {
	highConfidenceThreshold float64
}

// NewMatchFilter creates a filter using the given high-confidence threshold
// for criteria with OnlyHighConfidence set
func NewMatchFilter(highConfidenceThreshold float64) *MatchFilter {
	if highConfidenceThreshold <= 0 {
		highConfidenceThreshold = defaultHighConfidenceThreshold
	}
	return &MatchFilter{highConfidenceThreshold: highConfidenceThreshold}
}

// ValidateCriteria rejects self-contradictory criteria. A bad criteria set is
// a caller bug, so the whole request fails rather than silently matching nothing.
func ValidateCriteria(criteria domain.FilterCriteria) error {
	if criteria.MinPrice != nil && criteria.MaxPrice != nil && *criteria.MinPrice > *criteria.MaxPrice {
		return fmt.Errorf("%w: minPrice %.2f exceeds maxPrice %.2f",
			domain.ErrInvalidFilterCriteria, *criteria.MinPrice, *criteria.MaxPrice)
	}
	if criteria.MinPrice != nil && *criteria.MinPrice < 0 {
		return fmt.Errorf("%w: negative minPrice", domain.ErrInvalidFilterCriteria)
	}
	return nil
}

// Apply filters the scored candidates, preserving input order.
// An empty result is a valid outcome, not an error.
func (f *MatchFilter) Apply(scored []scoredCandidate, criteria domain.FilterCriteria) []scoredCandidate {
	allowedStores := toSet(criteria.Stores)
	allowedCategories := toSet(normalizeTags(criteria.Categories))

	filtered := make([]scoredCandidate, 0, len(scored))
	for _, sc := range scored {
		if f.matches(sc, criteria, allowedStores, allowedCategories) {
			filtered = append(filtered, sc)
		}
	}
	return filtered
}

// matches evaluates the ANDed filter predicate for one candidate
func (f *MatchFilter) matches(
	sc scoredCandidate,
	criteria domain.FilterCriteria,
	allowedStores, allowedCategories map[string]bool,
) bool {
	if sc.score.Total < criteria.MinMatchScore {
		return false
	}
	if criteria.OnlyHighConfidence && sc.score.Total < f.highConfidenceThreshold {
		return false
	}
	if criteria.MinPrice != nil && sc.candidate.Price < *criteria.MinPrice {
		return false
	}
	if criteria.MaxPrice != nil && sc.candidate.Price > *criteria.MaxPrice {
		return false
	}
	if len(allowedStores) > 0 && !allowedStores[sc.candidate.Store] {
		return false
	}
	if len(allowedCategories) > 0 && !anyInSet(normalizeTags(sc.candidate.Tags), allowedCategories) {
		return false
	}
	return true
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func anyInSet(items []string, set map[string]bool) bool {
	for _, item := range items {
		if set[item] {
			return true
		}
	}
	return false
}
