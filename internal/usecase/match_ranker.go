package usecase

import (
	"sort"

	"github.com/stylematch/backend/internal/domain"
)

// rankMatches sorts scored candidates in place by the requested order.
// Every order breaks ties by ascending candidate ID so identical inputs
// always produce identical output regardless of input order.
func rankMatches(scored []scoredCandidate, order domain.SortOrder) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		switch order {
		case domain.SortPriceAsc:
			if a.candidate.Price != b.candidate.Price {
				return a.candidate.Price < b.candidate.Price
			}
		case domain.SortPriceDesc:
			if a.candidate.Price != b.candidate.Price {
				return a.candidate.Price > b.candidate.Price
			}
		case domain.SortNewest:
			// Missing timestamps are the zero time and sort last
			if !a.candidate.CreatedAt.Equal(b.candidate.CreatedAt) {
				return a.candidate.CreatedAt.After(b.candidate.CreatedAt)
			}
		default: // SortBestMatch
			if a.score.Total != b.score.Total {
				return a.score.Total > b.score.Total
			}
		}
		return a.candidate.ID < b.candidate.ID
	})
}

// paginate slices the ranked list for a 1-based page. A page past the end of
// the data returns an empty slice, not an error. totalPages is
// ceil(totalItems/pageSize), 0 when there are no items.
func paginate(scored []scoredCandidate, page, pageSize int) (pageItems []scoredCandidate, totalPages int) {
	totalItems := len(scored)
	totalPages = (totalItems + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= totalItems {
		return []scoredCandidate{}, totalPages
	}

	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return scored[start:end], totalPages
}
