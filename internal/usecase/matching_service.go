package usecase

import (
	"context"
	"errors"
	"log"
	"runtime"
	"sync"

	"github.com/stylematch/backend/internal/domain"
)

const (
	// defaultHighConfidenceThreshold gates OnlyHighConfidence filtering
	defaultHighConfidenceThreshold = 0.8

	defaultPageSize = 20
	maxPageSize     = 100

	// defaultParallelThreshold is the catalog size above which scoring fans
	// out across workers. Scoring is independent per candidate, so the split
	// cannot change results.
	defaultParallelThreshold = 2000
)

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	Weights                 domain.ScoreWeights
	HighConfidenceThreshold float64
	ParallelThreshold       int
	EnableDebugLogging      bool
}

// MatchInput is one matching request after the query image has been resolved
// to an embedding and style tags
type MatchInput struct {
	Query       domain.Embedding
	QueryTags   []string
	Preferences *domain.UserPreferences
	Filters     domain.FilterCriteria
	SortBy      domain.SortOrder
	Page        int
	PageSize    int
}

// MatchingService scores a candidate catalog against a query embedding, then
// filters, ranks, paginates, and explains the matches
type MatchingService struct {
	calculator         *ScoreCalculator
	filter             *MatchFilter
	parallelThreshold  int
	enableDebugLogging bool
}

// NewMatchingService creates a matching service with the given configuration
func NewMatchingService(config MatchConfig) *MatchingService {
	threshold := config.ParallelThreshold
	if threshold <= 0 {
		threshold = defaultParallelThreshold
	}

	return &MatchingService{
		calculator:         NewScoreCalculator(config.Weights),
		filter:             NewMatchFilter(config.HighConfidenceThreshold),
		parallelThreshold:  threshold,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ComputeMatches runs the full pipeline: score every candidate, filter, rank,
// paginate, attach explanations. Candidates with malformed embeddings are
// skipped and counted rather than failing the batch; invalid filter criteria
// fail the whole request since they reflect a caller bug, not bad data.
func (s *MatchingService) ComputeMatches(
	ctx context.Context,
	input *MatchInput,
	candidates []domain.Candidate,
) (*domain.MatchPage, error) {
	if input == nil || len(input.Query) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if err := ValidateEmbedding(input.Query); err != nil {
		return nil, err
	}
	if err := ValidateCriteria(input.Filters); err != nil {
		return nil, err
	}

	order := input.SortBy
	if order == "" {
		order = domain.SortBestMatch
	}
	if !order.Valid() {
		return nil, domain.ErrInvalidRequest
	}

	page := input.Page
	if page <= 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	scored, skipped, err := s.scoreCandidates(ctx, input, candidates)
	if err != nil {
		return nil, err
	}

	if s.enableDebugLogging {
		log.Printf("[MATCH] Scored %d candidates (%d skipped)", len(scored), skipped)
	}

	filtered := s.filter.Apply(scored, input.Filters)
	rankMatches(filtered, order)
	pageItems, totalPages := paginate(filtered, page, pageSize)

	results := make([]domain.MatchResult, 0, len(pageItems))
	for _, sc := range pageItems {
		results = append(results, domain.MatchResult{
			Candidate:   sc.candidate,
			Score:       sc.score,
			Explanation: explainMatch(input.QueryTags, sc.candidate.Tags, sc.score.Total),
		})
	}

	return &domain.MatchPage{
		Results:    results,
		TotalItems: len(filtered),
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
		Skipped:    skipped,
	}, nil
}

// scoreCandidates scores the catalog, sequentially for small catalogs and
// across a bounded worker pool for large ones. Either path preserves catalog
// order in its output.
func (s *MatchingService) scoreCandidates(
	ctx context.Context,
	input *MatchInput,
	candidates []domain.Candidate,
) ([]scoredCandidate, int, error) {
	if len(candidates) >= s.parallelThreshold {
		return s.scoreParallel(ctx, input, candidates)
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	skipped := 0
	for i := range candidates {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		sc, ok := s.scoreOne(input, &candidates[i])
		if !ok {
			skipped++
			continue
		}
		scored = append(scored, sc)
	}
	return scored, skipped, nil
}

// scoreParallel fans candidate scoring out over one worker per CPU. Results
// land at their candidate's index so output order matches input order.
func (s *MatchingService) scoreParallel(
	ctx context.Context,
	input *MatchInput,
	candidates []domain.Candidate,
) ([]scoredCandidate, int, error) {
	type slot struct {
		sc scoredCandidate
		ok bool
	}
	slots := make([]slot, len(candidates))
	indexes := make(chan int)

	var wg sync.WaitGroup
	workers := runtime.NumCPU()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				sc, ok := s.scoreOne(input, &candidates[i])
				slots[i] = slot{sc: sc, ok: ok}
			}
		}()
	}

	var ctxErr error
feed:
	for i := range candidates {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if ctxErr != nil {
		return nil, 0, ctxErr
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	skipped := 0
	for _, sl := range slots {
		if !sl.ok {
			skipped++
			continue
		}
		scored = append(scored, sl.sc)
	}
	return scored, skipped, nil
}

// scoreOne scores a single candidate, reporting ok=false for candidates that
// must be skipped (mismatched dimensions or non-finite embedding values)
func (s *MatchingService) scoreOne(input *MatchInput, candidate *domain.Candidate) (scoredCandidate, bool) {
	if err := ValidateEmbedding(candidate.Embedding); err != nil {
		if s.enableDebugLogging {
			log.Printf("[MATCH] Skipping candidate %q: %v", candidate.ID, err)
		}
		return scoredCandidate{}, false
	}

	score, err := s.calculator.Score(input.Query, candidate, input.Preferences)
	if err != nil {
		if s.enableDebugLogging && (errors.Is(err, domain.ErrDimensionMismatch) || errors.Is(err, domain.ErrInvalidEmbedding)) {
			log.Printf("[MATCH] Skipping candidate %q: %v", candidate.ID, err)
		}
		return scoredCandidate{}, false
	}

	return scoredCandidate{candidate: *candidate, score: score}, true
}
