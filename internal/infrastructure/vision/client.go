package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/stylematch/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the vision/embedding provider API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// analyzeRequest is the provider's analyze payload
type analyzeRequest struct {
	ImageURL string `json:"imageUrl"`
}

// analyzeResponse is the provider's analyze result
type analyzeResponse struct {
	Embedding []float64 `json:"embedding"`
	StyleTags []string  `json:"styleTags"`
}

// NewClient creates a new vision API client
func NewClient(apiKey, baseURL string) *Client {
	// Provider allows 600 requests per minute; burst covers short spikes
	limiter := rate.NewLimiter(rate.Limit(10), 20)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait duration before retry attempt n (1-based)
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250<<uint(attempt)) * time.Millisecond
}

// AnalyzeImage asks the provider for the style embedding and tags of an image.
// Retries up to 3 times on transient failures.
func (c *Client) AnalyzeImage(ctx context.Context, imageURL string) (*domain.StyleAnalysis, error) {
	if c.debug {
		log.Printf("[VISION] AnalyzeImage called for: %q", imageURL)
	}

	payload, err := json.Marshal(analyzeRequest{ImageURL: imageURL})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/analyze", c.baseURL)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, endpoint, payload)
		if err != nil {
			if c.debug {
				log.Printf("[VISION] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			var result analyzeResponse
			if err := json.Unmarshal(body, &result); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
			if len(result.Embedding) == 0 {
				return nil, fmt.Errorf("%w: provider returned no embedding", domain.ErrVisionAPIFailure)
			}
			if c.debug {
				log.Printf("[VISION] Analyzed %q: %d dimensions, %d tags",
					imageURL, len(result.Embedding), len(result.StyleTags))
			}
			return &domain.StyleAnalysis{
				Embedding: result.Embedding,
				StyleTags: result.StyleTags,
			}, nil

		case resp.StatusCode == http.StatusNotFound:
			return nil, domain.ErrAnalysisNotFound

		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = domain.ErrRateLimited
			time.Sleep(exponentialBackoff(attempt))

		default:
			if c.debug {
				log.Printf("[VISION] API error (attempt %d) - Status: %d, Body: %s",
					attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrVisionAPIFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
		}
	}

	return nil, lastErr
}

// doRequest executes an HTTP POST with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "StyleMatch/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVisionAPIFailure, err)
	}

	return resp, nil
}
