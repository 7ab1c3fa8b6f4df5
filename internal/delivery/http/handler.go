package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylematch/backend/internal/domain"
	"github.com/stylematch/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	styleService *usecase.StyleService
}

// NewHandler creates a new HTTP handler
func NewHandler(styleService *usecase.StyleService) *Handler {
	return &Handler{styleService: styleService}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "stylematch-backend",
		"version": "1.0.0",
	})
}

// SearchMatches handles style match requests.
// A request that matches nothing returns 200 with an empty result list;
// only failures return error statuses, so clients can tell "no matches"
// from "matching failed".
func (h *Handler) SearchMatches(c *gin.Context) {
	if h.styleService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Matching service not available",
		})
		return
	}

	var request domain.MatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	page, err := h.styleService.FindMatches(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidFilterCriteria),
		errors.Is(err, domain.ErrInvalidEmbedding),
		errors.Is(err, domain.ErrDimensionMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrAnalysisNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrVisionAPIFailure),
		errors.Is(err, domain.ErrCatalogUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "retryable": true})

	default:
		log.Printf("[HTTP] Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
