package handler

import (
	"context"
	"errors"
	"net/http"

	"overpass-api/internal/lookup"
	"overpass-api/internal/models"

	"github.com/gin-gonic/gin"
)

// PassHandler handles overpass prediction requests
type PassHandler struct {
	service PassService
}

// PassService interface for dependency injection
type PassService interface {
	UpcomingPasses(ctx context.Context) ([]models.Pass, error)
}

// NewPassHandler creates a new pass handler
func NewPassHandler(svc PassService) *PassHandler {
	return &PassHandler{service: svc}
}

// Passes handles GET /passes requests
func (h *PassHandler) Passes(c *gin.Context) {
	passes, err := h.service.UpcomingPasses(c.Request.Context())
	if err != nil {
		if isUpstreamError(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream lookup failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, passes)
}

// isUpstreamError reports whether err originated in one of the external
// lookup endpoints rather than in this process.
func isUpstreamError(err error) bool {
	var (
		netErr     *lookup.NetworkError
		statusErr  *lookup.StatusError
		parseErr   *lookup.ParseError
		serviceErr *lookup.ServiceError
	)
	return errors.As(err, &netErr) ||
		errors.As(err, &statusErr) ||
		errors.As(err, &parseErr) ||
		errors.As(err, &serviceErr)
}
