package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"intent-router/internal/classifier"
	"intent-router/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "intent-router"
)

// HealthReporter is the part of the classifier the probes read.
type HealthReporter interface {
	Health(ctx context.Context) classifier.Health
}

// healthCheck reports pipeline state: catalog and index sizes, embedder and
// live sessions.
// @Summary Health Check
// @Description Pipeline state: catalog and index sizes, embedder and live sessions
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	h := srv.health.Health(c.Request.Context())
	response.OK(c, gin.H{
		"status":       h.Status,
		"version":      HealthVersion,
		"service":      ServiceName,
		"intent_count": h.IntentCount,
		"vector_count": h.VectorCount,
		"dimension":    h.Dimension,
		"embedder":     h.Embedder,
		"sessions":     h.Sessions,
		"features":     h.Features,
	})
}

// readyCheck is ready once the index holds at least one vector.
// @Summary Readiness Check
// @Description Ready once the index holds at least one vector
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp "Index is empty"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	h := srv.health.Health(c.Request.Context())
	if h.VectorCount == 0 {
		c.JSON(http.StatusServiceUnavailable, response.Resp{ErrorCode: http.StatusServiceUnavailable, Message: "index is empty"})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
