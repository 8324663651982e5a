package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"multi-agent-code-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "multi-agent-code-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness checks by probing each registered component.
// Any failing probe flips the overall state and the status code to 503.
// @Summary Readiness Check
// @Description Check if the API and its dependencies are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	ready := true
	components := gin.H{}
	for name, probe := range srv.readiness {
		if err := probe(ctx); err != nil {
			srv.l.Warnf(ctx, "readiness probe %s failed: %v", name, err)
			components[name] = err.Error()
			ready = false
		} else {
			components[name] = "ok"
		}
	}

	body := gin.H{
		"status":     "ready",
		"version":    HealthVersion,
		"service":    ServiceName,
		"components": components,
	}
	if !ready {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
