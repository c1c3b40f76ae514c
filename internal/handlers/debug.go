package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmarket-service/internal/telemetry"
)

// RegisterDebugRoutes mounts operator-only probes. Nothing is
// registered unless debug routes are enabled in config.
func RegisterDebugRoutes(router *gin.Engine, emitter *telemetry.AuditEmitter, enabled bool) {
	if !enabled {
		return
	}

	// fires a synthetic audit record so operators can verify the
	// broker path end to end
	router.GET("/debug/audit", func(c *gin.Context) {
		if emitter == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit emitter not configured"})
			return
		}

		message := c.DefaultQuery("message", "manual audit check")
		emitter.Emit(c.Request.Context(), "INFO", message, requestIDFromContext(c), userIDFromContext(c))
		c.JSON(http.StatusOK, gin.H{"status": "emitted", "message": message})
	})
}
