// Package health exposes the liveness endpoint.
package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	// swagger:route GET /health health
	//
	// Health
	//
	// Service health status
	//
	// Responses:
	//   200:
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
