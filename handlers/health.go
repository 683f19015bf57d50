package handlers

import (
	"net/http"

	"slotify/utils"

	"github.com/gin-gonic/gin"
)

// Health returns the latest external-service health snapshot.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"deps":   utils.GetHealthStatus(),
		})
	}
}
