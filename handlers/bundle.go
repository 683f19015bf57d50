// File: slotify/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	GetAvailabilityHandler gin.HandlerFunc

	// Internal endpoints
	TriggerReminderScanHandler gin.HandlerFunc

	// Health
	HealthHandler gin.HandlerFunc
}
