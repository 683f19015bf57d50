package handlers

import (
	"net/http"

	"slotify/services/reminder"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

// TriggerReminderScan returns the handler for the parameterless internal scan
// trigger. The deployment's scheduler normally enqueues the pass; this
// endpoint exists for operators to kick one off by hand.
func TriggerReminderScan(scanSvc reminder.ScanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := scanSvc.EnqueueBusinessScans(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to start reminder scan", err.Error())
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"businesses": count})
	}
}
