package handlers

import (
	"errors"
	"net/http"

	"slotify/services/availability"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

// GetAvailability returns the handler for the slot availability query:
// GET /api/businesses/:id/availability?date=YYYY-MM-DD[&professionalId=...][&serviceId=...]
// The response is a JSON array of {start, end, available} with RFC 3339 instants.
func GetAvailability(svc availability.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID := c.Param("id")
		date := c.Query("date")
		professionalID := c.Query("professionalId")
		serviceID := c.Query("serviceId")

		if date == "" {
			utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required (YYYY-MM-DD)")
			return
		}

		slots, err := svc.GetAvailability(c.Request.Context(), businessID, date, professionalID, serviceID)
		if err != nil {
			switch {
			case errors.Is(err, availability.ErrBusinessNotFound):
				utils.JSONError(c, http.StatusNotFound, "business not found", businessID)
			case errors.Is(err, availability.ErrInvalidDate):
				utils.JSONError(c, http.StatusBadRequest, "invalid date", date)
			default:
				utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
			}
			return
		}

		c.JSON(http.StatusOK, slots)
	}
}
