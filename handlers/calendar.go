package handlers

import (
	"net/http"

	"salonbook/services/gcal"

	"github.com/gin-gonic/gin"
)

// CalendarOpsHandler serves the calendar operational endpoints used by
// the site to verify the integration and warm the resolver cache.
type CalendarOpsHandler struct {
	cal      *gcal.Service
	resolver *gcal.Resolver
}

func NewCalendarOpsHandler(cal *gcal.Service, resolver *gcal.Resolver) *CalendarOpsHandler {
	return &CalendarOpsHandler{cal: cal, resolver: resolver}
}

// Verify handles GET /api/calendar/verify: checks each staff calendar.
func (h *CalendarOpsHandler) Verify(c *gin.Context) {
	if !h.cal.Configured() {
		c.JSON(http.StatusOK, gin.H{"ready": false, "error": "calendar not configured"})
		return
	}
	results, allReady := h.cal.VerifyAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ready": allReady, "calendars": results})
}

// IDs handles GET /api/calendar/ids: returns the current staff→calendar
// mapping, refreshing the resolver cache as a side effect.
func (h *CalendarOpsHandler) IDs(c *gin.Context) {
	if h.resolver == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"error":   "RESOLVER_NOT_CONFIGURED",
			"message": "CALENDAR_IDS_API_URL is not set",
		})
		return
	}

	mapping, err := h.resolver.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "RESOLVER_UNAVAILABLE", "message": err.Error()})
		return
	}

	resp := gin.H{"ok": true, "calendarIds": mapping.Value}
	if mapping.IsDegraded() {
		resp["stale"] = true
	}
	c.JSON(http.StatusOK, resp)
}
