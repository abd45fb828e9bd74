package handlers

import (
	"errors"
	"net/http"
	"time"

	"salonbook/models"
	"salonbook/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the availability query and booking submission.
type ScheduleHandler struct {
	svc    schedule.Service
	logger *zap.Logger
}

func NewScheduleHandler(svc schedule.Service, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, logger: logger}
}

type slotView struct {
	StartTimeISO      string           `json:"startTimeISO"`
	EndTimeISO        string           `json:"endTimeISO"`
	AvailableStaffIDs []models.StaffID `json:"availableStaffIds"`
}

type serviceView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Availability handles GET /api/availability?date=&serviceId=&staffId=.
func (h *ScheduleHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "INVALID_QUERY", "message": "date is required"})
		return
	}

	result, err := h.svc.ComputeAvailableSlots(c.Request.Context(), date, c.Query("serviceId"), c.Query("staffId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if result.Closed {
		c.JSON(http.StatusOK, gin.H{
			"ok":             true,
			"closed":         true,
			"businessHours":  result.Hours,
			"availableSlots": []slotView{},
		})
		return
	}

	slots := make([]slotView, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, slotView{
			StartTimeISO:      s.Start.Format(time.RFC3339),
			EndTimeISO:        s.End.Format(time.RFC3339),
			AvailableStaffIDs: s.AvailableStaff,
		})
	}

	var svc *serviceView
	if result.Service != nil {
		svc = &serviceView{ID: result.Service.ID, Label: result.Service.Label}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":             true,
		"closed":         false,
		"businessHours":  result.Hours,
		"durationMin":    result.DurationMin,
		"service":        svc,
		"availableSlots": slots,
	})
}

// CreateAppointment handles POST /api/appointments.
func (h *ScheduleHandler) CreateAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "INVALID_BODY", "message": err.Error()})
		return
	}

	confirmation, err := h.svc.Book(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"bookingRef":   confirmation.BookingRef,
		"eventId":      confirmation.EventID,
		"startTimeISO": confirmation.Start.Format(time.RFC3339),
		"endTimeISO":   confirmation.End.Format(time.RFC3339),
		"notified":     confirmation.Notified,
	})
}

func (h *ScheduleHandler) respondError(c *gin.Context, err error) {
	var be *schedule.BookingError
	if errors.As(err, &be) {
		c.JSON(be.Status, gin.H{"ok": false, "error": be.Code, "message": be.Message})
		return
	}
	h.logger.Error("schedule request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "INTERNAL", "message": "unexpected error"})
}
