package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking widget endpoints.
	Availability      gin.HandlerFunc
	CreateAppointment gin.HandlerFunc

	// Static catalog endpoints.
	ListServices gin.HandlerFunc
	ListStaff    gin.HandlerFunc

	// Calendar operational endpoints.
	VerifyCalendars gin.HandlerFunc
	CalendarIDs     gin.HandlerFunc
}
