package schedule

import (
	"context"
	"time"

	"salonbook/models"
)

// CalendarGateway is the external calendar collaborator, keyed one
// calendar per staff member. The calendar is the single source of truth
// for appointments and the only serialization point for conflicts.
type CalendarGateway interface {
	// Configured reports whether the integration can be used at all.
	// Reads degrade to "no known conflicts" when it is not; writes fail.
	Configured() bool
	// BusyEventsFor lists the events on the staff member's calendar
	// intersecting [dayStart, dayEnd).
	BusyEventsFor(ctx context.Context, staffID models.StaffID, dayStart, dayEnd time.Time) ([]models.CalendarEvent, error)
	// InsertAppointment commits an appointment event and returns the
	// created event's ID.
	InsertAppointment(ctx context.Context, appt models.AppointmentEvent) (string, error)
}

// StatusFeed is the external per-staff availability-status provider.
type StatusFeed interface {
	Fetch(ctx context.Context) (models.StaffStatusReport, error)
}

// Mailer is the black-box confirmation sink. Dispatch is best-effort:
// a failure after commit never rolls back the booking.
type Mailer interface {
	Configured() bool
	SendBookingConfirmation(ctx context.Context, msg models.ConfirmationEmail) error
}

// Service computes bookable slots and commits bookings.
type Service interface {
	ComputeAvailableSlots(ctx context.Context, date, serviceID, staffID string) (AvailabilityResult, error)
	Book(ctx context.Context, req models.BookingRequest) (models.BookingConfirmation, error)
}

// AvailabilityResult is the outcome of an availability query. When
// Closed is set the slot list is empty regardless of the other
// parameters.
type AvailabilityResult struct {
	Closed      bool
	Hours       models.BusinessHours
	DurationMin int
	Service     *models.ServiceOption
	Slots       []models.CandidateSlot
}

// DefaultService is the production scheduling engine.
type DefaultService struct {
	Calendar CalendarGateway
	Status   StatusFeed
	Mail     Mailer
	Loc      *time.Location
}

var _ Service = (*DefaultService)(nil)
