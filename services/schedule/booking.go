package schedule

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"salonbook/catalog"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book validates a booking request against the same constraints the
// availability query uses, re-checks the staff calendar for conflicts,
// and commits the appointment. Validation short-circuits on the first
// failure; nothing is written before every check passes.
//
// The conflict guard is a read-then-write against Google Calendar with
// no compare-and-swap, so two truly simultaneous bookings for the same
// staff+slot can race in the window between the re-check read and the
// insert. The second attempt fails once the first write is visible.
func (s *DefaultService) Book(ctx context.Context, req models.BookingRequest) (models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	service, ok := catalog.ServiceByID(req.ServiceID)
	if !ok {
		return models.BookingConfirmation{}, newBookingError("UNKNOWN_SERVICE", "no such service", http.StatusBadRequest)
	}

	member, ok := catalog.StaffByID(models.StaffID(req.StaffID))
	if !ok {
		return models.BookingConfirmation{}, newBookingError("UNKNOWN_STAFF", "no such staff member", http.StatusBadRequest)
	}
	if !member.HasTag(service.Tag) {
		return models.BookingConfirmation{}, newBookingError("EMPLOYEE_NOT_COMPATIBLE_WITH_SERVICE",
			fmt.Sprintf("%s does not perform %s", member.Name, service.Label), http.StatusBadRequest)
	}

	day, err := ParseDay(req.Date, s.Loc)
	if err != nil {
		return models.BookingConfirmation{}, errInvalidBody("date must be YYYY-MM-DD")
	}
	hours := catalog.HoursFor(day.Weekday())
	if hours.Closed {
		return models.BookingConfirmation{}, newBookingError("SALON_CLOSED", "the salon is closed that day", http.StatusBadRequest)
	}

	start, err := time.Parse(time.RFC3339, req.StartTimeISO)
	if err != nil {
		return models.BookingConfirmation{}, errInvalidBody("startTimeISO must be RFC 3339")
	}
	start = start.In(s.Loc)
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	salonStart, err := TimeOfDayOn(day, hours.Open, s.Loc)
	if err != nil {
		return models.BookingConfirmation{}, err
	}
	salonEnd, err := TimeOfDayOn(day, hours.Close, s.Loc)
	if err != nil {
		return models.BookingConfirmation{}, err
	}
	if start.Before(salonStart) || end.After(salonEnd) {
		return models.BookingConfirmation{}, newBookingError("OUTSIDE_BUSINESS_HOURS",
			"requested time is outside salon hours", http.StatusBadRequest)
	}

	empStart, empEnd := salonStart, salonEnd
	if member.AvailableAfter != "" {
		if t, perr := TimeOfDayOn(day, member.AvailableAfter, s.Loc); perr == nil {
			empStart = t
		}
	}
	if member.AvailableUntil != "" {
		if t, perr := TimeOfDayOn(day, member.AvailableUntil, s.Loc); perr == nil {
			empEnd = t
		}
	}
	if start.Before(empStart) || end.After(empEnd) {
		return models.BookingConfirmation{}, newBookingError("OUTSIDE_EMPLOYEE_HOURS",
			fmt.Sprintf("requested time is outside %s's hours", member.Name), http.StatusBadRequest)
	}

	// Authoritative double-booking guard: re-check the staff calendar at
	// commit time even though the client already saw the slot as free.
	conflict, err := s.staffHasConflict(ctx, day, member.ID, start, end)
	if err != nil {
		return models.BookingConfirmation{}, fmt.Errorf("conflict re-check: %w", err)
	}
	if conflict {
		return models.BookingConfirmation{}, newBookingError("SLOT_UNAVAILABLE",
			"the requested slot is no longer available", http.StatusConflict)
	}

	// Status feed: an explicit "unavailable" rejects; a feed failure
	// does not block the booking.
	if report, ferr := s.Status.Fetch(ctx); ferr != nil {
		logger.Warn("staff-status feed unreachable, proceeding with booking", zap.Error(ferr))
	} else if avail, found := report.Available(member.ID); !found || !avail {
		return models.BookingConfirmation{}, newBookingError("EMPLOYEE_UNAVAILABLE",
			fmt.Sprintf("%s is currently unavailable, please select another stylist", member.Name), http.StatusBadRequest)
	}

	// Reads degrade without calendar config; a write has nowhere to go.
	if !s.Calendar.Configured() {
		return models.BookingConfirmation{}, newBookingError("CALENDAR_NOT_CONFIGURED",
			"the calendar integration is not configured on the server", http.StatusInternalServerError)
	}

	eventID, err := s.Calendar.InsertAppointment(ctx, models.AppointmentEvent{
		Summary:       fmt.Sprintf("%s - %s", req.CustomerName, service.Label),
		Description:   buildEventDescription(req, service, member),
		Start:         start,
		End:           end,
		StaffID:       member.ID,
		ServiceID:     service.ID,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		return models.BookingConfirmation{}, fmt.Errorf("calendar insert: %w", err)
	}

	confirmation := models.BookingConfirmation{
		BookingRef: uuid.New().String(),
		EventID:    eventID,
		Start:      start,
		End:        end,
	}

	// Best-effort: the booking is committed, a failed email only logs.
	if req.CustomerEmail != "" && s.Mail != nil && s.Mail.Configured() {
		msg := models.ConfirmationEmail{
			To:           req.CustomerEmail,
			CustomerName: req.CustomerName,
			ServiceLabel: service.Label,
			StaffName:    member.Name,
			Date:         start.Format("Monday, January 2, 2006"),
			Time:         start.Format("3:04 PM"),
			DurationMin:  service.DurationMin,
			Phone:        req.CustomerPhone,
		}
		if merr := s.Mail.SendBookingConfirmation(ctx, msg); merr != nil {
			logger.Warn("confirmation email failed, booking stands",
				zap.String("eventId", eventID), zap.Error(merr))
		} else {
			confirmation.Notified = true
		}
	}

	logger.Info("booking committed",
		zap.String("eventId", eventID),
		zap.String("staffId", string(member.ID)),
		zap.String("serviceId", service.ID),
		zap.Time("start", start))
	return confirmation, nil
}

func buildEventDescription(req models.BookingRequest, service models.ServiceOption, member models.StaffMember) string {
	lines := []string{
		"Customer: " + req.CustomerName,
		"Phone: " + req.CustomerPhone,
	}
	if req.CustomerEmail != "" {
		lines = append(lines, "Email: "+req.CustomerEmail)
	}
	lines = append(lines, "Service: "+service.Label, "Staff: "+member.Name)
	if req.Notes != "" {
		lines = append(lines, "Notes: "+req.Notes)
	}
	return strings.Join(lines, "\n")
}
