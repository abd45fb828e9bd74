package gcal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salonbook/catalog"
	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// metadata keys on the event's private side-channel.
const (
	propStaffID       = "staffId"
	propServiceID     = "serviceId"
	propCustomerPhone = "customerPhone"
)

// Config carries the calendar integration settings.
type Config struct {
	ServiceAccountEmail string
	PrivateKey          string
	// DefaultCalendarID backs any staff member without a calendar of
	// their own.
	DefaultCalendarID string
	// StaffCalendarIDs are per-staff env overrides.
	StaffCalendarIDs map[models.StaffID]string
	// Timezone is the salon zone name sent with event times.
	Timezone string
}

// Service wraps the Google Calendar API, one calendar per staff member.
type Service struct {
	cfg      Config
	resolver *Resolver
	cal      *calendar.Service
}

// New builds the calendar service. With incomplete credentials the
// service still constructs but reports unconfigured: availability reads
// then degrade to "no known conflicts" while bookings are rejected.
func New(ctx context.Context, cfg Config, resolver *Resolver) (*Service, error) {
	s := &Service{cfg: cfg, resolver: resolver}
	if !s.Configured() {
		return s, nil
	}

	key, err := normalizePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}
	conf := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(key),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}
	cal, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("gcal: build calendar client: %w", err)
	}
	s.cal = cal
	return s, nil
}

// Configured reports whether credentials plus at least one source of
// calendar IDs are present.
func (s *Service) Configured() bool {
	if s.cfg.ServiceAccountEmail == "" || s.cfg.PrivateKey == "" {
		return false
	}
	if s.cfg.DefaultCalendarID != "" || len(s.cfg.StaffCalendarIDs) > 0 || s.resolver != nil {
		return true
	}
	return false
}

// calendarIDFor resolves which physical calendar backs a staff member:
// roster-pinned ID, then env override, then the remote resolver, then
// the salon-wide default.
func (s *Service) calendarIDFor(ctx context.Context, staffID models.StaffID) (string, error) {
	if member, ok := catalog.StaffByID(staffID); ok && member.CalendarID != "" {
		return member.CalendarID, nil
	}
	if id := s.cfg.StaffCalendarIDs[staffID]; id != "" {
		return id, nil
	}
	if s.resolver != nil {
		id, err := s.resolver.CalendarIDFor(ctx, staffID)
		if err == nil {
			if id.IsDegraded() {
				utils.GetLogger().Warn("serving stale calendar-id cache entry",
					zap.String("staffId", string(staffID)), zap.String("reason", id.Reason))
			}
			if id.Value != "" {
				return id.Value, nil
			}
		}
	}
	if s.cfg.DefaultCalendarID != "" {
		return s.cfg.DefaultCalendarID, nil
	}
	return "", fmt.Errorf("gcal: no calendar id configured for staff %s and no default set", staffID)
}

// BusyEventsFor lists the events on the staff member's calendar that
// intersect [dayStart, dayEnd), expanded to single events in
// chronological order.
func (s *Service) BusyEventsFor(ctx context.Context, staffID models.StaffID, dayStart, dayEnd time.Time) ([]models.CalendarEvent, error) {
	if s.cal == nil {
		return nil, fmt.Errorf("gcal: calendar integration not configured")
	}
	calendarID, err := s.calendarIDFor(ctx, staffID)
	if err != nil {
		return nil, err
	}

	resp, err := s.cal.Events.List(calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		TimeZone(s.cfg.Timezone).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gcal: list events for %s: %w", staffID, err)
	}

	events := make([]models.CalendarEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		ev := models.CalendarEvent{ID: item.Id, StaffID: staffID}
		if item.ExtendedProperties != nil && item.ExtendedProperties.Private != nil {
			if owner := item.ExtendedProperties.Private[propStaffID]; owner != "" {
				ev.StaffID = models.StaffID(owner)
			}
		}
		// All-day events carry Date instead of DateTime and are left
		// with zero instants; the aggregator drops them.
		if item.Start != nil && item.Start.DateTime != "" {
			if t, perr := time.Parse(time.RFC3339, item.Start.DateTime); perr == nil {
				ev.Start = t
			}
		}
		if item.End != nil && item.End.DateTime != "" {
			if t, perr := time.Parse(time.RFC3339, item.End.DateTime); perr == nil {
				ev.End = t
			}
		}
		events = append(events, ev)
	}
	return events, nil
}

// InsertAppointment commits an appointment to the staff member's
// calendar with the customer metadata side-channel and the default
// reminder set (email a day before, popup an hour before).
func (s *Service) InsertAppointment(ctx context.Context, appt models.AppointmentEvent) (string, error) {
	if s.cal == nil {
		return "", fmt.Errorf("gcal: calendar integration not configured")
	}
	calendarID, err := s.calendarIDFor(ctx, appt.StaffID)
	if err != nil {
		return "", err
	}

	event := &calendar.Event{
		Summary:     appt.Summary,
		Description: appt.Description,
		Start:       &calendar.EventDateTime{DateTime: appt.Start.Format(time.RFC3339), TimeZone: s.cfg.Timezone},
		End:         &calendar.EventDateTime{DateTime: appt.End.Format(time.RFC3339), TimeZone: s.cfg.Timezone},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				propStaffID:       string(appt.StaffID),
				propServiceID:     appt.ServiceID,
				propCustomerPhone: appt.CustomerPhone,
			},
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := s.cal.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gcal: insert event for %s: %w", appt.StaffID, err)
	}
	return created.Id, nil
}

// Ping checks that at least one configured calendar is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if s.cal == nil {
		return fmt.Errorf("gcal: calendar integration not configured")
	}
	ids := catalog.StaffIDs()
	if len(ids) == 0 {
		return nil
	}
	calendarID, err := s.calendarIDFor(ctx, ids[0])
	if err != nil {
		return err
	}
	_, err = s.cal.Calendars.Get(calendarID).Context(ctx).Do()
	return err
}

// normalizePrivateKey undoes the usual env-var manglings: literal \n
// sequences, surrounding quotes, stray whitespace.
func normalizePrivateKey(raw string) (string, error) {
	key := strings.ReplaceAll(raw, `\n`, "\n")
	key = strings.Trim(key, `"'`)
	key = strings.TrimSpace(key)
	if !strings.Contains(key, "BEGIN PRIVATE KEY") && !strings.Contains(key, "BEGIN RSA PRIVATE KEY") {
		return "", fmt.Errorf("gcal: private key is missing BEGIN/END markers")
	}
	return key, nil
}
