package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"salonbook/models"
)

type fakeCalendar struct {
	configured bool
	events     map[models.StaffID][]models.CalendarEvent
	errFor     map[models.StaffID]error
	insertErr  error

	mu       sync.Mutex
	inserted []models.AppointmentEvent
}

func (f *fakeCalendar) Configured() bool { return f.configured }

func (f *fakeCalendar) BusyEventsFor(_ context.Context, staffID models.StaffID, _, _ time.Time) ([]models.CalendarEvent, error) {
	if err := f.errFor[staffID]; err != nil {
		return nil, err
	}
	return f.events[staffID], nil
}

func (f *fakeCalendar) InsertAppointment(_ context.Context, appt models.AppointmentEvent) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, appt)
	return "evt-1", nil
}

type fakeFeed struct {
	report models.StaffStatusReport
	err    error
	calls  int
}

func (f *fakeFeed) Fetch(context.Context) (models.StaffStatusReport, error) {
	f.calls++
	if f.err != nil {
		return models.StaffStatusReport{}, f.err
	}
	return f.report, nil
}

type fakeMailer struct {
	configured bool
	err        error
	sent       []models.ConfirmationEmail
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) SendBookingConfirmation(_ context.Context, msg models.ConfirmationEmail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// allAvailable builds a feed report marking the whole roster available.
func allAvailable() models.StaffStatusReport {
	return statusFor(map[string]bool{
		"purvi": true, "hetvi": true, "nirali": true, "varsha": true,
	})
}

func statusFor(flags map[string]bool) models.StaffStatusReport {
	var report models.StaffStatusReport
	for id, avail := range flags {
		report.Staff = append(report.Staff, models.StaffStatus{StaffID: id, IsAvailable: avail})
		report.TotalStaff++
		if avail {
			report.TotalAvailable++
		}
	}
	return report
}

func newTestService(t *testing.T, cal *fakeCalendar, feed *fakeFeed, mail *fakeMailer) *DefaultService {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	svc := &DefaultService{Calendar: cal, Status: feed, Loc: loc}
	if mail != nil {
		svc.Mail = mail
	}
	return svc
}
