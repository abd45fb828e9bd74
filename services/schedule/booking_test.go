package schedule

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"salonbook/models"
)

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		CustomerName:  "Asha Patel",
		CustomerPhone: "5551234567",
		ServiceID:     "haircut",
		StaffID:       "purvi",
		Date:          wednesday,
		StartTimeISO:  "2026-01-07T13:00:00-05:00",
	}
}

func assertBookingCode(t *testing.T, err error, code string, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("want %s, got nil error", code)
	}
	var be *BookingError
	if !errors.As(err, &be) {
		t.Fatalf("want *BookingError %s, got %T: %v", code, err, err)
	}
	if be.Code != code {
		t.Errorf("code = %s, want %s", be.Code, code)
	}
	if be.Status != status {
		t.Errorf("status = %d, want %d", be.Status, status)
	}
}

func TestBookCommitsAppointment(t *testing.T) {
	cal := &fakeCalendar{configured: true}
	svc := newTestService(t, cal, &fakeFeed{report: allAvailable()}, nil)

	conf, err := svc.Book(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if conf.BookingRef == "" {
		t.Error("empty booking ref")
	}
	if conf.EventID != "evt-1" {
		t.Errorf("eventId = %q", conf.EventID)
	}
	if conf.Notified {
		t.Error("no mailer wired, notified must be false")
	}

	if len(cal.inserted) != 1 {
		t.Fatalf("inserted %d events, want 1", len(cal.inserted))
	}
	ev := cal.inserted[0]
	if ev.Summary != "Asha Patel - Haircut & Styling" {
		t.Errorf("summary = %q", ev.Summary)
	}
	if ev.StaffID != "purvi" || ev.ServiceID != "haircut" || ev.CustomerPhone != "5551234567" {
		t.Errorf("event metadata = %+v", ev)
	}
	if got := ev.End.Sub(ev.Start).Minutes(); got != 60 {
		t.Errorf("event duration = %v min, want 60", got)
	}
	if !ev.Start.Equal(wedAt(t, 13, 0)) {
		t.Errorf("event start = %v, want 13:00 local", ev.Start)
	}
}

func TestBookRejectsUnknownService(t *testing.T) {
	svc := newTestService(t, &fakeCalendar{configured: true}, &fakeFeed{report: allAvailable()}, nil)
	req := validRequest()
	req.ServiceID = "massage"
	_, err := svc.Book(context.Background(), req)
	assertBookingCode(t, err, "UNKNOWN_SERVICE", http.StatusBadRequest)
}

func TestBookRejectsUnknownStaff(t *testing.T) {
	svc := newTestService(t, &fakeCalendar{configured: true}, &fakeFeed{report: allAvailable()}, nil)
	req := validRequest()
	req.StaffID = "nobody"
	_, err := svc.Book(context.Background(), req)
	assertBookingCode(t, err, "UNKNOWN_STAFF", http.StatusBadRequest)
}

func TestBookRejectsIncompatibleStaff(t *testing.T) {
	// Hetvi does not do threading.
	svc := newTestService(t, &fakeCalendar{configured: true}, &fakeFeed{report: allAvailable()}, nil)
	req := validRequest()
	req.ServiceID = "threading"
	req.StaffID = "hetvi"
	_, err := svc.Book(context.Background(), req)
	assertBookingCode(t, err, "EMPLOYEE_NOT_COMPATIBLE_WITH_SERVICE", http.StatusBadRequest)
}

func TestBookRejectsClosedDay(t *testing.T) {
	svc := newTestService(t, &fakeCalendar{configured: true}, &fakeFeed{report: allAvailable()}, nil)
	req := validRequest()
	req.Date = tuesday
	req.StartTimeISO = "2026-01-06T13:00:00-05:00"
	_, err := svc.Book(context.Background(), req)
	assertBookingCode(t, err, "SALON_CLOSED", http.StatusBadRequest)
}

func TestBookRejectsMalformedInput(t *testing.T) {
	svc := newTestService(t, &fakeCalendar{configured: true}, &fakeFeed{report: allAvailable()}, nil)

	req := validRequest()
	req.Date = "01/07/2026"
	_, err := svc.Book(context.Background(), req)
	assertBookingCode(t, err, "INVALID_BODY", http.StatusBadRequest)

	req = validRequest()
	req.StartTimeISO = "1pm wednesday"
	_, err = svc.Book(context.Background(), req)
	assertBookingCode(t, err, "INVALID_BODY", http.StatusBadRequest)
}

func TestBookRejectsOutsideBusinessHours(t *testing.T) {
	svc := newTestService(t, &fakeCalendar{configured: true}, &fakeFeed{report: allAvailable()}, nil)

	// Before open.
	req := validRequest()
	req.StartTimeISO = "2026-01-07T10:00:00-05:00"
	_, err := svc.Book(context.Background(), req)
	assertBookingCode(t, err, "OUTSIDE_BUSINESS_HOURS", http.StatusBadRequest)

	// Starts in hours but runs past close (haircut is 60 min).
	req = validRequest()
	req.StartTimeISO = "2026-01-07T18:30:00-05:00"
	_, err = svc.Book(context.Background(), req)
	assertBookingCode(t, err, "OUTSIDE_BUSINESS_HOURS", http.StatusBadRequest)
}

func TestBookRejectsOutsideEmployeeHours(t *testing.T) {
	// Purvi starts at 12:30.
	svc := newTestService(t, &fakeCalendar{configured: true}, &fakeFeed{report: allAvailable()}, nil)
	req := validRequest()
	req.StartTimeISO = "2026-01-07T11:00:00-05:00"
	_, err := svc.Book(context.Background(), req)
	assertBookingCode(t, err, "OUTSIDE_EMPLOYEE_HOURS", http.StatusBadRequest)
}

func TestBookConflictYieldsSlotUnavailable(t *testing.T) {
	cal := &fakeCalendar{
		configured: true,
		events: map[models.StaffID][]models.CalendarEvent{
			"purvi": {{ID: "taken", StaffID: "purvi", Start: wedAt(t, 13, 30), End: wedAt(t, 14, 30)}},
		},
	}
	svc := newTestService(t, cal, &fakeFeed{report: allAvailable()}, nil)
	_, err := svc.Book(context.Background(), validRequest())
	assertBookingCode(t, err, "SLOT_UNAVAILABLE", http.StatusConflict)
	if len(cal.inserted) != 0 {
		t.Error("conflicting booking must not write an event")
	}
}

func TestBookConflictCheckedBeforeStatusFeed(t *testing.T) {
	// Both a calendar conflict and a feed "unavailable" apply; the
	// conflict wins because it is checked first.
	cal := &fakeCalendar{
		configured: true,
		events: map[models.StaffID][]models.CalendarEvent{
			"purvi": {{ID: "taken", StaffID: "purvi", Start: wedAt(t, 13, 0), End: wedAt(t, 14, 0)}},
		},
	}
	feed := &fakeFeed{report: statusFor(map[string]bool{"purvi": false})}
	svc := newTestService(t, cal, feed, nil)
	_, err := svc.Book(context.Background(), validRequest())
	assertBookingCode(t, err, "SLOT_UNAVAILABLE", http.StatusConflict)
}

func TestBookConflictFetchErrorSurfaces(t *testing.T) {
	cal := &fakeCalendar{
		configured: true,
		errFor:     map[models.StaffID]error{"purvi": errors.New("calendar 500")},
	}
	svc := newTestService(t, cal, &fakeFeed{report: allAvailable()}, nil)
	_, err := svc.Book(context.Background(), validRequest())
	if err == nil {
		t.Fatal("conflict re-check failure must fail the booking")
	}
	var be *BookingError
	if errors.As(err, &be) {
		t.Errorf("got coded rejection %s, want plain internal error", be.Code)
	}
	if len(cal.inserted) != 0 {
		t.Error("no event may be written when the guard cannot run")
	}
}

func TestBookRejectsUnavailableStaff(t *testing.T) {
	feed := &fakeFeed{report: statusFor(map[string]bool{"purvi": false})}
	svc := newTestService(t, &fakeCalendar{configured: true}, feed, nil)
	_, err := svc.Book(context.Background(), validRequest())
	assertBookingCode(t, err, "EMPLOYEE_UNAVAILABLE", http.StatusBadRequest)
}

func TestBookProceedsWhenFeedDown(t *testing.T) {
	cal := &fakeCalendar{configured: true}
	svc := newTestService(t, cal, &fakeFeed{err: errors.New("feed down")}, nil)
	if _, err := svc.Book(context.Background(), validRequest()); err != nil {
		t.Fatalf("feed outage must not block booking: %v", err)
	}
	if len(cal.inserted) != 1 {
		t.Errorf("inserted %d events, want 1", len(cal.inserted))
	}
}

func TestBookRequiresConfiguredCalendar(t *testing.T) {
	svc := newTestService(t, &fakeCalendar{configured: false}, &fakeFeed{report: allAvailable()}, nil)
	_, err := svc.Book(context.Background(), validRequest())
	assertBookingCode(t, err, "CALENDAR_NOT_CONFIGURED", http.StatusInternalServerError)
}

func TestBookSendsConfirmationEmail(t *testing.T) {
	mail := &fakeMailer{configured: true}
	svc := newTestService(t, &fakeCalendar{configured: true}, &fakeFeed{report: allAvailable()}, mail)
	req := validRequest()
	req.CustomerEmail = "asha@example.com"

	conf, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if !conf.Notified {
		t.Error("notified must be true after a successful send")
	}
	if len(mail.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(mail.sent))
	}
	msg := mail.sent[0]
	if msg.To != "asha@example.com" || msg.ServiceLabel == "" || msg.StaffName == "" {
		t.Errorf("email = %+v", msg)
	}
}

func TestBookSurvivesEmailFailure(t *testing.T) {
	mail := &fakeMailer{configured: true, err: errors.New("smtp down")}
	cal := &fakeCalendar{configured: true}
	svc := newTestService(t, cal, &fakeFeed{report: allAvailable()}, mail)
	req := validRequest()
	req.CustomerEmail = "asha@example.com"

	conf, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("email failure must not fail the booking: %v", err)
	}
	if conf.Notified {
		t.Error("notified must be false when the send failed")
	}
	if len(cal.inserted) != 1 {
		t.Error("booking must stand despite the failed email")
	}
}

func TestBookSkipsEmailWithoutAddress(t *testing.T) {
	mail := &fakeMailer{configured: true}
	svc := newTestService(t, &fakeCalendar{configured: true}, &fakeFeed{report: allAvailable()}, mail)

	conf, err := svc.Book(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if conf.Notified || len(mail.sent) != 0 {
		t.Error("no address given, nothing must be sent")
	}
}
