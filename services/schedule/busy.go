package schedule

import (
	"context"
	"sync"
	"time"

	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// fetchBusyIntervals queries each candidate staff member's calendar for
// the given local day and normalizes the events into busy intervals.
// The per-staff fetches run concurrently; one staff member's calendar
// failing must not abort the others, so a failed fetch just contributes
// nothing (assume free — the write-time re-check catches the fallout).
// With no calendar configured there are no knowable conflicts and the
// result is empty.
func (s *DefaultService) fetchBusyIntervals(ctx context.Context, day time.Time, staffIDs []models.StaffID) []models.BusyInterval {
	if !s.Calendar.Configured() {
		return nil
	}
	logger := utils.GetLogger()
	dayStart, dayEnd := DayBoundsOn(day, s.Loc)

	var (
		mu   sync.Mutex
		busy []models.BusyInterval
		wg   sync.WaitGroup
	)
	for _, staffID := range staffIDs {
		wg.Add(1)
		go func(staffID models.StaffID) {
			defer wg.Done()
			events, err := s.Calendar.BusyEventsFor(ctx, staffID, dayStart, dayEnd)
			if err != nil {
				logger.Warn("busy-interval fetch failed, assuming staff free",
					zap.String("staffId", string(staffID)), zap.Error(err))
				return
			}
			intervals := busyFromEvents(staffID, events)
			mu.Lock()
			busy = append(busy, intervals...)
			mu.Unlock()
		}(staffID)
	}
	wg.Wait()
	return busy
}

// busyFromEvents filters one staff calendar's events down to usable
// busy intervals. Events whose recorded owner disagrees with the
// calendar they were fetched from are discarded (the calendar is keyed
// per staff, but the metadata is not trusted blindly), as are events
// without both timestamps.
func busyFromEvents(staffID models.StaffID, events []models.CalendarEvent) []models.BusyInterval {
	logger := utils.GetLogger()
	var out []models.BusyInterval
	for _, ev := range events {
		if ev.StaffID != staffID {
			logger.Debug("dropping event with mismatched owner",
				zap.String("eventId", ev.ID),
				zap.String("calendarStaffId", string(staffID)),
				zap.String("eventStaffId", string(ev.StaffID)))
			continue
		}
		if ev.Start.IsZero() || ev.End.IsZero() {
			continue
		}
		out = append(out, models.BusyInterval{StaffID: staffID, Start: ev.Start, End: ev.End})
	}
	return out
}

// staffHasConflict re-fetches one staff member's calendar and checks
// the requested interval against it. This is the authoritative
// double-booking guard, executed at commit time regardless of what the
// client saw earlier. Unlike the aggregate read path, a fetch failure
// here is surfaced: degrading the one check that guards against an
// actually-conflicting write would defeat it.
func (s *DefaultService) staffHasConflict(ctx context.Context, day time.Time, staffID models.StaffID, start, end time.Time) (bool, error) {
	if !s.Calendar.Configured() {
		return false, nil
	}
	dayStart, dayEnd := DayBoundsOn(day, s.Loc)
	events, err := s.Calendar.BusyEventsFor(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}
	for _, b := range busyFromEvents(staffID, events) {
		if Overlaps(start, end, b.Start, b.End) {
			return true, nil
		}
	}
	return false, nil
}
