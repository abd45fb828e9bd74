package schedule

import (
	"context"
	"time"

	"salonbook/catalog"
	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// ComputeAvailableSlots returns the bookable slots for a date, with the
// staff available for each. serviceID and staffID are optional; with no
// service the default duration applies and every roster member is a
// candidate. Calling twice with identical inputs and unchanged external
// state yields identical output.
func (s *DefaultService) ComputeAvailableSlots(ctx context.Context, date, serviceID, staffID string) (AvailabilityResult, error) {
	logger := utils.GetLogger()

	day, err := ParseDay(date, s.Loc)
	if err != nil {
		return AvailabilityResult{}, errInvalidQuery("date must be YYYY-MM-DD")
	}

	var requested models.StaffID
	if staffID != "" {
		member, ok := catalog.StaffByID(models.StaffID(staffID))
		if !ok {
			return AvailabilityResult{}, errInvalidQuery("unknown staff id")
		}
		requested = member.ID
	}

	hours := catalog.HoursFor(day.Weekday())
	if hours.Closed {
		return AvailabilityResult{Closed: true, Hours: hours}, nil
	}

	durationMin := DefaultDurationMin
	var service *models.ServiceOption
	if serviceID != "" {
		svc, ok := catalog.ServiceByID(serviceID)
		if !ok {
			return AvailabilityResult{}, errInvalidQuery("unknown service id")
		}
		service = &svc
		durationMin = svc.DurationMin
	}

	status := s.fetchStatus(ctx)
	if status.IsDegraded() {
		logger.Warn("staff-status feed unreachable, assuming all staff available",
			zap.String("reason", status.Reason))
	}

	candidates := s.candidateStaff(service, requested, status.Value)

	windowStart, err := TimeOfDayOn(day, hours.Open, s.Loc)
	if err != nil {
		return AvailabilityResult{}, err
	}
	windowEnd, err := TimeOfDayOn(day, hours.Close, s.Loc)
	if err != nil {
		return AvailabilityResult{}, err
	}

	grid := BuildSlotGrid(windowStart, windowEnd, SlotStepMin*time.Minute, time.Duration(durationMin)*time.Minute)
	busy := s.fetchBusyIntervals(ctx, day, candidates)

	var slots []models.CandidateSlot
	for _, w := range grid {
		var available []models.StaffID
		for _, id := range candidates {
			member, ok := catalog.StaffByID(id)
			if !ok {
				continue
			}
			if s.staffCanTake(member, requested, day, w, windowStart, windowEnd, busy) {
				available = append(available, id)
			}
		}
		if len(available) == 0 {
			continue
		}
		slots = append(slots, models.CandidateSlot{Start: w.Start, End: w.End, AvailableStaff: available})
	}

	return AvailabilityResult{
		Hours:       hours,
		DurationMin: durationMin,
		Service:     service,
		Slots:       slots,
	}, nil
}

// fetchStatus reads the external staff-status feed. On feed failure it
// degrades to "all staff available" rather than failing the query: the
// cost of hiding real availability is judged worse than occasionally
// showing a slot the write-time checks will reject.
func (s *DefaultService) fetchStatus(ctx context.Context) Sourced[map[models.StaffID]bool] {
	report, err := s.Status.Fetch(ctx)
	if err != nil {
		all := make(map[models.StaffID]bool, len(catalog.Staff()))
		for _, id := range catalog.StaffIDs() {
			all[id] = true
		}
		return Degraded(all, err.Error())
	}
	flags := make(map[models.StaffID]bool, len(report.Staff))
	for _, st := range report.Staff {
		flags[models.StaffID(st.StaffID)] = st.IsAvailable
	}
	return Fresh(flags)
}

// candidateStaff intersects status availability, service eligibility,
// and the optional explicit staff request.
func (s *DefaultService) candidateStaff(service *models.ServiceOption, requested models.StaffID, status map[models.StaffID]bool) []models.StaffID {
	var eligible []models.StaffID
	if service != nil {
		eligible = catalog.EligibleStaffFor(service.ID)
	} else {
		eligible = catalog.StaffIDs()
	}

	var candidates []models.StaffID
	for _, id := range eligible {
		if !status[id] {
			continue
		}
		if requested != "" && id != requested {
			continue
		}
		candidates = append(candidates, id)
	}
	return candidates
}

// staffCanTake applies the per-slot checks: appointment-only staff are
// hidden from auto-assign results, the slot must fit the staff member's
// effective hours, and no busy interval may overlap it.
func (s *DefaultService) staffCanTake(member models.StaffMember, requested models.StaffID, day time.Time, w SlotWindow, windowStart, windowEnd time.Time, busy []models.BusyInterval) bool {
	if requested == "" && member.AppointmentOnly {
		return false
	}

	empStart, empEnd := windowStart, windowEnd
	if member.AvailableAfter != "" {
		if t, err := TimeOfDayOn(day, member.AvailableAfter, s.Loc); err == nil {
			empStart = t
		}
	}
	if member.AvailableUntil != "" {
		if t, err := TimeOfDayOn(day, member.AvailableUntil, s.Loc); err == nil {
			empEnd = t
		}
	}
	if w.Start.Before(empStart) || w.End.After(empEnd) {
		return false
	}

	for _, b := range busy {
		if b.StaffID == member.ID && Overlaps(w.Start, w.End, b.Start, b.End) {
			return false
		}
	}
	return true
}
