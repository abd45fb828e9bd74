package gcal

import (
	"context"

	"salonbook/catalog"
	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// VerifyAll checks each staff member's calendar for reachability.
// Returns per-staff results and whether every calendar answered.
func (s *Service) VerifyAll(ctx context.Context) (map[models.StaffID]bool, bool) {
	logger := utils.GetLogger()
	results := make(map[models.StaffID]bool)
	allReady := true

	for _, staffID := range catalog.StaffIDs() {
		ok := s.verifyOne(ctx, staffID)
		if !ok {
			logger.Warn("calendar verification failed", zap.String("staffId", string(staffID)))
			allReady = false
		}
		results[staffID] = ok
	}
	return results, allReady
}

func (s *Service) verifyOne(ctx context.Context, staffID models.StaffID) bool {
	if s.cal == nil {
		return false
	}
	calendarID, err := s.calendarIDFor(ctx, staffID)
	if err != nil {
		return false
	}
	_, err = s.cal.Calendars.Get(calendarID).Context(ctx).Do()
	return err == nil
}
