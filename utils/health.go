package utils

import (
	"context"
	"sync"
	"time"
)

// HealthStatus represents current status of the external collaborators.
type HealthStatus struct {
	Calendar   bool      `json:"calendar"`
	StatusFeed bool      `json:"statusFeed"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic probes of the calendar
// integration and the staff-status feed and updates in-memory state.
func StartHealthMonitor(calendarPing, feedPing func(ctx context.Context) error) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			mu.Lock()
			currentHealth = HealthStatus{
				Calendar:   calendarPing(ctx) == nil,
				StatusFeed: feedPing(ctx) == nil,
				CheckedAt:  time.Now(),
			}
			mu.Unlock()
			cancel()
		}
	}()
}
