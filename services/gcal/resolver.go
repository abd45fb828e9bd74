package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"salonbook/models"
	"salonbook/services/schedule"
)

// DefaultResolverTTL is how long a fetched staff→calendar mapping is
// served without re-asking the remote resolver.
const DefaultResolverTTL = 5 * time.Minute

type resolverResponse struct {
	Connected bool `json:"connected"`
	Employees []struct {
		StaffID    string `json:"employee_id"`
		Name       string `json:"name"`
		CalendarID string `json:"google_calendar_id"`
	} `json:"employees"`
}

// Resolver resolves staff IDs to calendar IDs via a remote lookup,
// caching the full mapping with a TTL. A failed refresh falls back to
// serving the stale cache rather than failing the request.
type Resolver struct {
	url    string
	ttl    time.Duration
	client *http.Client
	now    func() time.Time

	mu        sync.Mutex
	cache     map[models.StaffID]string
	fetchedAt time.Time
}

// NewResolver builds a resolver against the given endpoint. A ttl of
// zero selects DefaultResolverTTL.
func NewResolver(url string, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = DefaultResolverTTL
	}
	return &Resolver{
		url:    url,
		ttl:    ttl,
		client: &http.Client{Timeout: 10 * time.Second},
		now:    time.Now,
	}
}

// CalendarIDFor returns the calendar ID for a staff member, refreshing
// the cached mapping when it has expired. The result is Degraded when
// it was served from a stale cache after a failed refresh. A staff
// member the resolver does not know yields an empty fresh value so the
// caller can fall through to the default calendar.
func (r *Resolver) CalendarIDFor(ctx context.Context, staffID models.StaffID) (schedule.Sourced[string], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil || r.now().Sub(r.fetchedAt) > r.ttl {
		fresh, err := r.fetch(ctx)
		if err != nil {
			if r.cache != nil {
				return schedule.Degraded(r.cache[staffID], fmt.Sprintf("refresh failed: %v", err)), nil
			}
			return schedule.Sourced[string]{}, fmt.Errorf("resolver: fetch calendar ids: %w", err)
		}
		r.cache = fresh
		r.fetchedAt = r.now()
	}
	return schedule.Fresh(r.cache[staffID]), nil
}

// All returns the full staff→calendar mapping, refreshing like
// CalendarIDFor and falling back to a stale copy the same way.
func (r *Resolver) All(ctx context.Context) (schedule.Sourced[map[models.StaffID]string], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil || r.now().Sub(r.fetchedAt) > r.ttl {
		fresh, err := r.fetch(ctx)
		if err != nil {
			if r.cache != nil {
				return schedule.Degraded(copyMap(r.cache), fmt.Sprintf("refresh failed: %v", err)), nil
			}
			return schedule.Sourced[map[models.StaffID]string]{}, fmt.Errorf("resolver: fetch calendar ids: %w", err)
		}
		r.cache = fresh
		r.fetchedAt = r.now()
	}
	return schedule.Fresh(copyMap(r.cache)), nil
}

// WarmUp populates the cache ahead of the first request. Failure is not
// fatal; the cache just stays lazy.
func (r *Resolver) WarmUp(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fresh, err := r.fetch(ctx)
	if err != nil {
		return fmt.Errorf("resolver: warm up: %w", err)
	}
	r.cache = fresh
	r.fetchedAt = r.now()
	return nil
}

// Invalidate drops the cached mapping; the next lookup refetches.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
	r.fetchedAt = time.Time{}
}

func (r *Resolver) fetch(ctx context.Context) (map[models.StaffID]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resolver returned status %d", resp.StatusCode)
	}

	var body resolverResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	mapping := make(map[models.StaffID]string, len(body.Employees))
	for _, e := range body.Employees {
		if e.CalendarID != "" {
			mapping[models.StaffID(e.StaffID)] = e.CalendarID
		}
	}
	return mapping, nil
}

func copyMap(m map[models.StaffID]string) map[models.StaffID]string {
	out := make(map[models.StaffID]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
