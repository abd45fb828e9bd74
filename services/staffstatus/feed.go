package staffstatus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"salonbook/models"
)

// Client reads the external staff-status feed: a boolean availability
// flag per staff member plus audit metadata. Queried fresh on every
// availability query and booking attempt; deliberately never cached, so
// a stylist marked out sick stops taking bookings immediately.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch retrieves the current report. Callers degrade to "all staff
// available" on error; they never cache the result.
func (c *Client) Fetch(ctx context.Context) (models.StaffStatusReport, error) {
	if c.url == "" {
		return models.StaffStatusReport{}, fmt.Errorf("staffstatus: feed URL not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return models.StaffStatusReport{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.StaffStatusReport{}, fmt.Errorf("staffstatus: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.StaffStatusReport{}, fmt.Errorf("staffstatus: feed returned status %d", resp.StatusCode)
	}

	var report models.StaffStatusReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return models.StaffStatusReport{}, fmt.Errorf("staffstatus: decode: %w", err)
	}
	return report, nil
}
