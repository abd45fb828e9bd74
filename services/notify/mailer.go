package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"salonbook/models"
)

// HTTPMailer posts confirmation emails to the backend notification
// sink. Delivery mechanics live behind that endpoint; from here it is a
// black box that either accepts the message or does not.
type HTTPMailer struct {
	baseURL string
	client  *http.Client
}

func NewHTTPMailer(baseURL string) *HTTPMailer {
	return &HTTPMailer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether a sink endpoint is set. Unconfigured just
// means no confirmations go out; bookings are unaffected.
func (m *HTTPMailer) Configured() bool {
	return m.baseURL != ""
}

type emailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendBookingConfirmation dispatches a confirmation for a committed
// booking. Errors are the caller's to log; the booking stands either
// way.
func (m *HTTPMailer) SendBookingConfirmation(ctx context.Context, msg models.ConfirmationEmail) error {
	if !m.Configured() {
		return fmt.Errorf("notify: backend URL not configured")
	}

	payload := emailPayload{
		To:      msg.To,
		Subject: "Your appointment is confirmed",
		HTML:    renderConfirmation(msg),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/notifications/email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: send: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify: sink returned status %d", resp.StatusCode)
	}
	return nil
}

func renderConfirmation(msg models.ConfirmationEmail) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Appointment Confirmed</h2>
  <p>Hi %s,</p>
  <p>Your appointment at Swapna Beauty Parlour is booked.</p>
  <table cellpadding="4">
    <tr><td><strong>Service</strong></td><td>%s</td></tr>
    <tr><td><strong>Stylist</strong></td><td>%s</td></tr>
    <tr><td><strong>Date</strong></td><td>%s</td></tr>
    <tr><td><strong>Time</strong></td><td>%s</td></tr>
    <tr><td><strong>Duration</strong></td><td>%d minutes</td></tr>
  </table>
  <p>Need to reschedule? Call us and mention the phone number on the booking (%s).</p>
</body>
</html>`,
		msg.CustomerName, msg.ServiceLabel, msg.StaffName, msg.Date, msg.Time, msg.DurationMin, msg.Phone)
}
