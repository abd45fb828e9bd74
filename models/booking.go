package models

import "time"

// BookingRequest is a booking submission from the widget. Either fully
// committed to the external calendar or rejected; never partially
// applied.
type BookingRequest struct {
	CustomerName  string `json:"customerName" binding:"required,min=2,max=80"`
	CustomerPhone string `json:"customerPhone" binding:"required,min=7,max=24"`
	CustomerEmail string `json:"customerEmail" binding:"omitempty,email"`
	Notes         string `json:"notes" binding:"max=500"`
	ServiceID     string `json:"serviceId" binding:"required"`
	StaffID       string `json:"staffId" binding:"required"`
	Date          string `json:"date" binding:"required"`         // YYYY-MM-DD, salon-local day
	StartTimeISO  string `json:"startTimeISO" binding:"required"` // RFC 3339
}

// BookingConfirmation is returned after a successful commit.
type BookingConfirmation struct {
	BookingRef string    `json:"bookingRef"`
	EventID    string    `json:"eventId"`
	Start      time.Time `json:"-"`
	End        time.Time `json:"-"`
	// Whether the confirmation email was dispatched. Notification
	// failure never fails the booking.
	Notified bool `json:"notified"`
}

// ConfirmationEmail is what the notification sink needs to render and
// send a booking confirmation.
type ConfirmationEmail struct {
	To           string
	CustomerName string
	ServiceLabel string
	StaffName    string
	Date         string // formatted, salon-local
	Time         string // formatted, salon-local
	DurationMin  int
	Phone        string
}
