package schedule

import (
	"fmt"
	"net/http"
)

// BookingError is a machine-readable rejection. Status carries the
// HTTP-equivalent class: 400 for bad input and rule violations, 409 for
// a slot lost to a concurrent booking, 500 for missing server
// configuration.
type BookingError struct {
	Code    string
	Message string
	Status  int
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBookingError(code, message string, status int) *BookingError {
	return &BookingError{Code: code, Message: message, Status: status}
}

func errInvalidQuery(msg string) *BookingError {
	return newBookingError("INVALID_QUERY", msg, http.StatusBadRequest)
}

func errInvalidBody(msg string) *BookingError {
	return newBookingError("INVALID_BODY", msg, http.StatusBadRequest)
}
