package models

import "time"

// BusyInterval is a half-open [Start, End) range during which a staff
// member is already committed, per the external calendar. Recomputed on
// every query, never persisted.
type BusyInterval struct {
	StaffID StaffID   `json:"staffId"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// CandidateSlot is a bookable window of service-duration length on the
// 15-minute stepping grid, annotated with the staff who can take it.
// Neighbouring slots overlap when the duration exceeds the step; the
// consumer picks one.
type CandidateSlot struct {
	Start          time.Time `json:"-"`
	End            time.Time `json:"-"`
	AvailableStaff []StaffID `json:"availableStaffIds"`
}

// CalendarEvent is a normalized event read from a staff calendar.
// StaffID carries the owner recorded in the event's private metadata
// (defaulting to the calendar's staff member when absent). Events with
// zero Start or End (all-day entries, malformed payloads) are dropped
// by the aggregator.
type CalendarEvent struct {
	ID      string
	StaffID StaffID
	Start   time.Time
	End     time.Time
}

// AppointmentEvent is the payload committed to a staff calendar when a
// booking succeeds. The customer fields travel in the event's private
// metadata side-channel for later reconciliation.
type AppointmentEvent struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	StaffID       StaffID
	ServiceID     string
	CustomerPhone string
}
