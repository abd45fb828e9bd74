package models

// ServiceOption is a bookable offering with a fixed duration.
type ServiceOption struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Tag         ServiceTag `json:"tag"`
	DurationMin int        `json:"durationMin"`
}

// BusinessHours is the salon-wide open window for one weekday.
type BusinessHours struct {
	Open   string `json:"open"`  // "HH:MM"
	Close  string `json:"close"` // "HH:MM"
	Closed bool   `json:"closed,omitempty"`
}
