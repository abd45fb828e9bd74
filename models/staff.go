package models

// StaffID identifies an individually bookable stylist.
type StaffID string

// ServiceTag classifies what kind of work a service is, and which staff
// are qualified for it when no explicit assignment exists.
type ServiceTag string

const (
	TagHair      ServiceTag = "hair"
	TagThreading ServiceTag = "threading"
	TagWaxing    ServiceTag = "waxing"
	TagFacial    ServiceTag = "facial"
	TagManicure  ServiceTag = "manicure"
	TagPedicure  ServiceTag = "pedicure"
	TagBridal    ServiceTag = "bridal"
	TagInterview ServiceTag = "interview"
)

// StaffMember is a member of the salon roster. Loaded from static
// configuration at process start and never mutated.
type StaffMember struct {
	ID   StaffID `json:"id"`
	Name string  `json:"name"`
	Role string  `json:"role"`

	// Personal working-hour overrides ("HH:MM", salon timezone). Empty
	// means the salon-wide hours apply.
	AvailableAfter string `json:"availableAfter,omitempty"` // inclusive
	AvailableUntil string `json:"availableUntil,omitempty"` // exclusive

	// Appointment-only staff never appear in auto-assign results; they
	// are bookable only when explicitly selected.
	AppointmentOnly bool `json:"appointmentOnly,omitempty"`

	ServiceTags []ServiceTag `json:"serviceTags"`

	// Fixed calendar ID for this staff member, if any. Takes precedence
	// over env overrides and the remote resolver.
	CalendarID string `json:"-"`
}

// HasTag reports whether the staff member is qualified for services
// carrying the given tag.
func (m StaffMember) HasTag(tag ServiceTag) bool {
	for _, t := range m.ServiceTags {
		if t == tag {
			return true
		}
	}
	return false
}
