package catalog

import (
	"time"

	"salonbook/models"
)

// businessHours covers every weekday; Tuesday is the salon-wide closed
// day, Sunday runs shorter hours.
var businessHours = map[time.Weekday]models.BusinessHours{
	time.Sunday:    {Open: "12:00", Close: "18:00"},
	time.Monday:    {Open: "11:00", Close: "19:00"},
	time.Tuesday:   {Open: "00:00", Close: "00:00", Closed: true},
	time.Wednesday: {Open: "11:00", Close: "19:00"},
	time.Thursday:  {Open: "11:00", Close: "19:00"},
	time.Friday:    {Open: "11:00", Close: "19:00"},
	time.Saturday:  {Open: "11:00", Close: "19:00"},
}

// HoursFor returns the salon-wide hours for a weekday.
func HoursFor(weekday time.Weekday) models.BusinessHours {
	return businessHours[weekday]
}
