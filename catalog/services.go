package catalog

import "salonbook/models"

// Kept concise; can be expanded to full price-list granularity.
var services = []models.ServiceOption{
	{ID: "haircut", Label: "Haircut & Styling", Tag: models.TagHair, DurationMin: 60},
	{ID: "color", Label: "Hair Color & Highlights", Tag: models.TagHair, DurationMin: 150},
	{ID: "bridal", Label: "Bridal Makeup", Tag: models.TagBridal, DurationMin: 180},
	{ID: "threading", Label: "Waxing / Threading", Tag: models.TagThreading, DurationMin: 30},
	{ID: "facial", Label: "Facial & Skincare", Tag: models.TagFacial, DurationMin: 75},
	{ID: "manicure", Label: "Manicure", Tag: models.TagManicure, DurationMin: 45},
	{ID: "pedicure", Label: "Pedicure", Tag: models.TagPedicure, DurationMin: 60},
	{ID: "interview", Label: "Interview / Consultation", Tag: models.TagInterview, DurationMin: 30},
}

// Services returns the service catalog in display order.
func Services() []models.ServiceOption {
	return services
}

// ServiceByID looks up a service by ID.
func ServiceByID(id string) (models.ServiceOption, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return models.ServiceOption{}, false
}
