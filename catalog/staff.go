package catalog

import "salonbook/models"

var staff = []models.StaffMember{
	{
		ID:             "purvi",
		Name:           "Purvi Thakkar",
		Role:           "Owner",
		AvailableAfter: "12:30",
		ServiceTags: []models.ServiceTag{
			models.TagHair, models.TagThreading, models.TagWaxing,
			models.TagFacial, models.TagManicure, models.TagPedicure,
			models.TagBridal, models.TagInterview,
		},
	},
	{
		ID:              "hetvi",
		Name:            "Hetvi Thakkar",
		Role:            "Owner",
		AppointmentOnly: true,
		// Works most services, not face threading/waxing.
		ServiceTags: []models.ServiceTag{
			models.TagHair, models.TagFacial, models.TagManicure,
			models.TagPedicure, models.TagBridal, models.TagInterview,
		},
	},
	{
		ID:             "nirali",
		Name:           "Nirali Dave",
		Role:           "Employee",
		AvailableAfter: "11:00",
		AvailableUntil: "17:30",
		ServiceTags: []models.ServiceTag{
			models.TagThreading, models.TagWaxing, models.TagFacial,
			models.TagManicure, models.TagPedicure, models.TagInterview,
		},
	},
	{
		ID:             "varsha",
		Name:           "Varsha Patel",
		Role:           "Employee",
		AvailableAfter: "13:00",
		AvailableUntil: "19:00",
		ServiceTags: []models.ServiceTag{
			models.TagThreading, models.TagWaxing, models.TagFacial,
			models.TagManicure, models.TagPedicure, models.TagInterview,
		},
	},
}

// Staff returns the full roster in a stable order.
func Staff() []models.StaffMember {
	return staff
}

// StaffByID looks up a roster member.
func StaffByID(id models.StaffID) (models.StaffMember, bool) {
	for _, m := range staff {
		if m.ID == id {
			return m, true
		}
	}
	return models.StaffMember{}, false
}

// StaffIDs returns every roster ID in roster order.
func StaffIDs() []models.StaffID {
	ids := make([]models.StaffID, 0, len(staff))
	for _, m := range staff {
		ids = append(ids, m.ID)
	}
	return ids
}
