package catalog

import "salonbook/models"

// serviceStaffMap assigns staff to services explicitly. It takes
// precedence over tag matching:
//   - haircut/color: only Purvi and Hetvi
//   - threading: Purvi, Nirali, Varsha (not Hetvi)
//   - bridal: Purvi and Hetvi
var serviceStaffMap = map[string][]models.StaffID{
	"haircut":   {"purvi", "hetvi"},
	"color":     {"purvi", "hetvi"},
	"threading": {"purvi", "nirali", "varsha"},
	"facial":    {"purvi", "hetvi", "nirali", "varsha"},
	"manicure":  {"purvi", "hetvi", "nirali", "varsha"},
	"pedicure":  {"purvi", "hetvi", "nirali", "varsha"},
	"bridal":    {"purvi", "hetvi"},
	"interview": {"purvi", "hetvi", "nirali", "varsha"},
}

// eligibilityRule answers which staff may perform a service, or reports
// that it has no answer so the next rule is consulted.
type eligibilityRule func(svc models.ServiceOption) ([]models.StaffID, bool)

// Ordered: explicit assignment wins over tag matching. A further tier
// (e.g. a remote eligibility service) slots in by appending a rule.
var eligibilityRules = []eligibilityRule{
	explicitAssignment,
	tagMatch,
}

func explicitAssignment(svc models.ServiceOption) ([]models.StaffID, bool) {
	ids, ok := serviceStaffMap[svc.ID]
	return ids, ok
}

func tagMatch(svc models.ServiceOption) ([]models.StaffID, bool) {
	var ids []models.StaffID
	for _, m := range staff {
		if m.HasTag(svc.Tag) {
			ids = append(ids, m.ID)
		}
	}
	return ids, true
}

// EligibleStaffFor returns the staff permitted to perform a service.
// Unknown service IDs yield an empty set.
func EligibleStaffFor(serviceID string) []models.StaffID {
	svc, ok := ServiceByID(serviceID)
	if !ok {
		return nil
	}
	for _, rule := range eligibilityRules {
		if ids, ok := rule(svc); ok {
			return ids
		}
	}
	return nil
}
