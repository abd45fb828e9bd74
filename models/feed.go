package models

// StaffStatus is one staff member's entry in the external status feed.
type StaffStatus struct {
	StaffID       string `json:"employee_id"`
	Name          string `json:"name"`
	IsAvailable   bool   `json:"is_available"`
	LastUpdatedAt string `json:"last_updated_at"`
	UpdatedBy     string `json:"updated_by"`
	Notes         string `json:"notes"`
}

// StaffStatusReport is the feed's full response. Queried fresh on every
// availability query and booking attempt; never cached client-side.
type StaffStatusReport struct {
	Staff          []StaffStatus `json:"employees"`
	TotalAvailable int           `json:"total_available"`
	TotalStaff     int           `json:"total_employees"`
}

// Available reports the feed's flag for one staff member. The second
// return is false when the feed has no entry for that staff member.
func (r StaffStatusReport) Available(staffID StaffID) (bool, bool) {
	for _, s := range r.Staff {
		if s.StaffID == string(staffID) {
			return s.IsAvailable, true
		}
	}
	return false, false
}
