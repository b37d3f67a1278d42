package domain

// PortalStats backs the admin panel's statistics tab.
type PortalStats struct {
	Courses                     int                        `json:"courses"`
	Tours                       int                        `json:"tours"`
	CourseRegistrations         int                        `json:"courseRegistrations"`
	TourRegistrations           int                        `json:"tourRegistrations"`
	CourseRegistrationsByStatus map[RegistrationStatus]int `json:"courseRegistrationsByStatus"`
	TourRegistrationsByStatus   map[RegistrationStatus]int `json:"tourRegistrationsByStatus"`
}

// NewStatusCounts returns a count map holding every status at zero.
func NewStatusCounts() map[RegistrationStatus]int {
	counts := make(map[RegistrationStatus]int, len(statuses))
	for _, s := range statuses {
		counts[s] = 0
	}

	return counts
}
