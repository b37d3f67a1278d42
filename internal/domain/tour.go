package domain

// Tour types offered on the public site.
const (
	TourTypeWeekday  = "weekday"
	TourTypeSaturday = "saturday"
	TourTypeSunday   = "sunday"
)

type Tour struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	Schedule    string `json:"schedule"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

type InsertTour struct {
	Type        string `json:"type"`
	Schedule    string `json:"schedule"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}
