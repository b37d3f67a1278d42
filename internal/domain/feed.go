package domain

import "time"

type FeedAction string

const (
	FeedCreated       FeedAction = "created"
	FeedStatusChanged FeedAction = "status_changed"
	FeedDeleted       FeedAction = "deleted"
)

// Kinds of records announced on the admin feed.
const (
	FeedKindCourseRegistration = "course_registration"
	FeedKindTourRegistration   = "tour_registration"
)

// FeedEvent tells connected admin panels that a registration changed.
type FeedEvent struct {
	Kind   string             `json:"kind"`
	Action FeedAction         `json:"action"`
	ID     uint               `json:"id"`
	Status RegistrationStatus `json:"status,omitempty"`
	At     time.Time          `json:"at"`
}
