package domain

import (
	"errors"
	"fmt"
)

type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "pending"
	StatusConfirmed RegistrationStatus = "confirmed"
	StatusCancelled RegistrationStatus = "cancelled"
)

// RegistrationDateLayout renders dates the way the admin panel shows them (d/m/yyyy).
const RegistrationDateLayout = "2/1/2006"

// UnknownCourseLabel is shown for registrations whose course no longer exists.
const UnknownCourseLabel = "Curso desconocido"

var ErrInvalidStatus = errors.New("invalid status")

var statuses = []RegistrationStatus{StatusPending, StatusConfirmed, StatusCancelled}

func Statuses() []RegistrationStatus {
	return append([]RegistrationStatus(nil), statuses...)
}

func (s RegistrationStatus) Valid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}

	return false
}

func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	status := RegistrationStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}

	return status, nil
}

// Course levels offered by the registration form.
const (
	LevelBeginner     = "principiante"
	LevelIntermediate = "intermedio"
	LevelAdvanced     = "avanzado"
)

type CourseRegistration struct {
	ID               uint               `json:"id"`
	CourseID         uint               `json:"courseId"`
	ParticipantName  string             `json:"participantName"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	Level            string             `json:"level"`
	Status           RegistrationStatus `json:"status"`
	RegistrationDate string             `json:"registrationDate"`
}

type InsertCourseRegistration struct {
	CourseID        uint   `json:"courseId"`
	ParticipantName string `json:"participantName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Level           string `json:"level"`
}

// CourseRegistrationView is a registration joined with its course name.
type CourseRegistrationView struct {
	CourseRegistration
	CourseName  string `json:"courseName"`
	KnownCourse bool   `json:"knownCourse"`
}

type TourRegistration struct {
	ID               uint               `json:"id"`
	TourType         string             `json:"tourType"`
	PreferredDate    string             `json:"preferredDate"`
	NumberOfPeople   string             `json:"numberOfPeople"`
	ResponsibleName  string             `json:"responsibleName"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	IDNumber         string             `json:"idNumber,omitempty"`
	Age              *int               `json:"age,omitempty"`
	Institution      string             `json:"institution,omitempty"`
	Gender           string             `json:"gender,omitempty"`
	Status           RegistrationStatus `json:"status"`
	RegistrationDate string             `json:"registrationDate"`
}

type InsertTourRegistration struct {
	TourType        string `json:"tourType"`
	PreferredDate   string `json:"preferredDate"`
	NumberOfPeople  string `json:"numberOfPeople"`
	ResponsibleName string `json:"responsibleName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	IDNumber        string `json:"idNumber,omitempty"`
	Age             *int   `json:"age,omitempty"`
	Institution     string `json:"institution,omitempty"`
	Gender          string `json:"gender,omitempty"`
}
