package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/course-portal-api/internal/domain"
)

var numberOfPeopleExp = regexp.MustCompile(`^([1-9][0-9]?|[1-9]\+)$`)

// CourseRegistrationRequest takes any course id, including 0 or one that
// does not exist. Only a missing id is rejected.
type CourseRegistrationRequest struct {
	CourseID        *uint  `json:"courseId"`
	ParticipantName string `json:"participantName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Level           string `json:"level"`
}

func (req *CourseRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CourseID, validation.NotNil),
		validation.Field(&req.ParticipantName, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required, phoneRule),
		validation.Field(&req.Level, validation.Required,
			validation.In(domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced)),
	)
}

func (req *CourseRegistrationRequest) ToDomain() domain.InsertCourseRegistration {
	return domain.InsertCourseRegistration{
		CourseID:        *req.CourseID,
		ParticipantName: req.ParticipantName,
		Email:           req.Email,
		Phone:           req.Phone,
		Level:           req.Level,
	}
}

// TourRegistrationRequest accepts both the short form and the extended one
// with idNumber, age, institution and gender.
type TourRegistrationRequest struct {
	TourType        string `json:"tourType"`
	PreferredDate   string `json:"preferredDate"`
	NumberOfPeople  string `json:"numberOfPeople"`
	ResponsibleName string `json:"responsibleName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	IDNumber        string `json:"idNumber"`
	Age             *int   `json:"age"`
	Institution     string `json:"institution"`
	Gender          string `json:"gender"`
}

func (req *TourRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TourType, validation.Required,
			validation.In(domain.TourTypeWeekday, domain.TourTypeSaturday, domain.TourTypeSunday)),
		validation.Field(&req.PreferredDate, validation.Required),
		validation.Field(&req.NumberOfPeople, validation.Required, validation.Match(numberOfPeopleExp)),
		validation.Field(&req.ResponsibleName, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required, phoneRule),
		validation.Field(&req.IDNumber, validation.Length(0, 50)),
		validation.Field(&req.Age, validation.NilOrNotEmpty, validation.Min(5), validation.Max(100)),
		validation.Field(&req.Institution, validation.Length(0, 200)),
		validation.Field(&req.Gender, validation.Length(0, 50)),
	)
}

func (req *TourRegistrationRequest) ToDomain() domain.InsertTourRegistration {
	return domain.InsertTourRegistration{
		TourType:        req.TourType,
		PreferredDate:   req.PreferredDate,
		NumberOfPeople:  req.NumberOfPeople,
		ResponsibleName: req.ResponsibleName,
		Email:           req.Email,
		Phone:           req.Phone,
		IDNumber:        req.IDNumber,
		Age:             req.Age,
		Institution:     req.Institution,
		Gender:          req.Gender,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateStatusRequest) Validate() error {
	statuses := domain.Statuses()
	allowed := make([]interface{}, len(statuses))
	for i, s := range statuses {
		allowed[i] = string(s)
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(allowed...)),
	)
}
