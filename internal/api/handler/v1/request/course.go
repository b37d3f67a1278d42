package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/course-portal-api/internal/domain"
)

type CreateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Capacity    int    `json:"capacity"`
	ImageURL    string `json:"imageUrl"`
}

func (req *CreateCourseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&req.ImageURL, validation.Required),
	)
}

func (req *CreateCourseRequest) ToDomain() domain.InsertCourse {
	return domain.InsertCourse{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
	}
}

// UpdateCourseRequest is a partial course; absent fields stay nil.
type UpdateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Capacity    *int    `json:"capacity"`
	ImageURL    *string `json:"imageUrl"`
}

func (req *UpdateCourseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.NilOrNotEmpty),
		validation.Field(&req.Date, validation.NilOrNotEmpty),
		validation.Field(&req.Capacity, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&req.ImageURL, validation.NilOrNotEmpty),
	)
}

func (req *UpdateCourseRequest) ToDomain() domain.CourseUpdate {
	return domain.CourseUpdate{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
	}
}
