package repository

import (
	"context"

	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/repository/dao"
)

var (
	ErrUserNotFound               = dao.ErrUserNotFound
	ErrUsernameExists             = dao.ErrUsernameExists
	ErrCourseNotFound             = dao.ErrCourseNotFound
	ErrTourNotFound               = dao.ErrTourNotFound
	ErrCourseRegistrationNotFound = dao.ErrCourseRegistrationNotFound
	ErrTourRegistrationNotFound   = dao.ErrTourRegistrationNotFound
)

// Storage owns every entity collection. Lookups of absent identities return
// one of the not-found errors above; deletes of absent identities return false.
// Status values are stored as given, callers validate them first.
type Storage interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	CreateUser(ctx context.Context, user domain.InsertUser) (domain.User, error)

	GetAllCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, id uint) (domain.Course, error)
	CreateCourse(ctx context.Context, course domain.InsertCourse) (domain.Course, error)
	UpdateCourse(ctx context.Context, id uint, update domain.CourseUpdate) (domain.Course, error)
	DeleteCourse(ctx context.Context, id uint) (bool, error)

	GetAllTours(ctx context.Context) ([]domain.Tour, error)
	GetTour(ctx context.Context, id uint) (domain.Tour, error)
	CreateTour(ctx context.Context, tour domain.InsertTour) (domain.Tour, error)

	GetAllCourseRegistrations(ctx context.Context) ([]domain.CourseRegistration, error)
	GetCourseRegistration(ctx context.Context, id uint) (domain.CourseRegistration, error)
	CreateCourseRegistration(ctx context.Context, reg domain.InsertCourseRegistration) (domain.CourseRegistration, error)
	UpdateCourseRegistrationStatus(ctx context.Context, id uint, status domain.RegistrationStatus) (domain.CourseRegistration, error)
	DeleteCourseRegistration(ctx context.Context, id uint) (bool, error)

	GetAllTourRegistrations(ctx context.Context) ([]domain.TourRegistration, error)
	GetTourRegistration(ctx context.Context, id uint) (domain.TourRegistration, error)
	CreateTourRegistration(ctx context.Context, reg domain.InsertTourRegistration) (domain.TourRegistration, error)
	UpdateTourRegistrationStatus(ctx context.Context, id uint, status domain.RegistrationStatus) (domain.TourRegistration, error)
	DeleteTourRegistration(ctx context.Context, id uint) (bool, error)
}
