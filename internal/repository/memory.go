package repository

import (
	"context"
	"time"

	"github.com/vietanh2810/course-portal-api/internal/domain"
)

// MemStorage keeps every collection in process memory. Contents are lost on
// restart. Each collection is guarded by its own lock, so identity assignment
// stays unique under concurrent requests.
type MemStorage struct {
	now func() time.Time

	users               *table[domain.User]
	courses             *table[domain.Course]
	tours               *table[domain.Tour]
	courseRegistrations *table[domain.CourseRegistration]
	tourRegistrations   *table[domain.TourRegistration]
}

type MemOption func(*MemStorage)

// WithClock overrides the clock used to stamp registration dates.
func WithClock(now func() time.Time) MemOption {
	return func(s *MemStorage) {
		s.now = now
	}
}

func NewMemStorage(opts ...MemOption) *MemStorage {
	s := &MemStorage{
		now:                 time.Now,
		users:               newTable[domain.User](),
		courses:             newTable[domain.Course](),
		tours:               newTable[domain.Tour](),
		courseRegistrations: newTable[domain.CourseRegistration](),
		tourRegistrations:   newTable[domain.TourRegistration](),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *MemStorage) registrationDate() string {
	return s.now().Format(domain.RegistrationDateLayout)
}

// Users

func (s *MemStorage) GetUser(_ context.Context, id uint) (domain.User, error) {
	user, ok := s.users.get(id)
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	user, ok := s.users.find(func(u domain.User) bool { return u.Username == username })
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func (s *MemStorage) CreateUser(_ context.Context, in domain.InsertUser) (domain.User, error) {
	user, ok := s.users.insertUnless(
		func(u domain.User) bool { return u.Username == in.Username },
		func(id uint) domain.User {
			return domain.User{ID: id, Username: in.Username, Password: in.Password}
		},
	)
	if !ok {
		return domain.User{}, ErrUsernameExists
	}

	return user, nil
}

// Courses

func (s *MemStorage) GetAllCourses(_ context.Context) ([]domain.Course, error) {
	return s.courses.all(), nil
}

func (s *MemStorage) GetCourse(_ context.Context, id uint) (domain.Course, error) {
	course, ok := s.courses.get(id)
	if !ok {
		return domain.Course{}, ErrCourseNotFound
	}

	return course, nil
}

func (s *MemStorage) CreateCourse(_ context.Context, in domain.InsertCourse) (domain.Course, error) {
	return s.courses.insert(func(id uint) domain.Course {
		return domain.Course{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Date:        in.Date,
			Capacity:    in.Capacity,
			ImageURL:    in.ImageURL,
		}
	}), nil
}

func (s *MemStorage) UpdateCourse(_ context.Context, id uint, update domain.CourseUpdate) (domain.Course, error) {
	course, ok := s.courses.update(id, func(c domain.Course) domain.Course {
		return c.Apply(update)
	})
	if !ok {
		return domain.Course{}, ErrCourseNotFound
	}

	return course, nil
}

func (s *MemStorage) DeleteCourse(_ context.Context, id uint) (bool, error) {
	return s.courses.delete(id), nil
}

// Tours

func (s *MemStorage) GetAllTours(_ context.Context) ([]domain.Tour, error) {
	return s.tours.all(), nil
}

func (s *MemStorage) GetTour(_ context.Context, id uint) (domain.Tour, error) {
	tour, ok := s.tours.get(id)
	if !ok {
		return domain.Tour{}, ErrTourNotFound
	}

	return tour, nil
}

func (s *MemStorage) CreateTour(_ context.Context, in domain.InsertTour) (domain.Tour, error) {
	return s.tours.insert(func(id uint) domain.Tour {
		return domain.Tour{
			ID:          id,
			Type:        in.Type,
			Schedule:    in.Schedule,
			Description: in.Description,
			Capacity:    in.Capacity,
		}
	}), nil
}

// Course registrations

func (s *MemStorage) GetAllCourseRegistrations(_ context.Context) ([]domain.CourseRegistration, error) {
	return s.courseRegistrations.all(), nil
}

func (s *MemStorage) GetCourseRegistration(_ context.Context, id uint) (domain.CourseRegistration, error) {
	reg, ok := s.courseRegistrations.get(id)
	if !ok {
		return domain.CourseRegistration{}, ErrCourseRegistrationNotFound
	}

	return reg, nil
}

func (s *MemStorage) CreateCourseRegistration(_ context.Context, in domain.InsertCourseRegistration) (domain.CourseRegistration, error) {
	date := s.registrationDate()

	return s.courseRegistrations.insert(func(id uint) domain.CourseRegistration {
		return domain.CourseRegistration{
			ID:               id,
			CourseID:         in.CourseID,
			ParticipantName:  in.ParticipantName,
			Email:            in.Email,
			Phone:            in.Phone,
			Level:            in.Level,
			Status:           domain.StatusPending,
			RegistrationDate: date,
		}
	}), nil
}

func (s *MemStorage) UpdateCourseRegistrationStatus(_ context.Context, id uint, status domain.RegistrationStatus) (domain.CourseRegistration, error) {
	reg, ok := s.courseRegistrations.update(id, func(r domain.CourseRegistration) domain.CourseRegistration {
		r.Status = status
		return r
	})
	if !ok {
		return domain.CourseRegistration{}, ErrCourseRegistrationNotFound
	}

	return reg, nil
}

func (s *MemStorage) DeleteCourseRegistration(_ context.Context, id uint) (bool, error) {
	return s.courseRegistrations.delete(id), nil
}

// Tour registrations

func (s *MemStorage) GetAllTourRegistrations(_ context.Context) ([]domain.TourRegistration, error) {
	return s.tourRegistrations.all(), nil
}

func (s *MemStorage) GetTourRegistration(_ context.Context, id uint) (domain.TourRegistration, error) {
	reg, ok := s.tourRegistrations.get(id)
	if !ok {
		return domain.TourRegistration{}, ErrTourRegistrationNotFound
	}

	return reg, nil
}

func (s *MemStorage) CreateTourRegistration(_ context.Context, in domain.InsertTourRegistration) (domain.TourRegistration, error) {
	date := s.registrationDate()

	return s.tourRegistrations.insert(func(id uint) domain.TourRegistration {
		return domain.TourRegistration{
			ID:               id,
			TourType:         in.TourType,
			PreferredDate:    in.PreferredDate,
			NumberOfPeople:   in.NumberOfPeople,
			ResponsibleName:  in.ResponsibleName,
			Email:            in.Email,
			Phone:            in.Phone,
			IDNumber:         in.IDNumber,
			Age:              copyInt(in.Age),
			Institution:      in.Institution,
			Gender:           in.Gender,
			Status:           domain.StatusPending,
			RegistrationDate: date,
		}
	}), nil
}

func (s *MemStorage) UpdateTourRegistrationStatus(_ context.Context, id uint, status domain.RegistrationStatus) (domain.TourRegistration, error) {
	reg, ok := s.tourRegistrations.update(id, func(r domain.TourRegistration) domain.TourRegistration {
		r.Status = status
		return r
	})
	if !ok {
		return domain.TourRegistration{}, ErrTourRegistrationNotFound
	}

	return reg, nil
}

func (s *MemStorage) DeleteTourRegistration(_ context.Context, id uint) (bool, error) {
	return s.tourRegistrations.delete(id), nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

var _ Storage = (*MemStorage)(nil)
