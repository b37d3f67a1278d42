package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/repository"
)

var (
	ErrCourseRegistrationNotFound = repository.ErrCourseRegistrationNotFound
	ErrTourRegistrationNotFound   = repository.ErrTourRegistrationNotFound
)

type RegistrationRepository interface {
	GetAllCourses(ctx context.Context) ([]domain.Course, error)
	GetAllTours(ctx context.Context) ([]domain.Tour, error)

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

// Notifier receives a FeedEvent after every registration change.
type Notifier interface {
	Notify(event domain.FeedEvent)
}

type nopNotifier struct{}

func (nopNotifier) Notify(domain.FeedEvent) {}

type RegistrationService struct {
	repo     RegistrationRepository
	notifier Notifier
	now      func() time.Time
}

func NewRegistrationService(repo RegistrationRepository, notifier Notifier) *RegistrationService {
	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &RegistrationService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *RegistrationService) notify(kind string, action domain.FeedAction, id uint, status domain.RegistrationStatus) {
	s.notifier.Notify(domain.FeedEvent{
		Kind:   kind,
		Action: action,
		ID:     id,
		Status: status,
		At:     s.now(),
	})
}

// Stats counts the catalog and registrations, with registrations split by status.
func (s *RegistrationService) Stats(ctx context.Context) (domain.PortalStats, error) {
	courses, err := s.repo.GetAllCourses(ctx)
	if err != nil {
		return domain.PortalStats{}, fmt.Errorf("s.repo.GetAllCourses -> %w", err)
	}

	tours, err := s.repo.GetAllTours(ctx)
	if err != nil {
		return domain.PortalStats{}, fmt.Errorf("s.repo.GetAllTours -> %w", err)
	}

	courseRegs, err := s.repo.GetAllCourseRegistrations(ctx)
	if err != nil {
		return domain.PortalStats{}, fmt.Errorf("s.repo.GetAllCourseRegistrations -> %w", err)
	}

	tourRegs, err := s.repo.GetAllTourRegistrations(ctx)
	if err != nil {
		return domain.PortalStats{}, fmt.Errorf("s.repo.GetAllTourRegistrations -> %w", err)
	}

	stats := domain.PortalStats{
		Courses:                     len(courses),
		Tours:                       len(tours),
		CourseRegistrations:         len(courseRegs),
		TourRegistrations:           len(tourRegs),
		CourseRegistrationsByStatus: domain.NewStatusCounts(),
		TourRegistrationsByStatus:   domain.NewStatusCounts(),
	}
	for _, reg := range courseRegs {
		stats.CourseRegistrationsByStatus[reg.Status]++
	}
	for _, reg := range tourRegs {
		stats.TourRegistrationsByStatus[reg.Status]++
	}

	return stats, nil
}

// Course registrations

func (s *RegistrationService) ListCourseRegistrations(ctx context.Context) ([]domain.CourseRegistration, error) {
	regs, err := s.repo.GetAllCourseRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllCourseRegistrations -> %w", err)
	}

	return regs, nil
}

// ListCourseRegistrationViews pairs each registration with its course name.
// Registrations whose course is gone get UnknownCourseLabel.
func (s *RegistrationService) ListCourseRegistrationViews(ctx context.Context) ([]domain.CourseRegistrationView, error) {
	regs, err := s.repo.GetAllCourseRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllCourseRegistrations -> %w", err)
	}

	courses, err := s.repo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllCourses -> %w", err)
	}

	names := make(map[uint]string, len(courses))
	for _, c := range courses {
		names[c.ID] = c.Name
	}

	views := make([]domain.CourseRegistrationView, len(regs))
	for i, reg := range regs {
		name, ok := names[reg.CourseID]
		if !ok {
			name = domain.UnknownCourseLabel
		}
		views[i] = domain.CourseRegistrationView{
			CourseRegistration: reg,
			CourseName:         name,
			KnownCourse:        ok,
		}
	}

	return views, nil
}

func (s *RegistrationService) GetCourseRegistration(ctx context.Context, id uint) (domain.CourseRegistration, error) {
	reg, err := s.repo.GetCourseRegistration(ctx, id)
	if err != nil {
		return domain.CourseRegistration{}, fmt.Errorf("s.repo.GetCourseRegistration -> %w", err)
	}

	return reg, nil
}

func (s *RegistrationService) RegisterForCourse(ctx context.Context, in domain.InsertCourseRegistration) (domain.CourseRegistration, error) {
	reg, err := s.repo.CreateCourseRegistration(ctx, in)
	if err != nil {
		return domain.CourseRegistration{}, fmt.Errorf("s.repo.CreateCourseRegistration -> %w", err)
	}
	s.notify(domain.FeedKindCourseRegistration, domain.FeedCreated, reg.ID, reg.Status)

	return reg, nil
}

func (s *RegistrationService) UpdateCourseRegistrationStatus(ctx context.Context, id uint, status domain.RegistrationStatus) (domain.CourseRegistration, error) {
	reg, err := s.repo.UpdateCourseRegistrationStatus(ctx, id, status)
	if err != nil {
		return domain.CourseRegistration{}, fmt.Errorf("s.repo.UpdateCourseRegistrationStatus -> %w", err)
	}
	s.notify(domain.FeedKindCourseRegistration, domain.FeedStatusChanged, reg.ID, reg.Status)

	return reg, nil
}

func (s *RegistrationService) DeleteCourseRegistration(ctx context.Context, id uint) error {
	deleted, err := s.repo.DeleteCourseRegistration(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.DeleteCourseRegistration -> %w", err)
	}
	if !deleted {
		return ErrCourseRegistrationNotFound
	}
	s.notify(domain.FeedKindCourseRegistration, domain.FeedDeleted, id, "")

	return nil
}

// Tour registrations

func (s *RegistrationService) ListTourRegistrations(ctx context.Context) ([]domain.TourRegistration, error) {
	regs, err := s.repo.GetAllTourRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllTourRegistrations -> %w", err)
	}

	return regs, nil
}

func (s *RegistrationService) GetTourRegistration(ctx context.Context, id uint) (domain.TourRegistration, error) {
	reg, err := s.repo.GetTourRegistration(ctx, id)
	if err != nil {
		return domain.TourRegistration{}, fmt.Errorf("s.repo.GetTourRegistration -> %w", err)
	}

	return reg, nil
}

func (s *RegistrationService) RegisterForTour(ctx context.Context, in domain.InsertTourRegistration) (domain.TourRegistration, error) {
	reg, err := s.repo.CreateTourRegistration(ctx, in)
	if err != nil {
		return domain.TourRegistration{}, fmt.Errorf("s.repo.CreateTourRegistration -> %w", err)
	}
	s.notify(domain.FeedKindTourRegistration, domain.FeedCreated, reg.ID, reg.Status)

	return reg, nil
}

func (s *RegistrationService) UpdateTourRegistrationStatus(ctx context.Context, id uint, status domain.RegistrationStatus) (domain.TourRegistration, error) {
	reg, err := s.repo.UpdateTourRegistrationStatus(ctx, id, status)
	if err != nil {
		return domain.TourRegistration{}, fmt.Errorf("s.repo.UpdateTourRegistrationStatus -> %w", err)
	}
	s.notify(domain.FeedKindTourRegistration, domain.FeedStatusChanged, reg.ID, reg.Status)

	return reg, nil
}

func (s *RegistrationService) DeleteTourRegistration(ctx context.Context, id uint) error {
	deleted, err := s.repo.DeleteTourRegistration(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.DeleteTourRegistration -> %w", err)
	}
	if !deleted {
		return ErrTourRegistrationNotFound
	}
	s.notify(domain.FeedKindTourRegistration, domain.FeedDeleted, id, "")

	return nil
}
