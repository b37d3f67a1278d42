package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/repository"
)

var (
	ErrCourseNotFound = repository.ErrCourseNotFound
	ErrTourNotFound   = repository.ErrTourNotFound
)

type CatalogRepository interface {
	GetAllCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, id uint) (domain.Course, error)
	CreateCourse(ctx context.Context, course domain.InsertCourse) (domain.Course, error)
	UpdateCourse(ctx context.Context, id uint, update domain.CourseUpdate) (domain.Course, error)
	DeleteCourse(ctx context.Context, id uint) (bool, error)
	GetAllTours(ctx context.Context) ([]domain.Tour, error)
	GetTour(ctx context.Context, id uint) (domain.Tour, error)
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.repo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllCourses -> %w", err)
	}

	return courses, nil
}

func (s *CatalogService) GetCourse(ctx context.Context, id uint) (domain.Course, error) {
	course, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return domain.Course{}, fmt.Errorf("s.repo.GetCourse -> %w", err)
	}

	return course, nil
}

func (s *CatalogService) CreateCourse(ctx context.Context, course domain.InsertCourse) (domain.Course, error) {
	created, err := s.repo.CreateCourse(ctx, course)
	if err != nil {
		return domain.Course{}, fmt.Errorf("s.repo.CreateCourse -> %w", err)
	}

	return created, nil
}

// UpdateCourse with an empty update returns the stored course unchanged.
func (s *CatalogService) UpdateCourse(ctx context.Context, id uint, update domain.CourseUpdate) (domain.Course, error) {
	if update.IsEmpty() {
		return s.GetCourse(ctx, id)
	}

	updated, err := s.repo.UpdateCourse(ctx, id, update)
	if err != nil {
		return domain.Course{}, fmt.Errorf("s.repo.UpdateCourse -> %w", err)
	}

	return updated, nil
}

// DeleteCourse leaves registrations of the course in place.
func (s *CatalogService) DeleteCourse(ctx context.Context, id uint) error {
	deleted, err := s.repo.DeleteCourse(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.DeleteCourse -> %w", err)
	}
	if !deleted {
		return ErrCourseNotFound
	}

	return nil
}

func (s *CatalogService) ListTours(ctx context.Context) ([]domain.Tour, error) {
	tours, err := s.repo.GetAllTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllTours -> %w", err)
	}

	return tours, nil
}

func (s *CatalogService) GetTour(ctx context.Context, id uint) (domain.Tour, error) {
	tour, err := s.repo.GetTour(ctx, id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("s.repo.GetTour -> %w", err)
	}

	return tour, nil
}
