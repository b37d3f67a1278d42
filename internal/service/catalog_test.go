package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/repository"
)

func newCourse() domain.InsertCourse {
	return domain.InsertCourse{
		Name:        "Cerámica",
		Description: "Taller de iniciación",
		Date:        "Sábados 10:00",
		Capacity:    12,
		ImageURL:    "https://example.com/ceramica.png",
	}
}

func TestCatalogService_CourseLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(repository.NewMemStorage())

	created, err := svc.CreateCourse(ctx, newCourse())
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	name := "Cerámica avanzada"
	updated, err := svc.UpdateCourse(ctx, created.ID, domain.CourseUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, created.Capacity, updated.Capacity)

	same, err := svc.UpdateCourse(ctx, created.ID, domain.CourseUpdate{})
	require.NoError(t, err)
	assert.Equal(t, updated, same)

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Course{updated}, courses)

	require.NoError(t, svc.DeleteCourse(ctx, created.ID))

	err = svc.DeleteCourse(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = svc.GetCourse(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = svc.UpdateCourse(ctx, created.ID, domain.CourseUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCatalogService_Tours(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStorage()
	require.NoError(t, repository.Seed(ctx, store))
	svc := NewCatalogService(store)

	tours, err := svc.ListTours(ctx)
	require.NoError(t, err)
	require.Len(t, tours, len(repository.DefaultTours()))

	tour, err := svc.GetTour(ctx, tours[0].ID)
	require.NoError(t, err)
	assert.Equal(t, tours[0], tour)

	_, err = svc.GetTour(ctx, 999)
	assert.ErrorIs(t, err, ErrTourNotFound)
}

type brokenCatalog struct {
	CatalogRepository
}

var errBroken = errors.New("connection reset")

func (brokenCatalog) GetAllCourses(context.Context) ([]domain.Course, error) {
	return nil, errBroken
}

func TestCatalogService_WrapsRepositoryErrors(t *testing.T) {
	svc := NewCatalogService(brokenCatalog{})

	_, err := svc.ListCourses(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), "s.repo.GetAllCourses")
}
