package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/course-portal-api/internal/domain"
)

var fixedNow = func() time.Time { return time.Date(2025, time.March, 5, 14, 30, 0, 0, time.Local) }

func newTestStorage(t *testing.T) *MemStorage {
	t.Helper()
	return NewMemStorage(WithClock(fixedNow))
}

func sampleCourse() domain.InsertCourse {
	return domain.InsertCourse{
		Name:        "X",
		Description: "Y",
		Date:        "2025-01-01",
		Capacity:    10,
		ImageURL:    "https://x/y.png",
	}
}

func sampleCourseRegistration(courseID uint) domain.InsertCourseRegistration {
	return domain.InsertCourseRegistration{
		CourseID:        courseID,
		ParticipantName: "Ana Pérez",
		Email:           "ana@example.com",
		Phone:           "+34 600 123 456",
		Level:           domain.LevelBeginner,
	}
}

func sampleTourRegistration() domain.InsertTourRegistration {
	return domain.InsertTourRegistration{
		TourType:        domain.TourTypeSaturday,
		PreferredDate:   "2025-04-12",
		NumberOfPeople:  "3",
		ResponsibleName: "Luis Gómez",
		Email:           "luis@example.com",
		Phone:           "600123456",
	}
}

func TestMemStorage_Courses(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	all, err := s.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	created, err := s.CreateCourse(ctx, sampleCourse())
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "X", created.Name)

	found, err := s.GetCourse(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = s.GetCourse(ctx, 42)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	all, err = s.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Course{created}, all)
}

func TestMemStorage_UpdateCourse_MergesFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	created, err := s.CreateCourse(ctx, sampleCourse())
	require.NoError(t, err)

	capacity := 25
	updated, err := s.UpdateCourse(ctx, created.ID, domain.CourseUpdate{Capacity: &capacity})
	require.NoError(t, err)

	want := created
	want.Capacity = 25
	assert.Equal(t, want, updated)

	found, err := s.GetCourse(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, want, found)

	_, err = s.UpdateCourse(ctx, 99, domain.CourseUpdate{Capacity: &capacity})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestMemStorage_DeleteCourse(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	created, err := s.CreateCourse(ctx, sampleCourse())
	require.NoError(t, err)

	deleted, err := s.DeleteCourse(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetCourse(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	deleted, err = s.DeleteCourse(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Identities are not reused after a delete.
	next, err := s.CreateCourse(ctx, sampleCourse())
	require.NoError(t, err)
	assert.Equal(t, uint(2), next.ID)
}

func TestMemStorage_DeleteCourse_KeepsRegistrations(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	course, err := s.CreateCourse(ctx, sampleCourse())
	require.NoError(t, err)
	reg, err := s.CreateCourseRegistration(ctx, sampleCourseRegistration(course.ID))
	require.NoError(t, err)

	deleted, err := s.DeleteCourse(ctx, course.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	found, err := s.GetCourseRegistration(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, reg, found)
}

func TestMemStorage_Tours(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	tour, err := s.CreateTour(ctx, domain.InsertTour{Type: domain.TourTypeWeekday, Schedule: "10:00 - 11:30", Description: "d", Capacity: 15})
	require.NoError(t, err)
	assert.Equal(t, uint(1), tour.ID)

	found, err := s.GetTour(ctx, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, tour, found)

	_, err = s.GetTour(ctx, 7)
	assert.ErrorIs(t, err, ErrTourNotFound)

	all, err := s.GetAllTours(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemStorage_CreateCourseRegistration_StampsStatusAndDate(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	// Registrations may point at courses that do not exist.
	reg, err := s.CreateCourseRegistration(ctx, sampleCourseRegistration(404))
	require.NoError(t, err)

	assert.Equal(t, uint(1), reg.ID)
	assert.Equal(t, uint(404), reg.CourseID)
	assert.Equal(t, domain.StatusPending, reg.Status)
	assert.Equal(t, "5/3/2025", reg.RegistrationDate)
}

func TestMemStorage_UpdateCourseRegistrationStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	reg, err := s.CreateCourseRegistration(ctx, sampleCourseRegistration(1))
	require.NoError(t, err)

	updated, err := s.UpdateCourseRegistrationStatus(ctx, reg.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.Equal(t, reg.RegistrationDate, updated.RegistrationDate)
	assert.Equal(t, reg.ParticipantName, updated.ParticipantName)

	updated, err = s.UpdateCourseRegistrationStatus(ctx, reg.ID, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, updated.Status)

	_, err = s.UpdateCourseRegistrationStatus(ctx, 99, domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrCourseRegistrationNotFound)
}

func TestMemStorage_TourRegistrations(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	age := 31
	in := sampleTourRegistration()
	in.IDNumber = "1-2345-6789"
	in.Age = &age
	reg, err := s.CreateTourRegistration(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reg.Status)
	assert.Equal(t, "5/3/2025", reg.RegistrationDate)
	assert.Equal(t, "1-2345-6789", reg.IDNumber)

	// The stored age does not alias the caller's variable.
	age = 99
	found, err := s.GetTourRegistration(ctx, reg.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Age)
	assert.Equal(t, 31, *found.Age)

	updated, err := s.UpdateTourRegistrationStatus(ctx, reg.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)

	deleted, err := s.DeleteTourRegistration(ctx, reg.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetTourRegistration(ctx, reg.ID)
	assert.ErrorIs(t, err, ErrTourRegistrationNotFound)
	_, err = s.UpdateTourRegistrationStatus(ctx, reg.ID, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrTourRegistrationNotFound)

	deleted, err = s.DeleteTourRegistration(ctx, reg.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemStorage_Users(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	user, err := s.CreateUser(ctx, domain.InsertUser{Username: "admin", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = s.CreateUser(ctx, domain.InsertUser{Username: "admin", Password: "other"})
	assert.ErrorIs(t, err, ErrUsernameExists)

	found, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user, found)

	found, err = s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, found)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.GetUser(ctx, 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemStorage_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	const workers = 100
	var wg sync.WaitGroup
	ids := make(chan uint, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := sampleCourseRegistration(1)
			in.Email = fmt.Sprintf("user%d@example.com", i)
			reg, err := s.CreateCourseRegistration(ctx, in)
			if err != nil {
				t.Errorf("CreateCourseRegistration: %v", err)
				return
			}
			ids <- reg.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "identity %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)

	all, err := s.GetAllCourseRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers)
	for i, reg := range all {
		assert.Equal(t, uint(i+1), reg.ID, "registrations are listed in identity order")
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, Seed(ctx, s))

	courses, err := s.GetAllCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "Técnicas de Cocina Profesional", courses[0].Name)
	assert.Equal(t, uint(1), courses[0].ID)

	tours, err := s.GetAllTours(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 3)
	assert.Equal(t, domain.TourTypeWeekday, tours[0].Type)

	// Seeding twice does not duplicate the catalog.
	require.NoError(t, Seed(ctx, s))
	courses, err = s.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 3)
}
