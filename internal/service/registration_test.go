package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/repository"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.FeedEvent
}

func (n *recordingNotifier) Notify(e domain.FeedEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) actions() []domain.FeedAction {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.FeedAction, len(n.events))
	for i, e := range n.events {
		out[i] = e.Action
	}

	return out
}

func courseRegistration(courseID uint) domain.InsertCourseRegistration {
	return domain.InsertCourseRegistration{
		CourseID:        courseID,
		ParticipantName: "Marta Ruiz",
		Email:           "marta@example.com",
		Phone:           "611222333",
		Level:           domain.LevelIntermediate,
	}
}

func TestRegistrationService_CourseRegistrationFlow(t *testing.T) {
	ctx := context.Background()
	feed := &recordingNotifier{}
	svc := NewRegistrationService(repository.NewMemStorage(), feed)

	reg, err := svc.RegisterForCourse(ctx, courseRegistration(1))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reg.Status)

	confirmed, err := svc.UpdateCourseRegistrationStatus(ctx, reg.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.Equal(t, reg.RegistrationDate, confirmed.RegistrationDate)

	got, err := svc.GetCourseRegistration(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, confirmed, got)

	require.NoError(t, svc.DeleteCourseRegistration(ctx, reg.ID))
	assert.ErrorIs(t, svc.DeleteCourseRegistration(ctx, reg.ID), ErrCourseRegistrationNotFound)

	_, err = svc.UpdateCourseRegistrationStatus(ctx, reg.ID, domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrCourseRegistrationNotFound)

	assert.Equal(t, []domain.FeedAction{domain.FeedCreated, domain.FeedStatusChanged, domain.FeedDeleted}, feed.actions())
	for _, e := range feed.events {
		assert.Equal(t, domain.FeedKindCourseRegistration, e.Kind)
		assert.Equal(t, reg.ID, e.ID)
	}
}

func TestRegistrationService_TourRegistrationFlow(t *testing.T) {
	ctx := context.Background()
	feed := &recordingNotifier{}
	svc := NewRegistrationService(repository.NewMemStorage(), feed)

	age := 17
	reg, err := svc.RegisterForTour(ctx, domain.InsertTourRegistration{
		TourType:        domain.TourTypeSunday,
		PreferredDate:   "2025-05-18",
		NumberOfPeople:  "5+",
		ResponsibleName: "Colegio San José",
		Email:           "visitas@example.com",
		Phone:           "912 345 678",
		Age:             &age,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reg.Status)
	require.NotNil(t, reg.Age)
	assert.Equal(t, 17, *reg.Age)

	cancelled, err := svc.UpdateTourRegistrationStatus(ctx, reg.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	regs, err := svc.ListTourRegistrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TourRegistration{cancelled}, regs)

	require.NoError(t, svc.DeleteTourRegistration(ctx, reg.ID))
	_, err = svc.GetTourRegistration(ctx, reg.ID)
	assert.ErrorIs(t, err, ErrTourRegistrationNotFound)

	require.Len(t, feed.events, 3)
	assert.Equal(t, domain.FeedKindTourRegistration, feed.events[0].Kind)
	assert.Equal(t, domain.StatusCancelled, feed.events[1].Status)
}

func TestRegistrationService_ViewsFallBackForUnknownCourse(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStorage()
	course, err := store.CreateCourse(ctx, newCourse())
	require.NoError(t, err)

	svc := NewRegistrationService(store, nil)
	known, err := svc.RegisterForCourse(ctx, courseRegistration(course.ID))
	require.NoError(t, err)
	orphan, err := svc.RegisterForCourse(ctx, courseRegistration(42))
	require.NoError(t, err)

	views, err := svc.ListCourseRegistrationViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, known.ID, views[0].ID)
	assert.Equal(t, course.Name, views[0].CourseName)
	assert.True(t, views[0].KnownCourse)

	assert.Equal(t, orphan.ID, views[1].ID)
	assert.Equal(t, domain.UnknownCourseLabel, views[1].CourseName)
	assert.False(t, views[1].KnownCourse)
}

func TestRegistrationService_FailedCreateDoesNotNotify(t *testing.T) {
	feed := &recordingNotifier{}
	svc := NewRegistrationService(brokenRegistrations{}, feed)

	_, err := svc.RegisterForCourse(context.Background(), courseRegistration(1))
	assert.ErrorIs(t, err, errBroken)
	assert.Empty(t, feed.actions())
}

type brokenRegistrations struct {
	RegistrationRepository
}

func (brokenRegistrations) CreateCourseRegistration(context.Context, domain.InsertCourseRegistration) (domain.CourseRegistration, error) {
	return domain.CourseRegistration{}, errBroken
}

func TestRegistrationService_Stats(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStorage()
	require.NoError(t, repository.Seed(ctx, store))
	svc := NewRegistrationService(store, nil)

	empty, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(repository.DefaultCourses()), empty.Courses)
	assert.Equal(t, len(repository.DefaultTours()), empty.Tours)
	assert.Zero(t, empty.CourseRegistrations)
	assert.Equal(t, domain.NewStatusCounts(), empty.TourRegistrationsByStatus)

	first, err := svc.RegisterForCourse(ctx, courseRegistration(1))
	require.NoError(t, err)
	_, err = svc.RegisterForCourse(ctx, courseRegistration(2))
	require.NoError(t, err)
	_, err = svc.UpdateCourseRegistrationStatus(ctx, first.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.CourseRegistrations)
	assert.Equal(t, map[domain.RegistrationStatus]int{
		domain.StatusPending:   1,
		domain.StatusConfirmed: 1,
		domain.StatusCancelled: 0,
	}, stats.CourseRegistrationsByStatus)
	assert.Zero(t, stats.TourRegistrations)
}
