package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/course-portal-api/internal/db"
	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/repository/dao"
)

// testDB is nil when Docker is unavailable; postgres tests skip in that case.
var testDB *gorm.DB

func TestMain(m *testing.M) {
	os.Exit(runWithPostgres(m))
}

func runWithPostgres(m *testing.M) int {
	if os.Getenv("SKIP_DOCKER_TESTS") != "" {
		return m.Run()
	}

	pool, err := dockertest.NewPool("")
	if err != nil || pool.Client.Ping() != nil {
		log.Printf("docker unavailable, postgres tests will be skipped")
		return m.Run()
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=portal",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=portal",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Printf("could not start postgres: %v", err)
		return m.Run()
	}
	_ = resource.Expire(120)
	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Printf("could not purge postgres: %v", err)
		}
	}()

	dsn := fmt.Sprintf("postgres://portal:secret@%s/portal?sslmode=disable", resource.GetHostPort("5432/tcp"))
	pool.MaxWait = 60 * time.Second
	if err = pool.Retry(func() error {
		var openErr error
		testDB, openErr = db.OpenPostgresWithURL(dsn)
		return openErr
	}); err != nil {
		log.Printf("could not connect to postgres: %v", err)
		testDB = nil
	}

	return m.Run()
}

func newPostgresStorage(t *testing.T) *PostgresStorage {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres not available")
	}

	require.NoError(t, dao.DropTables(testDB))
	s, err := OpenPostgresStorage(testDB)
	require.NoError(t, err)
	s.now = fixedNow

	return s
}

func TestPostgresStorage_Courses(t *testing.T) {
	ctx := context.Background()
	s := newPostgresStorage(t)

	first, err := s.CreateCourse(ctx, sampleCourse())
	require.NoError(t, err)
	second, err := s.CreateCourse(ctx, sampleCourse())
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	name := "Renamed"
	updated, err := s.UpdateCourse(ctx, first.ID, domain.CourseUpdate{Name: &name})
	require.NoError(t, err)
	want := first
	want.Name = name
	assert.Equal(t, want, updated)

	deleted, err := s.DeleteCourse(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = s.DeleteCourse(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	third, err := s.CreateCourse(ctx, sampleCourse())
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)

	_, err = s.GetCourse(ctx, second.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
	_, err = s.UpdateCourse(ctx, second.ID, domain.CourseUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrCourseNotFound)

	all, err := s.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPostgresStorage_Registrations(t *testing.T) {
	ctx := context.Background()
	s := newPostgresStorage(t)

	reg, err := s.CreateCourseRegistration(ctx, sampleCourseRegistration(999))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reg.Status)
	assert.Equal(t, "5/3/2025", reg.RegistrationDate)

	updated, err := s.UpdateCourseRegistrationStatus(ctx, reg.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.Equal(t, reg.RegistrationDate, updated.RegistrationDate)

	_, err = s.UpdateCourseRegistrationStatus(ctx, reg.ID+100, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrCourseRegistrationNotFound)

	tour, err := s.CreateTourRegistration(ctx, sampleTourRegistration())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, tour.Status)

	deleted, err := s.DeleteTourRegistration(ctx, tour.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	_, err = s.GetTourRegistration(ctx, tour.ID)
	assert.ErrorIs(t, err, ErrTourRegistrationNotFound)
}

func TestPostgresStorage_Users(t *testing.T) {
	ctx := context.Background()
	s := newPostgresStorage(t)

	user, err := s.CreateUser(ctx, domain.InsertUser{Username: "admin", Password: "hash"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, domain.InsertUser{Username: "admin", Password: "hash"})
	assert.ErrorIs(t, err, ErrUsernameExists)

	found, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestPostgresStorage_Seed(t *testing.T) {
	ctx := context.Background()
	s := newPostgresStorage(t)

	require.NoError(t, Seed(ctx, s))
	require.NoError(t, Seed(ctx, s))

	tours, err := s.GetAllTours(ctx)
	require.NoError(t, err)
	assert.Len(t, tours, 3)
}
