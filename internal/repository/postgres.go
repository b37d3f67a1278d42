package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/course-portal-api/internal/repository/dao"
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByUsername(ctx context.Context, username string) (dao.User, error)
}

type CatalogDAO interface {
	FindAllCourses(ctx context.Context) ([]dao.Course, error)
	FindCourseByID(ctx context.Context, id uint) (dao.Course, error)
	InsertCourse(ctx context.Context, course dao.Course) (dao.Course, error)
	UpdateCourse(ctx context.Context, id uint, fields map[string]interface{}) (dao.Course, error)
	DeleteCourse(ctx context.Context, id uint) (bool, error)
	FindAllTours(ctx context.Context) ([]dao.Tour, error)
	FindTourByID(ctx context.Context, id uint) (dao.Tour, error)
	InsertTour(ctx context.Context, tour dao.Tour) (dao.Tour, error)
}

type RegistrationDAO interface {
	FindAllCourseRegistrations(ctx context.Context) ([]dao.CourseRegistration, error)
	FindCourseRegistrationByID(ctx context.Context, id uint) (dao.CourseRegistration, error)
	InsertCourseRegistration(ctx context.Context, reg dao.CourseRegistration) (dao.CourseRegistration, error)
	UpdateCourseRegistrationStatus(ctx context.Context, id uint, status string) (dao.CourseRegistration, error)
	DeleteCourseRegistration(ctx context.Context, id uint) (bool, error)
	FindAllTourRegistrations(ctx context.Context) ([]dao.TourRegistration, error)
	FindTourRegistrationByID(ctx context.Context, id uint) (dao.TourRegistration, error)
	InsertTourRegistration(ctx context.Context, reg dao.TourRegistration) (dao.TourRegistration, error)
	UpdateTourRegistrationStatus(ctx context.Context, id uint, status string) (dao.TourRegistration, error)
	DeleteTourRegistration(ctx context.Context, id uint) (bool, error)
}

// PostgresStorage implements Storage on top of gorm. Serial columns give the
// same never-reused identities as MemStorage.
type PostgresStorage struct {
	now           func() time.Time
	userDAO       UserDAO
	catalogDAO    CatalogDAO
	registrations RegistrationDAO
}

func NewPostgresStorage(userDAO UserDAO, catalogDAO CatalogDAO, registrations RegistrationDAO) *PostgresStorage {
	return &PostgresStorage{
		now:           time.Now,
		userDAO:       userDAO,
		catalogDAO:    catalogDAO,
		registrations: registrations,
	}
}

// OpenPostgresStorage migrates the schema and wires the gorm DAOs.
func OpenPostgresStorage(db *gorm.DB) (*PostgresStorage, error) {
	if err := dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return NewPostgresStorage(dao.NewUserDAO(db), dao.NewCatalogDAO(db), dao.NewRegistrationDAO(db)), nil
}

var _ Storage = (*PostgresStorage)(nil)
