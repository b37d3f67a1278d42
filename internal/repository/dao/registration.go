package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrCourseRegistrationNotFound = errors.New("course registration not found")
	ErrTourRegistrationNotFound   = errors.New("tour registration not found")
)

// CourseRegistration has no foreign key on CourseID: registrations outlive
// the course they point to.
type CourseRegistration struct {
	ID               uint   `gorm:"primaryKey"`
	CourseID         uint   `gorm:"not null;index"`
	ParticipantName  string `gorm:"not null"`
	Email            string `gorm:"not null"`
	Phone            string `gorm:"not null"`
	Level            string `gorm:"not null"`
	Status           string `gorm:"not null;default:pending"` // pending, confirmed, cancelled
	RegistrationDate string `gorm:"not null"`
}

type TourRegistration struct {
	ID               uint   `gorm:"primaryKey"`
	TourType         string `gorm:"not null"`
	PreferredDate    string `gorm:"not null"`
	NumberOfPeople   string `gorm:"not null"`
	ResponsibleName  string `gorm:"not null"`
	Email            string `gorm:"not null"`
	Phone            string `gorm:"not null"`
	IDNumber         string
	Age              *int
	Institution      string
	Gender           string
	Status           string `gorm:"not null;default:pending"`
	RegistrationDate string `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

func (d *RegistrationDAO) FindAllCourseRegistrations(ctx context.Context) ([]CourseRegistration, error) {
	var regs []CourseRegistration
	if err := d.db.WithContext(ctx).Order("id").Find(&regs).Error; err != nil {
		return nil, err
	}

	return regs, nil
}

func (d *RegistrationDAO) FindCourseRegistrationByID(ctx context.Context, id uint) (CourseRegistration, error) {
	var reg CourseRegistration
	result := d.db.WithContext(ctx).First(&reg, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CourseRegistration{}, ErrCourseRegistrationNotFound
		}

		return CourseRegistration{}, result.Error
	}

	return reg, nil
}

func (d *RegistrationDAO) InsertCourseRegistration(ctx context.Context, reg CourseRegistration) (CourseRegistration, error) {
	if err := d.db.WithContext(ctx).Create(&reg).Error; err != nil {
		return CourseRegistration{}, err
	}

	return reg, nil
}

func (d *RegistrationDAO) UpdateCourseRegistrationStatus(ctx context.Context, id uint, status string) (CourseRegistration, error) {
	var reg CourseRegistration
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reg, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&reg).Update("status", status).Error; err != nil {
			return err
		}
		reg.Status = status

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CourseRegistration{}, ErrCourseRegistrationNotFound
		}

		return CourseRegistration{}, err
	}

	return reg, nil
}

func (d *RegistrationDAO) DeleteCourseRegistration(ctx context.Context, id uint) (bool, error) {
	result := d.db.WithContext(ctx).Delete(&CourseRegistration{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (d *RegistrationDAO) FindAllTourRegistrations(ctx context.Context) ([]TourRegistration, error) {
	var regs []TourRegistration
	if err := d.db.WithContext(ctx).Order("id").Find(&regs).Error; err != nil {
		return nil, err
	}

	return regs, nil
}

func (d *RegistrationDAO) FindTourRegistrationByID(ctx context.Context, id uint) (TourRegistration, error) {
	var reg TourRegistration
	result := d.db.WithContext(ctx).First(&reg, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TourRegistration{}, ErrTourRegistrationNotFound
		}

		return TourRegistration{}, result.Error
	}

	return reg, nil
}

func (d *RegistrationDAO) InsertTourRegistration(ctx context.Context, reg TourRegistration) (TourRegistration, error) {
	if err := d.db.WithContext(ctx).Create(&reg).Error; err != nil {
		return TourRegistration{}, err
	}

	return reg, nil
}

func (d *RegistrationDAO) UpdateTourRegistrationStatus(ctx context.Context, id uint, status string) (TourRegistration, error) {
	var reg TourRegistration
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reg, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&reg).Update("status", status).Error; err != nil {
			return err
		}
		reg.Status = status

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TourRegistration{}, ErrTourRegistrationNotFound
		}

		return TourRegistration{}, err
	}

	return reg, nil
}

func (d *RegistrationDAO) DeleteTourRegistration(ctx context.Context, id uint) (bool, error) {
	result := d.db.WithContext(ctx).Delete(&TourRegistration{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
