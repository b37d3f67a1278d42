package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrTourNotFound   = errors.New("tour not found")
)

type Course struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Date        string `gorm:"not null"`
	Capacity    int    `gorm:"not null"`
	ImageURL    string `gorm:"column:image_url;not null"`
}

type Tour struct {
	ID          uint   `gorm:"primaryKey"`
	Type        string `gorm:"not null"` // weekday, saturday, sunday
	Schedule    string `gorm:"not null"`
	Description string `gorm:"not null"`
	Capacity    int    `gorm:"not null"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) FindAllCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := d.db.WithContext(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}

	return courses, nil
}

func (d *CatalogDAO) FindCourseByID(ctx context.Context, id uint) (Course, error) {
	var course Course
	result := d.db.WithContext(ctx).First(&course, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Course{}, ErrCourseNotFound
		}

		return Course{}, result.Error
	}

	return course, nil
}

func (d *CatalogDAO) InsertCourse(ctx context.Context, course Course) (Course, error) {
	if err := d.db.WithContext(ctx).Create(&course).Error; err != nil {
		return Course{}, err
	}

	return course, nil
}

// UpdateCourse writes only the columns present in fields.
func (d *CatalogDAO) UpdateCourse(ctx context.Context, id uint, fields map[string]interface{}) (Course, error) {
	var course Course
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course, id).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&Course{ID: id}).Updates(fields).Error; err != nil {
			return err
		}

		return tx.First(&course, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Course{}, ErrCourseNotFound
		}

		return Course{}, err
	}

	return course, nil
}

func (d *CatalogDAO) DeleteCourse(ctx context.Context, id uint) (bool, error) {
	result := d.db.WithContext(ctx).Delete(&Course{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (d *CatalogDAO) FindAllTours(ctx context.Context) ([]Tour, error) {
	var tours []Tour
	if err := d.db.WithContext(ctx).Order("id").Find(&tours).Error; err != nil {
		return nil, err
	}

	return tours, nil
}

func (d *CatalogDAO) FindTourByID(ctx context.Context, id uint) (Tour, error) {
	var tour Tour
	result := d.db.WithContext(ctx).First(&tour, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tour{}, ErrTourNotFound
		}

		return Tour{}, result.Error
	}

	return tour, nil
}

func (d *CatalogDAO) InsertTour(ctx context.Context, tour Tour) (Tour, error) {
	if err := d.db.WithContext(ctx).Create(&tour).Error; err != nil {
		return Tour{}, err
	}

	return tour, nil
}
