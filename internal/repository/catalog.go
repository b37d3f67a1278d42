package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/repository/dao"
)

func (r *PostgresStorage) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	found, err := r.catalogDAO.FindAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.catalogDAO.FindAllCourses -> %w", err)
	}

	courses := make([]domain.Course, len(found))
	for i, c := range found {
		courses[i] = courseDaoToDomain(c)
	}

	return courses, nil
}

func (r *PostgresStorage) GetCourse(ctx context.Context, id uint) (domain.Course, error) {
	found, err := r.catalogDAO.FindCourseByID(ctx, id)
	if err != nil {
		return domain.Course{}, fmt.Errorf("r.catalogDAO.FindCourseByID -> %w", err)
	}

	return courseDaoToDomain(found), nil
}

func (r *PostgresStorage) CreateCourse(ctx context.Context, course domain.InsertCourse) (domain.Course, error) {
	created, err := r.catalogDAO.InsertCourse(ctx, dao.Course{
		Name:        course.Name,
		Description: course.Description,
		Date:        course.Date,
		Capacity:    course.Capacity,
		ImageURL:    course.ImageURL,
	})
	if err != nil {
		return domain.Course{}, fmt.Errorf("r.catalogDAO.InsertCourse -> %w", err)
	}

	return courseDaoToDomain(created), nil
}

func (r *PostgresStorage) UpdateCourse(ctx context.Context, id uint, update domain.CourseUpdate) (domain.Course, error) {
	updated, err := r.catalogDAO.UpdateCourse(ctx, id, courseUpdateColumns(update))
	if err != nil {
		return domain.Course{}, fmt.Errorf("r.catalogDAO.UpdateCourse -> %w", err)
	}

	return courseDaoToDomain(updated), nil
}

func (r *PostgresStorage) DeleteCourse(ctx context.Context, id uint) (bool, error) {
	deleted, err := r.catalogDAO.DeleteCourse(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.catalogDAO.DeleteCourse -> %w", err)
	}

	return deleted, nil
}

func (r *PostgresStorage) GetAllTours(ctx context.Context) ([]domain.Tour, error) {
	found, err := r.catalogDAO.FindAllTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.catalogDAO.FindAllTours -> %w", err)
	}

	tours := make([]domain.Tour, len(found))
	for i, t := range found {
		tours[i] = tourDaoToDomain(t)
	}

	return tours, nil
}

func (r *PostgresStorage) GetTour(ctx context.Context, id uint) (domain.Tour, error) {
	found, err := r.catalogDAO.FindTourByID(ctx, id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("r.catalogDAO.FindTourByID -> %w", err)
	}

	return tourDaoToDomain(found), nil
}

func (r *PostgresStorage) CreateTour(ctx context.Context, tour domain.InsertTour) (domain.Tour, error) {
	created, err := r.catalogDAO.InsertTour(ctx, dao.Tour{
		Type:        tour.Type,
		Schedule:    tour.Schedule,
		Description: tour.Description,
		Capacity:    tour.Capacity,
	})
	if err != nil {
		return domain.Tour{}, fmt.Errorf("r.catalogDAO.InsertTour -> %w", err)
	}

	return tourDaoToDomain(created), nil
}

func courseUpdateColumns(u domain.CourseUpdate) map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Date != nil {
		fields["date"] = *u.Date
	}
	if u.Capacity != nil {
		fields["capacity"] = *u.Capacity
	}
	if u.ImageURL != nil {
		fields["image_url"] = *u.ImageURL
	}

	return fields
}

func courseDaoToDomain(c dao.Course) domain.Course {
	return domain.Course{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Date:        c.Date,
		Capacity:    c.Capacity,
		ImageURL:    c.ImageURL,
	}
}

func tourDaoToDomain(t dao.Tour) domain.Tour {
	return domain.Tour{
		ID:          t.ID,
		Type:        t.Type,
		Schedule:    t.Schedule,
		Description: t.Description,
		Capacity:    t.Capacity,
	}
}
