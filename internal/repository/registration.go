package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/repository/dao"
)

func (r *PostgresStorage) GetAllCourseRegistrations(ctx context.Context) ([]domain.CourseRegistration, error) {
	found, err := r.registrations.FindAllCourseRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.registrations.FindAllCourseRegistrations -> %w", err)
	}

	regs := make([]domain.CourseRegistration, len(found))
	for i, reg := range found {
		regs[i] = courseRegistrationDaoToDomain(reg)
	}

	return regs, nil
}

func (r *PostgresStorage) GetCourseRegistration(ctx context.Context, id uint) (domain.CourseRegistration, error) {
	found, err := r.registrations.FindCourseRegistrationByID(ctx, id)
	if err != nil {
		return domain.CourseRegistration{}, fmt.Errorf("r.registrations.FindCourseRegistrationByID -> %w", err)
	}

	return courseRegistrationDaoToDomain(found), nil
}

func (r *PostgresStorage) CreateCourseRegistration(ctx context.Context, reg domain.InsertCourseRegistration) (domain.CourseRegistration, error) {
	created, err := r.registrations.InsertCourseRegistration(ctx, dao.CourseRegistration{
		CourseID:         reg.CourseID,
		ParticipantName:  reg.ParticipantName,
		Email:            reg.Email,
		Phone:            reg.Phone,
		Level:            reg.Level,
		Status:           string(domain.StatusPending),
		RegistrationDate: r.now().Format(domain.RegistrationDateLayout),
	})
	if err != nil {
		return domain.CourseRegistration{}, fmt.Errorf("r.registrations.InsertCourseRegistration -> %w", err)
	}

	return courseRegistrationDaoToDomain(created), nil
}

func (r *PostgresStorage) UpdateCourseRegistrationStatus(ctx context.Context, id uint, status domain.RegistrationStatus) (domain.CourseRegistration, error) {
	updated, err := r.registrations.UpdateCourseRegistrationStatus(ctx, id, string(status))
	if err != nil {
		return domain.CourseRegistration{}, fmt.Errorf("r.registrations.UpdateCourseRegistrationStatus -> %w", err)
	}

	return courseRegistrationDaoToDomain(updated), nil
}

func (r *PostgresStorage) DeleteCourseRegistration(ctx context.Context, id uint) (bool, error) {
	deleted, err := r.registrations.DeleteCourseRegistration(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.registrations.DeleteCourseRegistration -> %w", err)
	}

	return deleted, nil
}

func (r *PostgresStorage) GetAllTourRegistrations(ctx context.Context) ([]domain.TourRegistration, error) {
	found, err := r.registrations.FindAllTourRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.registrations.FindAllTourRegistrations -> %w", err)
	}

	regs := make([]domain.TourRegistration, len(found))
	for i, reg := range found {
		regs[i] = tourRegistrationDaoToDomain(reg)
	}

	return regs, nil
}

func (r *PostgresStorage) GetTourRegistration(ctx context.Context, id uint) (domain.TourRegistration, error) {
	found, err := r.registrations.FindTourRegistrationByID(ctx, id)
	if err != nil {
		return domain.TourRegistration{}, fmt.Errorf("r.registrations.FindTourRegistrationByID -> %w", err)
	}

	return tourRegistrationDaoToDomain(found), nil
}

func (r *PostgresStorage) CreateTourRegistration(ctx context.Context, reg domain.InsertTourRegistration) (domain.TourRegistration, error) {
	created, err := r.registrations.InsertTourRegistration(ctx, dao.TourRegistration{
		TourType:         reg.TourType,
		PreferredDate:    reg.PreferredDate,
		NumberOfPeople:   reg.NumberOfPeople,
		ResponsibleName:  reg.ResponsibleName,
		Email:            reg.Email,
		Phone:            reg.Phone,
		IDNumber:         reg.IDNumber,
		Age:              copyInt(reg.Age),
		Institution:      reg.Institution,
		Gender:           reg.Gender,
		Status:           string(domain.StatusPending),
		RegistrationDate: r.now().Format(domain.RegistrationDateLayout),
	})
	if err != nil {
		return domain.TourRegistration{}, fmt.Errorf("r.registrations.InsertTourRegistration -> %w", err)
	}

	return tourRegistrationDaoToDomain(created), nil
}

func (r *PostgresStorage) UpdateTourRegistrationStatus(ctx context.Context, id uint, status domain.RegistrationStatus) (domain.TourRegistration, error) {
	updated, err := r.registrations.UpdateTourRegistrationStatus(ctx, id, string(status))
	if err != nil {
		return domain.TourRegistration{}, fmt.Errorf("r.registrations.UpdateTourRegistrationStatus -> %w", err)
	}

	return tourRegistrationDaoToDomain(updated), nil
}

func (r *PostgresStorage) DeleteTourRegistration(ctx context.Context, id uint) (bool, error) {
	deleted, err := r.registrations.DeleteTourRegistration(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.registrations.DeleteTourRegistration -> %w", err)
	}

	return deleted, nil
}

func courseRegistrationDaoToDomain(r dao.CourseRegistration) domain.CourseRegistration {
	return domain.CourseRegistration{
		ID:               r.ID,
		CourseID:         r.CourseID,
		ParticipantName:  r.ParticipantName,
		Email:            r.Email,
		Phone:            r.Phone,
		Level:            r.Level,
		Status:           domain.RegistrationStatus(r.Status),
		RegistrationDate: r.RegistrationDate,
	}
}

func tourRegistrationDaoToDomain(r dao.TourRegistration) domain.TourRegistration {
	return domain.TourRegistration{
		ID:               r.ID,
		TourType:         r.TourType,
		PreferredDate:    r.PreferredDate,
		NumberOfPeople:   r.NumberOfPeople,
		ResponsibleName:  r.ResponsibleName,
		Email:            r.Email,
		Phone:            r.Phone,
		IDNumber:         r.IDNumber,
		Age:              r.Age,
		Institution:      r.Institution,
		Gender:           r.Gender,
		Status:           domain.RegistrationStatus(r.Status),
		RegistrationDate: r.RegistrationDate,
	}
}
