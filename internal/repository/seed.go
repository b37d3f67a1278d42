package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/course-portal-api/internal/domain"
)

func DefaultCourses() []domain.InsertCourse {
	return []domain.InsertCourse{
		{
			Name:        "Técnicas de Cocina Profesional",
			Description: "Aprende las técnicas fundamentales de la cocina profesional con chefs expertos.",
			Date:        "15 Mar 2024",
			Capacity:    12,
			ImageURL:    "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
		},
		{
			Name:        "Marketing Digital Avanzado",
			Description: "Domina las estrategias más efectivas del marketing digital y redes sociales.",
			Date:        "22 Mar 2024",
			Capacity:    20,
			ImageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
		},
		{
			Name:        "Fotografía Profesional",
			Description: "Desarrolla tu ojo artístico y técnicas profesionales de fotografía.",
			Date:        "28 Mar 2024",
			Capacity:    8,
			ImageURL:    "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
		},
	}
}

func DefaultTours() []domain.InsertTour {
	return []domain.InsertTour{
		{Type: domain.TourTypeWeekday, Schedule: "10:00 - 11:30", Description: "Visita completa de instalaciones", Capacity: 15},
		{Type: domain.TourTypeSaturday, Schedule: "09:00 - 12:00", Description: "Visita especializada + taller", Capacity: 10},
		{Type: domain.TourTypeSunday, Schedule: "11:00 - 12:00", Description: "Visita familiar", Capacity: 20},
	}
}

// Seed fills empty course and tour collections with the default catalog.
// Collections that already hold records are left alone.
func Seed(ctx context.Context, s Storage) error {
	courses, err := s.GetAllCourses(ctx)
	if err != nil {
		return fmt.Errorf("s.GetAllCourses -> %w", err)
	}
	if len(courses) == 0 {
		for _, c := range DefaultCourses() {
			if _, err = s.CreateCourse(ctx, c); err != nil {
				return fmt.Errorf("s.CreateCourse -> %w", err)
			}
		}
	}

	tours, err := s.GetAllTours(ctx)
	if err != nil {
		return fmt.Errorf("s.GetAllTours -> %w", err)
	}
	if len(tours) == 0 {
		for _, t := range DefaultTours() {
			if _, err = s.CreateTour(ctx, t); err != nil {
				return fmt.Errorf("s.CreateTour -> %w", err)
			}
		}
	}

	return nil
}
