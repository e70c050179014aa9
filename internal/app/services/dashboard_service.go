package services

import (
	"context"
	"fmt"
)

// DashboardStats holds the aggregate counts shown on the dashboard
type DashboardStats struct {
	TotalStudents  int64
	TotalGrades    int64
	TotalLecturers int64
}

// Counter reports the size of a table or collection
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardService defines the interface for dashboard statistics
type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	students  Counter
	grades    Counter
	lecturers Counter
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(students, grades, lecturers Counter) DashboardService {
	return &dashboardServiceImpl{
		students:  students,
		grades:    grades,
		lecturers: lecturers,
	}
}

// GetStats gathers counts from both stores
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalStudents, err = s.students.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	if stats.TotalGrades, err = s.grades.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting grades: %w", err)
	}

	if stats.TotalLecturers, err = s.lecturers.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting lecturers: %w", err)
	}

	return stats, nil
}
