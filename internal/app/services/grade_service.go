package services

import (
	"context"
	"fmt"

	"github.com/emurray/registrar/internal/app/models"
)

// GradeStore is the relational store surface the service needs
type GradeStore interface {
	GetJoined(ctx context.Context) ([]*models.GradeRow, error)
}

// GradeService defines the interface for grade-related operations
type GradeService interface {
	ListGrades(ctx context.Context) ([]*models.GradeRow, error)
}

// gradeServiceImpl implements the GradeService interface
type gradeServiceImpl struct {
	gradeRepo GradeStore
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo GradeStore) GradeService {
	return &gradeServiceImpl{
		gradeRepo: gradeRepo,
	}
}

// ListGrades retrieves the joined grades listing ordered by student name
// then grade
func (s *gradeServiceImpl) ListGrades(ctx context.Context) ([]*models.GradeRow, error) {
	grades, err := s.gradeRepo.GetJoined(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}

	return grades, nil
}
