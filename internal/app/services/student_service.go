package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/emurray/registrar/internal/app/models"
	"github.com/emurray/registrar/internal/pkg/apperrors"
	"github.com/emurray/registrar/internal/pkg/validation"
)

// StudentStore is the relational store surface the service needs
type StudentStore interface {
	GetAll(ctx context.Context, search string) ([]*models.Student, error)
	GetBySID(ctx context.Context, sid string) (*models.Student, error)
	ExistsBySID(ctx context.Context, sid string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	ListStudents(ctx context.Context, search string) ([]*models.Student, error)
	GetStudentBySID(ctx context.Context, sid string) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	UpdateStudent(ctx context.Context, student *models.Student) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// validateStudent collects every rule violation so forms can show the
// full list at once. When checkSID is false the identifier is left alone
// (updates never change it).
func validateStudent(student *models.Student, checkSID bool) validation.FieldErrors {
	var errs validation.FieldErrors

	if checkSID {
		ok := validation.NewStringValidation(student.SID).
			WithPattern(validation.CompiledPatterns.StudentID).
			Validate()
		if !ok {
			errs = append(errs, "Student ID must be the letter G followed by 3 digits, e.g. G001")
		}
	}

	nameOK := validation.NewStringValidation(strings.TrimSpace(student.Name)).
		WithMinLength(validation.NameMinLength).
		Validate()
	if !nameOK {
		errs = append(errs, fmt.Sprintf("Name must be at least %d characters", validation.NameMinLength))
	}

	ageOK := validation.NewNumericValidation(student.Age).
		WithMin(validation.AgeMin).
		Validate()
	if !ageOK {
		errs = append(errs, fmt.Sprintf("Age must be %d or over", validation.AgeMin))
	}

	return errs
}

// ListStudents retrieves students, optionally filtered by a
// case-insensitive substring match on name
func (s *studentServiceImpl) ListStudents(ctx context.Context, search string) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, nil
}

// GetStudentBySID retrieves a student by identifier
func (s *studentServiceImpl) GetStudentBySID(ctx context.Context, sid string) (*models.Student, error) {
	student, err := s.studentRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	return student, nil
}

// CreateStudent validates and inserts a new student. Returns
// validation.FieldErrors when input is invalid and
// apperrors.ErrStudentIDAlreadyExists when the identifier is taken.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if errs := validateStudent(student, true); len(errs) > 0 {
		return errs
	}

	exists, err := s.studentRepo.ExistsBySID(ctx, student.SID)
	if err != nil {
		return fmt.Errorf("error checking student identifier: %w", err)
	}

	if exists {
		return apperrors.ErrStudentIDAlreadyExists
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// UpdateStudent validates and updates name and age of an existing
// student. The identifier is immutable.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if errs := validateStudent(student, false); len(errs) > 0 {
		return errs
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return err
	}

	return nil
}
