package services

import (
	"context"
	"fmt"

	"github.com/emurray/registrar/internal/app/models"
)

// DeleteStatus is the discriminated business outcome of a lecturer
// deletion. Store failures are reported separately as errors.
type DeleteStatus string

const (
	// DeleteStatusDeleted means the lecturer document was removed
	DeleteStatusDeleted DeleteStatus = "deleted"
	// DeleteStatusBlocked means modules still reference the lecturer and
	// the document was left untouched
	DeleteStatusBlocked DeleteStatus = "blocked"
	// DeleteStatusNotFound means no document had the identifier
	DeleteStatusNotFound DeleteStatus = "not_found"
)

// DeleteResult carries the outcome of a guarded deletion. Modules is
// populated on the blocked path with the rows that reference the lecturer.
type DeleteResult struct {
	Status     DeleteStatus
	LecturerID string
	Modules    []*models.Module
}

// LecturerStore is the document store surface the service needs
type LecturerStore interface {
	GetAll(ctx context.Context) ([]*models.Lecturer, error)
	GetByID(ctx context.Context, id string) (*models.Lecturer, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// ModuleStore is the relational store surface the service needs
type ModuleStore interface {
	GetByLecturer(ctx context.Context, lecturerID string) ([]*models.Module, error)
}

// LecturerService defines the interface for lecturer-related operations
type LecturerService interface {
	GetAllLecturers(ctx context.Context) ([]*models.Lecturer, error)
	DeleteLecturer(ctx context.Context, lecturerID string) (*DeleteResult, error)
}

// lecturerServiceImpl implements the LecturerService interface
type lecturerServiceImpl struct {
	lecturerRepo LecturerStore
	moduleRepo   ModuleStore
}

// NewLecturerService creates a new lecturer service instance
func NewLecturerService(lecturerRepo LecturerStore, moduleRepo ModuleStore) LecturerService {
	return &lecturerServiceImpl{
		lecturerRepo: lecturerRepo,
		moduleRepo:   moduleRepo,
	}
}

// GetAllLecturers retrieves all lecturers sorted by identifier
func (s *lecturerServiceImpl) GetAllLecturers(ctx context.Context) ([]*models.Lecturer, error) {
	lecturers, err := s.lecturerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturers: %w", err)
	}

	return lecturers, nil
}

// DeleteLecturer deletes a lecturer unless any module still references it.
//
// The check and the delete run against two independently consistent
// stores with no shared transaction or lock, so the sequence can race
// with concurrent requests: a module created between the check and the
// delete is not seen, and a concurrent delete of the same lecturer makes
// the slower request report not-found rather than fail. The guard only
// ever reads from the relational store and issues at most one delete
// against the document store.
func (s *lecturerServiceImpl) DeleteLecturer(ctx context.Context, lecturerID string) (*DeleteResult, error) {
	lecturer, err := s.lecturerRepo.GetByID(ctx, lecturerID)
	if err != nil {
		return nil, fmt.Errorf("error looking up lecturer: %w", err)
	}

	if lecturer == nil {
		return &DeleteResult{Status: DeleteStatusNotFound, LecturerID: lecturerID}, nil
	}

	modules, err := s.moduleRepo.GetByLecturer(ctx, lecturerID)
	if err != nil {
		return nil, fmt.Errorf("error checking referencing modules: %w", err)
	}

	if len(modules) > 0 {
		return &DeleteResult{
			Status:     DeleteStatusBlocked,
			LecturerID: lecturerID,
			Modules:    modules,
		}, nil
	}

	deleted, err := s.lecturerRepo.DeleteByID(ctx, lecturerID)
	if err != nil {
		return nil, fmt.Errorf("error deleting lecturer: %w", err)
	}

	// The document vanished between the lookup and the delete
	if deleted == 0 {
		return &DeleteResult{Status: DeleteStatusNotFound, LecturerID: lecturerID}, nil
	}

	return &DeleteResult{Status: DeleteStatusDeleted, LecturerID: lecturerID}, nil
}
