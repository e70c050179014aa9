package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/emurray/registrar/internal/pkg/apperrors"
)

// Export resource names accepted by the export endpoint
const (
	ExportResourceStudents  = "students"
	ExportResourceGrades    = "grades"
	ExportResourceLecturers = "lecturers"
)

// ExportFile points at a CSV written for one export request. Path is a
// uniquely named file under the export directory so concurrent exports of
// the same resource never share a file; Filename is the download name.
// The caller removes Path once the response has been written.
type ExportFile struct {
	Path     string
	Filename string
}

// ExportService writes a full resource collection to a downloadable CSV
type ExportService interface {
	ExportCSV(ctx context.Context, resource string) (*ExportFile, error)
}

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	studentRepo  StudentStore
	gradeRepo    GradeStore
	lecturerRepo LecturerStore
	exportDir    string
}

// NewExportService creates a new export service instance
func NewExportService(studentRepo StudentStore, gradeRepo GradeStore, lecturerRepo LecturerStore, exportDir string) ExportService {
	return &exportServiceImpl{
		studentRepo:  studentRepo,
		gradeRepo:    gradeRepo,
		lecturerRepo: lecturerRepo,
		exportDir:    exportDir,
	}
}

// ExportCSV fetches the named resource unfiltered, serializes it with the
// fixed header for that resource and writes it under the export
// directory (created if absent). Unknown resource names return
// apperrors.ErrUnknownExportResource.
func (s *exportServiceImpl) ExportCSV(ctx context.Context, resource string) (*ExportFile, error) {
	var records [][]string

	switch resource {
	case ExportResourceStudents:
		students, err := s.studentRepo.GetAll(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("error fetching students for export: %w", err)
		}
		records = append(records, []string{"sid", "name", "age"})
		for _, student := range students {
			records = append(records, []string{student.SID, student.Name, strconv.Itoa(student.Age)})
		}

	case ExportResourceGrades:
		grades, err := s.gradeRepo.GetJoined(ctx)
		if err != nil {
			return nil, fmt.Errorf("error fetching grades for export: %w", err)
		}
		records = append(records, []string{"student", "module", "grade"})
		for _, row := range grades {
			moduleName := ""
			if row.ModuleName != nil {
				moduleName = *row.ModuleName
			}
			gradeValue := ""
			if row.Grade != nil {
				gradeValue = strconv.Itoa(*row.Grade)
			}
			records = append(records, []string{row.StudentName, moduleName, gradeValue})
		}

	case ExportResourceLecturers:
		lecturers, err := s.lecturerRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("error fetching lecturers for export: %w", err)
		}
		records = append(records, []string{"lid", "name", "did"})
		for _, lecturer := range lecturers {
			records = append(records, []string{lecturer.ID, lecturer.Name, lecturer.DID})
		}

	default:
		return nil, apperrors.ErrUnknownExportResource
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating export directory: %w", err)
	}

	path := filepath.Join(s.exportDir, fmt.Sprintf("%s-%s.csv", resource, uuid.NewString()))
	if err := s.writeCSV(path, records); err != nil {
		return nil, err
	}

	return &ExportFile{
		Path:     path,
		Filename: resource + ".csv",
	}, nil
}

// writeCSV writes the records to path, removing the partial file when
// writing fails
func (s *exportServiceImpl) writeCSV(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating export file: %w", err)
	}

	writer := csv.NewWriter(file)
	writeErr := writer.WriteAll(records)
	if closeErr := file.Close(); writeErr == nil {
		writeErr = closeErr
	}

	if writeErr != nil {
		_ = os.Remove(path)
		return fmt.Errorf("error writing export file: %w", writeErr)
	}

	return nil
}
