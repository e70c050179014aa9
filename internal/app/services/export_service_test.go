package services

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emurray/registrar/internal/app/models"
	"github.com/emurray/registrar/internal/pkg/apperrors"
)

// fakeGradeStore returns a fixed joined result set
type fakeGradeStore struct {
	rows []*models.GradeRow
	err  error
}

func (s *fakeGradeStore) GetJoined(ctx context.Context) ([]*models.GradeRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func newTestExportService(t *testing.T, students *fakeStudentStore, grades *fakeGradeStore, lecturers *fakeLecturerStore) ExportService {
	t.Helper()
	return NewExportService(students, grades, lecturers, t.TempDir())
}

func TestExportStudentsCSV(t *testing.T) {
	students := newFakeStudentStore(&models.Student{SID: "G001", Name: "Alice", Age: 21})
	service := newTestExportService(t, students, &fakeGradeStore{}, newFakeLecturerStore())

	file, err := service.ExportCSV(context.Background(), ExportResourceStudents)
	require.NoError(t, err)
	assert.Equal(t, "students.csv", file.Filename)

	records := readCSVFile(t, file.Path)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"sid", "name", "age"}, records[0])
	assert.Equal(t, []string{"G001", "Alice", "21"}, records[1])
}

func TestExportGradesCSVHandlesMissingGrades(t *testing.T) {
	moduleName := "Databases"
	grade := 72
	rows := []*models.GradeRow{
		{StudentName: "Alice", ModuleName: &moduleName, Grade: &grade},
		{StudentName: "Bob", ModuleName: nil, Grade: nil},
	}
	service := newTestExportService(t, newFakeStudentStore(), &fakeGradeStore{rows: rows}, newFakeLecturerStore())

	file, err := service.ExportCSV(context.Background(), ExportResourceGrades)
	require.NoError(t, err)

	records := readCSVFile(t, file.Path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"student", "module", "grade"}, records[0])
	assert.Equal(t, []string{"Alice", "Databases", "72"}, records[1])
	assert.Equal(t, []string{"Bob", "", ""}, records[2])
}

func TestExportLecturersCSV(t *testing.T) {
	lecturers := newFakeLecturerStore(&models.Lecturer{ID: "L001", Name: "Dr. Quinn", DID: "D01"})
	service := newTestExportService(t, newFakeStudentStore(), &fakeGradeStore{}, lecturers)

	file, err := service.ExportCSV(context.Background(), ExportResourceLecturers)
	require.NoError(t, err)

	records := readCSVFile(t, file.Path)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"lid", "name", "did"}, records[0])
	assert.Equal(t, []string{"L001", "Dr. Quinn", "D01"}, records[1])
}

func TestExportUnknownResource(t *testing.T) {
	service := newTestExportService(t, newFakeStudentStore(), &fakeGradeStore{}, newFakeLecturerStore())

	_, err := service.ExportCSV(context.Background(), "enrolments")
	require.ErrorIs(t, err, apperrors.ErrUnknownExportResource)
}

func TestExportWritesUniqueFiles(t *testing.T) {
	dir := t.TempDir()
	service := NewExportService(newFakeStudentStore(), &fakeGradeStore{}, newFakeLecturerStore(), dir)

	first, err := service.ExportCSV(context.Background(), ExportResourceStudents)
	require.NoError(t, err)
	second, err := service.ExportCSV(context.Background(), ExportResourceStudents)
	require.NoError(t, err)

	// Concurrent exports must never share a file
	assert.NotEqual(t, first.Path, second.Path)
	assert.Equal(t, dir, filepath.Dir(first.Path))
}

func TestExportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	service := NewExportService(newFakeStudentStore(), &fakeGradeStore{}, newFakeLecturerStore(), dir)

	file, err := service.ExportCSV(context.Background(), ExportResourceStudents)
	require.NoError(t, err)

	_, err = os.Stat(file.Path)
	require.NoError(t, err)
}
