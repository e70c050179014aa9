package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emurray/registrar/internal/app/models"
	"github.com/emurray/registrar/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// escapeSearchTerm escapes ILIKE pattern metacharacters so the term
// matches as a literal substring
func escapeSearchTerm(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

// GetAll retrieves all students ordered by identifier. A non-empty search
// term filters by case-insensitive substring match on name.
func (r *StudentRepository) GetAll(ctx context.Context, search string) ([]*models.Student, error) {
	query := `
		SELECT sid, name, age
		FROM student
		ORDER BY sid ASC
	`
	args := []interface{}{}

	if search != "" {
		query = `
			SELECT sid, name, age
			FROM student
			WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
			ORDER BY sid ASC
		`
		args = append(args, escapeSearchTerm(search))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.SID,
			&student.Name,
			&student.Age,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetBySID retrieves a student by identifier
func (r *StudentRepository) GetBySID(ctx context.Context, sid string) (*models.Student, error) {
	query := `
		SELECT sid, name, age
		FROM student
		WHERE sid = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, sid).Scan(
		&student.SID,
		&student.Name,
		&student.Age,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// ExistsBySID checks if a student with the identifier already exists
func (r *StudentRepository) ExistsBySID(ctx context.Context, sid string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student WHERE sid = $1)`,
		sid).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO student (sid, name, age)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, student.SID, student.Name, student.Age)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update updates name and age of an existing student. The identifier is
// immutable and only used as the lookup key.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE student
		SET name = $1, age = $2
		WHERE sid = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, student.Name, student.Age, student.SID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}
