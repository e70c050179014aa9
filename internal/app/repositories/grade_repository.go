package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emurray/registrar/internal/app/models"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// GetJoined retrieves the grades listing joined with student and module
// names, ordered by student name then grade. Students without grades are
// kept by the LEFT JOINs with NULL module and grade.
func (r *GradeRepository) GetJoined(ctx context.Context) ([]*models.GradeRow, error) {
	query := `
		SELECT student.name AS student_name,
		       module.name AS module_name,
		       grade.grade
		FROM student
		LEFT JOIN grade ON student.sid = grade.sid
		LEFT JOIN module ON grade.mid = module.mid
		ORDER BY student.name ASC, grade.grade ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.GradeRow
	for rows.Next() {
		var row models.GradeRow
		if err := rows.Scan(
			&row.StudentName,
			&row.ModuleName,
			&row.Grade,
		); err != nil {
			return nil, err
		}
		results = append(results, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Count returns the total number of grade records
func (r *GradeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM grade`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting grades: %w", err)
	}

	return count, nil
}
