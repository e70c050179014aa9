package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emurray/registrar/internal/app/models"
)

// ModuleRepository handles database operations for modules. Modules are
// read-only from this application's perspective.
type ModuleRepository struct {
	db *pgxpool.Pool
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{
		db: db,
	}
}

// GetByLecturer retrieves all modules whose lecturer column equals the
// given identifier. The match is an exact string comparison.
func (r *ModuleRepository) GetByLecturer(ctx context.Context, lecturerID string) ([]*models.Module, error) {
	query := `
		SELECT mid, name, lecturer
		FROM module
		WHERE lecturer = $1
		ORDER BY mid ASC
	`

	rows, err := r.db.Query(ctx, query, lecturerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []*models.Module
	for rows.Next() {
		var module models.Module
		if err := rows.Scan(
			&module.MID,
			&module.Name,
			&module.Lecturer,
		); err != nil {
			return nil, err
		}
		modules = append(modules, &module)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return modules, nil
}
