package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances. The relational ones
// share the process-wide pgx pool; the lecturer repository uses the
// process-wide mongo database handle.
type Repositories struct {
	StudentRepository  *StudentRepository
	ModuleRepository   *ModuleRepository
	GradeRepository    *GradeRepository
	LecturerRepository *LecturerRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool, mongoDB *mongo.Database) *Repositories {
	return &Repositories{
		StudentRepository:  NewStudentRepository(db),
		ModuleRepository:   NewModuleRepository(db),
		GradeRepository:    NewGradeRepository(db),
		LecturerRepository: NewLecturerRepository(mongoDB),
	}
}
