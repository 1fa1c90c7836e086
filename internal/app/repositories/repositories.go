package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/advisory/internal/db"
)

// sb builds every statement with PostgreSQL placeholders
var sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	CourseRepository       *CourseRepository
	SemesterRepository     *SemesterRepository
	ResultRepository       *ResultRepository
	PrerequisiteRepository *PrerequisiteRepository
	AccountRepository      *AccountRepository
}

// NewRepositories initializes all repositories over a pool or a transaction
func NewRepositories(q db.Querier) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(q),
		CourseRepository:       NewCourseRepository(q),
		SemesterRepository:     NewSemesterRepository(q),
		ResultRepository:       NewResultRepository(q),
		PrerequisiteRepository: NewPrerequisiteRepository(q),
		AccountRepository:      NewAccountRepository(q),
	}
}
