// Package services holds the application use cases. Services depend on the
// narrow store interfaces below; the postgres repositories satisfy them in
// production and in-memory fakes satisfy them in tests.
package services

import (
	"context"

	"github.com/yigit/advisory/internal/app/models"
)

// StudentStore persists student records
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, offset, limit uint64) ([]models.Student, int64, error)
}

// CourseStore persists the course catalog
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
}

// SemesterStore persists semesters
type SemesterStore interface {
	Create(ctx context.Context, semester *models.Semester) error
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
	List(ctx context.Context) ([]models.Semester, error)
}

// ResultStore persists graded attempts. Every list comes back in store order.
type ResultStore interface {
	Create(ctx context.Context, result *models.Result) error
	GetByID(ctx context.Context, id int64) (*models.Result, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Result, error)
	ListByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]models.Result, error)
	ListByStudentAndCourses(ctx context.Context, studentID int64, courseIDs []int64) ([]models.Result, error)
	List(ctx context.Context, offset, limit uint64) ([]models.Result, int64, error)
}

// PrerequisiteStore persists prerequisite edges. Lists come back in edge order.
type PrerequisiteStore interface {
	Create(ctx context.Context, edge *models.Prerequisite) error
	ListByCourse(ctx context.Context, courseID int64) ([]models.Prerequisite, error)
	ListAll(ctx context.Context) ([]models.Prerequisite, error)
}

// AccountStore persists login accounts
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

// EnrollmentTx runs fn with stores bound to one database transaction
type EnrollmentTx func(ctx context.Context, fn func(students StudentStore, accounts AccountStore) error) error

// StandingNotifier pushes a notice to a student's open advisor sessions
type StandingNotifier interface {
	NotifyStudent(studentID int64, msgType, content string) bool
}
