package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/db"
	"github.com/yigit/advisory/internal/pkg/apperrors"
	"github.com/yigit/advisory/internal/pkg/dberrors"
	"github.com/yigit/advisory/internal/pkg/logger"
)

var studentColumns = []string{"id", "first_name", "last_name", "email", "enrollment_year", "level", "created_at"}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db db.Querier
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(q db.Querier) *StudentRepository {
	return &StudentRepository{db: q}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	if err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.EnrollmentYear, &s.Level, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a student and fills ID and CreatedAt
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := sb.Insert("students").
		Columns("first_name", "last_name", "email", "enrollment_year", "level").
		Values(student.FirstName, student.LastName, student.Email, student.EnrollmentYear, student.Level).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert student: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.StudentsEmailKey) {
			return apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error inserting student")
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := sb.Select(studentColumns...).From("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get student: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("get student %d: %w", id, err)
	}
	return student, nil
}

// List returns one page of students ordered by id together with the total count
func (r *StudentRepository) List(ctx context.Context, offset, limit uint64) ([]models.Student, int64, error) {
	var total int64
	countSQL, _, err := sb.Select("count(*)").From("students").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count students: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}

	sql, args, err := sb.Select(studentColumns...).From("students").
		OrderBy("id").Offset(offset).Limit(limit).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list students: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}
