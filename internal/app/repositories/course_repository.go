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

var courseColumns = []string{"id", "code", "name", "credits", "semester_offered", "department"}

// CourseRepository handles database operations for the course catalog
type CourseRepository struct {
	db db.Querier
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(q db.Querier) *CourseRepository {
	return &CourseRepository{db: q}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	if err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Credits, &c.SemesterOffered, &c.Department); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a course and fills its ID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := sb.Insert("courses").
		Columns("code", "name", "credits", "semester_offered", "department").
		Values(course.Code, course.Name, course.Credits, course.SemesterOffered, course.Department).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert course: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.CoursesCodeKey) {
			return apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Str("code", course.Code).Msg("Error inserting course")
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByCode retrieves a course by its catalog code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code})
}

func (r *CourseRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Course, error) {
	sql, args, err := sb.Select(courseColumns...).From("courses").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get course: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// List returns the whole catalog ordered by id
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	sql, args, err := sb.Select(courseColumns...).From("courses").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list courses: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}
