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

// ResultRepository handles database operations for graded attempts
type ResultRepository struct {
	db db.Querier
}

// NewResultRepository creates a new result repository
func NewResultRepository(q db.Querier) *ResultRepository {
	return &ResultRepository{db: q}
}

// selectResultDetailsQuery joins the course and semester of each attempt. Rows come back in store order.
func (r *ResultRepository) selectResultDetailsQuery() squirrel.SelectBuilder {
	return sb.Select(
		"r.id", "r.student_id", "r.course_id", "r.semester_id", "r.grade", "r.grade_point", "r.credits", "r.created_at",
		"c.code", "c.name", "c.credits", "c.semester_offered", "c.department",
		"s.name", "s.start_date", "s.end_date",
	).From("results r").
		Join("courses c ON c.id = r.course_id").
		Join("semesters s ON s.id = r.semester_id").
		OrderBy("r.id")
}

func scanResultDetails(row pgx.Row) (*models.Result, error) {
	var (
		res      models.Result
		course   models.Course
		semester models.Semester
	)
	err := row.Scan(
		&res.ID, &res.StudentID, &res.CourseID, &res.SemesterID, &res.Grade, &res.GradePoint, &res.Credits, &res.CreatedAt,
		&course.Code, &course.Name, &course.Credits, &course.SemesterOffered, &course.Department,
		&semester.Name, &semester.StartDate, &semester.EndDate,
	)
	if err != nil {
		return nil, err
	}
	course.ID = res.CourseID
	semester.ID = res.SemesterID
	res.Course = &course
	res.Semester = &semester
	return &res, nil
}

func (r *ResultRepository) queryResults(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Result, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list results: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	results := make([]models.Result, 0)
	for rows.Next() {
		res, err := scanResultDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, *res)
	}
	return results, rows.Err()
}

// Create records a graded attempt and fills ID and CreatedAt
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	sql, args, err := sb.Insert("results").
		Columns("student_id", "course_id", "semester_id", "grade", "grade_point", "credits").
		Values(result.StudentID, result.CourseID, result.SemesterID, result.Grade, result.GradePoint, result.Credits).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert result: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&result.ID, &result.CreatedAt); err != nil {
		switch {
		case dberrors.IsForeignKeyError(err, dberrors.ResultsStudentForeignKey):
			return apperrors.ErrStudentNotFound
		case dberrors.IsForeignKeyError(err, dberrors.ResultsCourseForeignKey):
			return apperrors.ErrCourseNotFound
		case dberrors.IsForeignKeyError(err, dberrors.ResultsSemesterForeignKey):
			return apperrors.ErrSemesterNotFound
		}
		logger.Error().Err(err).Int64("studentID", result.StudentID).Int64("courseID", result.CourseID).Msg("Error inserting result")
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// GetByID retrieves one attempt with its course and semester
func (r *ResultRepository) GetByID(ctx context.Context, id int64) (*models.Result, error) {
	sql, args, err := r.selectResultDetailsQuery().Where(squirrel.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get result: %w", err)
	}

	res, err := scanResultDetails(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResultNotFound
		}
		return nil, fmt.Errorf("get result %d: %w", id, err)
	}
	return res, nil
}

// ListByStudent returns every attempt of a student in store order
func (r *ResultRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Result, error) {
	return r.queryResults(ctx, r.selectResultDetailsQuery().Where(squirrel.Eq{"r.student_id": studentID}))
}

// ListByStudentAndCourse returns a student's attempts on one course in store order
func (r *ResultRepository) ListByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]models.Result, error) {
	return r.queryResults(ctx, r.selectResultDetailsQuery().Where(squirrel.Eq{
		"r.student_id": studentID,
		"r.course_id":  courseID,
	}))
}

// ListByStudentAndCourses returns a student's attempts on any of the given courses in store order
func (r *ResultRepository) ListByStudentAndCourses(ctx context.Context, studentID int64, courseIDs []int64) ([]models.Result, error) {
	if len(courseIDs) == 0 {
		return []models.Result{}, nil
	}
	return r.queryResults(ctx, r.selectResultDetailsQuery().Where(squirrel.Eq{
		"r.student_id": studentID,
		"r.course_id":  courseIDs,
	}))
}

// List returns one page of all attempts with the total count
func (r *ResultRepository) List(ctx context.Context, offset, limit uint64) ([]models.Result, int64, error) {
	var total int64
	countSQL, _, err := sb.Select("count(*)").From("results").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count results: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count results: %w", err)
	}

	results, err := r.queryResults(ctx, r.selectResultDetailsQuery().Offset(offset).Limit(limit))
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
