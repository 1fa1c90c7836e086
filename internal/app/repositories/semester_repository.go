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
)

// SemesterRepository handles database operations for semesters
type SemesterRepository struct {
	db db.Querier
}

// NewSemesterRepository creates a new semester repository
func NewSemesterRepository(q db.Querier) *SemesterRepository {
	return &SemesterRepository{db: q}
}

// Create inserts a semester and fills its ID
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	sql, args, err := sb.Insert("semesters").
		Columns("name", "start_date", "end_date").
		Values(semester.Name, semester.StartDate, semester.EndDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert semester: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&semester.ID); err != nil {
		return fmt.Errorf("insert semester: %w", err)
	}
	return nil
}

// GetByID retrieves a semester by ID
func (r *SemesterRepository) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	sql, args, err := sb.Select("id", "name", "start_date", "end_date").
		From("semesters").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get semester: %w", err)
	}

	var s models.Semester
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, fmt.Errorf("get semester %d: %w", id, err)
	}
	return &s, nil
}

// List returns all semesters in chronological order
func (r *SemesterRepository) List(ctx context.Context) ([]models.Semester, error) {
	sql, args, err := sb.Select("id", "name", "start_date", "end_date").
		From("semesters").OrderBy("start_date", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list semesters: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list semesters: %w", err)
	}
	defer rows.Close()

	semesters := make([]models.Semester, 0)
	for rows.Next() {
		var s models.Semester
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate); err != nil {
			return nil, fmt.Errorf("scan semester: %w", err)
		}
		semesters = append(semesters, s)
	}
	return semesters, rows.Err()
}
