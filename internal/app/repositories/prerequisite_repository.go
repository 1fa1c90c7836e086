package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/db"
	"github.com/yigit/advisory/internal/pkg/apperrors"
	"github.com/yigit/advisory/internal/pkg/dberrors"
	"github.com/yigit/advisory/internal/pkg/logger"
)

// PrerequisiteRepository handles database operations for prerequisite edges
type PrerequisiteRepository struct {
	db db.Querier
}

// NewPrerequisiteRepository creates a new prerequisite repository
func NewPrerequisiteRepository(q db.Querier) *PrerequisiteRepository {
	return &PrerequisiteRepository{db: q}
}

// selectEdgesQuery left-joins the predecessor so an edge whose course row is gone still comes back, with an empty code.
func selectEdgesQuery() squirrel.SelectBuilder {
	return sb.Select("p.id", "p.course_id", "p.required_course_id", "COALESCE(rc.code, '')").
		From("prerequisites p").
		LeftJoin("courses rc ON rc.id = p.required_course_id")
}

func scanEdges(rows pgx.Rows) ([]models.Prerequisite, error) {
	defer rows.Close()

	edges := make([]models.Prerequisite, 0)
	for rows.Next() {
		var e models.Prerequisite
		if err := rows.Scan(&e.ID, &e.CourseID, &e.RequiredCourseID, &e.RequiredCourseCode); err != nil {
			return nil, fmt.Errorf("scan prerequisite: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// Create inserts a prerequisite edge and fills its ID
func (r *PrerequisiteRepository) Create(ctx context.Context, edge *models.Prerequisite) error {
	sql, args, err := sb.Insert("prerequisites").
		Columns("course_id", "required_course_id").
		Values(edge.CourseID, edge.RequiredCourseID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert prerequisite: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&edge.ID); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, dberrors.PrerequisitesEdgeKey):
			return apperrors.ErrPrerequisiteAlreadyExists
		case dberrors.IsCheckConstraintError(err, dberrors.PrerequisitesNoSelfCheck):
			return apperrors.ErrPrerequisiteSelfReference
		}
		logger.Error().Err(err).Int64("courseID", edge.CourseID).Int64("requiredCourseID", edge.RequiredCourseID).Msg("Error inserting prerequisite")
		return fmt.Errorf("insert prerequisite: %w", err)
	}
	return nil
}

// ListByCourse returns the direct prerequisites of a course in edge order
func (r *PrerequisiteRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Prerequisite, error) {
	sql, args, err := selectEdgesQuery().Where(squirrel.Eq{"p.course_id": courseID}).OrderBy("p.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list prerequisites: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list prerequisites of course %d: %w", courseID, err)
	}
	return scanEdges(rows)
}

// ListAll returns every edge grouped by course, each group in edge order
func (r *PrerequisiteRepository) ListAll(ctx context.Context) ([]models.Prerequisite, error) {
	sql, args, err := selectEdgesQuery().OrderBy("p.course_id", "p.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list prerequisites: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list prerequisites: %w", err)
	}
	return scanEdges(rows)
}
