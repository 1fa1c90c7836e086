package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/advisory/internal/app/academic"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/pkg/helpers"
	"github.com/yigit/advisory/internal/pkg/validation"
	"github.com/yigit/advisory/internal/pkg/websocket"
)

// ResultService records graded attempts and lists them
type ResultService interface {
	RecordResult(ctx context.Context, req *dto.CreateResultRequest) (*dto.ResultResponse, error)
	ListStudentResults(ctx context.Context, studentID int64) ([]dto.ResultResponse, error)
	ListResults(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
}

// resultServiceImpl implements ResultService
type resultServiceImpl struct {
	students  StudentStore
	courses   CourseStore
	semesters SemesterStore
	results   ResultStore
	notifier  StandingNotifier
	logger    zerolog.Logger
}

// NewResultService creates a new ResultService. notifier may be nil.
func NewResultService(
	students StudentStore,
	courses CourseStore,
	semesters SemesterStore,
	results ResultStore,
	notifier StandingNotifier,
	logger zerolog.Logger,
) ResultService {
	return &resultServiceImpl{
		students:  students,
		courses:   courses,
		semesters: semesters,
		results:   results,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *resultServiceImpl) RecordResult(ctx context.Context, req *dto.CreateResultRequest) (*dto.ResultResponse, error) {
	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	semester, err := s.semesters.GetByID(ctx, req.SemesterID)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		StudentID:  req.StudentID,
		CourseID:   course.ID,
		SemesterID: semester.ID,
		Grade:      validation.NormalizeGrade(req.Grade),
		Credits:    course.Credits,
		Course:     course,
		Semester:   semester,
	}
	if req.GradePoint != nil {
		result.GradePoint = *req.GradePoint
	}
	if req.Credits != nil {
		result.Credits = *req.Credits
	}

	if err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("resultID", result.ID).
		Int64("studentID", result.StudentID).
		Str("course", course.Code).
		Str("grade", result.Grade).
		Msg("Result recorded")

	if s.notifier != nil {
		s.notifier.NotifyStudent(result.StudentID, websocket.TypeStandingChanged,
			fmt.Sprintf("A %s result was recorded for %s. Your standing has been updated.", result.Grade, course.Code))
	}

	resp := dto.NewResultResponse(result, academic.IsPassing(*result))
	return &resp, nil
}

func (s *resultServiceImpl) ListStudentResults(ctx context.Context, studentID int64) ([]dto.ResultResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	results, err := s.results.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return toResultResponses(results), nil
}

func (s *resultServiceImpl) ListResults(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	results, total, err := s.results.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedResponse{
		Items:      toResultResponses(results),
		Pagination: helpers.NewPaginationInfo(total, page, int(limit)),
	}, nil
}

func toResultResponses(results []models.Result) []dto.ResultResponse {
	out := make([]dto.ResultResponse, 0, len(results))
	for i := range results {
		out = append(out, dto.NewResultResponse(&results[i], academic.IsPassing(results[i])))
	}
	return out
}
