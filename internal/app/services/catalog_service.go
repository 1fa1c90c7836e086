package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/pkg/apperrors"
	"github.com/yigit/advisory/internal/pkg/validation"
)

// CatalogService manages courses, prerequisite edges and semesters
type CatalogService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context) ([]dto.CourseResponse, error)
	AddPrerequisite(ctx context.Context, courseID int64, req *dto.CreatePrerequisiteRequest) (*dto.PrerequisiteResponse, error)
	ListPrerequisites(ctx context.Context, courseID int64) ([]dto.PrerequisiteResponse, error)
	CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	ListSemesters(ctx context.Context) ([]dto.SemesterResponse, error)
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	courses   CourseStore
	edges     PrerequisiteStore
	semesters SemesterStore
	logger    zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(courses CourseStore, edges PrerequisiteStore, semesters SemesterStore, logger zerolog.Logger) CatalogService {
	return &catalogServiceImpl{
		courses:   courses,
		edges:     edges,
		semesters: semesters,
		logger:    logger,
	}
}

func (s *catalogServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	code := validation.NormalizeCourseCode(req.Code)
	if !validation.IsCourseCode(code) {
		return nil, apperrors.NewBadRequestError("course code must be three letters followed by three digits")
	}
	if req.Credits < 1 {
		return nil, apperrors.NewBadRequestError("course credits must be a positive integer")
	}

	course := &models.Course{
		Code:            code,
		Name:            strings.TrimSpace(req.Name),
		Credits:         req.Credits,
		SemesterOffered: models.Term(req.SemesterOffered),
		Department:      strings.TrimSpace(req.Department),
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", course.ID).Str("code", course.Code).Msg("Course created")
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

func (s *catalogServiceImpl) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

func (s *catalogServiceImpl) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCourseListResponse(courses), nil
}

func (s *catalogServiceImpl) AddPrerequisite(ctx context.Context, courseID int64, req *dto.CreatePrerequisiteRequest) (*dto.PrerequisiteResponse, error) {
	if courseID == req.RequiredCourseID {
		return nil, apperrors.ErrPrerequisiteSelfReference
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	required, err := s.courses.GetByID(ctx, req.RequiredCourseID)
	if err != nil {
		return nil, err
	}

	edge := &models.Prerequisite{CourseID: courseID, RequiredCourseID: required.ID, RequiredCourseCode: required.Code}
	if err := s.edges.Create(ctx, edge); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", courseID).Str("requires", required.Code).Msg("Prerequisite added")
	return &dto.PrerequisiteResponse{
		ID:                 edge.ID,
		CourseID:           edge.CourseID,
		RequiredCourseID:   edge.RequiredCourseID,
		RequiredCourseCode: edge.RequiredCourseCode,
	}, nil
}

func (s *catalogServiceImpl) ListPrerequisites(ctx context.Context, courseID int64) ([]dto.PrerequisiteResponse, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	edges, err := s.edges.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return dto.NewPrerequisiteListResponse(edges), nil
}

func (s *catalogServiceImpl) CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewBadRequestError("semester end date must not precede its start date")
	}

	semester := &models.Semester{
		Name:      strings.TrimSpace(req.Name),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := s.semesters.Create(ctx, semester); err != nil {
		return nil, err
	}

	resp := dto.NewSemesterResponse(semester)
	return &resp, nil
}

func (s *catalogServiceImpl) ListSemesters(ctx context.Context) ([]dto.SemesterResponse, error) {
	semesters, err := s.semesters.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		out = append(out, dto.NewSemesterResponse(&semesters[i]))
	}
	return out, nil
}
