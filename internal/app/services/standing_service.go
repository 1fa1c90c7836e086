package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/yigit/advisory/internal/app/academic"
	"github.com/yigit/advisory/internal/app/advisor"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/app/models/dto"
)

// StandingService computes a student's performance and course eligibility
type StandingService interface {
	// Performance aggregates every attempt of an existing student
	Performance(ctx context.Context, studentID int64) (academic.Performance, error)
	// Resolve classifies one course for one student. It does not check that the student exists.
	Resolve(ctx context.Context, studentID, courseID int64) (academic.Eligibility, error)
	// BuildContextSnapshot assembles what the advisor knows about a student
	BuildContextSnapshot(ctx context.Context, studentID int64) (*advisor.Snapshot, error)
	// Eligibility checks that the student exists, then resolves one course with its catalog details
	Eligibility(ctx context.Context, studentID, courseID int64) (*dto.EligibilityResponse, error)
	// Dashboard returns profile, cumulative and per-semester performance and per-course status
	Dashboard(ctx context.Context, studentID int64) (*dto.DashboardResponse, error)
}

// standingServiceImpl implements StandingService
type standingServiceImpl struct {
	students StudentStore
	courses  CourseStore
	results  ResultStore
	edges    PrerequisiteStore
	logger   zerolog.Logger
}

// NewStandingService creates a new StandingService
func NewStandingService(
	students StudentStore,
	courses CourseStore,
	results ResultStore,
	edges PrerequisiteStore,
	logger zerolog.Logger,
) StandingService {
	return &standingServiceImpl{
		students: students,
		courses:  courses,
		results:  results,
		edges:    edges,
		logger:   logger,
	}
}

func (s *standingServiceImpl) Performance(ctx context.Context, studentID int64) (academic.Performance, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return academic.Performance{}, err
	}

	attempts, err := s.results.ListByStudent(ctx, studentID)
	if err != nil {
		return academic.Performance{}, fmt.Errorf("load attempts: %w", err)
	}
	return academic.Aggregate(attempts), nil
}

func (s *standingServiceImpl) Resolve(ctx context.Context, studentID, courseID int64) (academic.Eligibility, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return academic.Eligibility{}, err
	}
	return s.resolveCourse(ctx, studentID, course)
}

func (s *standingServiceImpl) Eligibility(ctx context.Context, studentID, courseID int64) (*dto.EligibilityResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	verdict, err := s.resolveCourse(ctx, studentID, course)
	if err != nil {
		return nil, err
	}

	resp := toEligibilityResponse(*course, verdict)
	return &resp, nil
}

// resolveCourse classifies a course that is known to exist
func (s *standingServiceImpl) resolveCourse(ctx context.Context, studentID int64, course *models.Course) (academic.Eligibility, error) {
	courseID := course.ID

	attempts, err := s.results.ListByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return academic.Eligibility{}, fmt.Errorf("load attempts on course %d: %w", courseID, err)
	}
	if _, passed := academic.FirstPassing(attempts); passed {
		return academic.Classify(*course, attempts, nil), nil
	}

	edges, err := s.edges.ListByCourse(ctx, courseID)
	if err != nil {
		return academic.Eligibility{}, fmt.Errorf("load prerequisites of course %d: %w", courseID, err)
	}

	requiredIDs := make([]int64, 0, len(edges))
	for _, e := range edges {
		requiredIDs = append(requiredIDs, e.RequiredCourseID)
	}
	predecessorAttempts, err := s.results.ListByStudentAndCourses(ctx, studentID, requiredIDs)
	if err != nil {
		return academic.Eligibility{}, fmt.Errorf("load prerequisite attempts: %w", err)
	}

	return academic.Classify(*course, attempts, requirementsFor(edges, academic.GroupByCourse(predecessorAttempts))), nil
}

// requirementsFor pairs edges, in order, with the student's attempts on each predecessor
func requirementsFor(edges []models.Prerequisite, byCourse map[int64][]models.Result) []academic.Requirement {
	reqs := make([]academic.Requirement, 0, len(edges))
	for _, e := range edges {
		reqs = append(reqs, academic.Requirement{
			CourseID:   e.RequiredCourseID,
			CourseCode: e.RequiredCourseCode,
			Attempts:   byCourse[e.RequiredCourseID],
		})
	}
	return reqs
}

// courseStanding pairs a catalog course with its classification
type courseStanding struct {
	course      models.Course
	eligibility academic.Eligibility
}

// classifyCatalog classifies every catalog course, in catalog order, from one set of attempts
func (s *standingServiceImpl) classifyCatalog(ctx context.Context, attempts []models.Result) ([]courseStanding, error) {
	catalog, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	allEdges, err := s.edges.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prerequisites: %w", err)
	}

	edgesByCourse := make(map[int64][]models.Prerequisite)
	for _, e := range allEdges {
		edgesByCourse[e.CourseID] = append(edgesByCourse[e.CourseID], e)
	}
	byCourse := academic.GroupByCourse(attempts)

	standings := make([]courseStanding, 0, len(catalog))
	for _, course := range catalog {
		reqs := requirementsFor(edgesByCourse[course.ID], byCourse)
		standings = append(standings, courseStanding{
			course:      course,
			eligibility: academic.Classify(course, byCourse[course.ID], reqs),
		})
	}
	return standings, nil
}

func (s *standingServiceImpl) BuildContextSnapshot(ctx context.Context, studentID int64) (*advisor.Snapshot, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.results.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	standings, err := s.classifyCatalog(ctx, attempts)
	if err != nil {
		return nil, err
	}

	snap := &advisor.Snapshot{
		StudentName: student.FullName(),
		Average:     academic.Aggregate(attempts).Average,
		Courses:     make(map[string]advisor.CourseStanding, len(standings)),
	}
	for _, st := range standings {
		snap.Courses[st.course.Code] = advisor.CourseStanding{
			Name:    st.course.Name,
			Status:  st.eligibility.Status,
			Reason:  st.eligibility.Reason,
			Credits: st.course.Credits,
		}
	}

	s.logger.Debug().Int64("studentID", studentID).Int("courses", len(snap.Courses)).Msg("Built advisor snapshot")
	return snap, nil
}

func (s *standingServiceImpl) Dashboard(ctx context.Context, studentID int64) (*dto.DashboardResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.results.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	standings, err := s.classifyCatalog(ctx, attempts)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Student:         dto.NewStudentResponse(student),
		Cumulative:      toPerformanceResponse(academic.Aggregate(attempts)),
		Semesters:       semesterBreakdown(attempts),
		Recommendations: make([]dto.EligibilityResponse, 0, len(standings)),
	}
	for _, st := range standings {
		resp.Recommendations = append(resp.Recommendations, toEligibilityResponse(st.course, st.eligibility))
	}
	return resp, nil
}

// semesterBreakdown aggregates attempts per semester, ordered by semester start date
func semesterBreakdown(attempts []models.Result) []dto.SemesterPerformanceResponse {
	type term struct {
		id    int64
		sem   *models.Semester
		first int
	}

	seen := make(map[int64]*term)
	var terms []*term
	for i, a := range attempts {
		if _, ok := seen[a.SemesterID]; ok {
			continue
		}
		t := &term{id: a.SemesterID, sem: a.Semester, first: i}
		seen[a.SemesterID] = t
		terms = append(terms, t)
	}

	sort.SliceStable(terms, func(i, j int) bool {
		a, b := terms[i], terms[j]
		if a.sem != nil && b.sem != nil && !a.sem.StartDate.Equal(b.sem.StartDate) {
			return a.sem.StartDate.Before(b.sem.StartDate)
		}
		return a.first < b.first
	})

	out := make([]dto.SemesterPerformanceResponse, 0, len(terms))
	for _, t := range terms {
		inTerm := academic.FilterBySemester(attempts, t.id)
		row := dto.SemesterPerformanceResponse{
			SemesterID:    t.id,
			PassedCredits: academic.PassedCredits(inTerm),
			Performance:   toPerformanceResponse(academic.Aggregate(inTerm)),
		}
		if t.sem != nil {
			row.SemesterName = t.sem.Name
		}
		out = append(out, row)
	}
	return out
}

func toEligibilityResponse(course models.Course, e academic.Eligibility) dto.EligibilityResponse {
	return dto.EligibilityResponse{
		CourseID:   course.ID,
		CourseCode: course.Code,
		CourseName: course.Name,
		Credits:    course.Credits,
		Status:     string(e.Status),
		Reason:     e.Reason,
		Missing:    e.Missing,
	}
}

func toPerformanceResponse(p academic.Performance) dto.PerformanceResponse {
	return dto.PerformanceResponse{
		TotalCredits: p.TotalCredits,
		TotalPoints:  p.TotalPoints,
		Average:      p.Average,
	}
}
