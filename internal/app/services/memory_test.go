package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/pkg/apperrors"
)

// memoryStore is an in-memory stand-in for the postgres repositories
type memoryStore struct {
	mu        sync.Mutex
	nextID    int64
	students  []models.Student
	courses   []models.Course
	semesters []models.Semester
	results   []models.Result
	edges     []models.Prerequisite
	accounts  []models.Account

	courseListCalls int
	edgeListCalls   int
	transcriptLoads int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{nextID: 100}
}

func (m *memoryStore) id() int64 {
	m.nextID++
	return m.nextID
}

// newDemoStore loads the demo curriculum and John Doe's transcript
func newDemoStore() *memoryStore {
	m := newMemoryStore()
	m.students = []models.Student{{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@uni.edu", EnrollmentYear: 2023, Level: 300}}
	m.courses = []models.Course{
		{ID: 1, Code: "MTH101", Name: "Calculus I", Credits: 3, SemesterOffered: models.TermFirst},
		{ID: 2, Code: "CSC101", Name: "Intro to Java", Credits: 3, SemesterOffered: models.TermFirst},
		{ID: 3, Code: "GST101", Name: "Use of English", Credits: 2, SemesterOffered: models.TermFirst},
		{ID: 4, Code: "CSC201", Name: "Data Structures", Credits: 3, SemesterOffered: models.TermFirst},
		{ID: 5, Code: "CSC301", Name: "Advanced Java", Credits: 4, SemesterOffered: models.TermFirst},
		{ID: 6, Code: "CSC499", Name: "Capstone Project", Credits: 6, SemesterOffered: models.TermSecond},
	}
	m.semesters = []models.Semester{
		{ID: 1, Name: "Year 1 Sem 1", StartDate: date(2023, 1, 1), EndDate: date(2023, 5, 1)},
		{ID: 2, Name: "Year 1 Sem 2", StartDate: date(2023, 6, 1), EndDate: date(2023, 10, 1)},
	}
	m.edges = []models.Prerequisite{
		{ID: 1, CourseID: 4, RequiredCourseID: 2, RequiredCourseCode: "CSC101"},
		{ID: 2, CourseID: 5, RequiredCourseID: 4, RequiredCourseCode: "CSC201"},
		{ID: 3, CourseID: 6, RequiredCourseID: 5, RequiredCourseCode: "CSC301"},
	}
	m.results = []models.Result{
		{ID: 1, StudentID: 1, CourseID: 1, SemesterID: 1, Grade: "A", GradePoint: 4.0, Credits: 3},
		{ID: 2, StudentID: 1, CourseID: 3, SemesterID: 1, Grade: "B", GradePoint: 3.0, Credits: 2},
		{ID: 3, StudentID: 1, CourseID: 2, SemesterID: 1, Grade: "F", GradePoint: 0.0, Credits: 3},
	}
	return m
}

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func (m *memoryStore) addResult(r models.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.id()
	m.results = append(m.results, r)
}

// withRelations mirrors the repository join that fills Course and Semester
func (m *memoryStore) withRelations(r models.Result) models.Result {
	for i := range m.courses {
		if m.courses[i].ID == r.CourseID {
			c := m.courses[i]
			r.Course = &c
		}
	}
	for i := range m.semesters {
		if m.semesters[i].ID == r.SemesterID {
			s := m.semesters[i]
			r.Semester = &s
		}
	}
	return r
}

type memStudents struct{ m *memoryStore }
type memCourses struct{ m *memoryStore }
type memSemesters struct{ m *memoryStore }
type memResults struct{ m *memoryStore }
type memEdges struct{ m *memoryStore }
type memAccounts struct{ m *memoryStore }

func (s memStudents) Create(_ context.Context, st *models.Student) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.students {
		if existing.Email == st.Email {
			return apperrors.ErrStudentAlreadyExists
		}
	}
	st.ID = s.m.id()
	s.m.students = append(s.m.students, *st)
	return nil
}

func (s memStudents) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, st := range s.m.students {
		if st.ID == id {
			return &st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s memStudents) List(_ context.Context, offset, limit uint64) ([]models.Student, int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	total := int64(len(s.m.students))
	if offset >= uint64(total) {
		return []models.Student{}, total, nil
	}
	end := offset + limit
	if end > uint64(total) {
		end = uint64(total)
	}
	return append([]models.Student(nil), s.m.students[offset:end]...), total, nil
}

func (s memCourses) Create(_ context.Context, c *models.Course) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.courses {
		if existing.Code == c.Code {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	c.ID = s.m.id()
	s.m.courses = append(s.m.courses, *c)
	return nil
}

func (s memCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, c := range s.m.courses {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s memCourses) GetByCode(_ context.Context, code string) (*models.Course, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, c := range s.m.courses {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s memCourses) List(_ context.Context) ([]models.Course, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.courseListCalls++
	return append([]models.Course(nil), s.m.courses...), nil
}

func (s memSemesters) Create(_ context.Context, sem *models.Semester) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	sem.ID = s.m.id()
	s.m.semesters = append(s.m.semesters, *sem)
	return nil
}

func (s memSemesters) GetByID(_ context.Context, id int64) (*models.Semester, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, sem := range s.m.semesters {
		if sem.ID == id {
			return &sem, nil
		}
	}
	return nil, apperrors.ErrSemesterNotFound
}

func (s memSemesters) List(_ context.Context) ([]models.Semester, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := append([]models.Semester(nil), s.m.semesters...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s memResults) Create(_ context.Context, r *models.Result) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	r.ID = s.m.id()
	r.CreatedAt = time.Now()
	stored := *r
	stored.Course, stored.Semester = nil, nil
	s.m.results = append(s.m.results, stored)
	return nil
}

func (s memResults) GetByID(_ context.Context, id int64) (*models.Result, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, r := range s.m.results {
		if r.ID == id {
			out := s.m.withRelations(r)
			return &out, nil
		}
	}
	return nil, apperrors.ErrResultNotFound
}

func (s memResults) filter(keep func(models.Result) bool) []models.Result {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]models.Result, 0)
	for _, r := range s.m.results {
		if keep(r) {
			out = append(out, s.m.withRelations(r))
		}
	}
	return out
}

func (s memResults) ListByStudent(_ context.Context, studentID int64) ([]models.Result, error) {
	s.m.transcriptLoads++
	return s.filter(func(r models.Result) bool { return r.StudentID == studentID }), nil
}

func (s memResults) ListByStudentAndCourse(_ context.Context, studentID, courseID int64) ([]models.Result, error) {
	return s.filter(func(r models.Result) bool { return r.StudentID == studentID && r.CourseID == courseID }), nil
}

func (s memResults) ListByStudentAndCourses(_ context.Context, studentID int64, courseIDs []int64) ([]models.Result, error) {
	wanted := make(map[int64]bool, len(courseIDs))
	for _, id := range courseIDs {
		wanted[id] = true
	}
	return s.filter(func(r models.Result) bool { return r.StudentID == studentID && wanted[r.CourseID] }), nil
}

func (s memResults) List(_ context.Context, offset, limit uint64) ([]models.Result, int64, error) {
	all := s.filter(func(models.Result) bool { return true })
	total := int64(len(all))
	if offset >= uint64(total) {
		return []models.Result{}, total, nil
	}
	end := offset + limit
	if end > uint64(total) {
		end = uint64(total)
	}
	return all[offset:end], total, nil
}

func (s memEdges) Create(_ context.Context, e *models.Prerequisite) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.edges {
		if existing.CourseID == e.CourseID && existing.RequiredCourseID == e.RequiredCourseID {
			return apperrors.ErrPrerequisiteAlreadyExists
		}
	}
	e.ID = s.m.id()
	s.m.edges = append(s.m.edges, *e)
	return nil
}

func (s memEdges) ListByCourse(_ context.Context, courseID int64) ([]models.Prerequisite, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]models.Prerequisite, 0)
	for _, e := range s.m.edges {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s memEdges) ListAll(_ context.Context) ([]models.Prerequisite, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.edgeListCalls++
	return append([]models.Prerequisite(nil), s.m.edges...), nil
}

func (s memAccounts) Create(_ context.Context, a *models.Account) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.accounts {
		if existing.Email == a.Email {
			return apperrors.ErrAccountAlreadyExists
		}
	}
	a.ID = s.m.id()
	s.m.accounts = append(s.m.accounts, *a)
	return nil
}

func (s memAccounts) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, a := range s.m.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

// enrollment runs fn directly against the store; rollback is the repositories' concern
func (m *memoryStore) enrollment() EnrollmentTx {
	return func(ctx context.Context, fn func(StudentStore, AccountStore) error) error {
		return fn(memStudents{m}, memAccounts{m})
	}
}

// recordingNotifier captures standing notices
type recordingNotifier struct {
	mu      sync.Mutex
	notices []string
	ids     []int64
}

func (n *recordingNotifier) NotifyStudent(studentID int64, msgType, content string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ids = append(n.ids, studentID)
	n.notices = append(n.notices, msgType+": "+content)
	return true
}
