package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/advisory/internal/app/academic"
	"github.com/yigit/advisory/internal/app/advisor"
	"github.com/yigit/advisory/internal/app/controllers"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/app/services"
	"github.com/yigit/advisory/internal/middleware"
	"github.com/yigit/advisory/internal/pkg/apperrors"
	"github.com/yigit/advisory/internal/pkg/auth"
	"github.com/yigit/advisory/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterWithGin(); err != nil {
		panic(err)
	}
}

const johnID int64 = 1

type fakeStanding struct{}

func (fakeStanding) Performance(_ context.Context, studentID int64) (academic.Performance, error) {
	if studentID != johnID {
		return academic.Performance{}, apperrors.ErrStudentNotFound
	}
	return academic.Performance{TotalCredits: 8, TotalPoints: 18, Average: 2.25}, nil
}

func (fakeStanding) Resolve(_ context.Context, _, courseID int64) (academic.Eligibility, error) {
	if courseID != 4 {
		return academic.Eligibility{}, apperrors.ErrCourseNotFound
	}
	return academic.Eligibility{
		CourseID:   4,
		CourseCode: "CSC201",
		Status:     academic.StatusBlocked,
		Reason:     "Missing prerequisites: CSC101",
		Missing:    []string{"CSC101"},
	}, nil
}

func (f fakeStanding) Eligibility(ctx context.Context, studentID, courseID int64) (*dto.EligibilityResponse, error) {
	if _, err := f.Performance(ctx, studentID); err != nil {
		return nil, err
	}
	verdict, err := f.Resolve(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	return &dto.EligibilityResponse{
		CourseID:   verdict.CourseID,
		CourseCode: verdict.CourseCode,
		CourseName: "Data Structures",
		Credits:    3,
		Status:     string(verdict.Status),
		Reason:     verdict.Reason,
		Missing:    verdict.Missing,
	}, nil
}

func (fakeStanding) BuildContextSnapshot(context.Context, int64) (*advisor.Snapshot, error) {
	return nil, errors.New("not used")
}

func (f fakeStanding) Dashboard(ctx context.Context, studentID int64) (*dto.DashboardResponse, error) {
	if _, err := f.Performance(ctx, studentID); err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Student:    dto.StudentResponse{ID: johnID, FullName: "John Doe", Email: "john@uni.edu"},
		Cumulative: dto.PerformanceResponse{TotalCredits: 8, TotalPoints: 18, Average: 2.25},
	}, nil
}

type fakeAdvisor struct{}

func (fakeAdvisor) Answer(_ context.Context, studentID int64, question string) (advisor.Reply, error) {
	if studentID != johnID {
		return advisor.Reply{}, apperrors.ErrStudentNotFound
	}
	if question == "why can't I take CSC499?" {
		return advisor.Reply{Intent: advisor.IntentCourseEligibility, Text: "You are not eligible for CSC499.", CourseCode: "CSC499"}, nil
	}
	return advisor.Reply{Intent: advisor.IntentFallback, Text: advisor.FallbackMessage}, nil
}

type fakeStudents struct{}

func (fakeStudents) CreateStudent(_ context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	return &dto.StudentResponse{ID: 2, Email: req.Email}, nil
}

func (fakeStudents) GetStudent(_ context.Context, id int64) (*dto.StudentResponse, error) {
	if id != johnID {
		return nil, apperrors.ErrStudentNotFound
	}
	return &dto.StudentResponse{ID: johnID, FullName: "John Doe", Email: "john@uni.edu"}, nil
}

func (fakeStudents) ListStudents(_ context.Context, page, size int) (*dto.PaginatedResponse, error) {
	return &dto.PaginatedResponse{Items: []dto.StudentResponse{}}, nil
}

type fakeCatalog struct{}

func (fakeCatalog) CreateCourse(_ context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if req.Code == "CSC101" {
		return nil, apperrors.ErrCourseAlreadyExists
	}
	return &dto.CourseResponse{ID: 7, Code: req.Code, Name: req.Name, Credits: req.Credits}, nil
}

func (fakeCatalog) GetCourse(context.Context, int64) (*dto.CourseResponse, error) {
	return nil, apperrors.ErrCourseNotFound
}

func (fakeCatalog) ListCourses(context.Context) ([]dto.CourseResponse, error) {
	return []dto.CourseResponse{{ID: 1, Code: "MTH101"}}, nil
}

func (fakeCatalog) AddPrerequisite(context.Context, int64, *dto.CreatePrerequisiteRequest) (*dto.PrerequisiteResponse, error) {
	return nil, apperrors.ErrPrerequisiteSelfReference
}

func (fakeCatalog) ListPrerequisites(context.Context, int64) ([]dto.PrerequisiteResponse, error) {
	return []dto.PrerequisiteResponse{}, nil
}

func (fakeCatalog) CreateSemester(context.Context, *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	return nil, errors.New("not used")
}

func (fakeCatalog) ListSemesters(context.Context) ([]dto.SemesterResponse, error) {
	return []dto.SemesterResponse{}, nil
}

type fakeResults struct{}

func (fakeResults) RecordResult(context.Context, *dto.CreateResultRequest) (*dto.ResultResponse, error) {
	return nil, errors.New("not used")
}

func (fakeResults) ListStudentResults(context.Context, int64) ([]dto.ResultResponse, error) {
	return []dto.ResultResponse{}, nil
}

func (fakeResults) ListResults(context.Context, int, int) (*dto.PaginatedResponse, error) {
	return &dto.PaginatedResponse{Items: []dto.ResultResponse{}}, nil
}

type fakeAccounts struct {
	account *models.Account
}

func (f fakeAccounts) Create(context.Context, *models.Account) error { return nil }

func (f fakeAccounts) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	if f.account == nil || f.account.Email != email {
		return nil, apperrors.ErrAccountNotFound
	}
	return f.account, nil
}

type testAPI struct {
	router *gin.Engine
	jwt    *auth.JWTService
	health error
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	hash, err := auth.HashPassword("student123")
	require.NoError(t, err)
	studentID := johnID

	api := &testAPI{
		router: gin.New(),
		jwt:    auth.NewJWTService(auth.JWTConfig{SecretKey: "routes-secret", AccessTokenExp: time.Hour, TokenIssuer: "advisory-test"}),
	}

	var (
		logger   = zerolog.Nop()
		accounts = fakeAccounts{account: &models.Account{
			ID: 2, Email: "john@uni.edu", PasswordHash: hash, RoleType: models.RoleStudent, StudentID: &studentID, IsActive: true,
		}}
		standing services.StandingService = fakeStanding{}
		results  services.ResultService   = fakeResults{}
	)

	SetupRouter(api.router, Handlers{
		Auth:     controllers.NewAuthController(services.NewAuthService(accounts, api.jwt, logger), logger),
		Students: controllers.NewStudentController(fakeStudents{}, results),
		Courses:  controllers.NewCourseController(fakeCatalog{}),
		Results:  controllers.NewResultController(results),
		Standing: controllers.NewStandingController(standing, fakeAdvisor{}, logger),
		Health:   func(context.Context) error { return api.health },
	}, middleware.NewAuthMiddleware(api.jwt))

	return api
}

func (a *testAPI) token(t *testing.T, role models.RoleType, studentID *int64) string {
	t.Helper()
	token, _, err := a.jwt.GenerateAccessToken(&models.Account{ID: 9, Email: "caller@uni.edu", RoleType: role, StudentID: studentID})
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	t.Run("valid credentials issue a usable token", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "john@uni.edu", Password: "student123"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
		assert.Equal(t, "Bearer", resp.Token.TokenType)
		assert.Equal(t, "STUDENT", resp.Account.RoleType)

		dash := api.do(http.MethodGet, "/api/v1/students/1/dashboard", resp.Token.AccessToken, nil)
		assert.Equal(t, http.StatusOK, dash.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "john@uni.edu", Password: "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeInvalidCredentials, decode(t, w).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStudentScope(t *testing.T) {
	api := newTestAPI(t)
	own := johnID
	other := int64(2)

	tests := []struct {
		name   string
		token  string
		target string
		want   int
	}{
		{"no token", "", "/api/v1/students/1/dashboard", http.StatusUnauthorized},
		{"student reads own dashboard", api.token(t, models.RoleStudent, &own), "/api/v1/students/1/dashboard", http.StatusOK},
		{"student reads another dashboard", api.token(t, models.RoleStudent, &other), "/api/v1/students/1/dashboard", http.StatusForbidden},
		{"adviser reads any dashboard", api.token(t, models.RoleAdviser, nil), "/api/v1/students/1/dashboard", http.StatusOK},
		{"adviser route", api.token(t, models.RoleAdviser, nil), "/api/v1/adviser/students/1", http.StatusOK},
		{"student cannot use adviser route", api.token(t, models.RoleStudent, &own), "/api/v1/adviser/students/1", http.StatusForbidden},
		{"student cannot list students", api.token(t, models.RoleStudent, &own), "/api/v1/students", http.StatusForbidden},
		{"unknown student", api.token(t, models.RoleAdmin, nil), "/api/v1/students/99/dashboard", http.StatusNotFound},
		{"non numeric id", api.token(t, models.RoleAdmin, nil), "/api/v1/students/abc/dashboard", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodGet, tt.target, tt.token, nil)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestEligibilityEndpoint(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, models.RoleAdmin, nil)

	w := api.do(http.MethodGet, "/api/v1/students/1/eligibility/4", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got dto.EligibilityResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	assert.Equal(t, "Blocked", got.Status)
	assert.Equal(t, "Missing prerequisites: CSC101", got.Reason)
	assert.Equal(t, []string{"CSC101"}, got.Missing)
	assert.Equal(t, "Data Structures", got.CourseName)
	assert.Equal(t, 3, got.Credits)

	// Unknown student is reported before the course is looked at
	w = api.do(http.MethodGet, "/api/v1/students/99/eligibility/4", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "student not found", decode(t, w).Error.Message)

	w = api.do(http.MethodGet, "/api/v1/students/1/eligibility/42", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "course not found", decode(t, w).Error.Message)
}

func TestAskEndpoint(t *testing.T) {
	api := newTestAPI(t)
	own := johnID
	token := api.token(t, models.RoleStudent, &own)

	w := api.do(http.MethodPost, "/api/v1/students/1/ask", token, dto.AskRequest{Question: "why can't I take CSC499?"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got dto.AskResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	assert.Equal(t, string(advisor.IntentCourseEligibility), got.Intent)
	assert.Equal(t, "CSC499", got.CourseCode)

	w = api.do(http.MethodPost, "/api/v1/students/1/ask", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogRoutes(t *testing.T) {
	api := newTestAPI(t)
	admin := api.token(t, models.RoleAdmin, nil)
	adviser := api.token(t, models.RoleAdviser, nil)

	course := dto.CreateCourseRequest{Code: "CSC401", Name: "Compilers", Credits: 3, SemesterOffered: 1}

	w := api.do(http.MethodPost, "/api/v1/courses", adviser, course)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodPost, "/api/v1/courses", admin, course)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	course.Code = "CSC101"
	w = api.do(http.MethodPost, "/api/v1/courses", admin, course)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPost, "/api/v1/courses/4/prerequisites", admin, dto.CreatePrerequisiteRequest{RequiredCourseID: 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeBadRequest, decode(t, w).Error.Code)

	w = api.do(http.MethodGet, "/api/v1/courses/42", adviser, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/v1/courses", adviser, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	api.health = errors.New("connection refused")
	w = api.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ErrorCodeDatabaseError, decode(t, w).Error.Code)
}
